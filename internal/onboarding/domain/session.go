package domain

import "time"

// OnboardingSession is the in-progress state of a user stepping through the
// question sequence. CurrentStep ranges over [1, N+1]; N+1 is the terminal
// "complete" state. Sessions live purely in memory until completion, at
// which point a Profile and Lead are written and the session is discarded.
type OnboardingSession struct {
	CurrentStep int
	Answers     AnswerSet
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOnboardingSession starts a fresh session at step 1 with no answers.
func NewOnboardingSession(now time.Time) *OnboardingSession {
	return &OnboardingSession{
		CurrentStep: 1,
		Answers:     make(AnswerSet),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Complete reports whether the session has moved past the final question.
func (s *OnboardingSession) Complete(totalQuestions int) bool {
	return s.CurrentStep > totalQuestions
}
