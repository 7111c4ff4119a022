package service

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/pulsefit/fitgate/internal/onboarding/catalog"
	"github.com/pulsefit/fitgate/internal/onboarding/domain"
)

// State-machine misuse guards. These indicate a caller bug, not user input:
// handlers log them and answer 409 rather than surfacing them inline.
var (
	ErrOutOfRange      = errors.New("sequencer: no question at current step")
	ErrAlreadyComplete = errors.New("sequencer: session already complete")
	ErrNoPriorStep     = errors.New("sequencer: already at first step")
)

// ValidationError reports a malformed or missing answer for the current
// question. It is recoverable: the session is left untouched and the same
// step can be resubmitted.
type ValidationError struct {
	Question string // question key
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("sequencer: invalid answer for %q: %s", e.Question, e.Reason)
}

// AnswerInput is a raw submitted answer before validation. Value carries
// text, email and single-select answers; Values carries multi-select.
type AnswerInput struct {
	Value  string
	Values []string
}

// Sequencer drives a session through the fixed question list. It owns no
// state of its own; all mutation happens on the session passed in.
type Sequencer struct {
	Catalog *catalog.Catalog
}

// Total returns the number of questions in the flow.
func (s *Sequencer) Total() int { return len(s.Catalog.Questions) }

// Current returns the question the session is waiting on.
func (s *Sequencer) Current(sess *domain.OnboardingSession) (domain.Question, error) {
	if sess.Complete(s.Total()) {
		return domain.Question{}, ErrOutOfRange
	}
	return s.Catalog.Questions[sess.CurrentStep-1], nil
}

// Submit validates the answer against the current question, stores it and
// advances the session one step. On a ValidationError the session is left
// unchanged.
func (s *Sequencer) Submit(sess *domain.OnboardingSession, in AnswerInput, now time.Time) error {
	if sess.Complete(s.Total()) {
		return ErrAlreadyComplete
	}

	question := s.Catalog.Questions[sess.CurrentStep-1]
	answer, err := validateAnswer(question, in)
	if err != nil {
		return err
	}

	sess.Answers[question.ID] = answer
	sess.CurrentStep++
	sess.UpdatedAt = now
	return nil
}

// Back steps the session to the previous question, discarding its stored
// answer so it can be re-answered. Returns ErrNoPriorStep at step 1.
func (s *Sequencer) Back(sess *domain.OnboardingSession, now time.Time) (domain.Question, error) {
	if sess.CurrentStep <= 1 {
		return domain.Question{}, ErrNoPriorStep
	}

	sess.CurrentStep--
	question := s.Catalog.Questions[sess.CurrentStep-1]
	delete(sess.Answers, question.ID)
	sess.UpdatedAt = now
	return question, nil
}

// IsComplete reports whether the session has answered every question.
func (s *Sequencer) IsComplete(sess *domain.OnboardingSession) bool {
	return sess.Complete(s.Total())
}

func validateAnswer(q domain.Question, in AnswerInput) (domain.Answer, error) {
	switch q.Type {
	case domain.AnswerTypeText:
		text := strings.TrimSpace(in.Value)
		if text == "" {
			return domain.Answer{}, &ValidationError{Question: q.Key, Reason: "answer must not be empty"}
		}
		return domain.NewTextAnswer(text), nil

	case domain.AnswerTypeEmail:
		text := strings.TrimSpace(in.Value)
		if text == "" {
			return domain.Answer{}, &ValidationError{Question: q.Key, Reason: "answer must not be empty"}
		}
		if _, err := mail.ParseAddress(text); err != nil {
			return domain.Answer{}, &ValidationError{Question: q.Key, Reason: "answer must be a valid email address"}
		}
		return domain.NewTextAnswer(text), nil

	case domain.AnswerTypeSingleSelect:
		if !q.HasOption(in.Value) {
			return domain.Answer{}, &ValidationError{
				Question: q.Key,
				Reason:   "answer must be one of the listed options",
			}
		}
		return domain.NewSelectionAnswer(in.Value), nil

	case domain.AnswerTypeMultiSelect:
		if len(in.Values) == 0 {
			return domain.Answer{}, &ValidationError{
				Question: q.Key,
				Reason:   "at least one option must be selected",
			}
		}
		seen := make(map[string]struct{}, len(in.Values))
		values := make([]string, 0, len(in.Values))
		for _, v := range in.Values {
			if !q.HasOption(v) {
				return domain.Answer{}, &ValidationError{
					Question: q.Key,
					Reason:   fmt.Sprintf("%q is not one of the listed options", v),
				}
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
		return domain.NewMultiSelectionAnswer(values), nil

	default:
		// Unreachable for a validated catalog.
		return domain.Answer{}, &ValidationError{Question: q.Key, Reason: "unknown question type"}
	}
}
