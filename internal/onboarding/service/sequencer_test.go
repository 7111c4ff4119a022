package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pulsefit/fitgate/internal/onboarding/catalog"
	"github.com/pulsefit/fitgate/internal/onboarding/domain"
)

func newTestSequencer(t *testing.T) *Sequencer {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return &Sequencer{Catalog: c}
}

func TestSequencerWalksFullFlow(t *testing.T) {
	seq := newTestSequencer(t)
	sess := domain.NewOnboardingSession(time.Now().UTC())

	answers := []AnswerInput{
		{Value: "Jess"},
		{Value: "jess@example.com"},
		{Value: "advanced"},
		{Values: []string{"build-muscle", "improve-endurance"}},
		{Values: []string{"gym", "cycling"}},
	}

	for i, in := range answers {
		require.False(t, seq.IsComplete(sess))

		q, err := seq.Current(sess)
		require.NoError(t, err)
		require.Equal(t, i+1, q.ID)

		require.NoError(t, seq.Submit(sess, in, time.Now().UTC()))
	}

	require.True(t, seq.IsComplete(sess))
	require.Len(t, sess.Answers, len(answers))

	// Terminal state: no further current or submit.
	_, err := seq.Current(sess)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorIs(t, seq.Submit(sess, AnswerInput{Value: "x"}, time.Now().UTC()), ErrAlreadyComplete)
}

func TestSequencerBackUndoesSubmit(t *testing.T) {
	seq := newTestSequencer(t)
	now := time.Now().UTC()
	sess := domain.NewOnboardingSession(now)

	require.NoError(t, seq.Submit(sess, AnswerInput{Value: "Jess"}, now))

	snapshotStep := sess.CurrentStep
	snapshotAnswers := sess.Answers.Clone()

	require.NoError(t, seq.Submit(sess, AnswerInput{Value: "jess@example.com"}, now))

	q, err := seq.Back(sess, now)
	require.NoError(t, err)
	require.Equal(t, "email", q.Key)

	// back(submit(s)) restores both the step and the answer set.
	require.Equal(t, snapshotStep, sess.CurrentStep)
	require.Equal(t, snapshotAnswers, sess.Answers)
}

func TestSequencerBackAtFirstStep(t *testing.T) {
	seq := newTestSequencer(t)
	sess := domain.NewOnboardingSession(time.Now().UTC())

	_, err := seq.Back(sess, time.Now().UTC())
	require.ErrorIs(t, err, ErrNoPriorStep)
	require.Equal(t, 1, sess.CurrentStep)
}

func TestSequencerValidation(t *testing.T) {
	seq := newTestSequencer(t)
	now := time.Now().UTC()

	advanceTo := func(t *testing.T, key string) *domain.OnboardingSession {
		t.Helper()
		sess := domain.NewOnboardingSession(now)
		steps := map[string]AnswerInput{
			"name":          {Value: "Jess"},
			"email":         {Value: "jess@example.com"},
			"fitness-level": {Value: "beginner"},
			"goals":         {Values: []string{"stay-active"}},
		}
		for {
			q, err := seq.Current(sess)
			require.NoError(t, err)
			if q.Key == key {
				return sess
			}
			require.NoError(t, seq.Submit(sess, steps[q.Key], now))
		}
	}

	tests := []struct {
		name  string
		key   string
		input AnswerInput
	}{
		{"empty text", "name", AnswerInput{Value: "   "}},
		{"empty email", "email", AnswerInput{}},
		{"bad email", "email", AnswerInput{Value: "not-an-email"}},
		{"unknown single-select option", "fitness-level", AnswerInput{Value: "olympian"}},
		{"empty multi-select", "goals", AnswerInput{Values: nil}},
		{"unknown multi-select option", "goals", AnswerInput{Values: []string{"stay-active", "fly"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sess := advanceTo(t, tc.key)
			stepBefore := sess.CurrentStep
			answersBefore := sess.Answers.Clone()

			err := seq.Submit(sess, tc.input, now)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tc.key, vErr.Question)

			// A rejected answer leaves the session untouched.
			require.Equal(t, stepBefore, sess.CurrentStep)
			require.Equal(t, answersBefore, sess.Answers)
		})
	}
}

func TestSequencerDedupesMultiSelect(t *testing.T) {
	seq := newTestSequencer(t)
	now := time.Now().UTC()
	sess := domain.NewOnboardingSession(now)

	require.NoError(t, seq.Submit(sess, AnswerInput{Value: "Jess"}, now))
	require.NoError(t, seq.Submit(sess, AnswerInput{Value: "jess@example.com"}, now))
	require.NoError(t, seq.Submit(sess, AnswerInput{Value: "beginner"}, now))
	require.NoError(t, seq.Submit(sess, AnswerInput{Values: []string{"stay-active", "stay-active", "lose-weight"}}, now))

	goals, _ := seq.Catalog.QuestionByKey("goals")
	require.Equal(t, []string{"stay-active", "lose-weight"}, sess.Answers[goals.ID].Values)
}
