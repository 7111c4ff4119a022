package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pulsefit/fitgate/internal/onboarding/catalog"
	"github.com/pulsefit/fitgate/internal/onboarding/domain"
)

func newTestClassifier(t *testing.T) (*Classifier, int) {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	q, ok := c.QuestionByKey(fitnessLevelKey)
	require.True(t, ok)
	return &Classifier{Catalog: c}, q.ID
}

func TestClassifyEmptyAnswersDefaultsToBeginner(t *testing.T) {
	classifier, _ := newTestClassifier(t)

	require.Equal(t, domain.TierBeginner, classifier.Classify(domain.AnswerSet{}))
	require.Equal(t, domain.TierBeginner, classifier.Classify(nil))
}

func TestClassifyFreeText(t *testing.T) {
	classifier, levelID := newTestClassifier(t)

	tests := []struct {
		name string
		text string
		want domain.Tier
	}{
		{"select value beginner", "beginner", domain.TierBeginner},
		{"select value intermediate", "intermediate", domain.TierIntermediate},
		{"select value advanced", "advanced", domain.TierAdvanced},
		{"select value professional", "professional", domain.TierProfessional},
		{"mixed case", "ADVANCED", domain.TierAdvanced},
		{"sentence", "I train at a pretty advanced level", domain.TierAdvanced},
		{"athlete cue", "competitive athlete, 6 days a week", domain.TierProfessional},
		{"never trained", "never really trained before", domain.TierBeginner},
		{"moderate cue", "moderate, a few runs a week", domain.TierIntermediate},
		{"no cue at all", "I like turtles", domain.TierBeginner},
		{"accented cue folds", "très advancéd runner", domain.TierAdvanced},
		{"whitespace only", "   ", domain.TierBeginner},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			answers := domain.AnswerSet{levelID: domain.NewTextAnswer(tc.text)}
			require.Equal(t, tc.want, classifier.Classify(answers))
		})
	}
}

func TestClassifyAccentFolding(t *testing.T) {
	classifier, levelID := newTestClassifier(t)

	// "áctive" folds to "active", an intermediate cue.
	answers := domain.AnswerSet{levelID: domain.NewTextAnswer("pretty áctive these days")}
	require.Equal(t, domain.TierIntermediate, classifier.Classify(answers))
}

func TestClassifyPrecedenceHighestTierWins(t *testing.T) {
	classifier, levelID := newTestClassifier(t)

	// Multiple cues resolve upward.
	answers := domain.AnswerSet{
		levelID: domain.NewTextAnswer("started as a beginner, now an experienced athlete"),
	}
	require.Equal(t, domain.TierProfessional, classifier.Classify(answers))
}

func TestClassifyBareProDoesNotPreemptAdvanced(t *testing.T) {
	classifier, levelID := newTestClassifier(t)

	// "pro" alone is not a professional cue; "advanced" must win here.
	answers := domain.AnswerSet{
		levelID: domain.NewTextAnswer("I'd say advanced, maybe pro"),
	}
	require.Equal(t, domain.TierAdvanced, classifier.Classify(answers))
}

func TestClassifyIgnoresOtherAnswers(t *testing.T) {
	classifier, levelID := newTestClassifier(t)

	// Cues outside the fitness-level answer never classify.
	answers := domain.AnswerSet{
		levelID + 1: domain.NewTextAnswer("professional athlete"),
	}
	require.Equal(t, domain.TierBeginner, classifier.Classify(answers))
}
