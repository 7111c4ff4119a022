package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pulsefit/fitgate/internal/onboarding/catalog"
	"github.com/pulsefit/fitgate/internal/onboarding/domain"
)

// fitnessLevelKey is the question the classifier reads. Everything else in
// the answer set is ignored for tier purposes.
const fitnessLevelKey = "fitness-level"

// classifierRules are evaluated top-down; the first group with a matching
// keyword wins. Highest tier first so an aspirational answer mentioning
// several levels resolves upward. Matching is whole-word: bare "pro" is
// deliberately absent from the professional group so phrases like
// "advanced, maybe pro" land on ADV, not PRO.
var classifierRules = []struct {
	tier     domain.Tier
	keywords []string
}{
	{domain.TierProfessional, []string{"professional", "athlete", "competitive", "elite", "coach"}},
	{domain.TierAdvanced, []string{"advanced", "expert", "experienced"}},
	{domain.TierIntermediate, []string{"intermediate", "moderate", "regular", "active"}},
	{domain.TierBeginner, []string{"beginner", "new", "starting", "novice", "never"}},
}

// Classifier maps a (possibly partial) answer set to a tier. It is total:
// absent or malformed input always resolves to TierBeginner.
type Classifier struct {
	Catalog *catalog.Catalog
}

// Classify locates the fitness-level answer, folds it to bare lowercase
// words and tests the keyword groups in precedence order. Never errors.
func (c *Classifier) Classify(answers domain.AnswerSet) domain.Tier {
	question, ok := c.Catalog.QuestionByKey(fitnessLevelKey)
	if !ok {
		return domain.TierBeginner
	}

	answer, ok := answers[question.ID]
	if !ok {
		return domain.TierBeginner
	}

	var text string
	switch answer.Kind {
	case domain.AnswerText, domain.AnswerSelection:
		text = answer.Text
	case domain.AnswerMultiSelection:
		text = strings.Join(answer.Values, " ")
	}

	words := tokenize(normalize(text))
	if len(words) == 0 {
		return domain.TierBeginner
	}

	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if _, ok := words[kw]; ok {
				return rule.tier
			}
		}
	}
	return domain.TierBeginner
}

// foldTransformer strips combining marks after NFD decomposition, so
// "débutant" folds to "debutant".
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

func normalize(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

func tokenize(s string) map[string]struct{} {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	words := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		words[f] = struct{}{}
	}
	return words
}
