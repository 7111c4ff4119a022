// Package catalog loads the static intake and entitlement configuration
// that the onboarding engine runs against. Both files are embedded so the
// binary is self-contained; Load validates them hard at process start
// because a broken catalog is a deploy error, not a runtime condition.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pulsefit/fitgate/internal/onboarding/domain"
)

//go:embed questions.yaml
var questionsYAML []byte

//go:embed entitlements.yaml
var entitlementsYAML []byte

// Catalog is the parsed, validated configuration: the fixed question
// sequence, the feature catalog in stable order, and the tier grants.
type Catalog struct {
	Questions []domain.Question
	Features  []domain.Feature
	Grants    map[domain.Tier][]string
}

type questionsFile struct {
	Questions []struct {
		ID      int    `yaml:"id"`
		Key     string `yaml:"key"`
		Prompt  string `yaml:"prompt"`
		Type    string `yaml:"type"`
		Options []struct {
			Value string `yaml:"value"`
			Label string `yaml:"label"`
		} `yaml:"options"`
	} `yaml:"questions"`
}

type entitlementsFile struct {
	Features []struct {
		ID      string `yaml:"id"`
		Premium bool   `yaml:"premium"`
	} `yaml:"features"`
	Tiers map[string][]string `yaml:"tiers"`
}

// Load parses the embedded catalog files and validates every invariant the
// engine depends on. It is called once from app wiring; any error is fatal.
func Load() (*Catalog, error) {
	questions, err := loadQuestions(questionsYAML)
	if err != nil {
		return nil, err
	}

	features, grants, err := loadEntitlements(entitlementsYAML)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Questions: questions,
		Features:  features,
		Grants:    grants,
	}, nil
}

// QuestionByKey finds a question by its stable key.
func (c *Catalog) QuestionByKey(key string) (domain.Question, bool) {
	for _, q := range c.Questions {
		if q.Key == key {
			return q, true
		}
	}
	return domain.Question{}, false
}

func loadQuestions(raw []byte) ([]domain.Question, error) {
	var file questionsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("catalog: parse questions: %w", err)
	}
	if len(file.Questions) == 0 {
		return nil, fmt.Errorf("catalog: no questions defined")
	}

	seenKeys := make(map[string]struct{}, len(file.Questions))
	questions := make([]domain.Question, 0, len(file.Questions))

	for i, q := range file.Questions {
		// IDs are 1-based and sequential; the sequencer indexes steps
		// directly against them.
		if q.ID != i+1 {
			return nil, fmt.Errorf("catalog: question %d: id %d out of sequence", i+1, q.ID)
		}
		if q.Key == "" || q.Prompt == "" {
			return nil, fmt.Errorf("catalog: question %d: key and prompt are required", q.ID)
		}
		if _, dup := seenKeys[q.Key]; dup {
			return nil, fmt.Errorf("catalog: duplicate question key %q", q.Key)
		}
		seenKeys[q.Key] = struct{}{}

		answerType := domain.AnswerType(q.Type)
		switch answerType {
		case domain.AnswerTypeText, domain.AnswerTypeEmail:
			if len(q.Options) > 0 {
				return nil, fmt.Errorf("catalog: question %q: %s questions cannot have options", q.Key, q.Type)
			}
		case domain.AnswerTypeSingleSelect, domain.AnswerTypeMultiSelect:
			if len(q.Options) == 0 {
				return nil, fmt.Errorf("catalog: question %q: %s questions need options", q.Key, q.Type)
			}
		default:
			return nil, fmt.Errorf("catalog: question %q: unknown type %q", q.Key, q.Type)
		}

		options := make([]domain.Option, 0, len(q.Options))
		seenValues := make(map[string]struct{}, len(q.Options))
		for _, o := range q.Options {
			if o.Value == "" {
				return nil, fmt.Errorf("catalog: question %q: option with empty value", q.Key)
			}
			// Selected values are stored space-delimited on the profile, so
			// whitespace inside a value would corrupt the column.
			if strings.ContainsAny(o.Value, " \t\n") {
				return nil, fmt.Errorf("catalog: question %q: option %q contains whitespace", q.Key, o.Value)
			}
			if _, dup := seenValues[o.Value]; dup {
				return nil, fmt.Errorf("catalog: question %q: duplicate option %q", q.Key, o.Value)
			}
			seenValues[o.Value] = struct{}{}
			options = append(options, domain.Option{Value: o.Value, Label: o.Label})
		}

		questions = append(questions, domain.Question{
			ID:      q.ID,
			Key:     q.Key,
			Prompt:  q.Prompt,
			Type:    answerType,
			Options: options,
		})
	}

	return questions, nil
}

func loadEntitlements(raw []byte) ([]domain.Feature, map[domain.Tier][]string, error) {
	var file entitlementsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("catalog: parse entitlements: %w", err)
	}
	if len(file.Features) == 0 {
		return nil, nil, fmt.Errorf("catalog: no features defined")
	}

	known := make(map[string]struct{}, len(file.Features))
	features := make([]domain.Feature, 0, len(file.Features))
	for _, f := range file.Features {
		if f.ID == "" {
			return nil, nil, fmt.Errorf("catalog: feature with empty id")
		}
		if _, dup := known[f.ID]; dup {
			return nil, nil, fmt.Errorf("catalog: duplicate feature %q", f.ID)
		}
		known[f.ID] = struct{}{}
		features = append(features, domain.Feature{ID: f.ID, Premium: f.Premium})
	}

	grants := make(map[domain.Tier][]string, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		list, ok := file.Tiers[string(tier)]
		if !ok {
			return nil, nil, fmt.Errorf("catalog: tier %s has no grant list", tier)
		}
		seen := make(map[string]struct{}, len(list))
		for _, id := range list {
			if _, ok := known[id]; !ok {
				return nil, nil, fmt.Errorf("catalog: tier %s grants unknown feature %q", tier, id)
			}
			if _, dup := seen[id]; dup {
				return nil, nil, fmt.Errorf("catalog: tier %s grants %q twice", tier, id)
			}
			seen[id] = struct{}{}
		}
		grants[tier] = list
	}
	for name := range file.Tiers {
		if _, ok := domain.ParseTier(name); !ok {
			return nil, nil, fmt.Errorf("catalog: unknown tier %q in grants", name)
		}
	}

	// The grants must nest strictly: each tier keeps everything the tier
	// below it unlocks and adds at least one feature.
	for i := 1; i < len(domain.Tiers); i++ {
		lower, higher := domain.Tiers[i-1], domain.Tiers[i]
		higherSet := make(map[string]struct{}, len(grants[higher]))
		for _, id := range grants[higher] {
			higherSet[id] = struct{}{}
		}
		for _, id := range grants[lower] {
			if _, ok := higherSet[id]; !ok {
				return nil, nil, fmt.Errorf(
					"catalog: tier %s is missing %q unlocked by %s", higher, id, lower)
			}
		}
		if len(grants[higher]) <= len(grants[lower]) {
			return nil, nil, fmt.Errorf("catalog: tier %s does not unlock anything beyond %s", higher, lower)
		}
	}

	return features, grants, nil
}
