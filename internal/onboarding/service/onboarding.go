package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/pulsefit/fitgate/internal/onboarding/catalog"
	"github.com/pulsefit/fitgate/internal/onboarding/domain"
	"github.com/pulsefit/fitgate/internal/onboarding/store"
	"github.com/pulsefit/fitgate/pkg/accesscode"
	"github.com/pulsefit/fitgate/pkg/idx"
	"github.com/pulsefit/fitgate/pkg/slogx"
)

// leadSource is stamped on every lead minted by the intake flow.
const leadSource = "onboarding-chat"

// codeMintAttempts bounds access-code re-rolls on a UNIQUE collision.
// 9000 possible suffixes per tier makes repeated collisions vanishingly
// unlikely until the ledger is huge.
const codeMintAttempts = 5

var ErrCodeSpaceExhausted = errors.New("onboarding: could not mint a unique access code")

// QuestionStep is a question plus its position in the flow.
type QuestionStep struct {
	Question domain.Question
	Step     int
	Total    int
}

// CompletionResult is returned once the final answer lands: the persisted
// profile plus the entitlement split for its tier.
type CompletionResult struct {
	Profile  domain.Profile
	Unlocked []string
	Locked   []string
}

// SubmitResult carries exactly one of Next (flow continues) or Completion
// (flow finished).
type SubmitResult struct {
	Next       *QuestionStep
	Completion *CompletionResult
}

// OnboardingService orchestrates the intake flow: sequencing, classifying,
// minting the access code and the durable profile/lead hand-off.
type OnboardingService struct {
	Store        store.Store
	Catalog      *catalog.Catalog
	Sessions     *SessionRegistry
	Sequencer    *Sequencer
	Classifier   *Classifier
	Entitlements *EntitlementService
}

// Start opens a new session and returns its handle and the first question.
func (s *OnboardingService) Start(ctx context.Context) (string, QuestionStep, error) {
	log := slogx.FromContext(ctx)

	token, err := s.Sessions.Start()
	if err != nil {
		log.Error("failed to create onboarding session", slog.Any("error", err))
		return "", QuestionStep{}, err
	}

	first := s.Catalog.Questions[0]
	log.Debug("onboarding session started", slog.Int("total_questions", s.Sequencer.Total()))

	return token, QuestionStep{Question: first, Step: 1, Total: s.Sequencer.Total()}, nil
}

// CurrentQuestion returns the question the session is waiting on.
func (s *OnboardingService) CurrentQuestion(ctx context.Context, token string) (QuestionStep, error) {
	var step QuestionStep
	err := s.Sessions.WithSession(token, func(sess *domain.OnboardingSession) error {
		q, err := s.Sequencer.Current(sess)
		if err != nil {
			return err
		}
		step = QuestionStep{Question: q, Step: sess.CurrentStep, Total: s.Sequencer.Total()}
		return nil
	})
	return step, err
}

// Submit validates and records the answer for the current question. While
// questions remain it returns the next one; on the final answer it
// classifies, mints an access code and durably writes the profile and lead
// before discarding the session.
func (s *OnboardingService) Submit(ctx context.Context, token string, in AnswerInput) (SubmitResult, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	var result SubmitResult
	err := s.Sessions.WithSession(token, func(sess *domain.OnboardingSession) error {
		if err := s.Sequencer.Submit(sess, in, now); err != nil {
			return err
		}

		if !s.Sequencer.IsComplete(sess) {
			q, err := s.Sequencer.Current(sess)
			if err != nil {
				return err
			}
			result.Next = &QuestionStep{Question: q, Step: sess.CurrentStep, Total: s.Sequencer.Total()}
			return nil
		}

		completion, err := s.finalize(ctx, sess, now)
		if err != nil {
			// The write failed but the user's answers are intact. Rewind one
			// step (keeping the stored answer) so resubmitting the final
			// answer retries the persistence without re-asking anything.
			sess.CurrentStep--
			log.Error("failed to persist completed onboarding", slog.Any("error", err))
			return err
		}

		result.Completion = &completion
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}

	if result.Completion != nil {
		s.Sessions.Remove(token)
		log.Info("onboarding completed",
			slog.String("tier", string(result.Completion.Profile.Tier)),
			slog.String("access_code", result.Completion.Profile.AccessCode),
		)
	}
	return result, nil
}

// Back rewinds the session one step and returns the re-opened question.
func (s *OnboardingService) Back(ctx context.Context, token string) (QuestionStep, error) {
	now := time.Now().UTC()

	var step QuestionStep
	err := s.Sessions.WithSession(token, func(sess *domain.OnboardingSession) error {
		q, err := s.Sequencer.Back(sess, now)
		if err != nil {
			return err
		}
		step = QuestionStep{Question: q, Step: sess.CurrentStep, Total: s.Sequencer.Total()}
		return nil
	})
	return step, err
}

// finalize turns a completed answer set into a durable Profile and Lead.
// Access-code collisions surface as store.ErrAlreadyExists via the UNIQUE
// index; we re-roll the code and retry the whole write.
func (s *OnboardingService) finalize(
	ctx context.Context,
	sess *domain.OnboardingSession,
	now time.Time,
) (CompletionResult, error) {
	tier := s.Classifier.Classify(sess.Answers)

	name := s.answerText(sess.Answers, "name")
	email := s.answerText(sess.Answers, "email")
	goals := s.answerValues(sess.Answers, "goals")
	activities := s.answerValues(sess.Answers, "activities")

	rawPreferences, err := encodeRawPreferences(s.Catalog, sess.Answers)
	if err != nil {
		return CompletionResult{}, err
	}

	var lastErr error
	for attempt := 0; attempt < codeMintAttempts; attempt++ {
		code, err := accesscode.Generate(string(tier))
		if err != nil {
			return CompletionResult{}, err
		}

		profile := domain.Profile{
			Name:       name,
			Email:      email,
			Tier:       tier,
			AccessCode: code,
			Goals:      goals,
			Activities: activities,
			CreatedAt:  now,
		}
		lead := domain.Lead{
			ID:             idx.New().String(),
			Name:           name,
			Email:          email,
			Tier:           tier,
			AccessCode:     code,
			Source:         leadSource,
			RawPreferences: rawPreferences,
			CreatedAt:      now,
		}

		err = s.Store.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Profiles().SaveProfile(ctx, profile); err != nil {
				return err
			}
			return tx.Leads().CreateLead(ctx, lead)
		})
		if err == nil {
			return CompletionResult{
				Profile:  profile,
				Unlocked: s.Entitlements.Unlocked(tier),
				Locked:   s.Entitlements.Locked(tier),
			}, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return CompletionResult{}, err
		}
		lastErr = err
	}

	return CompletionResult{}, errors.Join(ErrCodeSpaceExhausted, lastErr)
}

// answerText reads a text/single-select answer by question key, "" if unset.
func (s *OnboardingService) answerText(answers domain.AnswerSet, key string) string {
	q, ok := s.Catalog.QuestionByKey(key)
	if !ok {
		return ""
	}
	return answers[q.ID].Text
}

// answerValues reads a multi-select answer by question key, nil if unset.
func (s *OnboardingService) answerValues(answers domain.AnswerSet, key string) []string {
	q, ok := s.Catalog.QuestionByKey(key)
	if !ok {
		return nil
	}
	return answers[q.ID].Values
}

// encodeRawPreferences serializes the full answer set, keyed by question
// key, as the opaque JSON blob the marketing side receives on each lead.
func encodeRawPreferences(c *catalog.Catalog, answers domain.AnswerSet) (string, error) {
	prefs := make(map[string]any, len(answers))
	for _, q := range c.Questions {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		switch answer.Kind {
		case domain.AnswerMultiSelection:
			prefs[q.Key] = answer.Values
		default:
			prefs[q.Key] = answer.Text
		}
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
