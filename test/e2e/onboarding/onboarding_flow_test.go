package onboarding_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pulsefit/fitgate/pkg/accesscode"
	"github.com/pulsefit/fitgate/pkg/fitsdk"
)

func TestOnboardingFlowEndToEnd(t *testing.T) {
	baseURL, cleanup := setupFitgateContainer(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)
	ctx := context.Background()

	completion := completeOnboarding(t, client, "Jess", "jess@example.com", "advanced")

	require.Equal(t, "ADV", completion.Tier)
	require.Equal(t, "Advanced", completion.TierLabel)
	require.True(t, accesscode.Validate(completion.AccessCode))
	require.Contains(t, completion.UnlockedFeatures, "personalized-plans")
	require.Contains(t, completion.LockedFeatures, "ai-form-analysis")

	// The minted code's tier matches the classification.
	tier, err := accesscode.Parse(completion.AccessCode)
	require.NoError(t, err)
	require.Equal(t, completion.Tier, tier)

	// Login with the minted code and read entitlements + profile.
	login, err := client.Login(ctx, completion.AccessCode)
	require.NoError(t, err)
	require.Equal(t, "Bearer", login.TokenType)
	require.Equal(t, "ADV", login.Tier)
	require.NotEmpty(t, login.SessionToken)

	ents, err := client.Entitlements(ctx, login.SessionToken)
	require.NoError(t, err)
	require.Equal(t, "ADV", ents.Tier)
	require.Equal(t, 3, ents.Rank)
	require.ElementsMatch(t, completion.UnlockedFeatures, ents.UnlockedFeatures)

	check, err := client.CheckFeature(ctx, login.SessionToken, "ai-form-analysis")
	require.NoError(t, err)
	require.False(t, check.Unlocked)

	check, err = client.CheckFeature(ctx, login.SessionToken, "personalized-plans")
	require.NoError(t, err)
	require.True(t, check.Unlocked)

	profile, err := client.Profile(ctx, login.SessionToken)
	require.NoError(t, err)
	require.Equal(t, "jess@example.com", profile.Email)
	require.Equal(t, completion.AccessCode, profile.AccessCode)
	require.NotEmpty(t, profile.LastLoginAt)
}

func TestOnboardingBackAndRevise(t *testing.T) {
	baseURL, cleanup := setupFitgateContainer(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)
	ctx := context.Background()

	start, err := client.StartSession(ctx)
	require.NoError(t, err)

	_, err = client.SubmitAnswer(ctx, start.SessionToken, fitsdk.SubmitAnswerRequest{Value: "Sam"})
	require.NoError(t, err)

	// Step back re-opens the name question.
	back, err := client.Back(ctx, start.SessionToken)
	require.NoError(t, err)
	require.Equal(t, "name", back.Question.Key)
	require.Equal(t, 1, back.Question.Step)

	// Backing past the first question conflicts.
	_, err = client.Back(ctx, start.SessionToken)
	assertAPIError(t, err, http.StatusConflict, fitsdk.ErrorCodeFlowConflict)

	// Revised answer flows through to completion.
	resp, err := client.SubmitAnswer(ctx, start.SessionToken, fitsdk.SubmitAnswerRequest{Value: "Samuel"})
	require.NoError(t, err)
	require.Equal(t, "email", resp.Question.Key)
}

func TestOnboardingRejectsBadAnswers(t *testing.T) {
	baseURL, cleanup := setupFitgateContainer(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)
	ctx := context.Background()

	start, err := client.StartSession(ctx)
	require.NoError(t, err)

	// Empty name is rejected and the flow stays put.
	_, err = client.SubmitAnswer(ctx, start.SessionToken, fitsdk.SubmitAnswerRequest{Value: "  "})
	assertAPIError(t, err, http.StatusBadRequest, fitsdk.ErrorCodeInvalidAnswer)

	q, err := client.CurrentQuestion(ctx, start.SessionToken)
	require.NoError(t, err)
	require.Equal(t, "name", q.Key)

	// Bad email after a valid name.
	_, err = client.SubmitAnswer(ctx, start.SessionToken, fitsdk.SubmitAnswerRequest{Value: "Sam"})
	require.NoError(t, err)
	_, err = client.SubmitAnswer(ctx, start.SessionToken, fitsdk.SubmitAnswerRequest{Value: "not-an-email"})
	assertAPIError(t, err, http.StatusBadRequest, fitsdk.ErrorCodeInvalidAnswer)

	// Unknown session handle.
	_, err = client.CurrentQuestion(ctx, "bogus-token")
	assertAPIError(t, err, http.StatusNotFound, fitsdk.ErrorCodeSessionNotFound)
}

func TestLoginRejectsBadCodes(t *testing.T) {
	baseURL, cleanup := setupFitgateContainer(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)
	ctx := context.Background()

	// Malformed shape.
	_, err := client.Login(ctx, "FIT-XXX-1234")
	assertAPIError(t, err, http.StatusBadRequest, fitsdk.ErrorCodeInvalidCode)

	// Well-formed but never minted.
	_, err = client.Login(ctx, "FIT-VIP-4242")
	assertAPIError(t, err, http.StatusBadRequest, fitsdk.ErrorCodeUnknownCode)
}

func TestAdminLeadsLedger(t *testing.T) {
	baseURL, cleanup := setupFitgateContainer(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)
	ctx := context.Background()

	first := completeOnboarding(t, client, "Jess", "jess@example.com", "beginner")
	second := completeOnboarding(t, client, "Sam", "sam@example.com", "professional")

	// No key, wrong key, right key.
	_, err := client.ListLeads(ctx, "")
	assertAPIStatus(t, err, http.StatusUnauthorized)

	_, err = client.ListLeads(ctx, "wrong-key")
	assertAPIStatus(t, err, http.StatusForbidden)

	leads, err := client.ListLeads(ctx, adminKey)
	require.NoError(t, err)
	require.Len(t, leads.Leads, 2)

	// Newest first.
	require.Equal(t, second.AccessCode, leads.Leads[0].AccessCode)
	require.Equal(t, first.AccessCode, leads.Leads[1].AccessCode)
	require.Equal(t, "onboarding-chat", leads.Leads[0].Source)
}

func TestEntitlementsRequireSession(t *testing.T) {
	baseURL, cleanup := setupFitgateContainer(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)
	ctx := context.Background()

	_, err := client.Entitlements(ctx, "")
	assertAPIStatus(t, err, http.StatusUnauthorized)

	_, err = client.Profile(ctx, "garbage-token")
	assertAPIStatus(t, err, http.StatusUnauthorized)
}
