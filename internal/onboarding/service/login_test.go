package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pulsefit/fitgate/internal/onboarding/domain"
	"github.com/pulsefit/fitgate/pkg/jwtx"
)

func newTestLogin(t *testing.T, svc *OnboardingService) (*LoginService, *jwtx.EdDSAVerifier) {
	t.Helper()

	signer, err := jwtx.NewEphemeralEdDSASigner()
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)

	login := &LoginService{
		Store:  svc.Store,
		Signer: signer,
		Issuer: "fitgate-test",
		TTL:    time.Hour,
	}
	return login, jwtx.NewVerifierEdDSA(keys, "fitgate-test")
}

func TestLoginWithMintedCode(t *testing.T) {
	svc, st := newTestOnboarding(t)
	login, verifier := newTestLogin(t, svc)
	ctx := context.Background()

	_, completion := runFlow(t, svc, "advanced")

	result, err := login.Login(ctx, completion.Profile.AccessCode)
	require.NoError(t, err)
	require.Equal(t, time.Hour, result.ExpiresIn)
	require.Equal(t, domain.TierAdvanced, result.Profile.Tier)

	claims, err := verifier.Verify(result.Token)
	require.NoError(t, err)
	require.Equal(t, "jess@example.com", claims.Subject)
	require.Equal(t, "ADV", claims.Tier)
	require.Equal(t, completion.Profile.AccessCode, claims.AccessCode)
	require.Equal(t, "Jess", claims.Name)

	// Login bookkeeping landed on the profile.
	profile, err := st.Profiles().GetProfileByEmail(ctx, "jess@example.com")
	require.NoError(t, err)
	require.NotNil(t, profile.LastLoginAt)
}

func TestLoginRejectsMalformedCode(t *testing.T) {
	svc, _ := newTestOnboarding(t)
	login, _ := newTestLogin(t, svc)
	ctx := context.Background()

	for _, code := range []string{"", "FIT-XXX-1234", "FIT-BEG-12", "BEG-1234", "fit-beg-1234"} {
		_, err := login.Login(ctx, code)
		require.ErrorIs(t, err, ErrMalformedCode, "code %q", code)
	}
}

func TestLoginRejectsUnknownCode(t *testing.T) {
	svc, _ := newTestOnboarding(t)
	login, _ := newTestLogin(t, svc)
	ctx := context.Background()

	// Well-formed but never minted.
	_, err := login.Login(ctx, "FIT-VIP-4242")
	require.ErrorIs(t, err, ErrUnknownCode)
}

func TestLoginCodeDiesWhenProfileOverwritten(t *testing.T) {
	svc, _ := newTestOnboarding(t)
	login, _ := newTestLogin(t, svc)
	ctx := context.Background()

	_, first := runFlow(t, svc, "beginner")
	_, second := runFlow(t, svc, "advanced")

	// The lead for the first code still exists, but the profile slot moved
	// on; the superseded code no longer opens a session.
	_, err := login.Login(ctx, first.Profile.AccessCode)
	require.ErrorIs(t, err, ErrUnknownCode)

	result, err := login.Login(ctx, second.Profile.AccessCode)
	require.NoError(t, err)
	require.Equal(t, domain.TierAdvanced, result.Profile.Tier)
}
