package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pulsefit/fitgate/internal/onboarding/domain"
	"github.com/pulsefit/fitgate/internal/onboarding/store"
	"github.com/pulsefit/fitgate/pkg/accesscode"
	"github.com/pulsefit/fitgate/pkg/jwtx"
	"github.com/pulsefit/fitgate/pkg/slogx"
)

var (
	// ErrMalformedCode means the submitted string is not shaped like an
	// access code at all. Surfaced as "invalid code, please check and retry".
	ErrMalformedCode = errors.New("malformed access code")

	// ErrUnknownCode means the code parses but no persisted lead carries it.
	ErrUnknownCode = errors.New("unknown access code")
)

// LoginResult is a freshly minted dashboard session.
type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	Profile   domain.Profile
}

// LoginService exchanges access codes for short-lived session tokens.
type LoginService struct {
	Store  store.Store
	Signer *jwtx.EdDSASigner
	Issuer string
	TTL    time.Duration
}

// Login validates the access code shape, checks it is live (some persisted
// lead carries it), loads the owning profile, records the login and mints
// a session token carrying the tier.
func (s *LoginService) Login(ctx context.Context, code string) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Shape check. Never hits the store for garbage input.
	if _, err := accesscode.Parse(code); err != nil {
		log.Warn("login attempted with malformed access code")
		return LoginResult{}, ErrMalformedCode
	}

	// 2. A code is live iff some persisted lead carries it.
	if _, err := s.Store.Leads().GetLeadByAccessCode(ctx, code); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted with unknown access code")
			return LoginResult{}, ErrUnknownCode
		}
		log.Error("failed to look up lead for login", slog.Any("error", err))
		return LoginResult{}, err
	}

	// 3. Load the owning profile. A lead without a profile means the profile
	// slot was overwritten by a later onboarding; the old code is dead.
	profile, err := s.Store.Profiles().GetProfileByAccessCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login code has no live profile")
			return LoginResult{}, ErrUnknownCode
		}
		log.Error("failed to load profile for login", slog.Any("error", err))
		return LoginResult{}, err
	}

	// 4. Record the login. Non-fatal bookkeeping.
	if err := s.Store.Profiles().TouchLastLogin(ctx, profile.Email); err != nil {
		log.Error("failed to record login time", slog.Any("error", err))
	}

	// 5. Mint the session token.
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	claims := jwtx.NewSessionClaims(
		profile.Email,
		string(profile.Tier),
		profile.AccessCode,
		profile.Name,
		ttl,
		s.Issuer,
		time.Now().UTC(),
	)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return LoginResult{}, err
	}

	log.Info("member logged in",
		slog.String("tier", string(profile.Tier)),
		slog.String("email", profile.Email),
	)

	return LoginResult{
		Token:     token,
		ExpiresIn: ttl,
		Profile:   profile,
	}, nil
}
