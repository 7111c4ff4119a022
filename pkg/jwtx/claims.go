package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for dashboard session tokens.
// Short-lived on purpose: the access code is the durable credential and
// re-login is cheap.
const DefaultSessionTTL = 1 * time.Hour

// Claims are the session-token claims shared between the onboarding
// service and its consumers. Keep changes additive to preserve
// compatibility for deployed dashboards.
type Claims struct {
	jwt.RegisteredClaims

	// Tier is the member's tier code ("BEG".."VIP"). Entitlement checks
	// key off this.
	Tier string `json:"tier,omitempty"`

	// AccessCode is the FIT-XXX-NNNN credential the session was opened with.
	AccessCode string `json:"access_code,omitempty"`

	// Name is the member's display name.
	Name string `json:"name,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a dashboard session.
// The subject is the member's email.
func NewSessionClaims(
	subject, tier, accessCode, name string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Tier:       tier,
		AccessCode: accessCode,
		Name:       name,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry checks exp/nbf against the current time.
func (c *Claims) ValidateExpiry() error {
	now := time.Now()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
