package httpx

import (
	"context"

	"github.com/pulsefit/fitgate/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyEmail  ctxKey = "email"
	CtxKeyTier   ctxKey = "tier"
	CtxKeyClaims ctxKey = "claims"
)

// TierFromContext returns the tier code the authenticated session carries.
func TierFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyTier).(string)
	return v, ok
}

// EmailFromContext returns the authenticated member's email.
func EmailFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyEmail).(string)
	return v, ok
}

// ClaimsFromContext returns the full session claims if present.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	v, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return v, ok
}
