package httpx

import (
	"net/http"

	"github.com/pulsefit/fitgate/pkg/cryptox"
	"github.com/pulsefit/fitgate/pkg/slogx"
)

// RequireAdminKey guards the marketing/admin surface. The caller presents
// the raw key via X-Admin-Key; the service only holds the argon2id hash.
// An empty configured hash disables the surface entirely.
func RequireAdminKey(adminKeyHash string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			if adminKeyHash == "" {
				http.NotFound(w, r)
				return
			}

			key := r.Header.Get("X-Admin-Key")
			if key == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if err := cryptox.VerifySecret(key, adminKeyHash); err != nil {
				log.Warn("admin key rejected", "err", err)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
