package service

import (
	"errors"
	"sync"
	"time"

	"github.com/pulsefit/fitgate/internal/onboarding/domain"
	"github.com/pulsefit/fitgate/pkg/cryptox"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRegistry holds in-progress onboarding sessions in memory, keyed by
// opaque random handles. Sessions are never persisted: an abandoned flow is
// garbage and housekeeping reaps it. All access goes through WithSession so
// the per-registry lock covers the whole read-modify-write of a request.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*domain.OnboardingSession
	now      func() time.Time
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*domain.OnboardingSession),
		now:      time.Now,
	}
}

// Start creates a fresh session and returns its opaque handle.
func (r *SessionRegistry) Start() (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = domain.NewOnboardingSession(r.now().UTC())
	return token, nil
}

// WithSession runs fn with the session for token under the registry lock.
// Returns ErrSessionNotFound for unknown or already-removed handles.
func (r *SessionRegistry) WithSession(token string, fn func(*domain.OnboardingSession) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(sess)
}

// Remove discards a session, typically after completion.
func (r *SessionRegistry) Remove(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

// Count returns the number of live sessions.
func (r *SessionRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// PurgeIdle removes sessions that have not been touched within maxIdle and
// returns how many were reaped.
func (r *SessionRegistry) PurgeIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().UTC().Add(-maxIdle)
	var purged int
	for token, sess := range r.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(r.sessions, token)
			purged++
		}
	}
	return purged
}
