package store

import (
	"context"
	"errors"

	"github.com/pulsefit/fitgate/internal/onboarding/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers accidentally nesting transactions.
type Store interface {
	Profiles() Profiles
	Leads() Leads

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., writing the
	// profile and its lead record together). The caller MUST call Commit() or
	// Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Profiles interface {
	// SaveProfile upserts a profile keyed by email. Re-running onboarding
	// with the same email replaces the previous answers, tier and code.
	SaveProfile(ctx context.Context, p domain.Profile) error

	// GetProfileByEmail returns the profile for an email address.
	GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error)

	// GetProfileByAccessCode resolves a login code to its profile.
	GetProfileByAccessCode(ctx context.Context, code string) (domain.Profile, error)

	// TouchLastLogin records a successful login for the profile.
	TouchLastLogin(ctx context.Context, email string) error
}

type Leads interface {
	// CreateLead appends a row to the marketing ledger. Returns
	// ErrAlreadyExists when the access code collides with an earlier lead.
	CreateLead(ctx context.Context, l domain.Lead) error

	// ListLeads returns all leads ordered by creation date (newest first).
	ListLeads(ctx context.Context) ([]domain.Lead, error)

	// GetLeadByAccessCode fetches the lead that minted a given code.
	GetLeadByAccessCode(ctx context.Context, code string) (domain.Lead, error)
}
