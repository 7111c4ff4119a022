package domain

import "time"

// Lead is the marketing-facing projection of a completed onboarding.
// Leads are append-only: never mutated or deleted by the engine.
type Lead struct {
	ID         string // ULID
	Name       string
	Email      string
	Tier       Tier
	AccessCode string
	Source     string // acquisition channel, e.g. "onboarding-chat"

	// RawPreferences carries the full answer set as an opaque JSON blob
	// for the marketing side; the engine never reads it back.
	RawPreferences string

	CreatedAt time.Time
}
