package domain

import "time"

// Profile is the durable record of a completed onboarding. It is created
// exactly once per completion and owned by the store afterwards; services
// never hold a live reference past the hand-off.
type Profile struct {
	Name        string
	Email       string
	Tier        Tier
	AccessCode  string
	Goals       []string
	Activities  []string
	CreatedAt   time.Time
	LastLoginAt *time.Time // nil until first login
}
