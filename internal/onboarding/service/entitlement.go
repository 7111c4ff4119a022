package service

import (
	"github.com/pulsefit/fitgate/internal/onboarding/catalog"
	"github.com/pulsefit/fitgate/internal/onboarding/domain"
)

// EntitlementService answers tier -> feature access questions against the
// static catalog. Pure lookups; the superset invariant is enforced when
// the catalog loads, so nothing here re-validates it.
type EntitlementService struct {
	Catalog *catalog.Catalog
}

// Unlocked returns the feature ids the tier grants, in grant-list order.
func (s *EntitlementService) Unlocked(tier domain.Tier) []string {
	grants := s.Catalog.Grants[tier]
	out := make([]string, len(grants))
	copy(out, grants)
	return out
}

// Locked returns the complement of Unlocked against the full feature
// catalog, in stable catalog order.
func (s *EntitlementService) Locked(tier domain.Tier) []string {
	unlocked := make(map[string]struct{})
	for _, id := range s.Catalog.Grants[tier] {
		unlocked[id] = struct{}{}
	}

	var out []string
	for _, f := range s.Catalog.Features {
		if _, ok := unlocked[f.ID]; !ok {
			out = append(out, f.ID)
		}
	}
	return out
}

// IsUnlocked tests a single feature. Unknown feature ids return false:
// unknown features are never shown as unlocked.
func (s *EntitlementService) IsUnlocked(tier domain.Tier, featureID string) bool {
	for _, id := range s.Catalog.Grants[tier] {
		if id == featureID {
			return true
		}
	}
	return false
}

// Rank returns the tier's total-order rank 1..5 (0 for unknown tiers).
func (s *EntitlementService) Rank(tier domain.Tier) int {
	return tier.Rank()
}
