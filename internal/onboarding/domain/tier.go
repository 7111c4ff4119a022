package domain

// Tier is a membership level. Tiers form a total order: BEG < INT < ADV <
// PRO < VIP. Comparisons go through Rank rather than string compare.
type Tier string

const (
	TierBeginner     Tier = "BEG"
	TierIntermediate Tier = "INT"
	TierAdvanced     Tier = "ADV"
	TierProfessional Tier = "PRO"
	TierVIP          Tier = "VIP"
)

// Tiers lists all tiers in ascending rank order.
var Tiers = []Tier{
	TierBeginner,
	TierIntermediate,
	TierAdvanced,
	TierProfessional,
	TierVIP,
}

var tierRanks = map[Tier]int{
	TierBeginner:     1,
	TierIntermediate: 2,
	TierAdvanced:     3,
	TierProfessional: 4,
	TierVIP:          5,
}

var tierLabels = map[Tier]string{
	TierBeginner:     "Beginner",
	TierIntermediate: "Intermediate",
	TierAdvanced:     "Advanced",
	TierProfessional: "Professional",
	TierVIP:          "VIP",
}

// ParseTier validates a tier code string ("BEG".."VIP").
func ParseTier(s string) (Tier, bool) {
	t := Tier(s)
	_, ok := tierRanks[t]
	return t, ok
}

// Valid reports whether t is one of the five known tiers.
func (t Tier) Valid() bool {
	_, ok := tierRanks[t]
	return ok
}

// Rank returns the total-order rank 1..5, or 0 for unknown tiers.
func (t Tier) Rank() int { return tierRanks[t] }

// Label returns the UI-facing display name (e.g. "Beginner").
func (t Tier) Label() string {
	if l, ok := tierLabels[t]; ok {
		return l
	}
	return string(t)
}

// MeetsOrExceeds reports whether t satisfies a feature's required tier.
func (t Tier) MeetsOrExceeds(required Tier) bool {
	return t.Rank() >= required.Rank()
}
