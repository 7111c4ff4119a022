package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	t.Parallel()

	for _, tier := range Tiers {
		parsed, ok := ParseTier(string(tier))
		require.True(t, ok)
		require.Equal(t, tier, parsed)
		require.True(t, parsed.Valid())
	}

	for _, bad := range []string{"", "beg", "GOLD", "VIP "} {
		_, ok := ParseTier(bad)
		require.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestTierRankOrdering(t *testing.T) {
	t.Parallel()

	for i := 1; i < len(Tiers); i++ {
		require.Greater(t, Tiers[i].Rank(), Tiers[i-1].Rank())
	}
	require.Equal(t, 0, Tier("GOLD").Rank())
}

func TestMeetsOrExceeds(t *testing.T) {
	t.Parallel()

	require.True(t, TierVIP.MeetsOrExceeds(TierBeginner))
	require.True(t, TierAdvanced.MeetsOrExceeds(TierAdvanced))
	require.False(t, TierBeginner.MeetsOrExceeds(TierIntermediate))
	require.False(t, TierProfessional.MeetsOrExceeds(TierVIP))
}

func TestTierLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Beginner", TierBeginner.Label())
	require.Equal(t, "VIP", TierVIP.Label())

	// Unknown tiers fall back to the raw code.
	require.Equal(t, "GOLD", Tier("GOLD").Label())
}
