package reference

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryLookup(t *testing.T) {
	table := NewTable()

	de, ok := table.Country("DE")
	require.True(t, ok)
	assert.Equal(t, "Germany", de.Name)
	assert.Equal(t, GroupWesternEuropean, de.CulturalGroup)
	assert.Equal(t, "de", de.PrimaryLanguage)
	assert.Equal(t, 1, de.EconomicTier)
	assert.Equal(t, "Western Europe", de.Region)

	_, ok = table.Country("XX")
	assert.False(t, ok)
}

func TestDefaultSearchRadius(t *testing.T) {
	table := NewTable()

	assert.Equal(t, 500.0, table.DefaultSearchRadiusKm("US"))
	assert.Equal(t, 200.0, table.DefaultSearchRadiusKm("DE"))
	assert.Equal(t, 100.0, table.DefaultSearchRadiusKm("DK"))
	assert.Equal(t, 100.0, table.DefaultSearchRadiusKm("XX"))
}

func TestTravelWillingness(t *testing.T) {
	assert.Equal(t, 1000.0, TravelWillingnessKm(1))
	assert.Equal(t, 750.0, TravelWillingnessKm(2))
	assert.Equal(t, 500.0, TravelWillingnessKm(3))
	assert.Equal(t, 300.0, TravelWillingnessKm(4))
	assert.Equal(t, 300.0, TravelWillingnessKm(0))
}

func TestCountriesInGroupSorted(t *testing.T) {
	table := NewTable()

	nordic := table.CountriesInGroup(GroupNordic)
	assert.True(t, sort.StringsAreSorted(nordic))
	assert.Contains(t, nordic, "SE")
	assert.Contains(t, nordic, "NO")
	assert.Contains(t, nordic, "IS")

	assert.Empty(t, table.CountriesInGroup("Martian"))
}

func TestCountriesNearTier(t *testing.T) {
	table := NewTable()

	near := table.CountriesNearTier(1, 1)
	assert.True(t, sort.StringsAreSorted(near))
	assert.Contains(t, near, "DE") // tier 1
	assert.Contains(t, near, "PL") // tier 2
	assert.NotContains(t, near, "IN") // tier 3
}

func TestRegionAdjacencyIsSymmetric(t *testing.T) {
	table := NewTable()

	for region, neighbours := range regionAdjacency {
		for _, n := range neighbours {
			assert.Contains(t, table.AdjacentRegions(n), region,
				"%s lists %s but not vice versa", region, n)
		}
	}
}

func TestAffineGroups(t *testing.T) {
	table := NewTable()

	assert.Contains(t, table.AffineGroups(GroupNordic), GroupWesternEuropean)
	assert.NotContains(t, table.AffineGroups(GroupNordic), GroupNordic)
	assert.Empty(t, table.AffineGroups("Martian"))
}

func TestEveryCountryHasKnownRegionAndGroup(t *testing.T) {
	for _, c := range countryData {
		_, hasRegion := regionAdjacency[c.Region]
		assert.True(t, hasRegion, "country %s has unknown region %q", c.Code, c.Region)

		_, hasGroup := culturalAffinity[c.CulturalGroup]
		assert.True(t, hasGroup, "country %s has unknown group %q", c.Code, c.CulturalGroup)

		assert.GreaterOrEqual(t, c.EconomicTier, 1)
		assert.LessOrEqual(t, c.EconomicTier, 4)
		assert.Len(t, c.Code, 2)
	}
}
