// internal/reference/reference.go
// Immutable per-country reference data used by candidate discovery.
// Built once at process start and injected by reference; no writer
// exists after NewTable returns, so concurrent reads need no locking.

package reference

import "sort"

// SizeCategory is a coarse geographic size class used to pick
// sensible default search radii.
type SizeCategory string

const (
	SizeLarge  SizeCategory = "large"
	SizeMedium SizeCategory = "medium"
	SizeSmall  SizeCategory = "small"
)

// Country is one row of the reference table. EconomicTier runs from
// 1 (highest per-capita income) to 4 (lowest).
type Country struct {
	Code            string
	Name            string
	CulturalGroup   string
	PrimaryLanguage string
	EconomicTier    int
	Region          string
	Size            SizeCategory
}

// Table bundles the country table with the region-adjacency and
// cultural-affinity graphs.
type Table struct {
	countries        map[string]Country
	regionAdjacency  map[string][]string
	culturalAffinity map[string][]string
	byGroup          map[string][]string
	byTier           map[int][]string
}

// NewTable builds the process-wide reference table from the static
// data in countries.go.
func NewTable() *Table {
	t := &Table{
		countries:        make(map[string]Country, len(countryData)),
		regionAdjacency:  regionAdjacency,
		culturalAffinity: culturalAffinity,
		byGroup:          make(map[string][]string),
		byTier:           make(map[int][]string),
	}

	for _, c := range countryData {
		t.countries[c.Code] = c
		t.byGroup[c.CulturalGroup] = append(t.byGroup[c.CulturalGroup], c.Code)
		t.byTier[c.EconomicTier] = append(t.byTier[c.EconomicTier], c.Code)
	}

	// Deterministic iteration order for defaults generation.
	for _, codes := range t.byGroup {
		sort.Strings(codes)
	}
	for _, codes := range t.byTier {
		sort.Strings(codes)
	}

	return t
}

// Country looks up a country by ISO 3166-1 alpha-2 code.
func (t *Table) Country(code string) (Country, bool) {
	c, ok := t.countries[code]
	return c, ok
}

// AdjacentRegions returns the regions geographically adjacent to the
// given region. Unknown regions return nil.
func (t *Table) AdjacentRegions(region string) []string {
	return t.regionAdjacency[region]
}

// AffineGroups returns the cultural groups declared affine to the
// given group, not including the group itself.
func (t *Table) AffineGroups(group string) []string {
	return t.culturalAffinity[group]
}

// CountriesInGroup returns the codes of all countries in a cultural
// group, sorted for determinism.
func (t *Table) CountriesInGroup(group string) []string {
	return t.byGroup[group]
}

// CountriesNearTier returns codes of countries whose economic tier is
// within tolerance of tier, sorted for determinism.
func (t *Table) CountriesNearTier(tier, tolerance int) []string {
	var out []string
	for d := tier - tolerance; d <= tier+tolerance; d++ {
		out = append(out, t.byTier[d]...)
	}
	sort.Strings(out)
	return out
}

// DefaultSearchRadiusKm returns a country-size-aware default search
// radius. Unknown countries fall back to the small-country default.
func (t *Table) DefaultSearchRadiusKm(code string) float64 {
	c, ok := t.countries[code]
	if !ok {
		return 100
	}
	switch c.Size {
	case SizeLarge:
		return 500
	case SizeMedium:
		return 200
	default:
		return 100
	}
}

// TravelWillingnessKm returns the default travel willingness for an
// economic tier: users in wealthier countries default to a wider
// travel range.
func TravelWillingnessKm(tier int) float64 {
	switch tier {
	case 1:
		return 1000
	case 2:
		return 750
	case 3:
		return 500
	default:
		return 300
	}
}
