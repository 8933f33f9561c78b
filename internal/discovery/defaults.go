// internal/discovery/defaults.go
// Defaults Generator: synthesizes a PreferenceProfile for users who
// never configured one. Generated profiles are served, not persisted.

package discovery

import (
	"github.com/amoradating/amora-backend/internal/reference"
)

const maxDefaultCountries = 8 // own country plus up to 7 neighbours

type DefaultsGenerator struct {
	ref *reference.Table
}

func NewDefaultsGenerator(ref *reference.Table) *DefaultsGenerator {
	return &DefaultsGenerator{ref: ref}
}

// Generate builds a profile from the user's own country. A country
// with no reference entry yields a minimal basic profile rather than
// an error.
func (g *DefaultsGenerator) Generate(userID int64, countryCode string, economicTier int) *PreferenceProfile {
	country, ok := g.ref.Country(countryCode)
	if !ok {
		return &PreferenceProfile{
			UserID:              userID,
			PreferredCountries:  []string{countryCode},
			Languages:           []string{"en"},
			MaxDistanceKm:       100,
			TravelWillingnessKm: reference.TravelWillingnessKm(economicTier),
			CountryWeights:      map[string]float64{countryCode: 1.0},
			TierTolerance:       1,
			PreferredTier:       economicTier,
			CulturalOpenness:    0.5,
			Confidence:          0.1,
			Generated:           true,
			Basic:               true,
		}
	}

	preferred := []string{country.Code}
	weights := map[string]float64{country.Code: 1.0}

	// Same cultural group first, then economic-tier neighbours, up to
	// seven additions. Both source lists are sorted, so the generated
	// profile is stable for a given reference table.
	for _, code := range g.ref.CountriesInGroup(country.CulturalGroup) {
		if len(preferred) >= maxDefaultCountries {
			break
		}
		if _, seen := weights[code]; seen {
			continue
		}
		preferred = append(preferred, code)
		weights[code] = 0.8
	}
	for _, code := range g.ref.CountriesNearTier(country.EconomicTier, 1) {
		if len(preferred) >= maxDefaultCountries {
			break
		}
		if _, seen := weights[code]; seen {
			continue
		}
		preferred = append(preferred, code)
		weights[code] = 0.8
	}

	regions := append([]string{country.Region}, g.ref.AdjacentRegions(country.Region)...)
	groups := append([]string{country.CulturalGroup}, g.ref.AffineGroups(country.CulturalGroup)...)

	languages := []string{country.PrimaryLanguage}
	if country.PrimaryLanguage != "en" {
		languages = append(languages, "en")
	}

	p := &PreferenceProfile{
		UserID:              userID,
		PreferredCountries:  preferred,
		PreferredRegions:    regions,
		CulturalGroups:      groups,
		Languages:           languages,
		PreferredTier:       country.EconomicTier,
		TierTolerance:       1,
		MaxDistanceKm:       g.ref.DefaultSearchRadiusKm(country.Code),
		TravelWillingnessKm: reference.TravelWillingnessKm(country.EconomicTier),
		CountryWeights:      weights,
		Confidence:          0.3,
		Generated:           true,
	}
	p.CulturalOpenness = deriveOpenness(p)

	return p
}

// deriveOpenness maps the breadth of a profile onto a 0..1 openness
// score. Low-openness users get regressed toward neutral in cultural
// scoring, so this deliberately rewards breadth, not specific picks.
func deriveOpenness(p *PreferenceProfile) float64 {
	openness := 0.3
	if p.International {
		openness += 0.2
	}
	if len(p.PreferredCountries) > 3 {
		openness += 0.15
	}
	if len(p.CulturalGroups) > 1 {
		openness += 0.15
	}
	if len(p.Languages) > 1 {
		openness += 0.1
	}
	if p.TierTolerance >= 2 {
		openness += 0.1
	}
	return clamp01(openness)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
