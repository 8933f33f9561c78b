// internal/discovery/dto.go
package discovery

// DTOs for the discovery API boundary.

type UpdateLocationDTO struct {
	Latitude       float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64 `json:"longitude" validate:"min=-180,max=180"`
	CountryCode    string  `json:"country_code" validate:"required,len=2,alpha"`
	PrivacyLevel   string  `json:"privacy_level" validate:"required,oneof=exact neighborhood city region country"`
	SearchRadiusKm float64 `json:"search_radius_km" validate:"omitempty,min=1,max=50000"`
	Region         string  `json:"region,omitempty" validate:"omitempty,max=100"`
	City           string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Source         string  `json:"source,omitempty" validate:"omitempty,oneof=gps ip manual"`
}

type UpdatePreferencesDTO struct {
	PreferredCountries  []string           `json:"preferred_countries" validate:"omitempty,max=50,dive,len=2,alpha"`
	ExcludedCountries   []string           `json:"excluded_countries" validate:"omitempty,max=50,dive,len=2,alpha"`
	PreferredRegions    []string           `json:"preferred_regions" validate:"omitempty,max=20,dive,max=50"`
	ExcludedRegions     []string           `json:"excluded_regions" validate:"omitempty,max=20,dive,max=50"`
	PreferredCities     []string           `json:"preferred_cities" validate:"omitempty,max=20,dive,max=100"`
	CulturalGroups      []string           `json:"cultural_groups" validate:"omitempty,max=20,dive,max=50"`
	Languages           []string           `json:"languages" validate:"omitempty,max=10,dive,min=2,max=5"`
	International       bool               `json:"international"`
	PreferredTier       int                `json:"preferred_tier" validate:"omitempty,min=1,max=4"`
	TierTolerance       int                `json:"tier_tolerance" validate:"min=0,max=3"`
	MaxDistanceKm       float64            `json:"max_distance_km" validate:"omitempty,min=1,max=50000"`
	TravelWillingnessKm float64            `json:"travel_willingness_km" validate:"omitempty,min=0,max=50000"`
	CountryWeights      map[string]float64 `json:"country_weights" validate:"omitempty,max=50,dive,min=0,max=1"`
}

// FindCandidatesParams narrows a discovery request. Zero values mean
// "use the requester's own settings or the country-size default".
type FindCandidatesParams struct {
	Limit                int      `json:"limit" validate:"omitempty,min=1,max=100"`
	MaxDistanceKm        float64  `json:"max_distance_km" validate:"omitempty,min=1,max=50000"`
	PreferredCountries   []string `json:"preferred_countries" validate:"omitempty,max=50,dive,len=2,alpha"`
	IncludeInternational bool     `json:"include_international"`
}
