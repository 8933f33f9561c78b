package discovery

import (
	"time"
)

// PrivacyLevel is the granularity at which a user's position may be
// revealed for matching; it drives the coordinate fuzzing radius.
type PrivacyLevel string

const (
	PrivacyExact        PrivacyLevel = "exact"
	PrivacyNeighborhood PrivacyLevel = "neighborhood"
	PrivacyCity         PrivacyLevel = "city"
	PrivacyRegion       PrivacyLevel = "region"
	PrivacyCountry      PrivacyLevel = "country"
)

// Valid reports whether p is one of the supported privacy levels.
func (p PrivacyLevel) Valid() bool {
	switch p {
	case PrivacyExact, PrivacyNeighborhood, PrivacyCity, PrivacyRegion, PrivacyCountry:
		return true
	}
	return false
}

// FuzzRadiusMeters returns the fuzzing radius for the level. These
// are fixed privacy constants, deliberately not configuration.
func (p PrivacyLevel) FuzzRadiusMeters() float64 {
	switch p {
	case PrivacyExact:
		return 0
	case PrivacyNeighborhood:
		return 500
	case PrivacyCity:
		return 1000
	case PrivacyRegion:
		return 5000
	case PrivacyCountry:
		return 50000
	}
	return 0
}

// MatchMode distinguishes a normal geolocated result from the
// degraded country-only fallback used when the requester has no
// stored location. Callers branch on this, not on absent fields.
type MatchMode string

const (
	MatchModeGeolocated  MatchMode = "geolocated"
	MatchModeCountryOnly MatchMode = "fallback_country_only"
)

// UserLocation holds a user's true and fuzzed coordinates. The true
// pair never leaves this process: it is not serialized and nothing in
// retrieval or scoring reads it. Invariant: the fuzzed point lies
// within FuzzRadiusM of the true point; for PrivacyExact the two are
// identical and FuzzRadiusM is 0.
type UserLocation struct {
	UserID         int64        `json:"user_id" db:"user_id"`
	TrueLatitude   float64      `json:"-" db:"true_latitude"`
	TrueLongitude  float64      `json:"-" db:"true_longitude"`
	FuzzedLatitude float64      `json:"latitude" db:"fuzzed_latitude"`
	FuzzedLongitude float64     `json:"longitude" db:"fuzzed_longitude"`
	PrivacyLevel   PrivacyLevel `json:"privacy_level" db:"privacy_level"`
	FuzzRadiusM    float64      `json:"fuzz_radius_m" db:"fuzz_radius_m"`
	SearchRadiusKm float64      `json:"search_radius_km" db:"search_radius_km"`
	CountryCode    string       `json:"country_code" db:"country_code"`
	Region         *string      `json:"region,omitempty" db:"region"`
	City           *string      `json:"city,omitempty" db:"city"`
	Source         string       `json:"source" db:"source"`
	UpdatedAt      time.Time    `json:"updated_at" db:"updated_at"`
}

// PreferenceProfile is a user's matching preferences, explicit or
// synthesized. Generated profiles are returned to callers but never
// persisted unless the user saves them.
type PreferenceProfile struct {
	UserID              int64              `json:"user_id"`
	PreferredCountries  []string           `json:"preferred_countries"`
	ExcludedCountries   []string           `json:"excluded_countries"`
	PreferredRegions    []string           `json:"preferred_regions"`
	ExcludedRegions     []string           `json:"excluded_regions"`
	PreferredCities     []string           `json:"preferred_cities"`
	CulturalGroups      []string           `json:"cultural_groups"`
	Languages           []string           `json:"languages"`
	International       bool               `json:"international"`
	PreferredTier       int                `json:"preferred_tier"`
	TierTolerance       int                `json:"tier_tolerance"`
	MaxDistanceKm       float64            `json:"max_distance_km"`
	TravelWillingnessKm float64            `json:"travel_willingness_km"`
	CountryWeights      map[string]float64 `json:"country_weights"`
	CulturalOpenness    float64            `json:"cultural_openness"`
	Confidence          float64            `json:"confidence"`
	Generated           bool               `json:"generated_defaults"`
	Basic               bool               `json:"basic_defaults"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// PrefersCountry returns the weight for a candidate country, if any.
func (p *PreferenceProfile) PrefersCountry(code string) (float64, bool) {
	w, ok := p.CountryWeights[code]
	return w, ok
}

// ExcludesCountry reports whether the country is explicitly excluded.
func (p *PreferenceProfile) ExcludesCountry(code string) bool {
	for _, c := range p.ExcludedCountries {
		if c == code {
			return true
		}
	}
	return false
}

// PrefersRegion reports whether the region is explicitly preferred.
func (p *PreferenceProfile) PrefersRegion(region string) bool {
	for _, r := range p.PreferredRegions {
		if r == region {
			return true
		}
	}
	return false
}

// User is the slice of the external User Directory this engine
// consumes.
type User struct {
	ID           int64     `json:"id" db:"id"`
	CountryCode  string    `json:"country_code" db:"country_code"`
	EconomicTier int       `json:"economic_tier" db:"economic_tier"`
	BirthDate    time.Time `json:"birth_date" db:"birth_date"`
	Active       bool      `json:"active" db:"active"`
	Banned       bool      `json:"banned" db:"banned"`
}

// Candidate is a raw retrieval result before scoring. Latitude and
// Longitude, when present, are always the candidate's fuzzed pair.
type Candidate struct {
	UserID       int64
	CountryCode  string
	Region       *string
	City         *string
	EconomicTier int
	Latitude     *float64
	Longitude    *float64
	DistanceKm   *float64
}

// MatchFlags are explainability annotations on a scored candidate.
// They are for callers and debugging; scoring never reads them back.
type MatchFlags struct {
	SameCountry              bool `json:"same_country"`
	CountryPreferred         bool `json:"country_preferred"`
	RegionPreferred          bool `json:"region_preferred"`
	CulturallyCompatible     bool `json:"culturally_compatible"`
	WithinDistancePreference bool `json:"within_distance_preference"`
}

// ScoredCandidate is the transient per-request scoring result. It is
// never persisted. DistanceKm is nil for fallback-mode candidates.
type ScoredCandidate struct {
	UserID           int64      `json:"user_id"`
	CountryCode      string     `json:"country_code"`
	DistanceKm       *float64   `json:"distance_km,omitempty"`
	BaseScore        float64    `json:"base_score"`
	PreferenceScore  float64    `json:"preference_score"`
	CulturalScore    float64    `json:"cultural_score"`
	DistanceFitScore float64    `json:"distance_fit_score"`
	FinalScore       float64    `json:"final_score"`
	Flags            MatchFlags `json:"flags"`
}

// DiscoveryResult is the ranked output of FindCandidates. Mode and
// FallbackMatch let callers tell "no matches under strict filters"
// apart from "degraded matching was used".
type DiscoveryResult struct {
	Mode          MatchMode          `json:"mode"`
	FallbackMatch bool               `json:"fallback_match"`
	Candidates    []*ScoredCandidate `json:"candidates"`
}
