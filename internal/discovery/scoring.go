// internal/discovery/scoring.go
// Compatibility Scorer: blends base similarity, distance fit,
// explicit preferences and cultural alignment into one final score.
// Pure per-candidate computation; safe to fan out across workers.

package discovery

import (
	"math/rand"
	"sync"

	"github.com/amoradating/amora-backend/internal/geo"
	"github.com/amoradating/amora-backend/internal/reference"
)

// ScoringWeights are the blend weights of the final score. They are
// configuration carried for behavioral parity with the original
// ranking, not algorithmically derived constants.
type ScoringWeights struct {
	Base        float64
	Preference  float64
	Cultural    float64
	DistanceFit float64
}

func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{Base: 0.4, Preference: 0.3, Cultural: 0.2, DistanceFit: 0.1}
}

// ScoringContext is everything about the requester a single scoring
// call needs. Location is nil in fallback mode.
type ScoringContext struct {
	Requester         *User
	Location          *UserLocation
	Prefs             *PreferenceProfile
	EffectiveRadiusKm float64
}

type Scorer struct {
	ref     *reference.Table
	weights ScoringWeights

	// Jitter keeps repeated calls from freezing ties in place. The
	// rand source is injected so tests can seed it.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewScorer(ref *reference.Table, weights ScoringWeights, rng *rand.Rand) *Scorer {
	return &Scorer{ref: ref, weights: weights, rng: rng}
}

// Score computes a ScoredCandidate. Missing reference data for the
// candidate's country degrades cultural and economic terms to
// neutral; it never errors.
func (s *Scorer) Score(c *Candidate, sc *ScoringContext) *ScoredCandidate {
	candRef, candKnown := s.ref.Country(c.CountryCode)

	out := &ScoredCandidate{
		UserID:      c.UserID,
		CountryCode: c.CountryCode,
	}
	if c.DistanceKm != nil {
		// Presentation copy; the fit terms below keep full precision.
		rounded := geo.RoundKm(*c.DistanceKm)
		out.DistanceKm = &rounded
	}

	out.BaseScore = s.baseScore(c, sc, candKnown, out)
	out.PreferenceScore = s.preferenceScore(c, sc, candRef, candKnown, out)
	out.CulturalScore = s.culturalScore(sc, candRef, candKnown, out)
	out.DistanceFitScore = distancePreferenceFit(c.DistanceKm, sc.Prefs, out)

	w := s.weights
	out.FinalScore = clamp01(
		w.Base*out.BaseScore +
			w.Preference*out.PreferenceScore +
			w.Cultural*out.CulturalScore +
			w.DistanceFit*out.DistanceFitScore,
	)

	return out
}

func (s *Scorer) baseScore(c *Candidate, sc *ScoringContext, candKnown bool, out *ScoredCandidate) float64 {
	base := 0.45 + s.jitter()

	if c.CountryCode == sc.Requester.CountryCode {
		base += 0.20
		out.Flags.SameCountry = true
	}

	if sc.Location != nil {
		if sameLabel(c.Region, sc.Location.Region) {
			base += 0.10
		}
		if sameLabel(c.City, sc.Location.City) {
			base += 0.15
		}
	}

	// Economic term is neutral (skipped) when the candidate's country
	// has no reference entry.
	if candKnown && abs(c.EconomicTier-sc.Requester.EconomicTier) <= 1 {
		base += 0.10
	}

	// Distance-fit adjustment layered onto base; fallback candidates
	// without a distance get no adjustment either way.
	if c.DistanceKm != nil && sc.EffectiveRadiusKm > 0 {
		d := *c.DistanceKm
		r := sc.EffectiveRadiusKm
		switch {
		case d <= r/4:
			base += 0.20
		case d <= r/2:
			base += 0.10
		case d <= r:
			// no adjustment
		default:
			base -= 0.10
		}
	}

	return clamp01(base)
}

func (s *Scorer) preferenceScore(c *Candidate, sc *ScoringContext, candRef reference.Country, candKnown bool, out *ScoredCandidate) float64 {
	prefs := sc.Prefs
	score := 0.0

	if prefs.ExcludesCountry(c.CountryCode) {
		score -= 0.4
	} else if w, ok := prefs.PrefersCountry(c.CountryCode); ok && w > 0 {
		score += 0.3 * w
		out.Flags.CountryPreferred = true
	}

	region := candidateRegion(c, candRef, candKnown)
	if region != "" && prefs.PrefersRegion(region) {
		score += 0.2
		out.Flags.RegionPreferred = true
	}

	if candKnown && prefs.TierTolerance >= 0 {
		diff := abs(c.EconomicTier - prefs.PreferredTier)
		if diff <= prefs.TierTolerance {
			// Linear decay across the tolerance band: a perfect tier
			// match earns the full 0.15.
			score += 0.15 * (1 - float64(diff)/float64(prefs.TierTolerance+1))
		}
	}

	return clamp01(score)
}

func (s *Scorer) culturalScore(sc *ScoringContext, candRef reference.Country, candKnown bool, out *ScoredCandidate) float64 {
	if !candKnown {
		return 0.5
	}

	compat := 0.5
	if contains(sc.Prefs.CulturalGroups, candRef.CulturalGroup) {
		compat += 0.3
		out.Flags.CulturallyCompatible = true
	}
	if contains(sc.Prefs.Languages, candRef.PrimaryLanguage) {
		compat += 0.2
	}
	compat = clamp01(compat)

	// Low-openness users regress toward neutral no matter how
	// compatible the candidate looks on paper.
	openness := clamp01(sc.Prefs.CulturalOpenness)
	return clamp01(compat*openness + 0.5*(1-openness))
}

// distancePreferenceFit is 1.0 inside the user's max-distance
// preference, decays linearly to the 0.2 floor across the band up to
// their travel willingness, and is neutral when no distance exists.
func distancePreferenceFit(distanceKm *float64, prefs *PreferenceProfile, out *ScoredCandidate) float64 {
	if distanceKm == nil {
		return 0.5
	}

	d := *distanceKm
	maxD := prefs.MaxDistanceKm
	travel := prefs.TravelWillingnessKm

	if maxD > 0 && d <= maxD {
		out.Flags.WithinDistancePreference = true
		return 1.0
	}
	if travel > maxD && d <= travel {
		frac := (d - maxD) / (travel - maxD)
		return 1.0 - 0.8*frac
	}
	return 0.2
}

func (s *Scorer) jitter() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() * 0.10
}

func candidateRegion(c *Candidate, candRef reference.Country, candKnown bool) string {
	if candKnown {
		return candRef.Region
	}
	if c.Region != nil {
		return *c.Region
	}
	return ""
}

func sameLabel(a, b *string) bool {
	return a != nil && b != nil && *a != "" && *a == *b
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
