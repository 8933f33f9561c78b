package discovery

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoradating/amora-backend/internal/reference"
)

func newTestScorer(seed int64) *Scorer {
	return NewScorer(reference.NewTable(), DefaultScoringWeights(), rand.New(rand.NewSource(seed)))
}

func berlinContext(maxDistanceKm float64) *ScoringContext {
	region := "Western Europe"
	city := "Berlin"
	return &ScoringContext{
		Requester: activeUser(1, "DE", 1),
		Location: &UserLocation{
			UserID:          1,
			FuzzedLatitude:  52.52,
			FuzzedLongitude: 13.405,
			CountryCode:     "DE",
			Region:          &region,
			City:            &city,
		},
		Prefs: &PreferenceProfile{
			UserID:              1,
			PreferredCountries:  []string{"DE"},
			CountryWeights:      map[string]float64{"DE": 1.0},
			PreferredTier:       1,
			TierTolerance:       1,
			MaxDistanceKm:       maxDistanceKm,
			TravelWillingnessKm: 1000,
			CulturalOpenness:    1.0,
			CulturalGroups:      []string{reference.GroupWesternEuropean},
			Languages:           []string{"de", "en"},
		},
		EffectiveRadiusKm: maxDistanceKm,
	}
}

func nearbyCandidate(id int64, country string, distanceKm float64) *Candidate {
	d := distanceKm
	return &Candidate{
		UserID:       id,
		CountryCode:  country,
		EconomicTier: 1,
		DistanceKm:   &d,
	}
}

func TestScoreSameCountryCloseCandidate(t *testing.T) {
	// Recompute the jitter the scorer will draw so the base score can
	// be asserted exactly.
	seed := int64(5)
	expectedJitter := rand.New(rand.NewSource(seed)).Float64() * 0.10

	scorer := newTestScorer(seed)
	sc := berlinContext(50)

	got := scorer.Score(nearbyCandidate(2, "DE", 10), sc)

	// 0.45 base + jitter + 0.20 same country + 0.10 tier match
	// + 0.20 distance fit (10km <= 50/4).
	expectedBase := clamp01(0.45 + expectedJitter + 0.20 + 0.10 + 0.20)
	assert.InDelta(t, expectedBase, got.BaseScore, 1e-9)

	assert.True(t, got.Flags.SameCountry)
	assert.True(t, got.Flags.CountryPreferred)
	assert.True(t, got.Flags.WithinDistancePreference)
	assert.Equal(t, 1.0, got.DistanceFitScore)
}

func TestScoreDistanceFitBands(t *testing.T) {
	scorer := newTestScorer(1)
	sc := berlinContext(100)

	quarter := scorer.Score(nearbyCandidate(2, "FR", 20), sc)  // <= r/4: +0.20
	half := scorer.Score(nearbyCandidate(3, "FR", 45), sc)     // <= r/2: +0.10
	inside := scorer.Score(nearbyCandidate(4, "FR", 90), sc)   // <= r: +0.00
	outside := scorer.Score(nearbyCandidate(5, "FR", 150), sc) // > r: -0.10

	// Each band step is 0.10 and the jitter spread stays below 0.10,
	// so the ordering is strict even across different jitter draws.
	assert.Greater(t, quarter.BaseScore, half.BaseScore)
	assert.Greater(t, half.BaseScore, inside.BaseScore)
	assert.Greater(t, inside.BaseScore, outside.BaseScore)
}

func TestScoreUnknownCountryIsNeutral(t *testing.T) {
	scorer := newTestScorer(1)
	sc := berlinContext(50)

	got := scorer.Score(nearbyCandidate(2, "XX", 10), sc)

	assert.Equal(t, 0.5, got.CulturalScore)
	assert.False(t, got.Flags.CulturallyCompatible)
}

func TestScoreCulturalOpennessBlending(t *testing.T) {
	scorer := newTestScorer(1)

	open := berlinContext(50)
	open.Prefs.CulturalOpenness = 1.0

	closed := berlinContext(50)
	closed.Prefs.CulturalOpenness = 0.0

	// DE candidate: group and language both match, raw compat = 1.0.
	openScore := scorer.Score(nearbyCandidate(2, "DE", 10), open)
	closedScore := scorer.Score(nearbyCandidate(2, "DE", 10), closed)

	assert.Equal(t, 1.0, openScore.CulturalScore)
	// Zero openness regresses fully to neutral.
	assert.Equal(t, 0.5, closedScore.CulturalScore)
}

func TestScoreExcludedCountryPenalty(t *testing.T) {
	scorer := newTestScorer(1)
	sc := berlinContext(50)
	sc.Prefs.ExcludedCountries = []string{"FR"}

	got := scorer.Score(nearbyCandidate(2, "FR", 10), sc)

	// The -0.4 penalty floors at 0 after clamping; region/tier terms
	// could lift it, but FR is neither preferred nor region-preferred
	// here and the tier bonus alone cannot exceed the penalty.
	assert.Equal(t, 0.0, got.PreferenceScore)
	assert.False(t, got.Flags.CountryPreferred)
}

func TestScoreDistancePreferenceDecay(t *testing.T) {
	scorer := newTestScorer(1)
	sc := berlinContext(100)
	sc.Prefs.MaxDistanceKm = 100
	sc.Prefs.TravelWillingnessKm = 500
	sc.EffectiveRadiusKm = 1000

	within := scorer.Score(nearbyCandidate(2, "DE", 50), sc)
	midway := scorer.Score(nearbyCandidate(3, "DE", 300), sc)
	beyond := scorer.Score(nearbyCandidate(4, "DE", 900), sc)

	assert.Equal(t, 1.0, within.DistanceFitScore)
	assert.InDelta(t, 0.6, midway.DistanceFitScore, 1e-9) // halfway through the band
	assert.Equal(t, 0.2, beyond.DistanceFitScore)
}

func TestScoreMissingDistanceIsNeutral(t *testing.T) {
	scorer := newTestScorer(1)
	sc := berlinContext(50)
	sc.Location = nil
	sc.EffectiveRadiusKm = 0

	got := scorer.Score(&Candidate{UserID: 2, CountryCode: "DE", EconomicTier: 1}, sc)

	assert.Nil(t, got.DistanceKm)
	assert.Equal(t, 0.5, got.DistanceFitScore)
	assert.False(t, got.Flags.WithinDistancePreference)
}

func TestScoreAllComponentsStayInRange(t *testing.T) {
	scorer := newTestScorer(123)
	rng := rand.New(rand.NewSource(321))

	countries := []string{"DE", "FR", "US", "JP", "NG", "XX", "BR", "IN"}
	for i := 0; i < 500; i++ {
		sc := berlinContext(rng.Float64() * 1000)
		sc.Prefs.CulturalOpenness = rng.Float64()
		sc.Prefs.TierTolerance = rng.Intn(4)

		c := nearbyCandidate(int64(i+2), countries[rng.Intn(len(countries))], rng.Float64()*2000)
		c.EconomicTier = rng.Intn(4) + 1

		got := scorer.Score(c, sc)

		for name, v := range map[string]float64{
			"base":         got.BaseScore,
			"preference":   got.PreferenceScore,
			"cultural":     got.CulturalScore,
			"distance_fit": got.DistanceFitScore,
			"final":        got.FinalScore,
		} {
			require.GreaterOrEqual(t, v, 0.0, "%s below 0", name)
			require.LessOrEqual(t, v, 1.0, "%s above 1", name)
		}
	}
}

func TestScoreDistanceRoundedForPresentation(t *testing.T) {
	scorer := newTestScorer(1)
	sc := berlinContext(100)

	got := scorer.Score(nearbyCandidate(2, "DE", 12.34567), sc)

	require.NotNil(t, got.DistanceKm)
	assert.Equal(t, 12.35, *got.DistanceKm)
}
