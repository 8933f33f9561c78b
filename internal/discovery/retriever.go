// internal/discovery/retriever.go
// Candidate Retriever: pulls the eligible candidate set for a
// requester, computing distances from fuzzed coordinates, or falling
// back to country-only matching when the requester has no location.

package discovery

import (
	"context"
	"math/rand"
	"sync"

	"github.com/amoradating/amora-backend/internal/geo"
	"github.com/amoradating/amora-backend/internal/reference"
)

// retrievalScanLimit bounds the eligibility scan before the distance
// filter; the ranker trims much further.
const retrievalScanLimit = 500

// RetrievalResult carries the raw candidate set plus the match mode
// and the radius that was actually applied.
type RetrievalResult struct {
	Candidates        []*Candidate
	Mode              MatchMode
	EffectiveRadiusKm float64
}

type Retriever struct {
	repo         Repository
	interactions InteractionLog
	ref          *reference.Table

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRetriever builds a retriever. interactions is typically the
// Redis-fronted cache; rng drives the fallback-mode tie-break only.
func NewRetriever(repo Repository, interactions InteractionLog, ref *reference.Table, rng *rand.Rand) *Retriever {
	return &Retriever{repo: repo, interactions: interactions, ref: ref, rng: rng}
}

// Retrieve returns eligible candidates for the requester. loc may be
// nil, which switches to fallback country-only mode. The requester,
// inactive/banned users and anyone in the interaction log never
// appear in the result.
func (r *Retriever) Retrieve(ctx context.Context, requester *User, loc *UserLocation, params *FindCandidatesParams) (*RetrievalResult, error) {
	interacted, err := r.interactions.GetInteractedUserIDs(ctx, requester.ID)
	if err != nil {
		return nil, err
	}

	exclude := make([]int64, 0, len(interacted)+1)
	exclude = append(exclude, requester.ID)
	for id := range interacted {
		exclude = append(exclude, id)
	}

	var countries []string
	switch {
	case len(params.PreferredCountries) > 0:
		countries = params.PreferredCountries
	case !params.IncludeInternational:
		countries = []string{requester.CountryCode}
	}

	if loc == nil {
		return r.retrieveFallback(ctx, requester, exclude, countries)
	}

	radius := params.MaxDistanceKm
	if radius <= 0 {
		radius = loc.SearchRadiusKm
	}
	if radius <= 0 {
		radius = r.ref.DefaultSearchRadiusKm(requester.CountryCode)
	}

	raw, err := r.repo.FindEligible(ctx, &CandidateQuery{
		ExcludeIDs:      exclude,
		Countries:       countries,
		RequireLocation: true,
		Limit:           retrievalScanLimit,
	})
	if err != nil {
		return nil, err
	}

	// Distance math happens here, on fuzzed coordinates only, at full
	// precision; presentation rounding is the scorer's job.
	candidates := raw[:0]
	for _, c := range raw {
		if c.Latitude == nil || c.Longitude == nil {
			continue
		}
		d := geo.DistanceKm(loc.FuzzedLatitude, loc.FuzzedLongitude, *c.Latitude, *c.Longitude)
		if d > radius {
			continue
		}
		dist := d
		c.DistanceKm = &dist
		candidates = append(candidates, c)
	}

	return &RetrievalResult{
		Candidates:        candidates,
		Mode:              MatchModeGeolocated,
		EffectiveRadiusKm: radius,
	}, nil
}

// retrieveFallback serves requesters without a stored location:
// same-country candidates first, then the rest, each partition in
// random order. No distances are computed.
func (r *Retriever) retrieveFallback(ctx context.Context, requester *User, exclude []int64, countries []string) (*RetrievalResult, error) {
	raw, err := r.repo.FindEligible(ctx, &CandidateQuery{
		ExcludeIDs: exclude,
		Countries:  countries,
		Limit:      retrievalScanLimit,
	})
	if err != nil {
		return nil, err
	}

	var same, other []*Candidate
	for _, c := range raw {
		if c.CountryCode == requester.CountryCode {
			same = append(same, c)
		} else {
			other = append(other, c)
		}
	}

	r.shuffle(same)
	r.shuffle(other)

	return &RetrievalResult{
		Candidates:        append(same, other...),
		Mode:              MatchModeCountryOnly,
		EffectiveRadiusKm: 0,
	}, nil
}

func (r *Retriever) shuffle(cands []*Candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rng.Shuffle(len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})
}
