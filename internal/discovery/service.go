// internal/discovery/service.go

package discovery

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/amoradating/amora-backend/internal/reference"
)

// scoreWorkers bounds the per-request scoring fan-out.
const scoreWorkers = 8

type Service interface {
	UpdateLocation(ctx context.Context, userID int64, dto *UpdateLocationDTO) (*UserLocation, error)
	UpdatePreferences(ctx context.Context, userID int64, dto *UpdatePreferencesDTO) (*PreferenceProfile, error)
	GetPreferences(ctx context.Context, userID int64) (*PreferenceProfile, error)
	FindCandidates(ctx context.Context, userID int64, params *FindCandidatesParams) (*DiscoveryResult, error)
}

type service struct {
	repo      Repository
	directory UserDirectory
	store     *LocationStore
	retriever *Retriever
	scorer    *Scorer
	defaults  *DefaultsGenerator
}

func NewService(repo Repository, directory UserDirectory, store *LocationStore, retriever *Retriever, scorer *Scorer, defaults *DefaultsGenerator) Service {
	return &service{
		repo:      repo,
		directory: directory,
		store:     store,
		retriever: retriever,
		scorer:    scorer,
		defaults:  defaults,
	}
}

func (s *service) UpdateLocation(ctx context.Context, userID int64, dto *UpdateLocationDTO) (*UserLocation, error) {
	if _, err := s.directory.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	loc, err := s.store.Update(ctx, userID, dto)
	if err != nil {
		return nil, err
	}

	RecordLocationUpdate(string(loc.PrivacyLevel))
	return loc, nil
}

func (s *service) UpdatePreferences(ctx context.Context, userID int64, dto *UpdatePreferencesDTO) (*PreferenceProfile, error) {
	user, err := s.directory.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &PreferenceProfile{
		UserID:              userID,
		PreferredCountries:  upperAll(dto.PreferredCountries),
		ExcludedCountries:   upperAll(dto.ExcludedCountries),
		PreferredRegions:    dto.PreferredRegions,
		ExcludedRegions:     dto.ExcludedRegions,
		PreferredCities:     dto.PreferredCities,
		CulturalGroups:      dto.CulturalGroups,
		Languages:           dto.Languages,
		International:       dto.International,
		PreferredTier:       dto.PreferredTier,
		TierTolerance:       dto.TierTolerance,
		MaxDistanceKm:       dto.MaxDistanceKm,
		TravelWillingnessKm: dto.TravelWillingnessKm,
		CountryWeights:      make(map[string]float64, len(dto.CountryWeights)),
		Confidence:          0.9,
	}

	for code, w := range dto.CountryWeights {
		p.CountryWeights[strings.ToUpper(code)] = w
	}
	// Explicitly preferred countries default to full weight;
	// countries in the user's chosen cultural groups get the affine
	// weight; excluded countries carry no weight at all.
	for _, code := range p.PreferredCountries {
		if _, ok := p.CountryWeights[code]; !ok {
			p.CountryWeights[code] = 1.0
		}
	}
	for _, group := range p.CulturalGroups {
		for _, code := range s.defaults.ref.CountriesInGroup(group) {
			if _, ok := p.CountryWeights[code]; !ok {
				p.CountryWeights[code] = 0.8
			}
		}
	}
	for _, code := range p.ExcludedCountries {
		delete(p.CountryWeights, code)
	}

	if p.PreferredTier == 0 {
		p.PreferredTier = user.EconomicTier
	}
	if p.MaxDistanceKm == 0 {
		p.MaxDistanceKm = s.defaults.ref.DefaultSearchRadiusKm(user.CountryCode)
	}
	if p.TravelWillingnessKm == 0 {
		p.TravelWillingnessKm = reference.TravelWillingnessKm(user.EconomicTier)
	}
	p.CulturalOpenness = deriveOpenness(p)

	if err := s.repo.UpsertPreferences(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *service) GetPreferences(ctx context.Context, userID int64) (*PreferenceProfile, error) {
	p, err := s.repo.GetPreferences(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrPreferencesNotFound) {
		return nil, err
	}

	user, err := s.directory.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Synthesized, served, never persisted here: a generated profile
	// becomes user intent only when the user saves it.
	return s.defaults.Generate(userID, user.CountryCode, user.EconomicTier), nil
}

func (s *service) FindCandidates(ctx context.Context, userID int64, params *FindCandidatesParams) (*DiscoveryResult, error) {
	if params == nil {
		params = &FindCandidatesParams{IncludeInternational: true}
	}

	user, err := s.directory.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc, err := s.store.Get(ctx, userID)
	if err != nil && !errors.Is(err, ErrLocationNotFound) {
		return nil, err
	}

	retrieved, err := s.retriever.Retrieve(ctx, user, loc, params)
	if err != nil {
		return nil, err
	}
	RecordRetrieval(string(retrieved.Mode), len(retrieved.Candidates))

	start := time.Now()
	scored, err := s.scoreAll(ctx, retrieved, user, loc, prefs)
	if err != nil {
		return nil, err
	}
	RecordScoringDuration(time.Since(start))

	limit := normalizeLimit(params.Limit)

	result := &DiscoveryResult{Mode: retrieved.Mode}
	if retrieved.Mode == MatchModeCountryOnly {
		// Fallback mode keeps retrieval order: same country first,
		// random within each partition. Score order does not apply.
		result.FallbackMatch = true
		if len(scored) > limit {
			scored = scored[:limit]
		}
		result.Candidates = scored
	} else {
		result.Candidates = Rank(scored, limit)
	}

	for _, c := range result.Candidates {
		RecordFinalScore(c.FinalScore)
	}
	RecordDiscovery(string(result.Mode))

	return result, nil
}

// scoreAll fans candidate scoring out over a bounded worker pool and
// joins before returning. Output order mirrors input order; the
// caller imposes any final ordering. Context cancellation abandons
// the batch between candidates rather than after it.
func (s *service) scoreAll(ctx context.Context, rr *RetrievalResult, user *User, loc *UserLocation, prefs *PreferenceProfile) ([]*ScoredCandidate, error) {
	cands := rr.Candidates
	if len(cands) == 0 {
		return nil, nil
	}

	sc := &ScoringContext{
		Requester:         user,
		Location:          loc,
		Prefs:             prefs,
		EffectiveRadiusKm: rr.EffectiveRadiusKm,
	}

	workers := scoreWorkers
	if len(cands) < workers {
		workers = len(cands)
	}

	out := make([]*ScoredCandidate, len(cands))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = s.scorer.Score(cands[i], sc)
			}
		}()
	}

	var cancelled bool
feed:
	for i := range cands {
		select {
		case <-ctx.Done():
			cancelled = true
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled {
		return nil, ctx.Err()
	}
	return out, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func upperAll(codes []string) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = strings.ToUpper(strings.TrimSpace(c))
	}
	return out
}
