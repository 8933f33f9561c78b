package discovery

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/amoradating/amora-backend/internal/reference"
)

// fakeRepo is an in-memory Repository mirroring the SQL semantics of
// the Postgres implementation: eligibility filtering, id ordering and
// not-found sentinels.
type fakeRepo struct {
	users      map[int64]*User
	locs       map[int64]*UserLocation
	prefs      map[int64]*PreferenceProfile
	interacted map[int64]map[int64]struct{}

	failTransient bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:      make(map[int64]*User),
		locs:       make(map[int64]*UserLocation),
		prefs:      make(map[int64]*PreferenceProfile),
		interacted: make(map[int64]map[int64]struct{}),
	}
}

func (f *fakeRepo) addUser(u *User) {
	f.users[u.ID] = u
}

func (f *fakeRepo) addLocation(loc *UserLocation) {
	f.locs[loc.UserID] = loc
}

func (f *fakeRepo) addInteraction(userID, targetID int64) {
	if f.interacted[userID] == nil {
		f.interacted[userID] = make(map[int64]struct{})
	}
	f.interacted[userID][targetID] = struct{}{}
}

func (f *fakeRepo) GetUser(ctx context.Context, id int64) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetInteractedUserIDs(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	set := make(map[int64]struct{}, len(f.interacted[userID]))
	for id := range f.interacted[userID] {
		set[id] = struct{}{}
	}
	return set, nil
}

func (f *fakeRepo) UpsertLocation(ctx context.Context, loc *UserLocation) error {
	if f.failTransient {
		return &TransientError{Op: "upsert location", Err: context.DeadlineExceeded}
	}
	loc.UpdatedAt = time.Now()
	f.locs[loc.UserID] = loc
	return nil
}

func (f *fakeRepo) GetLocation(ctx context.Context, userID int64) (*UserLocation, error) {
	loc, ok := f.locs[userID]
	if !ok {
		return nil, ErrLocationNotFound
	}
	return loc, nil
}

func (f *fakeRepo) UpsertPreferences(ctx context.Context, p *PreferenceProfile) error {
	p.UpdatedAt = time.Now()
	f.prefs[p.UserID] = p
	return nil
}

func (f *fakeRepo) GetPreferences(ctx context.Context, userID int64) (*PreferenceProfile, error) {
	p, ok := f.prefs[userID]
	if !ok {
		return nil, ErrPreferencesNotFound
	}
	return p, nil
}

func (f *fakeRepo) FindEligible(ctx context.Context, q *CandidateQuery) ([]*Candidate, error) {
	excluded := make(map[int64]struct{}, len(q.ExcludeIDs))
	for _, id := range q.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	countries := make(map[string]struct{}, len(q.Countries))
	for _, c := range q.Countries {
		countries[c] = struct{}{}
	}

	ids := make([]int64, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*Candidate
	for _, id := range ids {
		u := f.users[id]
		if !u.Active || u.Banned {
			continue
		}
		if _, skip := excluded[id]; skip {
			continue
		}
		if len(countries) > 0 {
			if _, ok := countries[u.CountryCode]; !ok {
				continue
			}
		}

		c := &Candidate{
			UserID:       u.ID,
			CountryCode:  u.CountryCode,
			EconomicTier: u.EconomicTier,
		}
		if loc, ok := f.locs[id]; ok {
			lat, lon := loc.FuzzedLatitude, loc.FuzzedLongitude
			c.Latitude = &lat
			c.Longitude = &lon
			c.Region = loc.Region
			c.City = loc.City
		} else if q.RequireLocation {
			continue
		}

		out = append(out, c)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}

	return out, nil
}

// newTestService wires a full service over the fake repo with a
// deterministic rand source.
func newTestService(repo *fakeRepo, seed int64) Service {
	ref := reference.NewTable()
	rng := rand.New(rand.NewSource(seed))

	store := NewLocationStore(repo, rng)
	retriever := NewRetriever(repo, NewInteractionCache(nil, repo, 0), ref, rng)
	scorer := NewScorer(ref, DefaultScoringWeights(), rng)
	defaults := NewDefaultsGenerator(ref)

	return NewService(repo, repo, store, retriever, scorer, defaults)
}

func activeUser(id int64, country string, tier int) *User {
	return &User{
		ID:           id,
		CountryCode:  country,
		EconomicTier: tier,
		BirthDate:    time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
		Active:       true,
	}
}

func exactLocation(userID int64, lat, lon float64, country string) *UserLocation {
	return &UserLocation{
		UserID:          userID,
		TrueLatitude:    lat,
		TrueLongitude:   lon,
		FuzzedLatitude:  lat,
		FuzzedLongitude: lon,
		PrivacyLevel:    PrivacyExact,
		SearchRadiusKm:  0,
		CountryCode:     country,
	}
}
