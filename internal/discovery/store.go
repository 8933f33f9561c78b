// internal/discovery/store.go
// Location Store: validates coordinate updates, applies privacy
// fuzzing at write time, and persists both coordinate pairs. Only the
// fuzzed pair is ever read back by retrieval or scoring.

package discovery

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"github.com/amoradating/amora-backend/internal/geo"
)

type LocationStore struct {
	repo Repository

	mu  sync.Mutex
	rng *rand.Rand
}

func NewLocationStore(repo Repository, rng *rand.Rand) *LocationStore {
	return &LocationStore{repo: repo, rng: rng}
}

// Update validates, re-fuzzes and persists a user's location. The
// fuzz is re-applied with fresh randomness on every update, so the
// stored fuzzed pair is never the exact input for any level above
// exact, and never a replay of a previous fuzz.
func (s *LocationStore) Update(ctx context.Context, userID int64, dto *UpdateLocationDTO) (*UserLocation, error) {
	var fields []string
	if dto.Latitude < -90 || dto.Latitude > 90 {
		fields = append(fields, "latitude must be between -90 and 90")
	}
	if dto.Longitude < -180 || dto.Longitude > 180 {
		fields = append(fields, "longitude must be between -180 and 180")
	}
	if dto.SearchRadiusKm != 0 && (dto.SearchRadiusKm < 1 || dto.SearchRadiusKm > 50000) {
		fields = append(fields, "search_radius_km must be between 1 and 50000")
	}
	level := PrivacyLevel(dto.PrivacyLevel)
	if !level.Valid() {
		fields = append(fields, "privacy_level must be one of exact, neighborhood, city, region, country")
	}
	country := strings.ToUpper(strings.TrimSpace(dto.CountryCode))
	if len(country) != 2 {
		fields = append(fields, "country_code must be a 2-letter ISO code")
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields...)
	}

	radiusM := level.FuzzRadiusMeters()

	s.mu.Lock()
	fuzzedLat, fuzzedLon := geo.Fuzz(dto.Latitude, dto.Longitude, radiusM, s.rng)
	s.mu.Unlock()

	loc := &UserLocation{
		UserID:          userID,
		TrueLatitude:    dto.Latitude,
		TrueLongitude:   dto.Longitude,
		FuzzedLatitude:  fuzzedLat,
		FuzzedLongitude: fuzzedLon,
		PrivacyLevel:    level,
		FuzzRadiusM:     radiusM,
		SearchRadiusKm:  dto.SearchRadiusKm,
		CountryCode:     country,
		Source:          dto.Source,
	}
	if loc.Source == "" {
		loc.Source = "manual"
	}
	if dto.Region != "" {
		loc.Region = &dto.Region
	}
	if dto.City != "" {
		loc.City = &dto.City
	}

	if err := s.repo.UpsertLocation(ctx, loc); err != nil {
		return nil, err
	}

	return loc, nil
}

// Get returns the stored location or ErrLocationNotFound.
func (s *LocationStore) Get(ctx context.Context, userID int64) (*UserLocation, error) {
	return s.repo.GetLocation(ctx, userID)
}
