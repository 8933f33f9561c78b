package discovery

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// UserDirectory is the external identity collaborator. Only the
// fields discovery needs are exposed.
type UserDirectory interface {
	GetUser(ctx context.Context, id int64) (*User, error)
}

// InteractionLog exposes the set of users the requester has already
// liked, passed, super-liked, blocked or matched with.
type InteractionLog interface {
	GetInteractedUserIDs(ctx context.Context, userID int64) (map[int64]struct{}, error)
}

// CandidateQuery narrows an eligibility scan. ExcludeIDs always
// contains at least the requester. Results are ordered by user id so
// retrieval is deterministic for identical database state.
type CandidateQuery struct {
	ExcludeIDs      []int64
	Countries       []string
	RequireLocation bool
	Limit           int
}

type Repository interface {
	UserDirectory
	InteractionLog

	UpsertLocation(ctx context.Context, loc *UserLocation) error
	GetLocation(ctx context.Context, userID int64) (*UserLocation, error)

	UpsertPreferences(ctx context.Context, p *PreferenceProfile) error
	GetPreferences(ctx context.Context, userID int64) (*PreferenceProfile, error)

	FindEligible(ctx context.Context, q *CandidateQuery) ([]*Candidate, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// Location methods

func (r *postgresRepository) UpsertLocation(ctx context.Context, loc *UserLocation) error {
	query := `
        INSERT INTO user_locations (
            user_id, true_latitude, true_longitude,
            fuzzed_latitude, fuzzed_longitude,
            privacy_level, fuzz_radius_m, search_radius_km,
            country_code, region, city, source, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
        ON CONFLICT (user_id) DO UPDATE SET
            true_latitude = $2, true_longitude = $3,
            fuzzed_latitude = $4, fuzzed_longitude = $5,
            privacy_level = $6, fuzz_radius_m = $7, search_radius_km = $8,
            country_code = $9, region = $10, city = $11, source = $12,
            updated_at = NOW()
        RETURNING updated_at
    `

	err := r.db.QueryRowxContext(
		ctx, query,
		loc.UserID, loc.TrueLatitude, loc.TrueLongitude,
		loc.FuzzedLatitude, loc.FuzzedLongitude,
		loc.PrivacyLevel, loc.FuzzRadiusM, loc.SearchRadiusKm,
		loc.CountryCode, loc.Region, loc.City, loc.Source,
	).Scan(&loc.UpdatedAt)
	if err != nil {
		return &TransientError{Op: "upsert location", Err: err}
	}

	return nil
}

func (r *postgresRepository) GetLocation(ctx context.Context, userID int64) (*UserLocation, error) {
	var loc UserLocation
	query := `SELECT * FROM user_locations WHERE user_id = $1`

	err := r.db.GetContext(ctx, &loc, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, &TransientError{Op: "get location", Err: err}
	}

	return &loc, nil
}

// Preference methods

func (r *postgresRepository) UpsertPreferences(ctx context.Context, p *PreferenceProfile) error {
	weightsJSON, err := json.Marshal(p.CountryWeights)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO preference_profiles (
            user_id, preferred_countries, excluded_countries,
            preferred_regions, excluded_regions, preferred_cities,
            cultural_groups, languages, international,
            preferred_tier, tier_tolerance,
            max_distance_km, travel_willingness_km,
            country_weights, cultural_openness, confidence, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW())
        ON CONFLICT (user_id) DO UPDATE SET
            preferred_countries = $2, excluded_countries = $3,
            preferred_regions = $4, excluded_regions = $5, preferred_cities = $6,
            cultural_groups = $7, languages = $8, international = $9,
            preferred_tier = $10, tier_tolerance = $11,
            max_distance_km = $12, travel_willingness_km = $13,
            country_weights = $14, cultural_openness = $15, confidence = $16,
            updated_at = NOW()
        RETURNING created_at, updated_at
    `

	err = r.db.QueryRowxContext(
		ctx, query,
		p.UserID,
		pq.Array(p.PreferredCountries), pq.Array(p.ExcludedCountries),
		pq.Array(p.PreferredRegions), pq.Array(p.ExcludedRegions), pq.Array(p.PreferredCities),
		pq.Array(p.CulturalGroups), pq.Array(p.Languages), p.International,
		p.PreferredTier, p.TierTolerance,
		p.MaxDistanceKm, p.TravelWillingnessKm,
		weightsJSON, p.CulturalOpenness, p.Confidence,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return &TransientError{Op: "upsert preferences", Err: err}
	}

	return nil
}

func (r *postgresRepository) GetPreferences(ctx context.Context, userID int64) (*PreferenceProfile, error) {
	query := `
        SELECT user_id, preferred_countries, excluded_countries,
               preferred_regions, excluded_regions, preferred_cities,
               cultural_groups, languages, international,
               preferred_tier, tier_tolerance,
               max_distance_km, travel_willingness_km,
               country_weights, cultural_openness, confidence,
               created_at, updated_at
        FROM preference_profiles
        WHERE user_id = $1
    `

	var p PreferenceProfile
	var weightsJSON []byte

	row := r.db.QueryRowxContext(ctx, query, userID)
	err := row.Scan(
		&p.UserID,
		pq.Array(&p.PreferredCountries), pq.Array(&p.ExcludedCountries),
		pq.Array(&p.PreferredRegions), pq.Array(&p.ExcludedRegions), pq.Array(&p.PreferredCities),
		pq.Array(&p.CulturalGroups), pq.Array(&p.Languages), &p.International,
		&p.PreferredTier, &p.TierTolerance,
		&p.MaxDistanceKm, &p.TravelWillingnessKm,
		&weightsJSON, &p.CulturalOpenness, &p.Confidence,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPreferencesNotFound
	}
	if err != nil {
		return nil, &TransientError{Op: "get preferences", Err: err}
	}

	if len(weightsJSON) > 0 {
		if err := json.Unmarshal(weightsJSON, &p.CountryWeights); err != nil {
			return nil, err
		}
	}

	return &p, nil
}

// Directory and interaction methods

func (r *postgresRepository) GetUser(ctx context.Context, id int64) (*User, error) {
	var u User
	query := `
        SELECT id, country_code, economic_tier, birth_date, active, banned
        FROM users
        WHERE id = $1
    `

	err := r.db.GetContext(ctx, &u, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, &TransientError{Op: "get user", Err: err}
	}

	return &u, nil
}

func (r *postgresRepository) GetInteractedUserIDs(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	query := `
        SELECT DISTINCT target_id
        FROM user_interactions
        WHERE user_id = $1
    `

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, &TransientError{Op: "get interacted ids", Err: err}
	}

	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set, nil
}

// Candidate scan

func (r *postgresRepository) FindEligible(ctx context.Context, q *CandidateQuery) ([]*Candidate, error) {
	query := `
        SELECT u.id, u.country_code, u.economic_tier,
               l.fuzzed_latitude, l.fuzzed_longitude, l.region, l.city
        FROM users u
        LEFT JOIN user_locations l ON l.user_id = u.id
        WHERE u.active = TRUE
          AND u.banned = FALSE
          AND NOT (u.id = ANY($1))
    `
	args := []interface{}{pq.Array(q.ExcludeIDs)}

	if len(q.Countries) > 0 {
		query += ` AND u.country_code = ANY($2)`
		args = append(args, pq.Array(q.Countries))
	}
	if q.RequireLocation {
		query += ` AND l.user_id IS NOT NULL`
	}

	query += ` ORDER BY u.id LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, q.Limit)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, &TransientError{Op: "find eligible", Err: err}
	}
	defer rows.Close()

	var candidates []*Candidate
	for rows.Next() {
		var c Candidate
		err := rows.Scan(
			&c.UserID, &c.CountryCode, &c.EconomicTier,
			&c.Latitude, &c.Longitude, &c.Region, &c.City,
		)
		if err != nil {
			return nil, &TransientError{Op: "scan candidate", Err: err}
		}
		candidates = append(candidates, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, &TransientError{Op: "find eligible", Err: err}
	}

	return candidates, nil
}
