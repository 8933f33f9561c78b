package discovery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo *fakeRepo) *mux.Router {
	router := mux.NewRouter()
	RegisterRoutes(router, NewHandler(newTestService(repo, 1)))
	return router
}

func doRequest(router *mux.Router, method, path, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandlerRejectsMissingIdentity(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	for _, tc := range []struct{ method, path string }{
		{"PUT", "/api/v1/discovery/location"},
		{"GET", "/api/v1/discovery/preferences"},
		{"PUT", "/api/v1/discovery/preferences"},
		{"GET", "/api/v1/discovery/candidates"},
	} {
		rec := doRequest(router, tc.method, tc.path, "", "{}")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}

	rec := doRequest(router, "GET", "/api/v1/discovery/candidates", "not-a-number", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateLocationHandler(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(activeUser(1, "DE", 1))
	router := newTestRouter(repo)

	body := `{"latitude":52.52,"longitude":13.405,"country_code":"DE","privacy_level":"city"}`
	rec := doRequest(router, "PUT", "/api/v1/discovery/location", "1", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var loc UserLocation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loc))
	assert.Equal(t, PrivacyCity, loc.PrivacyLevel)
	assert.Equal(t, "DE", loc.CountryCode)

	// True coordinates never serialize.
	assert.NotContains(t, rec.Body.String(), "true_latitude")
}

func TestUpdateLocationHandlerBadInput(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(activeUser(1, "DE", 1))
	router := newTestRouter(repo)

	rec := doRequest(router, "PUT", "/api/v1/discovery/location", "1", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := `{"latitude":52.52,"longitude":13.405,"country_code":"DE","privacy_level":"stealth"}`
	rec = doRequest(router, "PUT", "/api/v1/discovery/location", "1", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateLocationHandlerUnknownUser(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	body := `{"latitude":52.52,"longitude":13.405,"country_code":"DE","privacy_level":"city"}`
	rec := doRequest(router, "PUT", "/api/v1/discovery/location", "42", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateLocationHandlerStorageDown(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(activeUser(1, "DE", 1))
	repo.failTransient = true
	router := newTestRouter(repo)

	body := `{"latitude":52.52,"longitude":13.405,"country_code":"DE","privacy_level":"city"}`
	rec := doRequest(router, "PUT", "/api/v1/discovery/location", "1", body)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetPreferencesHandlerServesDefaults(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(activeUser(1, "DE", 1))
	router := newTestRouter(repo)

	rec := doRequest(router, "GET", "/api/v1/discovery/preferences", "1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var prefs PreferenceProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	assert.True(t, prefs.Generated)
	assert.Contains(t, prefs.PreferredCountries, "DE")
}

func TestFindCandidatesHandler(t *testing.T) {
	repo := newFakeRepo()
	seedBerlinWorld(repo)
	router := newTestRouter(repo)

	rec := doRequest(router, "GET", "/api/v1/discovery/candidates?max_distance_km=80&limit=5", "1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result DiscoveryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, MatchModeGeolocated, result.Mode)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, int64(2), result.Candidates[0].UserID)
}

func TestFindCandidatesHandlerValidatesQuery(t *testing.T) {
	repo := newFakeRepo()
	seedBerlinWorld(repo)
	router := newTestRouter(repo)

	rec := doRequest(router, "GET", "/api/v1/discovery/candidates?limit=9999", "1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(router, "GET", "/api/v1/discovery/candidates?preferred_countries=DEU", "1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
