package discovery

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/amoradating/amora-backend/internal/common/utils"
)

// Handler is the thin HTTP boundary. Authentication lives upstream:
// the gateway injects the authenticated user id as X-User-ID, and
// this layer only deserializes, validates and maps errors to status
// codes.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var dto UpdateLocationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	loc, err := h.service.UpdateLocation(r.Context(), userID, &dto)
	if err != nil {
		respondServiceError(w, err, "Failed to update location")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, loc)
}

func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	prefs, err := h.service.GetPreferences(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, "Failed to get preferences")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, prefs)
}

func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var dto UpdatePreferencesDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	prefs, err := h.service.UpdatePreferences(r.Context(), userID, &dto)
	if err != nil {
		respondServiceError(w, err, "Failed to update preferences")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, prefs)
}

func (h *Handler) FindCandidates(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	params := &FindCandidatesParams{IncludeInternational: true}

	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Limit = n
		}
	}
	if v := q.Get("max_distance_km"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MaxDistanceKm = f
		}
	}
	if v := q.Get("preferred_countries"); v != "" {
		for _, c := range strings.Split(v, ",") {
			c = strings.ToUpper(strings.TrimSpace(c))
			if c != "" {
				params.PreferredCountries = append(params.PreferredCountries, c)
			}
		}
	}
	if q.Get("include_international") == "false" {
		params.IncludeInternational = false
	}

	if err := utils.ValidateStruct(params); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.FindCandidates(r.Context(), userID, params)
	if err != nil {
		respondServiceError(w, err, "Failed to find candidates")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

func requestUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.Header.Get("X-User-ID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid user identity")
		return 0, false
	}
	return id, true
}

func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	var vErr *ValidationError
	var tErr *TransientError

	switch {
	case errors.As(err, &vErr):
		utils.RespondWithError(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &tErr):
		// Retryable by the caller; the engine never retries itself.
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
