package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/yoyakulabs/clinic-navi/internal/infrastructure/observability"
	"github.com/yoyakulabs/clinic-navi/internal/jptext"
	"github.com/yoyakulabs/clinic-navi/internal/search"
	apperrors "github.com/yoyakulabs/clinic-navi/pkg/errors"
)

// ClinicHandler handles clinic listing HTTP requests
type ClinicHandler struct {
	searchService *search.Service
}

// NewClinicHandler creates a new clinic handler
func NewClinicHandler(searchService *search.Service) *ClinicHandler {
	return &ClinicHandler{
		searchService: searchService,
	}
}

// ListClinics handles GET /api/clinics: the faceted listing endpoint.
// Every filter parameter is optional; omitted or empty parameters impose
// no constraint.
func (h *ClinicHandler) ListClinics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := search.Request{
		Page: parsePage(q.Get("page")),
		Sort: parseSort(q.Get("sort")),
		Criteria: search.Criteria{
			Query:        q.Get("q"),
			Prefecture:   resolvePrefecture(q.Get("prefecture")),
			Municipality: resolveMunicipality(q.Get("municipality")),
			Specialty:    q.Get("specialty"),
			Feature:      q.Get("feature"),
			Station:      resolveStation(q.Get("station")),
			Weekend:      parseFlag(q.Get("weekend")),
			Evening:      parseFlag(q.Get("evening")),
			Director:     parseFlag(q.Get("director")),
			Online:       parseFlag(q.Get("online")),
		},
	}

	result, err := h.searchService.Search(r.Context(), req)
	if err != nil {
		logger := observability.LoggerFromContext(r.Context())
		logger.Error().Err(err).Msg("clinic search failed")
		respondAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// parsePage applies permissive defaulting: non-numeric or non-positive
// input is page 1, never an error.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parseSort(raw string) search.Sort {
	if raw == "newest" {
		return search.SortByNewest
	}
	return search.SortByRating
}

func parseFlag(raw string) bool {
	switch raw {
	case "1", "true", "yes":
		return true
	}
	return false
}

// resolvePrefecture accepts either a canonical prefecture name or its
// slug. Unresolvable input is passed through unchanged: it simply
// matches nothing.
func resolvePrefecture(raw string) string {
	if raw == "" {
		return ""
	}
	if name, ok := jptext.PrefectureName(raw); ok {
		return name
	}
	return raw
}

func resolveMunicipality(raw string) string {
	if raw == "" {
		return ""
	}
	if name, ok := jptext.MunicipalityName(raw); ok {
		return name
	}
	return raw
}

func resolveStation(raw string) string {
	if raw == "" {
		return ""
	}
	if name, ok := jptext.StationName(raw); ok {
		return name
	}
	return raw
}

// Helper functions shared by the handlers in this package.
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

func respondAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
			return
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
			return
		case apperrors.ErrorTypeUnavailable:
			respondWithError(w, http.StatusServiceUnavailable, appErr.Message)
			return
		}
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
