package handlers

import (
	"net/http"

	"github.com/yoyakulabs/clinic-navi/internal/index"
	"github.com/yoyakulabs/clinic-navi/internal/infrastructure/observability"
	"github.com/yoyakulabs/clinic-navi/internal/jpgeo"
	"github.com/yoyakulabs/clinic-navi/internal/jptext"
	"github.com/yoyakulabs/clinic-navi/internal/search"
)

// DirectoryHandler serves the navigation data derived from clinic rows
// and the static place tables: station and municipality indexes,
// prefecture listings, the diagnosis wizard mapping, and the coarse
// prefecture distance stub.
type DirectoryHandler struct {
	indexService *index.Service
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(indexService *index.Service) *DirectoryHandler {
	return &DirectoryHandler{
		indexService: indexService,
	}
}

// ListStations handles GET /api/stations
func (h *DirectoryHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.indexService.Stations(r.Context())
	if err != nil {
		logger := observability.LoggerFromContext(r.Context())
		logger.Error().Err(err).Msg("station index failed")
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stations": stations,
		"count":    len(stations),
	})
}

// ListMunicipalities handles GET /api/municipalities
func (h *DirectoryHandler) ListMunicipalities(w http.ResponseWriter, r *http.Request) {
	municipalities, err := h.indexService.Municipalities(r.Context())
	if err != nil {
		logger := observability.LoggerFromContext(r.Context())
		logger.Error().Err(err).Msg("municipality index failed")
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"municipalities": municipalities,
		"count":          len(municipalities),
	})
}

type prefectureEntry struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Region string `json:"region"`
}

// ListPrefectures handles GET /api/prefectures. The tables cover all 47
// prefectures; a missing slug or region here would be a data bug, so the
// entry degrades to empty fields rather than failing the request.
func (h *DirectoryHandler) ListPrefectures(w http.ResponseWriter, r *http.Request) {
	names := jptext.Prefectures()
	entries := make([]prefectureEntry, 0, len(names))
	for _, name := range names {
		entry := prefectureEntry{Name: name}
		if slug, ok := jptext.PrefectureSlug(name); ok {
			entry.Slug = slug
		}
		if region, ok := jptext.RegionOf(name); ok {
			entry.Region = region
		}
		entries = append(entries, entry)
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"prefectures": entries,
	})
}

// Diagnose handles GET /api/diagnosis: maps questionnaire answers to the
// listing filter parameters the front-end should apply.
func (h *DirectoryHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	answers := search.WizardAnswers{
		Symptom:      q.Get("symptom"),
		Timing:       q.Get("timing"),
		PreferOnline: parseFlag(q.Get("online")),
		Prefecture:   resolvePrefecture(q.Get("prefecture")),
	}
	criteria := search.CriteriaForWizard(answers)

	params := map[string]string{}
	if criteria.Specialty != "" {
		params["specialty"] = criteria.Specialty
	}
	if criteria.Prefecture != "" {
		params["prefecture"] = criteria.Prefecture
	}
	if criteria.Weekend {
		params["weekend"] = "1"
	}
	if criteria.Evening {
		params["evening"] = "1"
	}
	if criteria.Online {
		params["online"] = "1"
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"filters": params,
	})
}

// Distance handles GET /api/distance: the coarse centroid distance
// between two prefectures. Prefectures outside the centroid table get a
// 404, not an error page.
func (h *DirectoryHandler) Distance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := resolvePrefecture(q.Get("from"))
	to := resolvePrefecture(q.Get("to"))
	if from == "" || to == "" {
		respondWithError(w, http.StatusBadRequest, "from and to prefectures are required")
		return
	}

	km, ok := jpgeo.DistanceKm(from, to)
	if !ok {
		respondWithError(w, http.StatusNotFound, "no centroid available for prefecture")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"from":        from,
		"to":          to,
		"distance_km": km,
	})
}
