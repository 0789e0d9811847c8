package routes

import (
	"net/http"

	"github.com/yoyakulabs/clinic-navi/internal/api/handlers"
	"github.com/yoyakulabs/clinic-navi/internal/api/middleware"
	"github.com/yoyakulabs/clinic-navi/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	clinicHandler    *handlers.ClinicHandler
	directoryHandler *handlers.DirectoryHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	clinicHandler *handlers.ClinicHandler,
	directoryHandler *handlers.DirectoryHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		clinicHandler:    clinicHandler,
		directoryHandler: directoryHandler,
		cacheMiddleware:  cacheMiddleware,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Clinic listing endpoint
	r.mux.HandleFunc("GET /api/clinics", r.clinicHandler.ListClinics)

	// Directory endpoints
	r.mux.HandleFunc("GET /api/stations", r.directoryHandler.ListStations)
	r.mux.HandleFunc("GET /api/municipalities", r.directoryHandler.ListMunicipalities)
	r.mux.HandleFunc("GET /api/prefectures", r.directoryHandler.ListPrefectures)
	r.mux.HandleFunc("GET /api/diagnosis", r.directoryHandler.Diagnose)
	r.mux.HandleFunc("GET /api/distance", r.directoryHandler.Distance)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	handler = middleware.RequestIDMiddleware(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
