package routes

import (
	"net/http"

	"github.com/openpharma/pharmafind/internal/api/handlers"
	"github.com/openpharma/pharmafind/internal/api/middleware"
	"github.com/openpharma/pharmafind/internal/infrastructure/observability"
)

// Router holds all route handlers

type Router struct {
	mux *http.ServeMux

	searchHandler  *handlers.SearchHandler
	sessionHandler *handlers.SessionHandler

	sessionMiddleware *middleware.SessionMiddleware
	metrics           *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	searchHandler *handlers.SearchHandler,
	sessionHandler *handlers.SessionHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		searchHandler:  searchHandler,
		sessionHandler: sessionHandler,

		sessionMiddleware: sessionMiddleware,
		metrics:           metrics,
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

	// Search endpoint

	r.mux.HandleFunc("POST /api/search", r.searchHandler.SearchMedicine)

	// Session endpoint

	r.mux.HandleFunc("GET /api/session", r.sessionHandler.GetSession)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so error responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = r.sessionMiddleware.Middleware(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
