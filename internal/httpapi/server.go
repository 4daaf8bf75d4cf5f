// Package httpapi is the JSON HTTP front end over the prediction and
// search operations in internal/predictor. It follows the teacher
// server's middleware stack and error-response shape, adapted to this
// domain's request/response bodies.
package httpapi

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MJE43/stardew-seed-oracle/internal/jobstore"
)

// Server holds the shared dependencies every route handler needs.
type Server struct {
	logger    *log.Logger
	startTime time.Time
	jobs      *jobstore.Store
}

// NewServer constructs a Server with a stdout logger matching the
// engine's line-oriented logging convention. jobs may be nil, in which
// case the /search/jobs endpoints respond 503.
func NewServer(jobs *jobstore.Store) *Server {
	return &Server{
		logger:    log.New(os.Stdout, "[API] ", log.LstdFlags|log.Lshortfile),
		startTime: time.Now(),
		jobs:      jobs,
	}
}

// Routes builds the chi router for every exposed endpoint.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/health/ready", s.handleHealthReady)
	r.Get("/health/live", s.handleHealthLive)
	r.Get("/metrics", s.handleMetrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/predict/day", s.handlePredictDay)
		r.Post("/predict/luck", s.handlePredictLuckRange)
		r.Post("/predict/dish", s.handlePredictDishRange)
		r.Post("/predict/weather", s.handlePredictWeatherRange)
		r.Post("/predict/night-events", s.handlePredictNightEventsRange)
		r.Post("/predict/cart", s.handlePredictCartRange)
		r.Post("/predict/geodes", s.handlePredictGeodes)
		r.Post("/predict/mine-floors", s.handlePredictMineFloors)
		r.Post("/find/monster-floors", s.handleFindMonsterFloors)
		r.Post("/find/dark-floors", s.handleFindDarkFloors)
		r.Post("/find/mushroom-floors", s.handleFindMushroomFloors)
		r.Post("/find/cart-item", s.handleFindItemInCart)
		r.Post("/find/reachable-floors", s.handleReachableFloors)
		r.Post("/search", s.handleSearch)
		r.Post("/search/jobs", s.handleCreateSearchJob)
		r.Get("/search/jobs/{jobID}", s.handleGetSearchJob)
	})

	return r
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Printf("method=%s path=%s status=%d duration=%s request_id=%s",
			r.Method, r.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(r.Context()))
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
