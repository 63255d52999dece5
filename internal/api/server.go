// Package api exposes the calculators over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/engmath/mathtools/internal/history"
	"github.com/engmath/mathtools/pkg/logging"
	"github.com/engmath/mathtools/pkg/middleware"
)

// Server handles calculator API requests.
type Server struct {
	router  *mux.Router
	store   history.Store
	logger  *logging.Logger
	metrics *Metrics
}

// NewServer creates a server backed by the given history store.
func NewServer(store history.Store, logger *logging.Logger) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		store:   store,
		logger:  logger,
		metrics: newMetrics(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) registerRoutes() {
	r := s.router
	r.Use(middleware.RequestLogging(s.logger))

	r.HandleFunc("/cones/distance", s.ConesDistance).Methods("POST")
	r.HandleFunc("/cones/angle", s.ConesAngle).Methods("POST")
	r.HandleFunc("/cones/radius", s.ConesRadius).Methods("POST")
	r.HandleFunc("/cones/height", s.ConesHeight).Methods("POST")

	r.HandleFunc("/section/{shape}", s.SectionProperties).Methods("POST")

	r.HandleFunc("/srss", s.SRSS).Methods("POST")
	r.HandleFunc("/gcd", s.GCD).Methods("POST")
	r.HandleFunc("/lcm", s.LCM).Methods("POST")

	r.HandleFunc("/history", s.History).Methods("GET")
	r.HandleFunc("/healthz", s.Health).Methods("GET")

	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
}

// Health reports liveness.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// History lists recent calculations.
func (s *Server) History(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	calcs, err := s.store.Recent(limit)
	if err != nil {
		s.logger.Error("Failed to read history", map[string]interface{}{"error": err.Error()})
		s.writeError(w, http.StatusInternalServerError, "failed to read history")
		return
	}
	if calcs == nil {
		calcs = []*history.Calculation{}
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"calculations": calcs,
		"count":        len(calcs),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, tool string, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.metrics.RecordFailure(tool)
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// record stores a served calculation and counts it. History is best
// effort; a failed write is logged, not returned to the client.
func (s *Server) record(tool string, inputs map[string]interface{}, result string) {
	s.metrics.RecordCalculation(tool)
	if err := s.store.Record(&history.Calculation{Tool: tool, Inputs: inputs, Result: result}); err != nil {
		s.logger.Warn("Failed to record calculation", map[string]interface{}{
			"tool":  tool,
			"error": err.Error(),
		})
	}
}
