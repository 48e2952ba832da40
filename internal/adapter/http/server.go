// Package http exposes the service's HTTP surface: health, readiness, and
// metrics endpoints plus the directory browse, resolve, and reload API.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elc-tools/pubrec/internal/directory"
	"github.com/elc-tools/pubrec/internal/domain"
	"github.com/elc-tools/pubrec/internal/letter"
	"github.com/elc-tools/pubrec/internal/observability"
)

// Server exposes the records-request API over HTTP.
type Server struct {
	httpServer *http.Server
	store      *directory.Store
	geocoder   domain.Geocoder
	metrics    *observability.Metrics
	logger     *slog.Logger
	defaultOrg string
}

// NewServer creates the HTTP server. geocoder may be nil when geocoding is
// disabled; resolution then relies on manual county/city overrides.
func NewServer(addr string, store *directory.Store, geocoder domain.Geocoder, metrics *observability.Metrics, logger *slog.Logger, defaultOrg string) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:      store,
		geocoder:   geocoder,
		metrics:    metrics,
		logger:     logger,
		defaultOrg: defaultOrg,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/contacts", s.handleContacts)
	mux.HandleFunc("POST /api/resolve", s.handleResolve)
	mux.HandleFunc("POST /api/reload", s.handleReload)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// contactsResponse is the browse view: the filtered rows plus the aggregate
// email and portal lists of the current view.
type contactsResponse struct {
	Rows       []domain.ContactRow  `json:"rows"`
	Count      int                  `json:"count"`
	Emails     []string             `json:"emails,omitempty"`
	PortalURLs []string             `json:"portal_urls,omitempty"`
	Report     directory.LoadReport `json:"report"`
}

func (s *Server) handleContacts(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.usableSnapshot(w)
	if !ok {
		return
	}

	q := r.URL.Query()
	f := directory.Filter{
		County:   q.Get("county"),
		City:     q.Get("city"),
		Dept:     q.Get("dept"),
		Contains: q.Get("contains"),
	}
	if v := q.Get("verified"); v != "" {
		verified := v == "true"
		f.Verified = &verified
	}

	rows := snap.Filter(f)
	writeJSON(w, http.StatusOK, contactsResponse{
		Rows:       rows,
		Count:      len(rows),
		Emails:     domain.AggregateEmails(rows),
		PortalURLs: domain.PortalURLs(rows),
		Report:     snap.Report,
	})
}

// resolveRequest is the POST /api/resolve body.
type resolveRequest struct {
	domain.Query
	Org string `json:"org,omitempty"`
}

// resolveResponse pairs the resolution with the rendered request letters.
type resolveResponse struct {
	domain.Resolution
	Letters   []letter.Letter `json:"letters,omitempty"`
	Aggregate letter.Letter   `json:"aggregate"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.usableSnapshot(w)
	if !ok {
		return
	}

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	res := domain.Resolve(r.Context(), req.Query, snap.Rows, s.geocoder, s.logger)
	s.metrics.ResolveRequests.WithLabelValues(string(res.Match.Tier)).Inc()
	if res.Advisory != nil {
		s.metrics.ParcelAdvisories.Inc()
	}

	org := req.Org
	if org == "" {
		org = s.defaultOrg
	}
	base := letter.BuildContext(res.County, req.Address, req.ParcelID, req.ProjectNumber)
	letters, aggregate, err := letter.RenderAll(org, res.ByDept, base)
	if err != nil {
		s.metrics.RenderErrors.Inc()
		s.logger.Error("letter rendering failed", "org", org, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.metrics.RendersTotal.Inc()

	writeJSON(w, http.StatusOK, resolveResponse{
		Resolution: res,
		Letters:    letters,
		Aggregate:  aggregate,
	})
}

func (s *Server) handleReload(w http.ResponseWriter, _ *http.Request) {
	if err := s.store.Load(); err != nil {
		s.logger.Error("directory reload failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.store.Snapshot().Report)
}

// usableSnapshot writes the appropriate error state and returns ok=false
// when no snapshot exists or the loaded sheet is missing required columns.
func (s *Server) usableSnapshot(w http.ResponseWriter) (*directory.Snapshot, bool) {
	snap := s.store.Snapshot()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "directory not loaded"})
		return nil, false
	}
	if !snap.Usable() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"error":           "directory unusable",
			"missing_columns": snap.Report.MissingColumns,
		})
		return nil, false
	}
	return snap, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
