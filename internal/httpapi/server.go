package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/luke31A/urlrequest/internal/domain"
	"github.com/luke31A/urlrequest/internal/generate"
	apimw "github.com/luke31A/urlrequest/internal/httpapi/middleware"
	"github.com/luke31A/urlrequest/internal/notify"
	"github.com/luke31A/urlrequest/internal/repo"
)

// Runner runs a prepared candidate list through the prober.
type Runner interface {
	Run(ctx context.Context, candidates []domain.Candidate) []domain.ProbeResult
}

type Server struct {
	Logger   *zap.Logger
	Scans    repo.ScanStore
	Runner   Runner
	Notifier notify.Notifier

	// ImplScanLimit caps the IMPL range one request may probe; zero
	// means generate.MaxImplRange.
	ImplScanLimit int
}

func NewServer(l *zap.Logger, scans repo.ScanStore, runner Runner, notifier notify.Notifier) *Server {
	return &Server{Logger: l, Scans: scans, Runner: runner, Notifier: notifier}
}

func (s *Server) Router(keys apimw.Keys, publicRPM, publicBurst, adminRPM, adminBurst int) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RateLimit(publicRPM, publicBurst))
		r.Use(apimw.RequireAny(keys))
		r.Post("/api/scan", s.handleScan)
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RateLimit(adminRPM, adminBurst))
		r.Use(apimw.RequireAdmin(keys))
		r.Get("/api/scans", s.handleListScans)
	})

	return r
}

type scanPayload struct {
	TenantID  string `json:"tenant_id"`
	ImplStart int    `json:"impl_start"`
	ImplEnd   int    `json:"impl_end"`
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var p scanPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}

	candidates, err := generate.GenerateCapped(p.TenantID, p.ImplStart, p.ImplEnd, s.ImplScanLimit)
	if err != nil {
		if errors.Is(err, generate.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "generate failed")
		return
	}

	started := time.Now().UTC()
	results := s.Runner.Run(r.Context(), candidates)

	sc := &domain.Scan{
		TenantID:   domain.TenantID(p.TenantID),
		Results:    results,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}
	if err := s.Scans.Append(r.Context(), sc); err != nil {
		s.Logger.Warn("scan_store_error", zap.Error(err))
	}

	if s.Notifier != nil {
		title, text := notify.ScanSummary(sc)
		if err := s.Notifier.Send(r.Context(), title, text); err != nil {
			s.Logger.Warn("notify_error", zap.Error(err))
		}
	}

	s.Logger.Info("scan_complete",
		zap.String("tenant_id", p.TenantID),
		zap.Int("candidates", len(candidates)),
		zap.Int("reachable", sc.ReachableCount()),
		zap.Duration("took", sc.FinishedAt.Sub(sc.StartedAt)),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sc)
}

func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	scans, err := s.Scans.Recent(r.Context(), 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(scans)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
