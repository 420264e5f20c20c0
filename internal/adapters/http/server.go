// Package http exposes the simulator as a stateless JSON API.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/machina"
	"github.com/aretw0/machina/internal/compiler"
	"github.com/aretw0/machina/internal/validator"
	"github.com/aretw0/machina/pkg/domain"
	"github.com/aretw0/machina/pkg/observability"
	"github.com/aretw0/machina/pkg/ports"
)

// Server hosts the run and validate endpoints. Each request builds its own
// machine, so the server is safe for concurrent use without locking.
type Server struct {
	Logger  *slog.Logger
	Metrics *observability.Metrics

	parser *compiler.Parser
}

// RunRequest is the body of POST /v1/run.
type RunRequest struct {
	Model  string `json:"model"`
	Format string `json:"format,omitempty"`
	Input  string `json:"input"`
	Limit  *int   `json:"limit,omitempty"`
	Trace  bool   `json:"trace,omitempty"`
}

// RunResponse reports the terminal outcome plus the final configuration.
type RunResponse struct {
	Status   domain.Status       `json:"status"`
	Accepted bool                `json:"accepted"`
	Steps    int                 `json:"steps"`
	State    string              `json:"state"`
	Tape     domain.TapeSnapshot `json:"tape"`
	Trace    []domain.StepResult `json:"trace,omitempty"`
}

// ValidateRequest is the body of POST /v1/validate.
type ValidateRequest struct {
	Model  string `json:"model"`
	Format string `json:"format,omitempty"`
}

// ValidateResponse lists every structural problem found, if any.
type ValidateResponse struct {
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler builds the HTTP router. The registry backs the /metrics
// endpoint; pass a fresh one per server to keep tests independent.
func NewHandler(logger *slog.Logger, registry *prometheus.Registry) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		Logger:  logger,
		Metrics: observability.NewMetrics(registry),
		parser:  compiler.NewParser(),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Post("/v1/run", s.handleRun)
	r.Post("/v1/validate", s.handleValidate)

	return r
}

func (s *Server) handleRun(w http.ResponseWriter, req *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	model, err := s.parser.Parse([]byte(body.Model), ports.Format(body.Format))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	limit := domain.NoStepLimit
	if body.Limit != nil {
		limit = *body.Limit
	}

	var trace []domain.StepResult
	hooks := s.Metrics.Hooks()
	if body.Trace {
		metricsStep := hooks.OnStep
		hooks.OnStep = func(ev *domain.StepEvent) {
			metricsStep(ev)
			trace = append(trace, ev.Result)
		}
	}

	sim, err := machina.New(model,
		machina.WithStepLimit(limit),
		machina.WithHooks(hooks),
		machina.WithLogger(s.Logger),
	)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	started := time.Now()
	res, err := sim.Run(body.Input)
	s.Metrics.ObserveRun(time.Since(started))
	if err != nil {
		s.Logger.Error("run failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	id := sim.Identifier()
	writeJSON(w, http.StatusOK, RunResponse{
		Status:   res.Status,
		Accepted: res.Accepted(),
		Steps:    res.Steps,
		State:    id.State,
		Tape:     id.Tape,
		Trace:    trace,
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, req *http.Request) {
	var body ValidateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	model, err := s.parser.Parse([]byte(body.Model), ports.Format(body.Format))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	resp := ValidateResponse{Valid: true}
	if err := validator.ValidateModel(model); err != nil {
		resp.Valid = false
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			resp.Problems = verr.Problems
		} else {
			resp.Problems = []string{err.Error()}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
