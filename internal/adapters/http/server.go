package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aretw0/factors"
	"github.com/aretw0/factors/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// maxBatch bounds the numbers accepted by one POST /factorize request.
	maxBatch = 10000
	// maxBodyBytes bounds the POST /factorize body.
	maxBodyBytes = 1 << 20
)

// Engine is the part of the factors engine the HTTP API needs.
type Engine interface {
	Factorize(ctx context.Context, n int64) (domain.Result, error)
}

// Server serves the factorization API.
type Server struct {
	Engine   Engine
	Gatherer prometheus.Gatherer
}

// ResultResponse is the JSON form of a domain.Result.
type ResultResponse struct {
	N       int64     `json:"n"`
	Found   bool      `json:"found"`
	Factors *[2]int64 `json:"factors,omitempty"`
}

// BatchRequest is the body of POST /factorize.
type BatchRequest struct {
	Numbers []int64 `json:"numbers"`
}

// BatchResponse lists results in request order.
type BatchResponse struct {
	Results []ResultResponse `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a new HTTP handler for the engine.
// When gatherer is non-nil, its metrics are exposed on /metrics.
func NewHandler(engine Engine, gatherer prometheus.Gatherer) http.Handler {
	s := &Server{Engine: engine, Gatherer: gatherer}

	r := chi.NewRouter()
	r.Get("/health", s.Health)
	r.Get("/info", s.Info)
	r.Get("/factorize/{n}", s.FactorizeOne)
	r.Post("/factorize", s.FactorizeBatch)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Info handles GET /info.
func (s *Server) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "factors-http",
		"version": factors.Version,
	})
}

// FactorizeOne handles GET /factorize/{n}.
func (s *Server) FactorizeOne(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseInt(chi.URLParam(r, "n"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: domain.ErrInvalidNumber.Error()})
		slog.Warn("FactorizeOne: invalid number", "value", chi.URLParam(r, "n"))
		return
	}

	res, err := s.Engine.Factorize(r.Context(), n)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(res))
}

// FactorizeBatch handles POST /factorize.
func (s *Server) FactorizeBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var body BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		slog.Warn("FactorizeBatch: invalid request body", "error", err)
		return
	}
	if len(body.Numbers) > maxBatch {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "too many numbers"})
		return
	}

	resp := BatchResponse{Results: make([]ResultResponse, 0, len(body.Numbers))}
	for _, n := range body.Numbers {
		if err := r.Context().Err(); err != nil {
			slog.Info("FactorizeBatch: request cancelled", "done", len(resp.Results), "total", len(body.Numbers))
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
			return
		}
		res, err := s.Engine.Factorize(r.Context(), n)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp.Results = append(resp.Results, toResponse(res))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNegativeNumber) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	slog.Error("factorize failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func toResponse(r domain.Result) ResultResponse {
	resp := ResultResponse{N: r.N, Found: r.Found}
	if r.Found {
		resp.Factors = &[2]int64{r.Pair.Small, r.Pair.Large}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
