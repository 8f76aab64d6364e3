// Package server exposes the assessment service over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/qihang-dev/qihang/internal/assessment"
	"github.com/qihang-dev/qihang/internal/llm/provider"
	"github.com/qihang-dev/qihang/internal/orchestrator"
	"github.com/qihang-dev/qihang/internal/parse"
	"github.com/qihang-dev/qihang/pkg/observability"
)

// Server wraps the HTTP listener around the assessment service.
type Server struct {
	svc  *orchestrator.Service
	log  *zap.SugaredLogger
	http *http.Server
}

// New builds the server on the given port.
func New(svc *orchestrator.Service, port int, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Server{svc: svc, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/assessment/start", s.handleStart)
	mux.HandleFunc("POST /api/assessment/{sessionID}/answer", s.handleAnswer)
	mux.HandleFunc("GET /api/assessment/{sessionID}/result", s.handleResult)
	mux.Handle("GET /metrics", observability.MetricsHandler())
	mux.HandleFunc("GET /health", observability.HealthHandler())
	mux.HandleFunc("GET /health/live", observability.LivenessHandler())
	mux.HandleFunc("GET /health/ready", observability.ReadinessHandler(nil))

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.withMetrics(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, used in tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// ListenAndServe blocks serving requests until the listener fails or the
// server is shut down.
func (s *Server) ListenAndServe() error {
	s.log.Infow("http server listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	providerName := r.URL.Query().Get("modelType")
	if providerName == "" {
		providerName = "qwen"
	}

	resp, err := s.svc.StartAssessment(r.Context(), key, providerName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	var req orchestrator.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody("invalid_request", "malformed request body"))
		return
	}

	resp, err := s.svc.SubmitAnswer(r.Context(), sessionID, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	result, err := s.svc.GetResult(r.Context(), sessionID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorBody(code, message string) apiError {
	return apiError{Code: code, Message: message}
}

// writeError maps service errors to HTTP statuses. Upstream model failures
// are gateway errors; everything the client can fix is 4xx.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var provErr *provider.Error
	var malformed *parse.MalformedResponseError

	switch {
	case errors.Is(err, assessment.ErrInvalidAccessKey):
		s.writeJSON(w, http.StatusBadRequest, errorBody("invalid_access_key", err.Error()))
	case errors.Is(err, assessment.ErrUnsupportedProvider):
		s.writeJSON(w, http.StatusBadRequest, errorBody("unsupported_provider", err.Error()))
	case errors.Is(err, assessment.ErrSessionNotFound):
		s.writeJSON(w, http.StatusNotFound, errorBody("session_not_found", err.Error()))
	case errors.Is(err, assessment.ErrSessionCompleted):
		s.writeJSON(w, http.StatusConflict, errorBody("session_completed", err.Error()))
	case errors.Is(err, assessment.ErrNotCompleted):
		s.writeJSON(w, http.StatusConflict, errorBody("assessment_not_complete", err.Error()))
	case errors.As(err, &provErr):
		s.log.Warnw("provider failure", "path", r.URL.Path, "provider", provErr.Provider, "code", provErr.Code)
		s.writeJSON(w, http.StatusBadGateway, errorBody("provider_error", provErr.Message))
	case errors.As(err, &malformed):
		s.log.Warnw("malformed model response", "path", r.URL.Path, "reason", malformed.Reason)
		s.writeJSON(w, http.StatusBadGateway, errorBody("malformed_model_response", malformed.Reason))
	default:
		s.log.Errorw("request failed", "path", r.URL.Path, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorw("write response", "error", err)
	}
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		// Label by route pattern, not raw path, to keep cardinality bounded.
		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		observability.RecordHTTPRequest(r.Method, path, strconv.Itoa(rec.status), time.Since(start))
	})
}
