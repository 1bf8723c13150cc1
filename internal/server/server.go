// Package server exposes the aggregation pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotnews/internal/app"
	"hotnews/internal/metrics"
	"hotnews/internal/model"
)

// Pipeline is the part of the aggregation pipeline the handlers call.
type Pipeline interface {
	HotTopics(ctx context.Context, platformKey string) []model.Topic
	GenerateForTopic(ctx context.Context, req app.GenerateRequest) (model.GeneratedContent, error)
}

// Config contains server configuration.
type Config struct {
	Addr        string
	CORSEnabled bool
}

// DefaultConfig returns default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		CORSEnabled: true,
	}
}

// Server is the API server.
type Server struct {
	pipeline    Pipeline
	addr        string
	server      *http.Server
	mux         *http.ServeMux
	corsEnabled bool
}

// New creates an API server around the pipeline.
func New(cfg Config, pipeline Pipeline) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	s := &Server{
		pipeline:    pipeline,
		addr:        cfg.Addr,
		mux:         http.NewServeMux(),
		corsEnabled: cfg.CORSEnabled,
	}
	s.registerRoutes()
	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.middleware(s.mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute, // generation calls can be slow
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/api/hot-topics", s.handleHotTopics)
	s.mux.HandleFunc("/api/generate-content", s.handleGenerateContent)
	s.mux.HandleFunc("/api/test", s.handleTest)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.Handle("/metrics", promhttp.Handler())
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the API server and blocks until it stops.
func (s *Server) Start() error {
	slog.Info("starting API server", "addr", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down API server")
	return s.server.Shutdown(ctx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// middleware applies CORS, request logging and metrics to all routes.
func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.corsEnabled {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
		}

		// Health and metrics scrapes would drown out the request log.
		quiet := r.URL.Path == "/health" || r.URL.Path == "/metrics"

		reqID := uuid.NewString()
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		if !quiet {
			slog.Info("request", "id", reqID, "method", r.Method, "path", r.URL.Path)
		}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		if !quiet {
			slog.Info("response", "id", reqID, "status", rec.status, "elapsed", elapsed)
			metrics.HTTPRequests.WithLabelValues(r.URL.Path, strconv.Itoa(rec.status)).Inc()
			metrics.HTTPDuration.WithLabelValues(r.URL.Path).Observe(elapsed.Seconds())
		}
	})
}

// apiResponse is the envelope every API route answers with.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func (s *Server) handleHotTopics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	topics := s.pipeline.HotTopics(r.Context(), r.URL.Query().Get("platform"))
	respondJSON(w, http.StatusOK, apiResponse{Success: true, Data: topics})
}

type generateContentRequest struct {
	Topic        string       `json:"topic"`
	Source       string       `json:"source"`
	Platform     string       `json:"platform"`
	OriginalNews *model.Topic `json:"originalNews"`
}

func (s *Server) handleGenerateContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req generateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	content, err := s.pipeline.GenerateForTopic(r.Context(), app.GenerateRequest{
		Topic:        req.Topic,
		Source:       req.Source,
		Platform:     req.Platform,
		OriginalNews: req.OriginalNews,
	})
	if err != nil {
		if errors.Is(err, app.ErrMissingTopic) {
			respondError(w, http.StatusBadRequest, "缺少话题参数")
			return
		}
		slog.Error("content generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "生成内容失败")
		return
	}

	respondJSON(w, http.StatusOK, apiResponse{Success: true, Data: content})
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "API is working!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"time":   time.Now().UTC(),
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, apiResponse{Success: false, Message: message})
}
