// Copyright 2026 SieveLabs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/sievelabs/assessrec/core"
)

// Recommender produces ranked assessment recommendations for a query.
// *recommend.Recommender satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, query string, topK int) ([]core.Candidate, error)
}

// Server is the HTTP edge of the recommendation engine.
type Server struct {
	recommender  Recommender
	addr         string
	readTimeout  time.Duration
	writeTimeout time.Duration
	validate     *validator.Validate
	logger       *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithAddr sets the listen address.
// Default is ":8080".
func WithAddr(addr string) Option {
	return func(s *Server) error {
		s.addr = addr
		return nil
	}
}

// WithTimeouts sets the read and write timeouts of the underlying
// http.Server. Defaults are 10s read and 30s write; the write timeout
// bounds the whole recommendation pipeline including LLM calls.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) error {
		s.readTimeout = read
		s.writeTimeout = write
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates a new HTTP server over the given recommender.
func NewServer(recommender Recommender, opts ...Option) (*Server, error) {
	if recommender == nil {
		return nil, ErrRecommenderRequired
	}

	s := &Server{
		recommender:  recommender,
		addr:         ":8080",
		readTimeout:  10 * time.Second,
		writeTimeout: 30 * time.Second,
		validate:     validator.New(),
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Router builds the HTTP handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/recommend", s.handleRecommend)

	return r
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
