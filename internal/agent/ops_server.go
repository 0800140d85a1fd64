// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ctfloyd/hazelmere-charts/internal/config"
	"github.com/ctfloyd/hazelmere-charts/internal/logging"
	"github.com/ctfloyd/hazelmere-charts/internal/metrics"
)

const headerCorrelationID = "X-Correlation-ID"

type healthzResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// NewOpsRouter builds the agent's operational HTTP surface: /healthz and
// /metrics, CORS-opened for the local dashboard dev origin.
func NewOpsRouter(cfg config.AgentConfig, started time.Time) http.Handler {
	r := chi.NewRouter()

	r.Use(correlationID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	// RealIP runs first so the limiter keys on the client address, not the proxy's.
	if cfg.RateLimitRequests > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}
	// CORS must be global to handle OPTIONS preflight.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", headerCorrelationID},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		metrics.SetUptime(started)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(healthzResponse{
			Status: "ok",
			Uptime: time.Since(started).Round(time.Second).String(),
		})
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// correlationID ensures every ops request carries a correlation ID, echoing
// it back in the response header.
func correlationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerCorrelationID)
		if id == "" {
			id = logging.GenerateCorrelationID()
		}
		w.Header().Set(headerCorrelationID, id)
		next.ServeHTTP(w, r.WithContext(logging.ContextWithCorrelationID(r.Context(), id)))
	})
}

// HTTPServer matches *http.Server's lifecycle methods, allowing tests to
// substitute a mock.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// OpsServerService wraps the ops HTTP server as a supervised service,
// translating http.Server's blocking ListenAndServe into suture's
// context-aware Serve:
//
//  1. Starts ListenAndServe in a goroutine
//  2. Waits for context cancellation or a server error
//  3. On shutdown, calls Shutdown with the configured timeout
type OpsServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
}

// NewOpsServerService creates the service wrapper. The shutdownTimeout bounds
// how long active connections get to finish during graceful shutdown.
func NewOpsServerService(server HTTPServer, shutdownTimeout time.Duration) *OpsServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &OpsServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "ops-server",
	}
}

// Serve implements suture.Service. http.ErrServerClosed is converted to nil
// since it is expected on shutdown.
func (s *OpsServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ops server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		// The original context is already canceled, so shutdown gets its own.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("ops server shutdown failed: %w", err)
		}

		<-errCh
		return ctx.Err()
	}
}

// String implements fmt.Stringer; suture uses it to identify the service in
// log messages.
func (s *OpsServerService) String() string {
	return s.name
}
