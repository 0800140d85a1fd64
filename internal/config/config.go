// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package config

import (
	"fmt"
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/validation"
)

// Config is the complete application configuration, assembled from struct
// defaults, an optional YAML file, and environment variable overrides.
type Config struct {
	API     APIConfig     `koanf:"api"`
	Chart   ChartConfig   `koanf:"chart"`
	Agent   AgentConfig   `koanf:"agent"`
	Logging LoggingConfig `koanf:"logging"`
}

// APIConfig configures the Hazelmere API client: where the service lives and
// how hard the client is allowed to lean on it.
type APIConfig struct {
	BaseURL        string        `koanf:"base_url" validate:"required,url"` // Hazelmere API base URL (http://localhost:8080)
	Timeout        time.Duration `koanf:"timeout" validate:"gt=0"`          // Per-request timeout, including body read
	RateLimitRPS   float64       `koanf:"rate_limit_rps" validate:"gte=0"`  // Outbound request pacing; 0 disables pacing
	RateLimitBurst int           `koanf:"rate_limit_burst" validate:"gte=0"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig tunes the client circuit breaker. The breaker trips after
// ConsecutiveFailures failed calls and probes again after Timeout.
type BreakerConfig struct {
	MaxRequests         uint32        `koanf:"max_requests" validate:"gte=1"` // Probes allowed while half-open
	Interval            time.Duration `koanf:"interval" validate:"gte=0"`     // Closed-state count reset cycle; 0 never resets
	Timeout             time.Duration `koanf:"timeout" validate:"gt=0"`       // Open-state duration before half-open
	ConsecutiveFailures uint32        `koanf:"consecutive_failures" validate:"gte=1"`
}

// ChartConfig selects what the chart derivation pipeline computes by default.
// Outlier fencing is intentionally not configurable; only display floors are.
type ChartConfig struct {
	Activity     string  `koanf:"activity" validate:"required"`                      // Activity name, e.g. "Overall", "Attack", "Zulrah"
	Window       string  `koanf:"window" validate:"oneof=auto daily weekly monthly"` // Aggregation window; auto picks by span
	CeilingFloor float64 `koanf:"ceiling_floor" validate:"gte=0"`                    // Minimum bar-chart Y ceiling
}

// AgentConfig configures watch mode: the ops listener and the snapshot
// stream watcher.
type AgentConfig struct {
	ListenAddr        string        `koanf:"listen_addr" validate:"required"`      // Ops HTTP listener (/healthz, /metrics)
	CORSOrigins       []string      `koanf:"cors_origins"`                         // Allowed origins for the ops surface
	StreamUserIDs     []string      `koanf:"stream_user_ids"`                      // Users whose snapshot streams to watch
	PollInterval      time.Duration `koanf:"poll_interval" validate:"gt=0"`        // Fallback snapshot poll cadence when the stream is down
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"gte=0"` // Per-IP requests allowed per window on the ops listener; 0 disables
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gte=0"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration after loading. Struct tags cover ranges
// and enumerations; the checks below cover relationships tags cannot express.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("config: %w", verr)
	}

	if _, ok := activity.FromName(c.Chart.Activity); !ok {
		return fmt.Errorf("config: chart.activity: unknown activity %q", c.Chart.Activity)
	}

	// A limiter with no burst capacity would block every request forever.
	if c.API.RateLimitRPS > 0 && c.API.RateLimitBurst < 1 {
		return fmt.Errorf("config: api.rate_limit_burst must be at least 1 when api.rate_limit_rps is set")
	}

	if c.Agent.RateLimitRequests > 0 && c.Agent.RateLimitWindow <= 0 {
		return fmt.Errorf("config: agent.rate_limit_window must be positive when agent.rate_limit_requests is set")
	}

	return nil
}
