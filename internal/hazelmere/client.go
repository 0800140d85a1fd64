// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package hazelmere

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/ctfloyd/hazelmere-charts/internal/config"
	"github.com/ctfloyd/hazelmere-charts/internal/logging"
	"github.com/ctfloyd/hazelmere-charts/internal/metrics"
)

const (
	headerCorrelationID = "X-Correlation-ID"

	contentTypeJSON   = "application/json"
	contentTypeBinary = "application/octet-stream"

	// maxErrorBodySize caps how much of an error response is read for
	// diagnostics, preventing unbounded allocation on large error pages.
	maxErrorBodySize = 64 * 1024

	breakerName = "hazelmere-api"
)

// StatusError is a non-2xx response from the Hazelmere API. 4xx statuses
// count as successful calls for circuit breaker purposes: the service
// answered, the request was wrong.
type StatusError struct {
	Operation string
	Status    int
	Body      string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Operation, e.Status, e.Body)
}

// apiResponse is a fully read 2xx response.
type apiResponse struct {
	status      int
	contentType string
	body        []byte
}

// Client talks to the Hazelmere API. One instance is safe for concurrent use
// and owns its in-flight request deduplication, outbound pacing, and circuit
// breaker state.
//
// The client carries no retry or backoff policy for request/response calls;
// failures surface to the caller, who decides whether to re-fetch. Only the
// long-lived snapshot stream (WatchSnapshots) reconnects on its own.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[*apiResponse]
	flight  singleflight.Group
	log     zerolog.Logger
}

// New builds a client from a validated APIConfig.
func New(cfg config.APIConfig) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, errors.New("hazelmere: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("hazelmere: invalid base URL: %w", err)
	}

	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     logging.WithComponent("hazelmere-client"),
	}
	if cfg.RateLimitRPS > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	c.breaker = gobreaker.NewCircuitBreaker[*apiResponse](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Breaker.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetCircuitBreakerState(name, float64(to))
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var se *StatusError
			return errors.As(err, &se) && se.Status >= 400 && se.Status < 500
		},
	})
	metrics.SetCircuitBreakerState(breakerName, float64(gobreaker.StateClosed))

	return c, nil
}

// get issues a GET and returns the fully read response.
func (c *Client) get(ctx context.Context, op, rawURL, accept string) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", op, err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return c.do(ctx, op, req)
}

// post issues a POST with a JSON body and returns the fully read response.
func (c *Client) post(ctx context.Context, op, rawURL string, payload interface{}) (*apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encoding request: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", op, err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	return c.do(ctx, op, req)
}

// do paces the request through the limiter, runs it under the circuit
// breaker, and records request metrics. Every request carries a correlation
// ID, minted here unless the context already holds one.
func (c *Client) do(ctx context.Context, op string, req *http.Request) (*apiResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: rate limiter: %w", op, err)
		}
	}

	correlationID := logging.CorrelationIDFromContext(ctx)
	if correlationID == "" {
		correlationID = logging.GenerateCorrelationID()
	}
	req.Header.Set(headerCorrelationID, correlationID)

	began := time.Now()
	resp, err := c.breaker.Execute(func() (*apiResponse, error) {
		return c.roundTrip(op, req)
	})
	metrics.RecordClientRequest(op, statusLabel(err), time.Since(began))

	if err != nil {
		c.log.Debug().
			Str("operation", op).
			Str("correlation_id", correlationID).
			Err(err).
			Msg("Request failed")
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp, nil
}

// roundTrip performs one HTTP exchange and reads the body to completion.
func (c *Client) roundTrip(op string, req *http.Request) (*apiResponse, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body := readBodyForError(resp.Body)
		return nil, &StatusError{Operation: op, Status: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return &apiResponse{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        body,
	}, nil
}

// statusLabel maps a request outcome to the bounded status label set used by
// the client request counter.
func statusLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "breaker_open"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	var se *StatusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.Status)
	}
	return "error"
}

// readBodyForError reads at most maxErrorBodySize of a response body for
// error reporting.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		body = append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// decodeInto unmarshals a JSON response body.
func decodeInto(op string, resp *apiResponse, v interface{}) error {
	if err := json.Unmarshal(resp.body, v); err != nil {
		return fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return nil
}

// dedupKey builds the canonical key for an in-flight deduplication entry:
// the method name plus a hash of the JSON-serialized parameter tuple.
func dedupKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
