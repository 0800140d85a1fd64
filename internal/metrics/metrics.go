// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package metrics

import (
	"errors"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ctfloyd/hazelmere-charts/internal/wire"
)

var (
	// Snapshot Decode Metrics
	DecodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "snapshot_decode_duration_seconds",
			Help:    "Duration of binary snapshot payload decodes in seconds",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05}, // decodes run well under a millisecond on typical payloads
		},
	)

	DecodeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "snapshot_decode_bytes",
			Help:    "Size of decoded binary snapshot payloads in bytes",
			Buckets: []float64{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}, // a full snapshot is ~700B, two years of deltas ~100KB
		},
	)

	DecodeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_decode_errors_total",
			Help: "Total number of binary snapshot decode failures",
		},
		[]string{"error_type"}, // "unsupported_version", "truncated", "other"
	)

	SnapshotsDecoded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "snapshots_decoded_total",
			Help: "Total number of successfully decoded snapshots",
		},
	)

	DeltasDecoded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deltas_decoded_total",
			Help: "Total number of delta records carried by decoded payloads",
		},
	)

	// Chart Derivation Metrics
	ChartDerivationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chart_derivation_duration_seconds",
			Help:    "Duration of chart series derivation in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"chart"}, // "snapshot_diff", "delta_sequence", "heatmap"
	)

	ChartPointsDerived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chart_points_total",
			Help: "Total number of chart points emitted by derivations",
		},
		[]string{"chart"},
	)

	AnomaliesDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chart_anomalies_detected_total",
			Help: "Total number of statistical outliers flagged during derivation",
		},
		[]string{"category"}, // "skill", "boss", "activity"
	)

	GainsSuppressed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chart_gains_suppressed_total",
			Help: "Total number of per-interval gains zeroed or clamped for display",
		},
		[]string{"reason"}, // "outlier_cap", "noise_floor"
	)

	// API Client Metrics
	APIClientRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_client_requests_total",
			Help: "Total number of Hazelmere API requests",
		},
		[]string{"operation", "status"},
	)

	APIClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_client_request_duration_seconds",
			Help:    "Hazelmere API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // interval queries against cold upstream caches can take seconds
		},
		[]string{"operation"},
	)

	APIClientDedupHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_client_dedup_hits_total",
			Help: "Total number of requests coalesced onto an identical in-flight call",
		},
		[]string{"operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Snapshot Stream Metrics
	StreamConnects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stream_connects_total",
			Help: "Total number of snapshot stream WebSocket connections established",
		},
	)

	StreamReconnects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stream_reconnects_total",
			Help: "Total number of snapshot stream reconnect attempts",
		},
	)

	StreamSnapshotsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stream_snapshots_received_total",
			Help: "Total number of snapshots received over the stream",
		},
	)

	StreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stream_errors_total",
			Help: "Total number of snapshot stream errors",
		},
		[]string{"error_type"}, // "dial", "read", "decode"
	)

	// Render Metrics
	RenderFrames = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "render_frames_total",
			Help: "Total number of frames drawn per chart kind",
		},
		[]string{"chart"},
	)

	RenderFrameDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "render_frame_duration_seconds",
			Help:    "Frame encode and draw time in seconds",
			Buckets: []float64{0.001, 0.002, 0.004, 0.008, 0.016, 0.033, 0.066, 0.1}, // 16ms is the 60fps budget
		},
		[]string{"chart"},
	)

	// Gesture Metrics
	GestureTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gesture_transitions_total",
			Help: "Total number of interaction state machine transitions",
		},
		[]string{"from", "to"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDecode records one binary decode attempt. Successful decodes count
// toward SnapshotsDecoded; failures are classified by sentinel.
func RecordDecode(size int, duration time.Duration, err error) {
	DecodeDuration.Observe(duration.Seconds())
	DecodeBytes.Observe(float64(size))
	if err != nil {
		DecodeErrors.WithLabelValues(decodeErrorType(err)).Inc()
		return
	}
	SnapshotsDecoded.Inc()
}

// decodeErrorType maps a decode error onto a closed label set.
func decodeErrorType(err error) string {
	switch {
	case errors.Is(err, wire.ErrUnsupportedVersion):
		return "unsupported_version"
	case errors.Is(err, wire.ErrTruncated):
		return "truncated"
	default:
		return "other"
	}
}

// AddDeltasDecoded records the number of delta records carried by a payload.
func AddDeltasDecoded(n int) {
	if n > 0 {
		DeltasDecoded.Add(float64(n))
	}
}

// RecordChartDerivation records one chart series derivation.
func RecordChartDerivation(chart string, points int, duration time.Duration) {
	ChartDerivationDuration.WithLabelValues(chart).Observe(duration.Seconds())
	ChartPointsDerived.WithLabelValues(chart).Add(float64(points))
}

// RecordAnomalies records outliers flagged for one metric category.
func RecordAnomalies(category string, count int) {
	if count > 0 {
		AnomaliesDetected.WithLabelValues(category).Add(float64(count))
	}
}

// RecordGainSuppressed records a per-interval gain zeroed or clamped for display.
func RecordGainSuppressed(reason string) {
	GainsSuppressed.WithLabelValues(reason).Inc()
}

// RecordClientRequest records one Hazelmere API call.
func RecordClientRequest(operation, status string, duration time.Duration) {
	APIClientRequests.WithLabelValues(operation, status).Inc()
	APIClientRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordDedupHit records a request served by an identical in-flight call.
func RecordDedupHit(operation string) {
	APIClientDedupHits.WithLabelValues(operation).Inc()
}

// SetCircuitBreakerState records the current breaker state.
func SetCircuitBreakerState(name string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordCircuitBreakerTransition records a breaker state change.
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordStreamConnect records an established stream connection.
func RecordStreamConnect() {
	StreamConnects.Inc()
}

// RecordStreamReconnect records a reconnect attempt.
func RecordStreamReconnect() {
	StreamReconnects.Inc()
}

// RecordStreamSnapshot records a snapshot received over the stream.
func RecordStreamSnapshot() {
	StreamSnapshotsReceived.Inc()
}

// RecordStreamError records a stream failure by type.
func RecordStreamError(errorType string) {
	StreamErrors.WithLabelValues(errorType).Inc()
}

// RecordRenderFrame records one drawn frame.
func RecordRenderFrame(chart string, duration time.Duration) {
	RenderFrames.WithLabelValues(chart).Inc()
	RenderFrameDuration.WithLabelValues(chart).Observe(duration.Seconds())
}

// RecordGestureTransition records an interaction state change.
func RecordGestureTransition(from, to string) {
	GestureTransitions.WithLabelValues(from, to).Inc()
}

// SetAppInfo publishes version and build information.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// SetUptime publishes process uptime relative to the given start time.
func SetUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
