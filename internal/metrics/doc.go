// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered against the default registry at package init time
via promauto, so importing any instrumented package is enough to make its series
visible. The agent exposes them at the /metrics endpoint in Prometheus text
format:

	curl http://localhost:43594/metrics

# Available Metrics

Snapshot Decode Metrics:
  - snapshot_decode_duration_seconds: Binary payload decode latency (histogram)
  - snapshot_decode_bytes: Decoded payload size (histogram)
  - snapshot_decode_errors_total: Failed decodes (counter)
    Labels: error_type (unsupported_version, truncated, other)
  - snapshots_decoded_total: Successfully decoded snapshots (counter)
  - deltas_decoded_total: Delta records carried by decoded payloads (counter)

Chart Derivation Metrics:
  - chart_derivation_duration_seconds: Series derivation time (histogram)
    Labels: chart (snapshot_diff, delta_sequence, heatmap)
  - chart_points_total: Points emitted by derivations (counter)
    Labels: chart
  - chart_anomalies_detected_total: Statistical outliers flagged (counter)
    Labels: category (skill, boss, activity)
  - chart_gains_suppressed_total: Gains zeroed or clamped for display (counter)
    Labels: reason (outlier_cap, noise_floor)

API Client Metrics:
  - api_client_requests_total: Upstream Hazelmere API calls (counter)
    Labels: operation, status
  - api_client_request_duration_seconds: Upstream call latency (histogram)
    Labels: operation
  - api_client_dedup_hits_total: Requests coalesced onto an in-flight call (counter)
    Labels: operation
  - circuit_breaker_state: Breaker state, 0=closed 1=half-open 2=open (gauge)
    Labels: name
  - circuit_breaker_state_transitions_total: Breaker transitions (counter)
    Labels: name, from_state, to_state

Snapshot Stream Metrics:
  - stream_connects_total / stream_reconnects_total: WebSocket lifecycle (counters)
  - stream_snapshots_received_total: Pushed snapshots consumed (counter)
  - stream_errors_total: Stream failures (counter)
    Labels: error_type

Render and Gesture Metrics:
  - render_frames_total: Frames drawn (counter), Labels: chart
  - render_frame_duration_seconds: Frame time (histogram), Labels: chart
  - gesture_transitions_total: Interaction state changes (counter)
    Labels: from, to

System Metrics:
  - app_info: Version and build information (gauge), Labels: version, go_version
  - app_uptime_seconds: Process uptime (gauge)

# Thread Safety

All recording functions are safe for concurrent use. The Prometheus client
library handles synchronization internally.

# Cardinality

Label values are drawn from small fixed sets: client operations and chart kinds
are compile-time constants, error types are classified into a closed list, and
no player or snapshot identifiers ever appear as labels.
*/
package metrics
