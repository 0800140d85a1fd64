// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

// Package render is the GPU charting pipeline: a line renderer for
// cumulative series, a bar renderer for per-interval gains, and a calendar
// heatmap renderer, all speaking the glx.Context command surface.
//
// The renderers share one structure. Each compiles its shader programs at
// construction and holds them until Close; construction fails with a
// terminal error when no context or program is available, and the host
// falls back to non-chart UI for that instance only. Each frame rebuilds
// its vertex buffers from scratch: create, upload, draw, delete, never
// retain, so GPU memory cannot grow across re-renders. Axis mapping runs in
// the vertex stage from per-vertex (time offset, value) attributes and
// per-frame uniforms carrying the plot box, view window span, and axis
// domain. Timestamps are rebased to the window start before upload because
// absolute epoch milliseconds exceed float32 precision.
//
// The line renderer interpolates its curve with a monotone cubic Hermite
// spline (no overshoot past the data) and reveals it left to right over
// about a second when the dataset identity changes. The bar renderer clamps
// bars to a user-adjustable ceiling and recolors the clamped ones,
// surfacing anomalies without distorting the axis. The heatmap renderer
// quantizes daily gains onto a nine-step palette and draws rounded tiles
// with a signed-distance-field fragment shader.
//
// Interaction state (hover index, drag selection, view window, bar ceiling)
// is plain renderer state set by the host's gesture layer; it affects only
// what a frame draws, never the derived data itself. Layout recomputes on
// every Resize call, which the host drives from a container size observer.
package render
