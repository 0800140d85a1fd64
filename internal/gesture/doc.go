// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

// Package gesture turns raw pointer and touch events into chart
// interactions: hover with nearest-point lookup, drag-to-select a time
// range, drag-to-rescale the Y-axis ceiling, and two-finger pinch-zoom and
// pan with view-window clamping.
//
// Each chart owns one Machine. The host forwards DOM-level events
// (MouseDown, TouchMove, and so on) and a per-frame Tick; the machine keeps
// an explicit state (idle, hovering, dragging_select, dragging_axis,
// pinching, panning) and reports effects through Callbacks. It never calls
// into a renderer directly, which keeps it testable with plain function
// values and free of GL concerns.
//
// Two behaviors are easy to get wrong and are pinned by tests here. A
// released selection drag at or under the 10px threshold is an accidental
// click and emits nothing. And a single touch only ever moves the hover
// guide; panning requires two fingers, with the zoom anchored at the pinch
// center rather than the window center.
package gesture
