// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package gesture

import (
	"math"
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/metrics"
	"github.com/ctfloyd/hazelmere-charts/internal/render"
)

// State is the interaction state of one chart.
type State uint8

const (
	Idle State = iota
	Hovering
	DraggingSelect
	DraggingAxis
	Pinching
	Panning
)

func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case DraggingSelect:
		return "dragging_select"
	case DraggingAxis:
		return "dragging_axis"
	case Pinching:
		return "pinching"
	case Panning:
		return "panning"
	default:
		return "idle"
	}
}

// Touch is one active touch point in canvas coordinates.
type Touch struct {
	ID int
	X  float64
	Y  float64
}

const (
	// minDragPx separates a selection drag from an accidental click.
	minDragPx = 10

	// pinchStablePx is the distance wobble under which a two-finger move
	// counts as a pan instead of a zoom.
	pinchStablePx = 5

	// minWindowMs keeps pinch zoom from collapsing below one day.
	minWindowMs = int64(24 * 60 * 60 * 1000)

	// hoverGrace keeps the hover guide up after the last finger lifts, so a
	// tap can be inspected before the guide clears.
	hoverGrace = 2 * time.Second

	axisDragSensitivity = 0.01
)

// Callbacks connect a Machine to its chart. Every field is optional; nil
// callbacks are skipped.
type Callbacks struct {
	// Hover reports the pointer position for nearest-point lookup.
	Hover func(x, y float64)
	// HoverClear removes the hover guide.
	HoverClear func()
	// SelectionPreview reports the in-progress drag range.
	SelectionPreview func(start, end int64)
	// SelectionClear removes the drag highlight, emitted on both completed
	// and aborted drags.
	SelectionClear func()
	// RangeSelect reports a completed time-range selection.
	RangeSelect func(start, end int64)
	// Window reports a pinch or pan view-window change.
	Window func(start, end int64)
	// Ceiling reports an axis-drag rescale.
	Ceiling func(v float64)
}

// Machine is the per-chart interaction state machine: hover, drag-to-select,
// drag-to-rescale, and two-finger pinch-zoom/pan. It owns no rendering; it
// mirrors the chart's layout, view window, and ceiling through setters and
// reports changes through callbacks. All methods must be called from the
// single UI event loop.
type Machine struct {
	cb Callbacks

	layout    render.Layout
	winStart  int64
	winEnd    int64
	fullStart int64
	fullEnd   int64

	ceiling      float64
	ceilingFloor float64
	axisEnabled  bool

	state State

	downX float64
	lastY float64

	prevDist    float64
	prevCenterX float64

	hoverArmed    bool
	hoverDeadline time.Time
}

// NewMachine builds an idle machine with axis dragging enabled.
func NewMachine(cb Callbacks) *Machine {
	return &Machine{cb: cb, axisEnabled: true, ceilingFloor: 1}
}

// State returns the current interaction state.
func (m *Machine) State() State { return m.state }

// SetLayout mirrors the chart layout after a resize.
func (m *Machine) SetLayout(l render.Layout) { m.layout = l }

// SetDataSpan mirrors the full data range, the bound pinch zoom and pan
// clamp against.
func (m *Machine) SetDataSpan(start, end int64) {
	m.fullStart, m.fullEnd = start, end
}

// SetWindow mirrors the current view window. It does not emit the Window
// callback; use it to sync after the chart itself changed.
func (m *Machine) SetWindow(start, end int64) {
	m.winStart, m.winEnd = start, end
}

// Window returns the mirrored view window.
func (m *Machine) Window() (start, end int64) { return m.winStart, m.winEnd }

// SetCeiling mirrors the chart's axis ceiling and its lowest allowed value.
func (m *Machine) SetCeiling(value, floor float64) {
	m.ceiling, m.ceilingFloor = value, floor
}

// EnableAxisDrag toggles the axis-rescale gesture; the heatmap has no
// adjustable axis.
func (m *Machine) EnableAxisDrag(enabled bool) { m.axisEnabled = enabled }

// MouseDown begins a drag: inside the plot box a time-range selection,
// inside the axis gutter a ceiling rescale.
func (m *Machine) MouseDown(x, y float64) {
	m.downX = x
	m.lastY = y
	switch {
	case m.axisEnabled && m.layout.InYAxisGutter(x, y):
		m.transition(DraggingAxis)
	case m.layout.InPlot(x, y):
		m.transition(DraggingSelect)
	}
}

// MouseMove advances the active drag, or updates the hover guide when no
// drag is in progress.
func (m *Machine) MouseMove(x, y float64) {
	switch m.state {
	case DraggingSelect:
		a := m.layout.TimeAtX(m.downX, m.winStart, m.winEnd)
		b := m.layout.TimeAtX(x, m.winStart, m.winEnd)
		if a > b {
			a, b = b, a
		}
		if m.cb.SelectionPreview != nil {
			m.cb.SelectionPreview(a, b)
		}
	case DraggingAxis:
		m.dragCeiling(m.lastY - y)
	default:
		if m.layout.InPlot(x, y) {
			m.hoverArmed = false
			if m.state == Idle {
				m.transition(Hovering)
			}
			if m.cb.Hover != nil {
				m.cb.Hover(x, y)
			}
		} else if m.state == Hovering {
			m.clearHover()
			m.transition(Idle)
		}
	}
	m.lastY = y
}

// MouseUp ends any drag and resets to idle regardless of prior state. A
// selection drag at or under the click threshold emits nothing.
func (m *Machine) MouseUp(x, y float64) {
	if m.state == DraggingSelect {
		if m.cb.SelectionClear != nil {
			m.cb.SelectionClear()
		}
		if math.Abs(x-m.downX) > minDragPx {
			a := m.layout.TimeAtX(m.downX, m.winStart, m.winEnd)
			b := m.layout.TimeAtX(x, m.winStart, m.winEnd)
			if a > b {
				a, b = b, a
			}
			if m.cb.RangeSelect != nil {
				m.cb.RangeSelect(a, b)
			}
		}
	}
	m.transition(Idle)
}

// MouseLeave aborts any in-progress drag without emitting a selection and
// clears the hover guide.
func (m *Machine) MouseLeave() {
	if m.state == DraggingSelect && m.cb.SelectionClear != nil {
		m.cb.SelectionClear()
	}
	m.clearHover()
	m.transition(Idle)
}

// TouchStart begins a touch interaction: two fingers open a pinch, one
// finger inside the plot shows the hover guide.
func (m *Machine) TouchStart(touches []Touch, now time.Time) {
	m.hoverArmed = false
	if len(touches) >= 2 {
		m.prevDist = touchDist(touches[0], touches[1])
		m.prevCenterX = (touches[0].X + touches[1].X) / 2
		m.transition(Pinching)
		return
	}
	if len(touches) == 1 && m.layout.InPlot(touches[0].X, touches[0].Y) {
		m.transition(Hovering)
		if m.cb.Hover != nil {
			m.cb.Hover(touches[0].X, touches[0].Y)
		}
	}
}

// TouchMove advances the pinch with two fingers, or the hover guide with
// one. A single finger never pans the window.
func (m *Machine) TouchMove(touches []Touch, now time.Time) {
	switch {
	case len(touches) >= 2 && (m.state == Pinching || m.state == Panning):
		m.pinchUpdate(touches)
	case len(touches) == 1 && m.state == Hovering:
		if m.cb.Hover != nil {
			m.cb.Hover(touches[0].X, touches[0].Y)
		}
	}
}

// TouchEnd resets gesture state for lifted fingers; remaining holds the
// touches still down. Lifting every finger keeps the hover guide up for the
// grace period before Tick clears it.
func (m *Machine) TouchEnd(remaining []Touch, now time.Time) {
	switch len(remaining) {
	case 0:
		m.prevDist = 0
		if m.state == Hovering {
			m.hoverArmed = true
			m.hoverDeadline = now.Add(hoverGrace)
			return
		}
		m.transition(Idle)
	case 1:
		m.prevDist = 0
		if m.layout.InPlot(remaining[0].X, remaining[0].Y) {
			m.transition(Hovering)
			if m.cb.Hover != nil {
				m.cb.Hover(remaining[0].X, remaining[0].Y)
			}
		} else {
			m.transition(Idle)
		}
	default:
		m.prevDist = touchDist(remaining[0], remaining[1])
		m.prevCenterX = (remaining[0].X + remaining[1].X) / 2
	}
}

// Tick advances time-based state: it clears the hover guide once the
// post-touch grace period expires. The host calls it from its frame loop.
func (m *Machine) Tick(now time.Time) {
	if m.hoverArmed && now.After(m.hoverDeadline) {
		m.hoverArmed = false
		m.clearHover()
		if m.state == Hovering {
			m.transition(Idle)
		}
	}
}

// pinchUpdate rescales and pans the view window from the current two-touch
// geometry. Zoom anchors at the pinch center, not the window center; center
// drift pans; a pinch whose distance holds steady is a pan.
func (m *Machine) pinchUpdate(touches []Touch) {
	dist := touchDist(touches[0], touches[1])
	centerX := (touches[0].X + touches[1].X) / 2
	pw := m.layout.PlotWidth()
	span := m.winEnd - m.winStart
	if pw <= 0 || dist <= 0 || m.prevDist <= 0 || span <= 0 {
		return
	}

	stable := math.Abs(dist-m.prevDist) < pinchStablePx
	newSpan := span
	if !stable {
		newSpan = m.clampSpan(int64(float64(span) * m.prevDist / dist))
	}
	if stable {
		m.transition(Panning)
	} else {
		m.transition(Pinching)
	}

	f := (centerX - m.layout.PlotLeft()) / pw
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	anchor := m.winStart + int64(f*float64(span))
	start := anchor - int64(f*float64(newSpan))
	start -= int64((centerX - m.prevCenterX) * float64(span) / pw)

	m.setWindow(m.clampWindow(start, start+newSpan))
	m.prevDist, m.prevCenterX = dist, centerX
}

// dragCeiling applies one increment of the axis rescale. Sensitivity scales
// with log10 of the current ceiling, so the drag feels proportional at 100K
// and at 100M alike. Dragging up raises the ceiling.
func (m *Machine) dragCeiling(dyUp float64) {
	if m.ceiling <= 0 {
		return
	}
	mag := math.Log10(math.Max(m.ceiling, m.ceilingFloor))
	if mag < 1 {
		mag = 1
	}
	factor := 1 + dyUp*axisDragSensitivity*mag/6
	if factor < 0.01 {
		factor = 0.01
	}
	next := m.ceiling * factor
	if next < m.ceilingFloor {
		next = m.ceilingFloor
	}
	m.ceiling = next
	if m.cb.Ceiling != nil {
		m.cb.Ceiling(next)
	}
}

// clampSpan bounds a pinch span between one day and the full data span. A
// data set shorter than a day bounds at its own span instead.
func (m *Machine) clampSpan(span int64) int64 {
	full := m.fullEnd - m.fullStart
	if full <= 0 {
		return span
	}
	lo := minWindowMs
	if full < lo {
		lo = full
	}
	if span < lo {
		return lo
	}
	if span > full {
		return full
	}
	return span
}

// clampWindow slides a window of fixed span back inside the data range.
func (m *Machine) clampWindow(start, end int64) (int64, int64) {
	if m.fullEnd <= m.fullStart {
		return start, end
	}
	span := end - start
	if start < m.fullStart {
		start, end = m.fullStart, m.fullStart+span
	}
	if end > m.fullEnd {
		start, end = m.fullEnd-span, m.fullEnd
	}
	if start < m.fullStart {
		start = m.fullStart
	}
	return start, end
}

func (m *Machine) setWindow(start, end int64) {
	if end <= start {
		return
	}
	m.winStart, m.winEnd = start, end
	if m.cb.Window != nil {
		m.cb.Window(start, end)
	}
}

func (m *Machine) clearHover() {
	if m.cb.HoverClear != nil {
		m.cb.HoverClear()
	}
}

func (m *Machine) transition(next State) {
	if next == m.state {
		return
	}
	metrics.RecordGestureTransition(m.state.String(), next.String())
	m.state = next
}

func touchDist(a, b Touch) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
