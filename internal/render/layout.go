// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package render

import (
	"math"

	"github.com/ctfloyd/hazelmere-charts/internal/outlier"
	"github.com/ctfloyd/hazelmere-charts/internal/timeseries"
)

// Margins frames the plot box inside the canvas. Left leaves room for axis
// labels, bottom for time labels; labels themselves are drawn by the host,
// not the renderers.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DefaultMargins returns the margins all three chart types start from.
func DefaultMargins() Margins {
	return Margins{Top: 16, Right: 16, Bottom: 28, Left: 56}
}

// Layout maps between canvas pixels, timestamps, and axis values. It is
// recomputed on every resize and costs nothing to copy.
type Layout struct {
	Width   float64
	Height  float64
	Margins Margins
}

// NewLayout builds a layout for a canvas of the given CSS pixel size.
func NewLayout(width, height int) Layout {
	return Layout{Width: float64(width), Height: float64(height), Margins: DefaultMargins()}
}

// PlotLeft returns the x of the plot box's left edge.
func (l Layout) PlotLeft() float64 { return l.Margins.Left }

// PlotTop returns the y of the plot box's top edge.
func (l Layout) PlotTop() float64 { return l.Margins.Top }

// PlotWidth returns the plot box width, never negative.
func (l Layout) PlotWidth() float64 {
	return math.Max(0, l.Width-l.Margins.Left-l.Margins.Right)
}

// PlotHeight returns the plot box height, never negative.
func (l Layout) PlotHeight() float64 {
	return math.Max(0, l.Height-l.Margins.Top-l.Margins.Bottom)
}

// XForTime maps a timestamp to a canvas x for the given view window.
func (l Layout) XForTime(ts, start, end int64) float64 {
	if end <= start {
		return l.PlotLeft()
	}
	f := float64(ts-start) / float64(end-start)
	return l.PlotLeft() + f*l.PlotWidth()
}

// TimeAtX maps a canvas x back to a timestamp for the given view window.
// Positions outside the plot box clamp to the window edges.
func (l Layout) TimeAtX(x float64, start, end int64) int64 {
	w := l.PlotWidth()
	if w <= 0 || end <= start {
		return start
	}
	f := (x - l.PlotLeft()) / w
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return start + int64(f*float64(end-start))
}

// YForValue maps an axis value to a canvas y for the given domain. Larger
// values sit higher on the canvas.
func (l Layout) YForValue(v float64, d outlier.Domain) float64 {
	span := d.Max - d.Min
	if span <= 0 {
		return l.PlotTop() + l.PlotHeight()
	}
	f := (v - d.Min) / span
	return l.PlotTop() + (1-f)*l.PlotHeight()
}

// InPlot reports whether a canvas position falls inside the plot box.
func (l Layout) InPlot(x, y float64) bool {
	return x >= l.PlotLeft() && x <= l.PlotLeft()+l.PlotWidth() &&
		y >= l.PlotTop() && y <= l.PlotTop()+l.PlotHeight()
}

// InYAxisGutter reports whether a canvas position falls in the label gutter
// left of the plot box, the grab area for axis-rescale drags.
func (l Layout) InYAxisGutter(x, y float64) bool {
	return x >= 0 && x < l.PlotLeft() &&
		y >= l.PlotTop() && y <= l.PlotTop()+l.PlotHeight()
}

// ValueTicks returns at most want+1 round tick values covering the domain,
// chosen from the 1/2/5 ladder.
func ValueTicks(d outlier.Domain, want int) []float64 {
	if want < 2 {
		want = 2
	}
	span := d.Max - d.Min
	if span <= 0 {
		return []float64{d.Min}
	}
	step := niceNum(span / float64(want-1))
	first := math.Ceil(d.Min/step) * step

	var ticks []float64
	for v := first; v <= d.Max+step*1e-9; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

// niceNum rounds x to the nearest value of the form {1,2,5}*10^k.
func niceNum(x float64) float64 {
	exp := math.Floor(math.Log10(x))
	frac := x / math.Pow(10, exp)
	var nice float64
	switch {
	case frac < 1.5:
		nice = 1
	case frac < 3:
		nice = 2
	case frac < 7:
		nice = 5
	default:
		nice = 10
	}
	return nice * math.Pow(10, exp)
}

// TimeTicks returns up to want tick timestamps within the window, snapped to
// UTC day starts. Windows narrower than a day get the window edges instead.
func TimeTicks(start, end int64, want int) []int64 {
	if end <= start {
		return nil
	}
	if want < 2 {
		want = 2
	}

	firstDay := timeseries.DayOf(start)
	if firstDay.StartMs() < start {
		firstDay++
	}
	lastDay := timeseries.DayOf(end)
	days := int(lastDay - firstDay + 1)
	if days <= 0 {
		return []int64{start, end}
	}

	step := (days + want - 1) / want
	if step < 1 {
		step = 1
	}
	var ticks []int64
	for d := firstDay; d <= lastDay; d += timeseries.DayKey(step) {
		ticks = append(ticks, d.StartMs())
	}
	return ticks
}
