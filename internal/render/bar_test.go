// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package render

import (
	"math"
	"testing"
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/models"
	"github.com/ctfloyd/hazelmere-charts/internal/render/glx"
)

func newTestBarRenderer(t *testing.T) (*BarRenderer, *glx.Recorder) {
	t.Helper()
	rec := &glx.Recorder{}
	r, err := NewBarRenderer(rec, Light())
	if err != nil {
		t.Fatalf("NewBarRenderer() error = %v", err)
	}
	r.Resize(800, 400)
	return r, rec
}

// barPoints builds a daily gain series with one spike.
func barPoints() []models.ChartDataPoint {
	base := int64(1_714_521_600_000) // 2024-05-01 UTC
	gains := []float64{50_000, 50_000, 50_000, 50_000, 50_000, 10_000_000}
	points := make([]models.ChartDataPoint, len(gains))
	for i, g := range gains {
		points[i] = models.ChartDataPoint{Timestamp: base + int64(i)*dayMs, Gain: g}
	}
	return points
}

func TestBarOverflowBarsAreTheAnomalies(t *testing.T) {
	t.Parallel()

	r, rec := newTestBarRenderer(t)
	r.SetData(barPoints())

	// The spike sits past the IQR fence, so the default ceiling excludes it.
	if r.Ceiling() >= 10_000_000 {
		t.Fatalf("default ceiling = %v, want anomaly-excluded ceiling", r.Ceiling())
	}

	r.Frame(time.Now())

	quads := drawsByMode(rec, glx.Triangles)
	if len(quads) != 2 {
		t.Fatalf("Triangles draws = %d, want 2 (normal pass and overflow pass)", len(quads))
	}
	if quads[0].Count != 5*6 {
		t.Errorf("normal pass vertex count = %d, want %d", quads[0].Count, 5*6)
	}
	if quads[1].Count != 1*6 {
		t.Errorf("overflow pass vertex count = %d, want %d", quads[1].Count, 6)
	}
	if got := rec.LiveBuffers(); got != 0 {
		t.Errorf("LiveBuffers() after Frame = %d, want 0", got)
	}
}

func TestBarRaisedCeilingAbsorbsOverflow(t *testing.T) {
	t.Parallel()

	r, rec := newTestBarRenderer(t)
	r.SetData(barPoints())
	r.SetCeiling(20_000_000)
	r.Frame(time.Now())

	quads := drawsByMode(rec, glx.Triangles)
	if len(quads) != 1 {
		t.Fatalf("Triangles draws = %d, want 1 (everything fits under the raised ceiling)", len(quads))
	}
	if quads[0].Count != 6*6 {
		t.Errorf("vertex count = %d, want %d", quads[0].Count, 6*6)
	}
}

func TestBarCeilingClampsToFloor(t *testing.T) {
	t.Parallel()

	r, _ := newTestBarRenderer(t)
	r.SetData(barPoints())

	r.SetCeiling(1)
	if got := r.Ceiling(); got != defaultCeilingFloor {
		t.Errorf("Ceiling() after drag below floor = %v, want %v", got, float64(defaultCeilingFloor))
	}

	r.SetCeilingFloor(500)
	if got := r.Ceiling(); got != 500 {
		t.Errorf("Ceiling() after raising the floor = %v, want 500", got)
	}
	if got := r.Domain(); got.Min != 0 || got.Max != 500 {
		t.Errorf("Domain() = %+v, want {0 500}", got)
	}
}

func TestBarWidthCappedAtMaxPixels(t *testing.T) {
	t.Parallel()

	r, rec := newTestBarRenderer(t)
	points := barPoints()
	r.SetData(points)
	r.Frame(time.Now())

	// Daily points across this window leave far more than 12px per gap, so
	// the cap applies. Recover the width in px from the uploaded quad.
	quad := rec.Uploads[0]
	span := float64(points[len(points)-1].Timestamp - points[0].Timestamp)
	pxPerMs := r.Layout().PlotWidth() / span
	widthPx := float64(quad[2]-quad[0]) * pxPerMs
	if math.Abs(widthPx-maxBarWidthPx) > 0.1 {
		t.Errorf("bar width = %.2fpx, want %vpx cap", widthPx, maxBarWidthPx)
	}
}

func TestBarWidthFollowsSmallestGap(t *testing.T) {
	t.Parallel()

	r, rec := newTestBarRenderer(t)
	base := int64(1_714_521_600_000)
	// Two points ten minutes apart inside a nine-day window.
	points := []models.ChartDataPoint{
		{Timestamp: base, Gain: 1000},
		{Timestamp: base + 600_000, Gain: 2000},
		{Timestamp: base + 9*dayMs, Gain: 1500},
	}
	r.SetData(points)
	r.Frame(time.Now())

	quad := rec.Uploads[0]
	gotMs := float64(quad[2] - quad[0])
	wantMs := barWidthFraction * 600_000
	if math.Abs(gotMs-wantMs)/wantMs > 0.001 {
		t.Errorf("bar width = %.0fms, want %.0fms (70%% of the smallest gap)", gotMs, wantMs)
	}
}

func TestBarSkipsZeroGainPoints(t *testing.T) {
	t.Parallel()

	r, rec := newTestBarRenderer(t)
	base := int64(1_714_521_600_000)
	points := []models.ChartDataPoint{
		{Timestamp: base, Gain: 0},
		{Timestamp: base + dayMs, Gain: 500},
		{Timestamp: base + 2*dayMs, Gain: 0},
	}
	r.SetData(points)
	r.Frame(time.Now())

	quads := drawsByMode(rec, glx.Triangles)
	if len(quads) != 1 || quads[0].Count != 6 {
		t.Errorf("draws = %v, want a single six-vertex bar", quads)
	}
}

func TestBarHoverDrawsGuide(t *testing.T) {
	t.Parallel()

	r, rec := newTestBarRenderer(t)
	points := barPoints()
	r.SetData(points)

	idx := r.Hover(r.Layout().PlotLeft() + r.Layout().PlotWidth())
	if idx != len(points)-1 {
		t.Fatalf("Hover(plot right) = %d, want last index %d", idx, len(points)-1)
	}
	r.Frame(time.Now())

	if guides := drawsByMode(rec, glx.Lines); len(guides) != 1 || guides[0].Count != 2 {
		t.Errorf("guide draws = %v, want one two-vertex Lines draw", guides)
	}
}

func TestBarSelectionDrawsHighlight(t *testing.T) {
	t.Parallel()

	r, rec := newTestBarRenderer(t)
	points := barPoints()
	r.SetData(points)
	r.SetSelection(points[1].Timestamp, points[3].Timestamp)
	r.Frame(time.Now())

	quads := drawsByMode(rec, glx.Triangles)
	// Selection, then normal bars, then overflow bars.
	if len(quads) != 3 {
		t.Fatalf("Triangles draws = %d, want 3", len(quads))
	}
	if quads[0].Count != 6 {
		t.Errorf("selection draw count = %d, want 6", quads[0].Count)
	}
}

func TestBarCloseReleasesProgram(t *testing.T) {
	t.Parallel()

	r, rec := newTestBarRenderer(t)
	r.Close()
	if got := rec.LivePrograms(); got != 0 {
		t.Errorf("LivePrograms() after Close = %d, want 0", got)
	}
}
