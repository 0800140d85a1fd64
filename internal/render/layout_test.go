// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package render

import (
	"math"
	"testing"

	"github.com/ctfloyd/hazelmere-charts/internal/outlier"
)

func TestLayoutPlotBox(t *testing.T) {
	t.Parallel()

	l := NewLayout(800, 400)
	m := DefaultMargins()

	if got := l.PlotLeft(); got != m.Left {
		t.Errorf("PlotLeft() = %v, want %v", got, m.Left)
	}
	if got := l.PlotTop(); got != m.Top {
		t.Errorf("PlotTop() = %v, want %v", got, m.Top)
	}
	if got := l.PlotWidth(); got != 800-m.Left-m.Right {
		t.Errorf("PlotWidth() = %v, want %v", got, 800-m.Left-m.Right)
	}
	if got := l.PlotHeight(); got != 400-m.Top-m.Bottom {
		t.Errorf("PlotHeight() = %v, want %v", got, 400-m.Top-m.Bottom)
	}
}

func TestLayoutTinyCanvasNeverNegative(t *testing.T) {
	t.Parallel()

	l := NewLayout(10, 5)
	if l.PlotWidth() < 0 || l.PlotHeight() < 0 {
		t.Errorf("plot box went negative: %v x %v", l.PlotWidth(), l.PlotHeight())
	}
}

func TestLayoutTimeMappingRoundTrip(t *testing.T) {
	t.Parallel()

	l := NewLayout(800, 400)
	start := int64(1_700_000_000_000)
	end := start + 30*24*60*60*1000

	for _, ts := range []int64{start, start + 1_234_567_890, end} {
		x := l.XForTime(ts, start, end)
		back := l.TimeAtX(x, start, end)
		// A pixel of slack: this window spans ~3.6M ms per pixel.
		if diff := back - ts; diff < -5_000_000 || diff > 5_000_000 {
			t.Errorf("TimeAtX(XForTime(%d)) = %d, drift %d", ts, back, diff)
		}
	}
}

func TestLayoutTimeAtXClampsToWindow(t *testing.T) {
	t.Parallel()

	l := NewLayout(800, 400)
	start, end := int64(0), int64(1000)

	if got := l.TimeAtX(-50, start, end); got != start {
		t.Errorf("TimeAtX(left of plot) = %d, want %d", got, start)
	}
	if got := l.TimeAtX(5000, start, end); got != end {
		t.Errorf("TimeAtX(right of plot) = %d, want %d", got, end)
	}
}

func TestLayoutYForValue(t *testing.T) {
	t.Parallel()

	l := NewLayout(800, 400)
	d := outlier.Domain{Min: 0, Max: 100}

	top := l.YForValue(100, d)
	bottom := l.YForValue(0, d)
	if top != l.PlotTop() {
		t.Errorf("YForValue(max) = %v, want plot top %v", top, l.PlotTop())
	}
	if bottom != l.PlotTop()+l.PlotHeight() {
		t.Errorf("YForValue(min) = %v, want plot bottom %v", bottom, l.PlotTop()+l.PlotHeight())
	}
	if mid := l.YForValue(50, d); mid <= top || mid >= bottom {
		t.Errorf("YForValue(mid) = %v, want between %v and %v", mid, top, bottom)
	}
}

func TestLayoutHitAreas(t *testing.T) {
	t.Parallel()

	l := NewLayout(800, 400)

	tests := []struct {
		name     string
		x, y     float64
		inPlot   bool
		inGutter bool
	}{
		{"plot center", 400, 200, true, false},
		{"axis gutter", 20, 200, false, true},
		{"top margin", 400, 4, false, false},
		{"off canvas", -10, 200, false, false},
	}
	for _, tt := range tests {
		if got := l.InPlot(tt.x, tt.y); got != tt.inPlot {
			t.Errorf("%s: InPlot = %v, want %v", tt.name, got, tt.inPlot)
		}
		if got := l.InYAxisGutter(tt.x, tt.y); got != tt.inGutter {
			t.Errorf("%s: InYAxisGutter = %v, want %v", tt.name, got, tt.inGutter)
		}
	}
}

func TestValueTicksAreRound(t *testing.T) {
	t.Parallel()

	ticks := ValueTicks(outlier.Domain{Min: 0, Max: 973_000}, 5)
	if len(ticks) < 2 {
		t.Fatalf("ValueTicks() = %v, want at least 2 ticks", ticks)
	}
	step := ticks[1] - ticks[0]
	mantissa := step / math.Pow(10, math.Floor(math.Log10(step)))
	if mantissa != 1 && mantissa != 2 && mantissa != 5 {
		t.Errorf("tick step %v has mantissa %v, want 1, 2, or 5", step, mantissa)
	}
	for _, v := range ticks {
		if v < 0 || v > 973_000*1.001 {
			t.Errorf("tick %v outside domain", v)
		}
	}
}

func TestValueTicksDegenerateDomain(t *testing.T) {
	t.Parallel()

	ticks := ValueTicks(outlier.Domain{Min: 42, Max: 42}, 5)
	if len(ticks) != 1 || ticks[0] != 42 {
		t.Errorf("ValueTicks(flat domain) = %v, want [42]", ticks)
	}
}

func TestTimeTicksSnapToDayStarts(t *testing.T) {
	t.Parallel()

	// 2024-05-01 12:00 UTC through 2024-05-15 06:00 UTC.
	start := int64(1_714_564_800_000)
	end := start + 14*24*60*60*1000 - 6*60*60*1000

	ticks := TimeTicks(start, end, 6)
	if len(ticks) == 0 {
		t.Fatal("TimeTicks() returned nothing")
	}
	if len(ticks) > 7 {
		t.Errorf("TimeTicks() returned %d ticks, want at most 7", len(ticks))
	}
	for _, ts := range ticks {
		if ts%(24*60*60*1000) != 0 {
			t.Errorf("tick %d is not a UTC day start", ts)
		}
		if ts < start || ts > end {
			t.Errorf("tick %d outside window [%d, %d]", ts, start, end)
		}
	}
}

func TestTimeTicksInvertedWindow(t *testing.T) {
	t.Parallel()

	if ticks := TimeTicks(100, 50, 4); ticks != nil {
		t.Errorf("TimeTicks(inverted) = %v, want nil", ticks)
	}
}
