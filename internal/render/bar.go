// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package render

import (
	"fmt"
	"math"
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/metrics"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
	"github.com/ctfloyd/hazelmere-charts/internal/outlier"
	"github.com/ctfloyd/hazelmere-charts/internal/render/glx"
)

const (
	// barWidthFraction of the smallest gap between adjacent points, so bars
	// never overlap regardless of data density.
	barWidthFraction = 0.7
	maxBarWidthPx    = 12

	defaultCeilingFloor = 10
)

// BarRenderer draws the per-interval gain series as time-positioned bars.
// Bar height clamps to a user-adjustable ceiling; bars past the ceiling draw
// in the overflow color. Because the default ceiling comes from the
// anomaly-excluded daily domain, the overflow bars are exactly the detected
// anomalies.
type BarRenderer struct {
	ctx   glx.Context
	theme Theme
	prog  glx.Program

	layout Layout
	points []models.ChartDataPoint

	winStart int64
	winEnd   int64

	ceiling      float64
	ceilingFloor float64

	hover    int
	selStart int64
	selEnd   int64
	haveSel  bool
}

// NewBarRenderer compiles the bar chart's program on the given context.
func NewBarRenderer(ctx glx.Context, theme Theme) (*BarRenderer, error) {
	prog, err := ctx.CreateProgram(seriesVertexSrc, solidFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("bar renderer: %w", err)
	}
	return &BarRenderer{
		ctx:          ctx,
		theme:        theme,
		prog:         prog,
		hover:        -1,
		ceilingFloor: defaultCeilingFloor,
	}, nil
}

// SetData replaces the rendered series, which must be in chronological
// order. The ceiling resets to the top of the anomaly-excluded daily domain
// and the view window resets to the full data span.
func (r *BarRenderer) SetData(points []models.ChartDataPoint) {
	r.points = points
	r.hover = -1
	r.haveSel = false

	gains := make([]float64, 0, len(points))
	for i := range points {
		if points[i].Gain > 0 {
			gains = append(gains, points[i].Gain)
		}
	}
	r.ceiling = math.Max(outlier.DailyDomain(gains).Max, r.ceilingFloor)

	if len(points) > 0 {
		r.winStart = points[0].Timestamp
		r.winEnd = points[len(points)-1].Timestamp
		if r.winEnd <= r.winStart {
			r.winEnd = r.winStart + 1
		}
	}
}

// Resize recomputes the layout for a new canvas size.
func (r *BarRenderer) Resize(width, height int) {
	r.layout = NewLayout(width, height)
}

// Layout returns the current layout, for hit testing by the host.
func (r *BarRenderer) Layout() Layout { return r.layout }

// SetCeilingFloor sets the lowest ceiling an axis drag can reach, raising
// the current ceiling if it sits below the new floor.
func (r *BarRenderer) SetCeilingFloor(v float64) {
	if v <= 0 {
		return
	}
	r.ceilingFloor = v
	if r.ceiling < v {
		r.ceiling = v
	}
}

// SetCeiling sets the Y-axis ceiling, clamped to the floor. Axis-rescale
// drags feed this every frame.
func (r *BarRenderer) SetCeiling(v float64) {
	if v < r.ceilingFloor {
		v = r.ceilingFloor
	}
	r.ceiling = v
}

// Ceiling returns the current Y-axis ceiling.
func (r *BarRenderer) Ceiling() float64 { return r.ceiling }

// CeilingFloor returns the lowest allowed ceiling.
func (r *BarRenderer) CeilingFloor() float64 { return r.ceilingFloor }

// Domain returns the current Y-axis domain, for host-drawn labels.
func (r *BarRenderer) Domain() outlier.Domain {
	return outlier.Domain{Min: 0, Max: r.ceiling}
}

// SetWindow sets the visible time window. Inverted windows are ignored.
func (r *BarRenderer) SetWindow(start, end int64) {
	if end <= start {
		return
	}
	r.winStart, r.winEnd = start, end
}

// Window returns the visible time window.
func (r *BarRenderer) Window() (start, end int64) { return r.winStart, r.winEnd }

// Hover maps a canvas x to the nearest data point by timestamp distance and
// records it as hovered. It returns the point index, or -1 with no data.
func (r *BarRenderer) Hover(x float64) int {
	if len(r.points) == 0 {
		r.hover = -1
		return -1
	}
	t := r.layout.TimeAtX(x, r.winStart, r.winEnd)
	best, bestDist := 0, int64(math.MaxInt64)
	for i := range r.points {
		d := r.points[i].Timestamp - t
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	r.hover = best
	return best
}

// ClearHover removes the hover guide.
func (r *BarRenderer) ClearHover() { r.hover = -1 }

// HoverPoint returns the hovered point for tooltip content.
func (r *BarRenderer) HoverPoint() (models.ChartDataPoint, bool) {
	if r.hover < 0 || r.hover >= len(r.points) {
		return models.ChartDataPoint{}, false
	}
	return r.points[r.hover], true
}

// SetSelection highlights the in-progress drag range.
func (r *BarRenderer) SetSelection(start, end int64) {
	if end < start {
		start, end = end, start
	}
	r.selStart, r.selEnd, r.haveSel = start, end, true
}

// ClearSelection removes the drag highlight.
func (r *BarRenderer) ClearSelection() { r.haveSel = false }

// Frame renders one frame. Bars carry no animation, so it always reports
// that no further frame is needed.
func (r *BarRenderer) Frame(now time.Time) bool {
	began := time.Now()
	defer func() { metrics.RecordRenderFrame("bar", time.Since(began)) }()

	r.ctx.Viewport(int(r.layout.Width), int(r.layout.Height))
	bg := r.theme.Background
	r.ctx.ClearColor(bg[0], bg[1], bg[2], bg[3])
	r.ctx.Clear()

	if len(r.points) == 0 || r.layout.PlotWidth() <= 0 || r.layout.PlotHeight() <= 0 {
		return false
	}

	if r.haveSel {
		a := float32(clampInt64(r.selStart, r.winStart, r.winEnd) - r.winStart)
		b := float32(clampInt64(r.selEnd, r.winStart, r.winEnd) - r.winStart)
		quad := []float32{a, 0, b, 0, a, float32(r.ceiling), a, float32(r.ceiling), b, 0, b, float32(r.ceiling)}
		r.draw(glx.Triangles, quad, r.theme.Selection)
	}

	halfMs := r.halfBarWidthMs()
	var normal, overflow []float32
	for i := range r.points {
		p := r.points[i]
		if p.Gain <= 0 || p.Timestamp < r.winStart || p.Timestamp > r.winEnd {
			continue
		}
		h := p.Gain
		dst := &normal
		if h > r.ceiling {
			h = r.ceiling
			dst = &overflow
		}
		t := float64(p.Timestamp - r.winStart)
		appendQuad(dst, t-halfMs, t+halfMs, 0, h)
	}
	if len(normal) > 0 {
		r.draw(glx.Triangles, normal, r.theme.Bar)
	}
	if len(overflow) > 0 {
		r.draw(glx.Triangles, overflow, r.theme.Overflow)
	}

	if r.hover >= 0 && r.hover < len(r.points) {
		ht := r.points[r.hover].Timestamp
		if ht >= r.winStart && ht <= r.winEnd {
			gt := float32(ht - r.winStart)
			guide := []float32{gt, 0, gt, float32(r.ceiling)}
			r.draw(glx.Lines, guide, r.theme.Guide)
		}
	}

	return false
}

// Close releases the GPU program. The renderer must not be used after.
func (r *BarRenderer) Close() {
	r.ctx.DeleteProgram(r.prog)
}

// halfBarWidthMs converts the bar width rule into window milliseconds for
// the vertex stream. A single-point series takes the maximum width.
func (r *BarRenderer) halfBarWidthMs() float64 {
	span := float64(r.winEnd - r.winStart)
	pw := r.layout.PlotWidth()
	if span <= 0 || pw <= 0 {
		return 0
	}
	msPerPx := span / pw

	minGap := math.MaxFloat64
	for i := 1; i < len(r.points); i++ {
		g := float64(r.points[i].Timestamp - r.points[i-1].Timestamp)
		if g > 0 && g < minGap {
			minGap = g
		}
	}
	widthPx := float64(maxBarWidthPx)
	if minGap < math.MaxFloat64 {
		widthPx = math.Min(barWidthFraction*minGap/msPerPx, maxBarWidthPx)
	}
	return widthPx / 2 * msPerPx
}

// draw uploads interleaved (t, value) vertices into a transient buffer and
// issues one draw call against the ceiling-bounded domain.
func (r *BarRenderer) draw(mode glx.DrawMode, verts []float32, color Color) {
	r.ctx.UseProgram(r.prog)
	r.ctx.Uniform2f(r.prog, "u_resolution", float32(r.layout.Width), float32(r.layout.Height))
	r.ctx.Uniform4f(r.prog, "u_plot",
		float32(r.layout.PlotLeft()), float32(r.layout.PlotTop()),
		float32(r.layout.PlotWidth()), float32(r.layout.PlotHeight()))
	r.ctx.Uniform1f(r.prog, "u_span", float32(r.winEnd-r.winStart))
	r.ctx.Uniform2f(r.prog, "u_domain", 0, float32(r.ceiling))
	r.ctx.Uniform1f(r.prog, "u_pointSize", 0)
	r.ctx.Uniform4f(r.prog, "u_color", color[0], color[1], color[2], color[3])

	buf := r.ctx.CreateBuffer()
	r.ctx.BindBuffer(buf)
	r.ctx.BufferData(verts)
	r.ctx.VertexAttrib(r.prog, "a_t", 1, 2, 0)
	r.ctx.VertexAttrib(r.prog, "a_value", 1, 2, 1)
	r.ctx.DrawArrays(mode, 0, len(verts)/2)
	r.ctx.DeleteBuffer(buf)
}

// appendQuad appends the two triangles of an axis-aligned rectangle as
// interleaved (t, value) vertices.
func appendQuad(dst *[]float32, x0, x1, y0, y1 float64) {
	a, b := float32(x0), float32(x1)
	lo, hi := float32(y0), float32(y1)
	*dst = append(*dst,
		a, lo, b, lo, a, hi,
		a, hi, b, lo, b, hi,
	)
}
