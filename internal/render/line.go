// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package render

import (
	"fmt"
	"math"
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/metrics"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
	"github.com/ctfloyd/hazelmere-charts/internal/outlier"
	"github.com/ctfloyd/hazelmere-charts/internal/render/glx"
)

const (
	// curveSamplesPerSegment subdivides each knot interval of the Hermite
	// curve. Sixteen keeps the strip smooth at any plausible zoom.
	curveSamplesPerSegment = 16

	dotSizePx      = 7
	hoverDotSizePx = 11
)

// LineRenderer draws the cumulative series as a monotone Hermite curve with
// per-point dots, a hover guide, a drag-selection highlight, and a
// left-to-right reveal on data changes. It owns two GPU programs for its
// lifetime; vertex buffers live only within a single Frame call.
type LineRenderer struct {
	ctx      glx.Context
	theme    Theme
	lineProg glx.Program
	dotProg  glx.Program

	layout Layout
	points []models.ChartDataPoint
	domain outlier.Domain

	// Curve samples in absolute (epoch ms, value) space, rebased to the
	// view window at upload time.
	curveTs []float64
	curveVs []float64

	winStart int64
	winEnd   int64

	hover    int
	selStart int64
	selEnd   int64
	haveSel  bool

	anim reveal
}

// NewLineRenderer compiles the line chart's programs on the given context.
// A compile or link failure is terminal for this chart instance; the caller
// surfaces it and renders fallback UI instead.
func NewLineRenderer(ctx glx.Context, theme Theme) (*LineRenderer, error) {
	lineProg, err := ctx.CreateProgram(seriesVertexSrc, solidFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("line renderer: %w", err)
	}
	dotProg, err := ctx.CreateProgram(seriesVertexSrc, dotFragmentSrc)
	if err != nil {
		ctx.DeleteProgram(lineProg)
		return nil, fmt.Errorf("line renderer: %w", err)
	}
	return &LineRenderer{
		ctx:      ctx,
		theme:    theme,
		lineProg: lineProg,
		dotProg:  dotProg,
		hover:    -1,
	}, nil
}

// SetData replaces the rendered series, which must be in chronological
// order. The axis domain is recomputed from the cumulative values, the view
// window resets to the full data span, hover and selection clear, and the
// reveal restarts when the series identity changed.
func (r *LineRenderer) SetData(points []models.ChartDataPoint, selected activity.ActivityType, now time.Time) {
	r.points = points
	r.hover = -1
	r.haveSel = false

	xs := make([]float64, len(points))
	vs := make([]float64, len(points))
	for i := range points {
		xs[i] = float64(points[i].Timestamp)
		vs[i] = points[i].Cumulative
	}
	r.domain = outlier.CumulativeDomain(vs, selected)
	r.curveTs, r.curveVs = sampleCurve(xs, vs, curveSamplesPerSegment)

	if len(points) > 0 {
		r.winStart = points[0].Timestamp
		r.winEnd = points[len(points)-1].Timestamp
		if r.winEnd <= r.winStart {
			r.winEnd = r.winStart + 1
		}
	}
	r.anim.Observe(identityOf(points), now)
}

// Resize recomputes the layout for a new canvas size.
func (r *LineRenderer) Resize(width, height int) {
	r.layout = NewLayout(width, height)
}

// Layout returns the current layout, for hit testing by the host.
func (r *LineRenderer) Layout() Layout { return r.layout }

// Domain returns the current Y-axis domain, for host-drawn labels.
func (r *LineRenderer) Domain() outlier.Domain { return r.domain }

// SetWindow sets the visible time window. Inverted windows are ignored.
func (r *LineRenderer) SetWindow(start, end int64) {
	if end <= start {
		return
	}
	r.winStart, r.winEnd = start, end
}

// Window returns the visible time window.
func (r *LineRenderer) Window() (start, end int64) { return r.winStart, r.winEnd }

// SetDomainMax overrides the Y-axis upper bound, for axis-drag rescaling.
// Values at or below the domain minimum are ignored. The override lasts
// until the next SetData recomputes the domain.
func (r *LineRenderer) SetDomainMax(max float64) {
	if max <= r.domain.Min {
		return
	}
	r.domain.Max = max
}

// Hover maps a canvas x to the nearest data point by timestamp distance and
// records it as hovered. It returns the point index, or -1 with no data.
func (r *LineRenderer) Hover(x float64) int {
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

// ClearHover removes the hover guide and enlarged dot.
func (r *LineRenderer) ClearHover() { r.hover = -1 }

// HoverPoint returns the hovered point for tooltip content.
func (r *LineRenderer) HoverPoint() (models.ChartDataPoint, bool) {
	if r.hover < 0 || r.hover >= len(r.points) {
		return models.ChartDataPoint{}, false
	}
	return r.points[r.hover], true
}

// SetSelection highlights the in-progress drag range.
func (r *LineRenderer) SetSelection(start, end int64) {
	if end < start {
		start, end = end, start
	}
	r.selStart, r.selEnd, r.haveSel = start, end, true
}

// ClearSelection removes the drag highlight.
func (r *LineRenderer) ClearSelection() { r.haveSel = false }

// Frame renders one frame at the given instant and reports whether the
// reveal animation still needs another frame.
func (r *LineRenderer) Frame(now time.Time) bool {
	began := time.Now()
	defer func() { metrics.RecordRenderFrame("line", time.Since(began)) }()

	r.ctx.Viewport(int(r.layout.Width), int(r.layout.Height))
	bg := r.theme.Background
	r.ctx.ClearColor(bg[0], bg[1], bg[2], bg[3])
	r.ctx.Clear()

	if len(r.points) == 0 || r.layout.PlotWidth() <= 0 || r.layout.PlotHeight() <= 0 {
		return false
	}

	progress := r.anim.Progress(now)

	if r.haveSel {
		lo, hi := float32(r.domain.Min), float32(r.domain.Max)
		a := float32(clampInt64(r.selStart, r.winStart, r.winEnd) - r.winStart)
		b := float32(clampInt64(r.selEnd, r.winStart, r.winEnd) - r.winStart)
		quad := []float32{a, lo, b, lo, a, hi, a, hi, b, lo, b, hi}
		r.drawSeries(r.lineProg, glx.Triangles, quad, r.theme.Selection, 0)
	}

	if verts := r.curveVerts(progress); len(verts) >= 4 {
		r.drawSeries(r.lineProg, glx.LineStrip, verts, r.theme.Line, 0)
	}

	if r.hover >= 0 && r.hover < len(r.points) {
		ht := r.points[r.hover].Timestamp
		if ht >= r.winStart && ht <= r.winEnd {
			gt := float32(ht - r.winStart)
			guide := []float32{gt, float32(r.domain.Min), gt, float32(r.domain.Max)}
			r.drawSeries(r.lineProg, glx.Lines, guide, r.theme.Guide, 0)
		}
	}

	if verts := r.dotVerts(progress); len(verts) >= 2 {
		r.drawSeries(r.dotProg, glx.Points, verts, r.theme.Dot, dotSizePx)
	}

	if r.hover >= 0 && r.hover < len(r.points) {
		p := r.points[r.hover]
		if p.Timestamp >= r.winStart && p.Timestamp <= r.winEnd {
			hv := []float32{float32(p.Timestamp - r.winStart), float32(p.Cumulative)}
			r.drawSeries(r.dotProg, glx.Points, hv, r.theme.HoverDot, hoverDotSizePx)
		}
	}

	return r.anim.Active()
}

// Close releases the GPU programs. The renderer must not be used after.
func (r *LineRenderer) Close() {
	r.ctx.DeleteProgram(r.lineProg)
	r.ctx.DeleteProgram(r.dotProg)
}

// curveVerts builds the window-rebased line strip, keeping the leading
// reveal fraction of the full sample count.
func (r *LineRenderer) curveVerts(progress float64) []float32 {
	keep := len(r.curveTs)
	if progress < 1 {
		keep = int(progress * float64(keep))
	}
	verts := make([]float32, 0, keep*2)
	lo, hi := float64(r.winStart), float64(r.winEnd)
	for i := 0; i < keep; i++ {
		if r.curveTs[i] < lo || r.curveTs[i] > hi {
			continue
		}
		verts = append(verts, float32(r.curveTs[i]-lo), float32(r.curveVs[i]))
	}
	return verts
}

// dotVerts builds the window-rebased dot vertices, keeping the leading
// reveal fraction of the point count.
func (r *LineRenderer) dotVerts(progress float64) []float32 {
	keep := len(r.points)
	if progress < 1 {
		keep = int(progress * float64(keep))
	}
	verts := make([]float32, 0, keep*2)
	for i := 0; i < keep; i++ {
		p := r.points[i]
		if p.Timestamp < r.winStart || p.Timestamp > r.winEnd {
			continue
		}
		verts = append(verts, float32(p.Timestamp-r.winStart), float32(p.Cumulative))
	}
	return verts
}

// drawSeries uploads interleaved (t, value) vertices into a transient buffer
// and issues one draw call. The buffer never outlives the call.
func (r *LineRenderer) drawSeries(prog glx.Program, mode glx.DrawMode, verts []float32, color Color, pointSize float64) {
	r.ctx.UseProgram(prog)
	r.ctx.Uniform2f(prog, "u_resolution", float32(r.layout.Width), float32(r.layout.Height))
	r.ctx.Uniform4f(prog, "u_plot",
		float32(r.layout.PlotLeft()), float32(r.layout.PlotTop()),
		float32(r.layout.PlotWidth()), float32(r.layout.PlotHeight()))
	r.ctx.Uniform1f(prog, "u_span", float32(r.winEnd-r.winStart))
	r.ctx.Uniform2f(prog, "u_domain", float32(r.domain.Min), float32(r.domain.Max))
	r.ctx.Uniform1f(prog, "u_pointSize", float32(pointSize))
	r.ctx.Uniform4f(prog, "u_color", color[0], color[1], color[2], color[3])

	buf := r.ctx.CreateBuffer()
	r.ctx.BindBuffer(buf)
	r.ctx.BufferData(verts)
	r.ctx.VertexAttrib(prog, "a_t", 1, 2, 0)
	r.ctx.VertexAttrib(prog, "a_value", 1, 2, 1)
	r.ctx.DrawArrays(mode, 0, len(verts)/2)
	r.ctx.DeleteBuffer(buf)
}

func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
