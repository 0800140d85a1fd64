// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package render

import (
	"fmt"
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/metrics"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
	"github.com/ctfloyd/hazelmere-charts/internal/render/glx"
)

const (
	// heatCellGap shrinks each cell within its grid pitch so neighbors read
	// as separate tiles.
	heatCellGap = 0.12

	// heatCornerRadius is the rounded-corner radius in the cell's local
	// -1..1 space.
	heatCornerRadius = 0.25
)

// HeatmapRenderer draws the calendar grid as one rounded-rectangle tile per
// day. Corner rounding and anti-aliasing come from a signed-distance-field
// fragment shader; the tile color is the nine-step heat scale baked per
// vertex, so the whole grid renders in a single draw call.
type HeatmapRenderer struct {
	ctx   glx.Context
	theme Theme
	prog  glx.Program

	layout Layout
	cells  []models.HeatmapCell
	weeks  int
	hover  int
}

// NewHeatmapRenderer compiles the heatmap program on the given context.
func NewHeatmapRenderer(ctx glx.Context, theme Theme) (*HeatmapRenderer, error) {
	prog, err := ctx.CreateProgram(heatVertexSrc, heatFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("heatmap renderer: %w", err)
	}
	return &HeatmapRenderer{ctx: ctx, theme: theme, prog: prog, hover: -1}, nil
}

// SetData replaces the rendered grid.
func (r *HeatmapRenderer) SetData(cells []models.HeatmapCell) {
	r.cells = cells
	r.hover = -1
	r.weeks = 0
	for i := range cells {
		if cells[i].Week+1 > r.weeks {
			r.weeks = cells[i].Week + 1
		}
	}
}

// Resize recomputes the layout for a new canvas size.
func (r *HeatmapRenderer) Resize(width, height int) {
	r.layout = NewLayout(width, height)
}

// Layout returns the current layout, for hit testing by the host.
func (r *HeatmapRenderer) Layout() Layout { return r.layout }

// Hover maps a canvas position to the cell under it and records it as
// hovered. It returns the cell index, or -1 when the position misses.
func (r *HeatmapRenderer) Hover(x, y float64) int {
	pw, ph := r.cellPitch()
	if pw <= 0 || ph <= 0 || !r.layout.InPlot(x, y) {
		r.hover = -1
		return -1
	}
	week := int((x - r.layout.PlotLeft()) / pw)
	day := int((y - r.layout.PlotTop()) / ph)
	for i := range r.cells {
		if r.cells[i].Week == week && r.cells[i].Day == day {
			r.hover = i
			return i
		}
	}
	r.hover = -1
	return -1
}

// ClearHover removes the hover state.
func (r *HeatmapRenderer) ClearHover() { r.hover = -1 }

// HoverCell returns the hovered cell for tooltip content.
func (r *HeatmapRenderer) HoverCell() (models.HeatmapCell, bool) {
	if r.hover < 0 || r.hover >= len(r.cells) {
		return models.HeatmapCell{}, false
	}
	return r.cells[r.hover], true
}

// Frame renders one frame. The grid carries no animation, so it always
// reports that no further frame is needed.
func (r *HeatmapRenderer) Frame(now time.Time) bool {
	began := time.Now()
	defer func() { metrics.RecordRenderFrame("heatmap", time.Since(began)) }()

	r.ctx.Viewport(int(r.layout.Width), int(r.layout.Height))
	bg := r.theme.Background
	r.ctx.ClearColor(bg[0], bg[1], bg[2], bg[3])
	r.ctx.Clear()

	pw, ph := r.cellPitch()
	if len(r.cells) == 0 || pw <= 0 || ph <= 0 {
		return false
	}

	verts := make([]float32, 0, len(r.cells)*6*8)
	for i := range r.cells {
		c := &r.cells[i]
		x0 := r.layout.PlotLeft() + float64(c.Week)*pw + pw*heatCellGap/2
		y0 := r.layout.PlotTop() + float64(c.Day)*ph + ph*heatCellGap/2
		x1 := x0 + pw*(1-heatCellGap)
		y1 := y0 + ph*(1-heatCellGap)
		appendHeatCell(&verts, x0, y0, x1, y1, r.theme.Heat[heatLevel(c.Gain)])
	}

	r.ctx.UseProgram(r.prog)
	r.ctx.Uniform2f(r.prog, "u_resolution", float32(r.layout.Width), float32(r.layout.Height))
	r.ctx.Uniform1f(r.prog, "u_radius", heatCornerRadius)
	r.ctx.Uniform1f(r.prog, "u_soft", softness(pw*(1-heatCellGap)))

	buf := r.ctx.CreateBuffer()
	r.ctx.BindBuffer(buf)
	r.ctx.BufferData(verts)
	r.ctx.VertexAttrib(r.prog, "a_pos", 2, 8, 0)
	r.ctx.VertexAttrib(r.prog, "a_local", 2, 8, 2)
	r.ctx.VertexAttrib(r.prog, "a_color", 4, 8, 4)
	r.ctx.DrawArrays(glx.Triangles, 0, len(verts)/8)
	r.ctx.DeleteBuffer(buf)

	return false
}

// Close releases the GPU program. The renderer must not be used after.
func (r *HeatmapRenderer) Close() {
	r.ctx.DeleteProgram(r.prog)
}

// cellPitch returns the grid pitch per week column and per day row.
func (r *HeatmapRenderer) cellPitch() (pw, ph float64) {
	if r.weeks == 0 {
		return 0, 0
	}
	return r.layout.PlotWidth() / float64(r.weeks), r.layout.PlotHeight() / 7
}

// softness translates an edge feather of about 1.5px into the cell's local
// units, clamped so tiny and huge cells both stay crisp.
func softness(cellWidthPx float64) float32 {
	if cellWidthPx <= 0 {
		return 0.05
	}
	s := 3.0 / cellWidthPx
	if s < 0.02 {
		s = 0.02
	}
	if s > 0.5 {
		s = 0.5
	}
	return float32(s)
}

// appendHeatCell appends one tile as two triangles of interleaved
// (pos.xy, local.xy, rgba) vertices.
func appendHeatCell(dst *[]float32, x0, y0, x1, y1 float64, c Color) {
	a, b := float32(x0), float32(x1)
	t, btm := float32(y0), float32(y1)
	*dst = append(*dst,
		a, t, -1, -1, c[0], c[1], c[2], c[3],
		b, t, 1, -1, c[0], c[1], c[2], c[3],
		a, btm, -1, 1, c[0], c[1], c[2], c[3],
		a, btm, -1, 1, c[0], c[1], c[2], c[3],
		b, t, 1, -1, c[0], c[1], c[2], c[3],
		b, btm, 1, 1, c[0], c[1], c[2], c[3],
	)
}
