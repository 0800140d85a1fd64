// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package render

import "math"

// monotoneTangents computes per-knot tangents for a monotone cubic Hermite
// spline. Interior tangents are the interval-weighted average of the two
// adjacent secant slopes, zeroed at local extrema where the secants change
// sign, and clamped to 2.5x the smaller adjacent secant magnitude. The clamp
// keeps every tangent inside the Fritsch-Carlson monotone region, so a
// monotone input series yields a curve that never overshoots its knots.
func monotoneTangents(xs, ys []float64) []float64 {
	n := len(xs)
	if n == 0 {
		return nil
	}
	m := make([]float64, n)
	if n == 1 {
		return m
	}

	dx := make([]float64, n-1)
	d := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		dx[i] = xs[i+1] - xs[i]
		if dx[i] <= 0 {
			// Duplicate timestamps; avoid a division blowup.
			dx[i] = 1
		}
		d[i] = (ys[i+1] - ys[i]) / dx[i]
	}

	m[0] = d[0]
	m[n-1] = d[n-2]
	for i := 1; i < n-1; i++ {
		if d[i-1]*d[i] <= 0 {
			m[i] = 0
			continue
		}
		m[i] = (dx[i]*d[i-1] + dx[i-1]*d[i]) / (dx[i-1] + dx[i])
	}

	for i := range m {
		var limit float64
		switch {
		case i == 0:
			limit = 2.5 * math.Abs(d[0])
		case i == n-1:
			limit = 2.5 * math.Abs(d[n-2])
		default:
			limit = 2.5 * math.Min(math.Abs(d[i-1]), math.Abs(d[i]))
		}
		if math.Abs(m[i]) > limit {
			m[i] = math.Copysign(limit, m[i])
		}
	}
	return m
}

// sampleCurve evaluates the spline at perSegment subdivisions of every knot
// interval, returning parallel x and y slices. Every knot appears in the
// output exactly, so the curve always passes through the data points.
func sampleCurve(xs, ys []float64, perSegment int) ([]float64, []float64) {
	n := len(xs)
	if n == 0 {
		return nil, nil
	}
	if n == 1 || perSegment < 1 {
		return append([]float64(nil), xs...), append([]float64(nil), ys...)
	}

	m := monotoneTangents(xs, ys)
	outX := make([]float64, 0, (n-1)*perSegment+1)
	outY := make([]float64, 0, (n-1)*perSegment+1)

	for i := 0; i < n-1; i++ {
		h := xs[i+1] - xs[i]
		if h <= 0 {
			continue
		}
		for s := 0; s < perSegment; s++ {
			t := float64(s) / float64(perSegment)
			outX = append(outX, xs[i]+t*h)
			outY = append(outY, hermite(t, ys[i], ys[i+1], m[i]*h, m[i+1]*h))
		}
	}
	outX = append(outX, xs[n-1])
	outY = append(outY, ys[n-1])
	return outX, outY
}

// hermite evaluates the cubic Hermite basis at t in [0,1] with endpoint
// values y0, y1 and interval-scaled endpoint slopes s0, s1.
func hermite(t, y0, y1, s0, s1 float64) float64 {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*y0 + h10*s0 + h01*y1 + h11*s1
}
