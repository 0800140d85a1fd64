// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package render

import (
	"math"
	"testing"
)

func TestMonotoneTangentsZeroAtExtrema(t *testing.T) {
	t.Parallel()

	// Local maximum at index 1 and local minimum at index 2.
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 10, 2, 8}

	m := monotoneTangents(xs, ys)
	if m[1] != 0 {
		t.Errorf("tangent at local max = %v, want 0", m[1])
	}
	if m[2] != 0 {
		t.Errorf("tangent at local min = %v, want 0", m[2])
	}
}

func TestMonotoneTangentsFlatStaysFlat(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 1, 2, 3}
	ys := []float64{5, 5, 5, 5}

	for i, v := range monotoneTangents(xs, ys) {
		if v != 0 {
			t.Errorf("tangent[%d] = %v on flat data, want 0", i, v)
		}
	}
}

func TestMonotoneTangentsClampedToSecants(t *testing.T) {
	t.Parallel()

	// A steep segment next to a shallow one. Each tangent must stay within
	// 2.5x the smaller adjacent secant magnitude.
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 1000}

	m := monotoneTangents(xs, ys)
	if limit := 2.5 * 1.0; math.Abs(m[1]) > limit {
		t.Errorf("interior tangent %v exceeds clamp %v", m[1], limit)
	}
	if limit := 2.5 * 1.0; math.Abs(m[0]) > limit {
		t.Errorf("left tangent %v exceeds clamp %v", m[0], limit)
	}
	if limit := 2.5 * 999.0; math.Abs(m[2]) > limit {
		t.Errorf("right tangent %v exceeds clamp %v", m[2], limit)
	}
}

func TestSampleCurvePassesThroughKnots(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 10, 25, 40}
	ys := []float64{1, 4, 2, 9}

	outX, outY := sampleCurve(xs, ys, 8)
	if len(outX) != len(outY) {
		t.Fatalf("sample lengths diverge: %d vs %d", len(outX), len(outY))
	}
	if want := (len(xs)-1)*8 + 1; len(outX) != want {
		t.Fatalf("len(samples) = %d, want %d", len(outX), want)
	}

	for i, kx := range xs {
		found := false
		for j, sx := range outX {
			if sx == kx && math.Abs(outY[j]-ys[i]) < 1e-9 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("knot (%v, %v) missing from sampled curve", kx, ys[i])
		}
	}
}

func TestSampleCurveMonotoneInputNeverOvershoots(t *testing.T) {
	t.Parallel()

	// Increasing input with wildly uneven steps, the shape that makes naive
	// Catmull-Rom splines dip below the data.
	xs := []float64{0, 1, 2, 3, 10, 11}
	ys := []float64{0, 0.1, 0.2, 50, 50.5, 120}

	_, outY := sampleCurve(xs, ys, 32)
	for i := 1; i < len(outY); i++ {
		if outY[i] < outY[i-1]-1e-9 {
			t.Fatalf("curve decreases at sample %d: %v -> %v on increasing input", i, outY[i-1], outY[i])
		}
	}
	lo, hi := ys[0], ys[len(ys)-1]
	for i, v := range outY {
		if v < lo-1e-9 || v > hi+1e-9 {
			t.Errorf("sample %d = %v escapes data range [%v, %v]", i, v, lo, hi)
		}
	}
}

func TestSampleCurveDegenerateInputs(t *testing.T) {
	t.Parallel()

	if x, y := sampleCurve(nil, nil, 8); x != nil || y != nil {
		t.Errorf("sampleCurve(empty) = %v, %v, want nil, nil", x, y)
	}

	x, y := sampleCurve([]float64{5}, []float64{7}, 8)
	if len(x) != 1 || x[0] != 5 || y[0] != 7 {
		t.Errorf("sampleCurve(single knot) = %v, %v, want the knot back", x, y)
	}
}

func TestHermiteEndpoints(t *testing.T) {
	t.Parallel()

	if got := hermite(0, 3, 9, 1, 1); got != 3 {
		t.Errorf("hermite(0) = %v, want start value 3", got)
	}
	if got := hermite(1, 3, 9, 1, 1); got != 9 {
		t.Errorf("hermite(1) = %v, want end value 9", got)
	}
}
