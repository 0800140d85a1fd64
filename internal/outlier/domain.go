// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package outlier

import (
	"math"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
)

// Domain is a computed Y-axis range. Min is never negative.
type Domain struct {
	Min float64
	Max float64
}

// DailyDomain computes the axis range for a daily-gain series: anomalies are
// excluded, the largest remaining value is padded by 5%, and the floor is 0.
func DailyDomain(values []float64) Domain {
	bound, bounded := UpperBound(values)

	max := 0.0
	for _, v := range values {
		if bounded && v > bound {
			continue
		}
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return Domain{Min: 0, Max: 1}
	}
	return Domain{Min: 0, Max: max * 1.05}
}

// CumulativeDomain computes the axis range for a cumulative series. Flat
// series (range under 10% of the max) get generous padding so the line does
// not hug an edge; the minimum padding scales with the series for the
// small-value categories (kill counts, scores) and is a flat 1000 for
// experience. Steeper series pad by 5% of range or 2% of max, whichever is
// larger.
func CumulativeDomain(values []float64, t activity.ActivityType) Domain {
	if len(values) == 0 {
		return Domain{Min: 0, Max: 1}
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	span := max - min
	var pad float64
	if max > 0 && span < 0.10*max {
		pad = 0.20 * span
		minPad := 1000.0
		if !t.IsSkill() {
			minPad = 0.10 * max
		}
		if pad < minPad {
			pad = minPad
		}
	} else {
		pad = math.Max(0.05*span, 0.02*max)
	}
	if pad <= 0 {
		pad = 1
	}

	lo := min - pad
	if lo < 0 {
		lo = 0
	}
	return Domain{Min: lo, Max: max + pad}
}
