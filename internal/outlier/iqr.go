// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package outlier

import "sort"

// minSamples is the floor below which no anomalies are flagged.
const minSamples = 4

// iqrMultiplier sets the upper fence at Q3 + 3x IQR, not the textbook 1.5x.
const iqrMultiplier = 3.0

// UpperBound returns the anomaly threshold Q3 + 3*IQR for the sample set.
// Quartiles use simple floor indexing into the ascending sort, not
// interpolation. ok is false when fewer than four samples exist.
func UpperBound(values []float64) (float64, bool) {
	if len(values) < minSamples {
		return 0, false
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 := sorted[len(sorted)/4]
	q3 := sorted[len(sorted)*3/4]
	iqr := q3 - q1
	return q3 + iqrMultiplier*iqr, true
}

// DetectAnomalies returns the indices of values exceeding the IQR upper
// bound, in input order. Fewer than four samples flag nothing regardless of
// magnitude.
func DetectAnomalies(values []float64) []int {
	bound, ok := UpperBound(values)
	if !ok {
		return nil
	}
	var anomalies []int
	for i, v := range values {
		if v > bound {
			anomalies = append(anomalies, i)
		}
	}
	return anomalies
}
