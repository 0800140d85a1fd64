// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package gains

import (
	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
	"github.com/ctfloyd/hazelmere-charts/internal/timeseries"
)

// DailySeries buckets the selected activity's delta gains into UTC calendar
// days over [first, last], supporting rolling-window summaries and the
// heatmap's per-day aggregation. Deltas dated outside the range are dropped.
func DailySeries(deltas []models.Delta, t activity.ActivityType, first, last timeseries.DayKey) *timeseries.GainSeries {
	series := timeseries.NewGainSeries(first, last)
	for i := range deltas {
		gain, ok := DeltaGain(&deltas[i], t)
		if !ok {
			continue
		}
		series.Add(timeseries.DayOf(deltas[i].Timestamp), gain)
	}
	return series
}
