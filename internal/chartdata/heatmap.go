// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package chartdata

import (
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/gains"
	"github.com/ctfloyd/hazelmere-charts/internal/metrics"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
	"github.com/ctfloyd/hazelmere-charts/internal/timeseries"
)

// HeatmapCells builds the Sunday-aligned calendar grid for a date range,
// aggregating delta gains per UTC day. Every day in the range emits a cell,
// zero-gain days included. The single-interval experience cap applies to each
// day's summed total, not per delta, so several deltas landing on one day
// cannot slip under the cap together.
func HeatmapCells(start, end time.Time, deltas []models.Delta, selected activity.ActivityType) []models.HeatmapCell {
	began := time.Now()

	startDay := timeseries.DayOf(start.UnixMilli())
	endDay := timeseries.DayOf(end.UnixMilli())
	if endDay < startDay {
		return nil
	}

	perDay := make(map[timeseries.DayKey]float64)
	for i := range deltas {
		g, ok := gains.DeltaGain(&deltas[i], selected)
		if !ok || g == 0 {
			continue
		}
		perDay[timeseries.DayOf(deltas[i].Timestamp)] += float64(g)
	}

	cells := make([]models.HeatmapCell, 0, int(endDay-startDay)+1)
	for d := startDay; d <= endDay; d++ {
		cells = append(cells, models.HeatmapCell{
			Date: d.Start(),
			Week: timeseries.WeekColumn(startDay, d),
			Day:  d.Weekday(),
			Gain: displayGain(selected, perDay[d]),
		})
	}

	metrics.RecordChartDerivation("heatmap", len(cells), time.Since(began))
	return cells
}
