// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package chartdata

import (
	"testing"
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
)

func utc(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestHeatmapCells_SundayAlignedGrid(t *testing.T) {
	t.Parallel()

	// 2024-05-01 is a Wednesday.
	start := utc(2024, time.May, 1, 0)
	end := utc(2024, time.May, 12, 0)
	deltas := []models.Delta{
		overallDelta(utc(2024, time.May, 1, 14).UnixMilli(), 500_000, 0),
		overallDelta(utc(2024, time.May, 5, 8).UnixMilli(), 200_000, 0),
		overallDelta(utc(2024, time.May, 11, 10).UnixMilli(), 150_000, 0),
		overallDelta(utc(2024, time.May, 11, 20).UnixMilli(), 150_000, 0),
	}

	cells := HeatmapCells(start, end, deltas, activity.Overall)
	if len(cells) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(cells))
	}

	first := cells[0]
	if first.Day != 3 || first.Week != 0 {
		t.Errorf("Wednesday start cell = day %d week %d, want day 3 week 0", first.Day, first.Week)
	}
	if !first.Date.Equal(utc(2024, time.May, 1, 0)) {
		t.Errorf("first cell date = %v, want 2024-05-01T00:00Z", first.Date)
	}
	if first.Gain != 500_000 {
		t.Errorf("first cell gain = %f, want 500000", first.Gain)
	}

	saturday := cells[3] // 2024-05-04
	if saturday.Day != 6 || saturday.Week != 0 {
		t.Errorf("first Saturday cell = day %d week %d, want day 6 week 0", saturday.Day, saturday.Week)
	}

	sunday := cells[4] // 2024-05-05, first Sunday crossed
	if sunday.Day != 0 || sunday.Week != 1 {
		t.Errorf("Sunday cell = day %d week %d, want day 0 week 1", sunday.Day, sunday.Week)
	}
	if sunday.Gain != 200_000 {
		t.Errorf("Sunday cell gain = %f, want 200000", sunday.Gain)
	}

	// Two deltas on 2024-05-11 aggregate into one cell.
	if cells[10].Gain != 300_000 {
		t.Errorf("aggregated cell gain = %f, want 300000", cells[10].Gain)
	}

	if cells[11].Week != 2 || cells[11].Day != 0 {
		t.Errorf("second Sunday cell = day %d week %d, want day 0 week 2", cells[11].Day, cells[11].Week)
	}
}

func TestHeatmapCells_DayTotalCapAppliesCumulatively(t *testing.T) {
	t.Parallel()

	start := utc(2024, time.May, 1, 0)
	end := utc(2024, time.May, 3, 0)

	t.Run("two deltas slipping under the cap individually", func(t *testing.T) {
		t.Parallel()
		deltas := []models.Delta{
			overallDelta(utc(2024, time.May, 2, 9).UnixMilli(), 6_000_000, 0),
			overallDelta(utc(2024, time.May, 2, 18).UnixMilli(), 6_000_000, 0),
		}
		cells := HeatmapCells(start, end, deltas, activity.Overall)
		if cells[1].Gain != 0 {
			t.Errorf("12M day total should be suppressed, got %f", cells[1].Gain)
		}
	})

	t.Run("day total within the cap", func(t *testing.T) {
		t.Parallel()
		deltas := []models.Delta{
			overallDelta(utc(2024, time.May, 2, 9).UnixMilli(), 3_000_000, 0),
			overallDelta(utc(2024, time.May, 2, 18).UnixMilli(), 4_000_000, 0),
		}
		cells := HeatmapCells(start, end, deltas, activity.Overall)
		if cells[1].Gain != 7_000_000 {
			t.Errorf("7M day total should display, got %f", cells[1].Gain)
		}
	})

	t.Run("kill count series is never capped", func(t *testing.T) {
		t.Parallel()
		deltas := []models.Delta{
			{Timestamp: utc(2024, time.May, 2, 9).UnixMilli(), Bosses: []models.BossDelta{{Type: activity.Zulrah, KillCountGain: 6_000_000}}},
			{Timestamp: utc(2024, time.May, 2, 18).UnixMilli(), Bosses: []models.BossDelta{{Type: activity.Zulrah, KillCountGain: 6_000_000}}},
		}
		cells := HeatmapCells(start, end, deltas, activity.Zulrah)
		if cells[1].Gain != 12_000_000 {
			t.Errorf("kill count day total should display uncapped, got %f", cells[1].Gain)
		}
	})
}

func TestHeatmapCells_NoiseFloor(t *testing.T) {
	t.Parallel()

	start := utc(2024, time.May, 1, 0)
	end := utc(2024, time.May, 1, 23)
	deltas := []models.Delta{
		overallDelta(utc(2024, time.May, 1, 12).UnixMilli(), 50, 0),
	}

	cells := HeatmapCells(start, end, deltas, activity.Overall)
	if len(cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(cells))
	}
	if cells[0].Gain != 0 {
		t.Errorf("sub-100 experience day should display as 0, got %f", cells[0].Gain)
	}
}

func TestHeatmapCells_ZeroFillsQuietDays(t *testing.T) {
	t.Parallel()

	start := utc(2024, time.May, 5, 0) // Sunday
	end := utc(2024, time.May, 11, 0)

	cells := HeatmapCells(start, end, nil, activity.Overall)
	if len(cells) != 7 {
		t.Fatalf("expected 7 cells, got %d", len(cells))
	}
	for i, c := range cells {
		if c.Gain != 0 {
			t.Errorf("cell %d gain = %f, want 0", i, c.Gain)
		}
		if c.Week != 0 {
			t.Errorf("cell %d week = %d, want 0", i, c.Week)
		}
		if c.Day != i {
			t.Errorf("cell %d day = %d, want %d for a Sunday start", i, c.Day, i)
		}
	}
}

func TestHeatmapCells_IgnoresDeltasOutsideRange(t *testing.T) {
	t.Parallel()

	start := utc(2024, time.May, 5, 0)
	end := utc(2024, time.May, 7, 0)
	deltas := []models.Delta{
		overallDelta(utc(2024, time.April, 30, 12).UnixMilli(), 500_000, 0),
		overallDelta(utc(2024, time.May, 6, 12).UnixMilli(), 250_000, 0),
		overallDelta(utc(2024, time.June, 1, 12).UnixMilli(), 900_000, 0),
	}

	cells := HeatmapCells(start, end, deltas, activity.Overall)
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}
	if cells[0].Gain != 0 || cells[2].Gain != 0 {
		t.Errorf("out-of-range deltas leaked into the grid: %+v", cells)
	}
	if cells[1].Gain != 250_000 {
		t.Errorf("in-range delta missing, cell gain = %f", cells[1].Gain)
	}
}

func TestHeatmapCells_EmptyRange(t *testing.T) {
	t.Parallel()

	start := utc(2024, time.May, 7, 0)
	end := utc(2024, time.May, 5, 0)

	if cells := HeatmapCells(start, end, nil, activity.Overall); cells != nil {
		t.Errorf("expected nil for an inverted range, got %d cells", len(cells))
	}
}
