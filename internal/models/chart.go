// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package models

import (
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
)

// ChartDataPoint is one derived series point. Gain carries the display value
// after outlier suppression and noise floors; Cumulative always reflects the
// full unsuppressed running total. Breakdown, when present, holds the top
// skill gains for tooltip drill-down, sorted descending, at most five.
// Anomalous marks points whose display gain exceeds the IQR upper fence; it is
// tooltip metadata, never an error.
type ChartDataPoint struct {
	Timestamp  int64       `json:"timestamp"`
	Cumulative float64     `json:"cumulative"`
	Gain       float64     `json:"gain"`
	Level      *int        `json:"level,omitempty"`
	Breakdown  []SkillGain `json:"breakdown,omitempty"`
	Anomalous  bool        `json:"anomalous,omitempty"`
}

// SkillGain is one skill's contribution within a breakdown.
type SkillGain struct {
	Type activity.ActivityType `json:"activityType"`
	Gain int64                 `json:"gain"`
}

// Time returns the point timestamp as UTC wall time.
func (p *ChartDataPoint) Time() time.Time {
	return time.UnixMilli(p.Timestamp).UTC()
}

// HeatmapCell is one day of the calendar heatmap grid. Week counts Sunday
// aligned columns from the range start; Day is the day-of-week row with
// Sunday at index 0.
type HeatmapCell struct {
	Date time.Time `json:"date"`
	Week int       `json:"week"`
	Day  int       `json:"day"`
	Gain float64   `json:"gain"`
}
