// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package timeseries

import "time"

const millisPerDay = 24 * 60 * 60 * 1000

// DayKey is a UTC calendar day counted from the Unix epoch. Day 0 is
// 1970-01-01, a Thursday.
type DayKey int64

// DayOf returns the day containing the given epoch-millisecond timestamp.
func DayOf(timestampMs int64) DayKey {
	d := timestampMs / millisPerDay
	if timestampMs < 0 && timestampMs%millisPerDay != 0 {
		d--
	}
	return DayKey(d)
}

// Start returns the first instant of the day in UTC.
func (d DayKey) Start() time.Time {
	return time.UnixMilli(int64(d) * millisPerDay).UTC()
}

// StartMs returns the first instant of the day in epoch milliseconds.
func (d DayKey) StartMs() int64 {
	return int64(d) * millisPerDay
}

// Weekday returns the day of week with Sunday at 0, matching the heatmap's
// row order.
func (d DayKey) Weekday() int {
	// Epoch day 0 is Thursday, four days past Sunday.
	w := (int64(d) + 4) % 7
	if w < 0 {
		w += 7
	}
	return int(w)
}

// WeekStart returns the Sunday opening the week containing d.
func (d DayKey) WeekStart() DayKey {
	return d - DayKey(d.Weekday())
}

// WeekColumn returns the Sunday-aligned week column of d within a range
// opening at start: the range's first day sits in column 0 regardless of its
// weekday, and the column advances each time a Sunday is crossed.
func WeekColumn(start, d DayKey) int {
	return int((d - start.WeekStart()) / 7)
}
