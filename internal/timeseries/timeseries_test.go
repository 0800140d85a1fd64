// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package timeseries

import (
	"reflect"
	"testing"
	"time"
)

func TestDayOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ms   int64
		want DayKey
	}{
		{"epoch", 0, 0},
		{"end of first day", millisPerDay - 1, 0},
		{"start of second day", millisPerDay, 1},
		{"mid 2024-05-04", 1714857574400, 19847},
		{"before epoch", -1, -1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DayOf(tt.ms); got != tt.want {
				t.Errorf("DayOf(%d) = %d, want %d", tt.ms, got, tt.want)
			}
		})
	}
}

func TestWeekdayMatchesTime(t *testing.T) {
	t.Parallel()

	// Cross-check a year of days against the stdlib calendar.
	for d := DayKey(19700); d < 20065; d++ {
		want := int(d.Start().Weekday())
		if got := d.Weekday(); got != want {
			t.Fatalf("Weekday(%d) = %d, want %d (%s)", d, got, want, d.Start().Format(time.DateOnly))
		}
	}
}

func TestWeekColumnAlignment(t *testing.T) {
	t.Parallel()

	// 2024-05-01 is a Wednesday.
	start := DayOf(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).UnixMilli())
	if start.Weekday() != 3 {
		t.Fatalf("fixture start weekday = %d, want 3 (Wednesday)", start.Weekday())
	}

	// The range's first cell lands at row 3 of column 0.
	if got := WeekColumn(start, start); got != 0 {
		t.Errorf("WeekColumn(start, start) = %d, want 0", got)
	}
	// Saturday still belongs to column 0.
	if got := WeekColumn(start, start+3); got != 0 {
		t.Errorf("WeekColumn(+3 days) = %d, want 0", got)
	}
	// The following Sunday opens column 1.
	sunday := start + 4
	if sunday.Weekday() != 0 {
		t.Fatalf("fixture sunday weekday = %d, want 0", sunday.Weekday())
	}
	if got := WeekColumn(start, sunday); got != 1 {
		t.Errorf("WeekColumn(first sunday) = %d, want 1", got)
	}
	// Two weeks later, two more columns.
	if got := WeekColumn(start, sunday+14); got != 3 {
		t.Errorf("WeekColumn(+3 sundays) = %d, want 3", got)
	}
}

func TestGainSeriesSums(t *testing.T) {
	t.Parallel()

	first, last := DayKey(100), DayKey(109)
	g := NewGainSeries(first, last)
	g.Add(100, 10)
	g.Add(102, 20)
	g.Add(102, 5) // same-day accumulation
	g.Add(109, 40)
	g.Add(99, 1000)  // before range: dropped
	g.Add(110, 1000) // after range: dropped

	if got := g.Day(102); got != 25 {
		t.Errorf("Day(102) = %d, want 25", got)
	}
	if got := g.Day(105); got != 0 {
		t.Errorf("Day(105) = %d, want 0", got)
	}
	if got := g.CumulativeTo(102); got != 35 {
		t.Errorf("CumulativeTo(102) = %d, want 35", got)
	}
	if got := g.RangeSum(101, 108); got != 25 {
		t.Errorf("RangeSum(101,108) = %d, want 25", got)
	}
	if got := g.Total(); got != 75 {
		t.Errorf("Total() = %d, want 75", got)
	}
	if got := g.Days(); got != 10 {
		t.Errorf("Days() = %d, want 10", got)
	}
}

func TestGainSeriesRollingSum(t *testing.T) {
	t.Parallel()

	g := NewGainSeries(0, 29)
	for d := DayKey(0); d < 30; d++ {
		g.Add(d, 1)
	}

	tests := []struct {
		day    DayKey
		window int
		want   int64
	}{
		{29, 7, 7},
		{29, 30, 30},
		{3, 7, 4}, // clamped at the range start
		{29, 1, 1},
		{29, 0, 0},
	}
	for _, tt := range tests {
		if got := g.RollingSum(tt.day, tt.window); got != tt.want {
			t.Errorf("RollingSum(%d, %d) = %d, want %d", tt.day, tt.window, got, tt.want)
		}
	}
}

func TestGainSeriesInvertedRange(t *testing.T) {
	t.Parallel()

	g := NewGainSeries(50, 40)
	if g.Days() != 1 {
		t.Errorf("inverted range Days() = %d, want 1", g.Days())
	}
	g.Add(50, 7)
	if g.Total() != 7 {
		t.Errorf("Total() = %d, want 7", g.Total())
	}
}

func TestTopKSelection(t *testing.T) {
	t.Parallel()

	top := NewTopK[string](3)
	pushes := []struct {
		name   string
		weight int64
	}{
		{"attack", 50_000},
		{"slayer", 1_200_000},
		{"magic", 300},
		{"herblore", 900_000},
		{"fishing", 75_000},
		{"mining", 2},
	}
	for _, p := range pushes {
		top.Push(p.name, p.weight)
	}

	want := []string{"slayer", "herblore", "fishing"}
	if got := top.Descending(); !reflect.DeepEqual(got, want) {
		t.Errorf("Descending() = %v, want %v", got, want)
	}
	if top.Len() != 3 {
		t.Errorf("Len() = %d, want 3", top.Len())
	}
}

func TestTopKFewerThanK(t *testing.T) {
	t.Parallel()

	top := NewTopK[int](5)
	top.Push(1, 10)
	top.Push(2, 30)

	want := []int{2, 1}
	if got := top.Descending(); !reflect.DeepEqual(got, want) {
		t.Errorf("Descending() = %v, want %v", got, want)
	}
}

func TestTopKZero(t *testing.T) {
	t.Parallel()

	top := NewTopK[int](0)
	top.Push(1, 10)
	if top.Len() != 0 {
		t.Errorf("Len() = %d, want 0", top.Len())
	}
}
