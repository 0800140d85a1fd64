// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package timeseries

// GainSeries accumulates per-day gains over a fixed day range and answers
// prefix, range, and rolling-window sums in O(log n) via a Fenwick (binary
// indexed) tree. Point updates are O(log n), so building a series from a
// delta sequence stays O(m log n) for m deltas.
type GainSeries struct {
	first DayKey
	tree  []int64 // 1-indexed
	n     int
}

// NewGainSeries creates a series spanning first through last inclusive.
// An inverted range collapses to a single day at first.
func NewGainSeries(first, last DayKey) *GainSeries {
	n := int(last-first) + 1
	if n <= 0 {
		n = 1
	}
	return &GainSeries{
		first: first,
		tree:  make([]int64, n+1),
		n:     n,
	}
}

// Add accumulates gain into the bucket for day. Days outside the range are
// dropped; deltas dated before the base snapshot carry nothing chartable.
func (g *GainSeries) Add(day DayKey, gain int64) {
	i := int(day-g.first) + 1
	if i < 1 || i > g.n {
		return
	}
	for i <= g.n {
		g.tree[i] += gain
		i += i & (-i)
	}
}

// prefix returns the sum of buckets 1..i (1-indexed, clamped).
func (g *GainSeries) prefix(i int) int64 {
	if i < 1 {
		return 0
	}
	if i > g.n {
		i = g.n
	}
	var sum int64
	for i > 0 {
		sum += g.tree[i]
		i -= i & (-i)
	}
	return sum
}

// Day returns the gain recorded for a single day.
func (g *GainSeries) Day(day DayKey) int64 {
	i := int(day - g.first)
	if i < 0 || i >= g.n {
		return 0
	}
	return g.prefix(i+1) - g.prefix(i)
}

// RangeSum returns the summed gain for days from..to inclusive, clamped to
// the series range.
func (g *GainSeries) RangeSum(from, to DayKey) int64 {
	lo := int(from - g.first)
	hi := int(to - g.first)
	if lo < 0 {
		lo = 0
	}
	if hi >= g.n {
		hi = g.n - 1
	}
	if lo > hi {
		return 0
	}
	return g.prefix(hi+1) - g.prefix(lo)
}

// CumulativeTo returns the summed gain from the range start through day.
func (g *GainSeries) CumulativeTo(day DayKey) int64 {
	return g.prefix(int(day-g.first) + 1)
}

// RollingSum returns the summed gain for the window of days ending at day.
func (g *GainSeries) RollingSum(day DayKey, window int) int64 {
	if window <= 0 {
		return 0
	}
	return g.RangeSum(day-DayKey(window-1), day)
}

// Total returns the summed gain over the whole range.
func (g *GainSeries) Total() int64 {
	return g.prefix(g.n)
}

// First returns the first day of the range.
func (g *GainSeries) First() DayKey { return g.first }

// Days returns the number of day buckets.
func (g *GainSeries) Days() int { return g.n }
