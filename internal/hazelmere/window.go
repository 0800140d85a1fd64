// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package hazelmere

// AggregationWindow is the server-side bucketing granularity for interval
// queries.
type AggregationWindow string

const (
	WindowDaily   AggregationWindow = "daily"
	WindowWeekly  AggregationWindow = "weekly"
	WindowMonthly AggregationWindow = "monthly"
)

const (
	dayMs  = int64(24 * 60 * 60 * 1000)
	yearMs = 365 * dayMs
)

// WindowForRange picks the aggregation window for a date range: ranges over
// two years aggregate monthly, over one year weekly, and everything shorter
// daily. The policy belongs to the caller of the interval endpoint, not to
// the service.
func WindowForRange(start, end int64) AggregationWindow {
	span := end - start
	switch {
	case span > 2*yearMs:
		return WindowMonthly
	case span > yearMs:
		return WindowWeekly
	default:
		return WindowDaily
	}
}
