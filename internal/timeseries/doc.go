// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

/*
Package timeseries provides the day-bucketed series structures backing gain
aggregation and the calendar heatmap.

DayKey addresses UTC calendar days counted from the Unix epoch, which keeps
week-column math free of zone and DST concerns. GainSeries is a Fenwick tree
over day buckets, giving O(log n) point updates with O(log n) prefix and range
sums for rolling-window and cumulative queries. TopK is a bounded min-heap
used to select the largest skill gains for tooltip breakdowns.

The structures are owned by a single derivation pass and are not safe for
concurrent use.
*/
package timeseries
