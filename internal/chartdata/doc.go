// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

/*
Package chartdata derives renderable chart series from snapshot and delta data.

Two generation modes produce comparable output. FromSnapshots walks a
chronological snapshot sequence and computes each interval's gain as the
difference between consecutive extracted values. FromDeltas starts from a base
snapshot and reads each interval's gain directly from the matching delta entry,
emitting the base value with zero gain as the first point. Both modes apply the
same display filtering from the outlier package and build identical skill
breakdown tooltips, so a dashboard can switch transports without the chart
changing shape.

HeatmapCells aggregates delta gains per UTC calendar day onto a Sunday-aligned
week-column grid covering a requested date range.

Derivation is pure with respect to its inputs: identical data and an identical
selection always yield identical output, and input slices are never reordered
or mutated. Anomalous points are flagged in place as metadata, never surfaced
as errors.
*/
package chartdata
