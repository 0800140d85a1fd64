// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

/*
Package outlier separates genuine large gains from data-entry corruption and
computes axis domains that neither distorts.

Anomaly detection uses the interquartile-range method with floor-index
quantiles and a 3x multiplier, matching the series the dashboard has always
drawn; detected anomalies are metadata, never errors. Display filtering is a
separate concern applied before charting: implausible single-interval
experience gains are suppressed to zero and a small noise floor hides rounding
dust, while underlying cumulative totals keep the full values.
*/
package outlier
