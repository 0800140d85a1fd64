// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

/*
Package gains derives per-activity progression from snapshot pairs and delta
sequences.

The two computation paths stay numerically consistent: snapshot-pair gains
diff matching entries by activity type, skipping types present on only one
side (skip, not zero); delta-sequence gains sum each type's gains across the
ordered sequence. Total experience gain is defined as the sum of Overall
skill-delta gains, not the sum of individual skill gains, because the two can
diverge when a data error corrupts a subset of skills.

The package also owns the combat-level formula and compact number formatting
used by tooltips and summaries.
*/
package gains
