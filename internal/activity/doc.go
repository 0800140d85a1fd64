// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

// Package activity defines the fixed activity taxonomy shared by the wire
// decoder, the aggregation engine, and every chart consumer.
//
// The taxonomy is a closed enumeration partitioned into three disjoint
// categories by ordinal range: skills (0-25, including the synthetic Overall
// aggregate and Unknown), score-based activities (26-45), and kill-count boss
// encounters (46-113). Ordinal position is the wire-protocol identity and must
// never be reordered; symbolic names derive from the snake_case identifiers.
package activity
