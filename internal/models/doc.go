// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

// Package models defines the snapshot, delta, and derived chart types shared
// by the decoder, the aggregation engine, and the renderers. JSON tags follow
// the Hazelmere API's camelCase contract.
package models
