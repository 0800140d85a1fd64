// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

// Package testinfra provides test infrastructure shared by client and agent
// tests.
//
// MockAPI is an httptest-backed double of the Hazelmere API. It serves the
// snapshot, user, and health routes in both JSON and binary transports,
// counts requests per route, supports injected failures and latency, and
// exposes a websocket endpoint that tests can push snapshot-created events
// through.
//
// Typical use:
//
//	api := testinfra.NewMockAPI(t)
//	api.AddSnapshot(snap)
//	client, err := hazelmere.New(config.APIConfig{BaseURL: api.URL(), ...})
package testinfra
