// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

// Package hazelmere is the HTTP client for the Hazelmere API, the service
// that records and serves player progression snapshots.
//
// # Operations
//
//   - GetAllSnapshots, GetSnapshotNearest, GetSnapshotInterval: JSON
//     snapshot queries
//   - GetSnapshotWithDeltas: snapshot-plus-delta fetch over the binary wire
//     transport, falling back to JSON when the server does not negotiate it
//   - CreateSnapshot: record a new snapshot
//   - GetAllUsers, Health: directory and liveness
//   - WatchSnapshots: websocket subscription to snapshot-created events
//
// # Resilience
//
// The client deliberately carries no retry or backoff for request/response
// calls; a failed fetch surfaces to the caller. What it does carry:
//
//   - In-flight deduplication: concurrent identical interval queries are
//     coalesced onto one upstream request (singleflight keyed by the
//     hashed parameter tuple; entries are removed when the call finishes,
//     on success and failure alike).
//   - A circuit breaker around all calls. Transport errors and 5xx trip
//     it; 4xx does not, since the service answered.
//   - Outbound pacing via a token-bucket limiter, so a misbehaving caller
//     cannot hammer the API.
//
// The long-lived snapshot stream is the one exception to the no-retry rule:
// it reconnects with exponential backoff, since a watch that dies silently
// on the first blip would be useless.
package hazelmere
