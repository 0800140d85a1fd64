// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

/*
Package agent runs the watch-mode process under suture v4 supervision.

The agent follows configured users' snapshot streams and exposes an
operational HTTP surface. Services are organized into two layers for failure
isolation:

	RootSupervisor ("hazelmere")
	├── StreamSupervisor ("stream-layer")
	│   └── SnapshotWatcher, one per configured user
	└── OpsSupervisor ("ops-layer")
	    └── OpsServerService (/healthz, /metrics)

A crashing watcher is restarted with exponential backoff and never takes the
ops endpoint down, so Prometheus keeps scraping through API outages.

Each SnapshotWatcher prefers the websocket push stream. When the initial
subscription fails it polls the nearest-snapshot endpoint on the configured
cadence, retrying the stream every round so it moves back off polling as
soon as the API recovers. Observed snapshots are diffed against the previous
one and the gains logged in the dashboard's compact notation.

Supervisor events (start, stop, failure, backoff) are logged through the
sutureslog adapter wired to the zerolog slog bridge, so they land in the same
structured output as the rest of the process.

Typical wiring, as done by the watch command:

	client, err := hazelmere.New(cfg.API)
	if err != nil {
	    return err
	}
	a := agent.New(cfg.Agent, client)
	return a.Serve(ctx)
*/
package agent
