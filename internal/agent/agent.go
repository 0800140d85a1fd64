// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package agent

import (
	"context"
	"net/http"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/ctfloyd/hazelmere-charts/internal/config"
	"github.com/ctfloyd/hazelmere-charts/internal/logging"
)

// Agent is the watch-mode process: one supervised snapshot watcher per
// configured user, plus the ops HTTP endpoint.
type Agent struct {
	tree    *Tree
	started time.Time
}

// New assembles the supervisor tree from configuration. The source is shared
// across all watchers; the API client already serializes and paces its calls.
func New(cfg config.AgentConfig, source SnapshotSource) *Agent {
	started := time.Now()
	treeCfg := DefaultTreeConfig()
	tree := NewTree(logging.NewSlogLogger(), treeCfg)
	log := logging.WithComponent("agent")

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      NewOpsRouter(cfg, started),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddOpsService(NewOpsServerService(server, treeCfg.ShutdownTimeout))
	log.Info().Str("addr", cfg.ListenAddr).Msg("Ops server added to supervisor tree")

	if len(cfg.StreamUserIDs) == 0 {
		log.Warn().Msg("No stream users configured, agent serves ops endpoints only")
	}
	for _, userID := range cfg.StreamUserIDs {
		tree.AddStreamService(NewSnapshotWatcher(source, userID, cfg.PollInterval))
		log.Info().Str("user_id", userID).Msg("Snapshot watcher added to supervisor tree")
	}

	return &Agent{tree: tree, started: started}
}

// Serve runs the supervisor tree until the context is canceled.
func (a *Agent) Serve(ctx context.Context) error {
	return a.tree.Serve(ctx)
}

// ServeBackground starts the tree in a background goroutine; the returned
// channel reports the terminal error.
func (a *Agent) ServeBackground(ctx context.Context) <-chan error {
	return a.tree.ServeBackground(ctx)
}

// UnstoppedServiceReport lists services that failed to stop within the
// shutdown timeout.
func (a *Agent) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return a.tree.UnstoppedServiceReport()
}
