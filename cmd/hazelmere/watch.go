// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ctfloyd/hazelmere-charts/internal/agent"
	"github.com/ctfloyd/hazelmere-charts/internal/config"
	"github.com/ctfloyd/hazelmere-charts/internal/hazelmere"
	"github.com/ctfloyd/hazelmere-charts/internal/logging"
)

// runWatch runs the supervised watch agent until the context is canceled.
func runWatch(ctx context.Context, cfg *config.Config) error {
	client, err := hazelmere.New(cfg.API)
	if err != nil {
		return fmt.Errorf("building client: %w", err)
	}

	a := agent.New(cfg.Agent, client)

	logging.Info().
		Str("listen_addr", cfg.Agent.ListenAddr).
		Int("stream_users", len(cfg.Agent.StreamUserIDs)).
		Msg("Starting watch agent")
	errCh := a.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("supervisor tree: %w", err)
		}
	}

	// Drain until the supervisor finishes.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := a.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Watch agent stopped gracefully")
	return nil
}
