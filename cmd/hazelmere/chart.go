// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/chartdata"
	"github.com/ctfloyd/hazelmere-charts/internal/config"
	"github.com/ctfloyd/hazelmere-charts/internal/hazelmere"
	"github.com/ctfloyd/hazelmere-charts/internal/logging"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
)

type chartOutput struct {
	User     string                  `json:"user"`
	Activity string                  `json:"activity"`
	Window   string                  `json:"window"`
	Start    int64                   `json:"start"`
	End      int64                   `json:"end"`
	Points   []models.ChartDataPoint `json:"points"`
	Heatmap  []models.HeatmapCell    `json:"heatmap,omitempty"`
}

// runChart fetches progression data and emits the derived chart series as
// JSON on stdout. Daily windows ride the delta endpoint (binary transport
// preferred); coarser windows fetch aggregated snapshots.
func runChart(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	user := fs.String("user", "", "user id (required)")
	name := fs.String("activity", cfg.Chart.Activity, "activity to chart (skill, boss, or activity name)")
	days := fs.Int("days", 90, "how many days back from now")
	window := fs.String("window", cfg.Chart.Window, "aggregation window: auto, daily, weekly, monthly")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" {
		return fmt.Errorf("chart requires -user")
	}
	if *days <= 0 {
		return fmt.Errorf("chart requires a positive -days, got %d", *days)
	}

	selected, ok := activity.FromName(*name)
	if !ok {
		return fmt.Errorf("unknown activity %q", *name)
	}

	end := time.Now().UnixMilli()
	start := end - int64(*days)*24*time.Hour.Milliseconds()

	win := hazelmere.AggregationWindow(*window)
	if *window == "auto" {
		win = hazelmere.WindowForRange(start, end)
	}

	client, err := hazelmere.New(cfg.API)
	if err != nil {
		return fmt.Errorf("building client: %w", err)
	}

	log := logging.WithComponent("chart")
	out := chartOutput{
		User:     *user,
		Activity: selected.Name(),
		Window:   string(win),
		Start:    start,
		End:      end,
	}

	if win == hazelmere.WindowDaily {
		swd, err := client.GetSnapshotWithDeltas(ctx, *user, start, end)
		if err != nil {
			return fmt.Errorf("fetching deltas: %w", err)
		}
		if swd.IsEmpty() {
			log.Warn().Str("user_id", *user).Msg("No progression data in range")
		}
		out.Points = chartdata.FromDeltas(swd.Snapshot, swd.Deltas, selected)
		out.Heatmap = chartdata.HeatmapCells(
			time.UnixMilli(start).UTC(),
			time.UnixMilli(end).UTC(),
			swd.Deltas,
			selected,
		)
	} else {
		snapshots, err := client.GetSnapshotInterval(ctx, *user, start, end, win)
		if err != nil {
			return fmt.Errorf("fetching interval: %w", err)
		}
		if len(snapshots) == 0 {
			log.Warn().Str("user_id", *user).Msg("No progression data in range")
		}
		out.Points = chartdata.FromSnapshots(snapshots, selected)
	}

	log.Debug().
		Str("user_id", *user).
		Str("activity", selected.Name()).
		Str("window", string(win)).
		Int("points", len(out.Points)).
		Msg("Chart series derived")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
