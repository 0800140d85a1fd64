// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/gains"
	"github.com/ctfloyd/hazelmere-charts/internal/metrics"
	"github.com/ctfloyd/hazelmere-charts/internal/wire"
)

type decodeSummary struct {
	UserID      string `json:"userId,omitempty"`
	Timestamp   int64  `json:"timestamp"`
	Time        string `json:"time"`
	Skills      int    `json:"skills"`
	Bosses      int    `json:"bosses"`
	Activities  int    `json:"activities"`
	Deltas      int    `json:"deltas"`
	OverallXP   string `json:"overallXp"`
	CombatLevel int    `json:"combatLevel"`
	TotalGain   string `json:"totalGain"`
}

// runDecode reads a binary snapshot payload from disk and prints a summary.
func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	userID := fs.String("user", "", "user id to stamp on the decoded snapshot")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("decode expects exactly one payload file, got %d", fs.NArg())
	}
	path := fs.Arg(0)

	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	began := time.Now()
	swd, err := wire.Decode(buf, *userID)
	metrics.RecordDecode(len(buf), time.Since(began), err)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	metrics.AddDeltasDecoded(len(swd.Deltas))

	overall, _ := gains.SnapshotValue(&swd.Snapshot, activity.Overall)
	report := gains.CalculateFromDeltas(swd.Deltas)

	summary := decodeSummary{
		UserID:      swd.Snapshot.UserID,
		Timestamp:   swd.Snapshot.Timestamp,
		Time:        time.UnixMilli(swd.Snapshot.Timestamp).UTC().Format(time.RFC3339),
		Skills:      len(swd.Snapshot.Skills),
		Bosses:      len(swd.Snapshot.Bosses),
		Activities:  len(swd.Snapshot.Activities),
		Deltas:      len(swd.Deltas),
		OverallXP:   gains.FormatValue(float64(overall)),
		CombatLevel: gains.CombatLevel(&swd.Snapshot),
		TotalGain:   gains.FormatGain(float64(report.TotalExperienceGain)),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
