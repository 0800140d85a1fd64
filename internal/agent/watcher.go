// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package agent

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/gains"
	"github.com/ctfloyd/hazelmere-charts/internal/logging"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
)

// SnapshotSource is the slice of the API client the watcher needs.
type SnapshotSource interface {
	WatchSnapshots(ctx context.Context, userID string) (<-chan models.Snapshot, error)
	GetSnapshotNearest(ctx context.Context, userID string, timestamp int64) (*models.Snapshot, error)
}

// SnapshotWatcher follows one user's progression as a supervised service.
// It prefers the push stream; when the initial subscription fails it falls
// back to polling the nearest-snapshot endpoint, retrying the stream each
// round so it moves back off polling as soon as the API recovers.
type SnapshotWatcher struct {
	source       SnapshotSource
	userID       string
	pollInterval time.Duration
	log          zerolog.Logger

	mu   sync.Mutex
	prev *models.Snapshot
}

// NewSnapshotWatcher creates a watcher for one user.
func NewSnapshotWatcher(source SnapshotSource, userID string, pollInterval time.Duration) *SnapshotWatcher {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Minute
	}
	return &SnapshotWatcher{
		source:       source,
		userID:       userID,
		pollInterval: pollInterval,
		log:          logging.WithComponent("snapshot-watcher").With().Str("user_id", userID).Logger(),
	}
}

// Serve implements suture.Service.
func (w *SnapshotWatcher) Serve(ctx context.Context) error {
	events, err := w.source.WatchSnapshots(ctx, w.userID)
	if err != nil {
		w.log.Warn().Err(err).Msg("Snapshot stream unavailable, falling back to polling")
		return w.poll(ctx)
	}
	return w.consume(ctx, events)
}

func (w *SnapshotWatcher) consume(ctx context.Context, events <-chan models.Snapshot) error {
	w.log.Info().Msg("Watching snapshot stream")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snap, ok := <-events:
			if !ok {
				// The client closes the channel only on cancellation, so a
				// close with a live context is a fault worth restarting for.
				if err := ctx.Err(); err != nil {
					return err
				}
				return errors.New("snapshot stream closed")
			}
			w.observe(&snap)
		}
	}
}

func (w *SnapshotWatcher) poll(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if events, err := w.source.WatchSnapshots(ctx, w.userID); err == nil {
				w.log.Info().Msg("Snapshot stream recovered")
				return w.consume(ctx, events)
			}
			snap, err := w.source.GetSnapshotNearest(ctx, w.userID, time.Now().UnixMilli())
			if err != nil {
				w.log.Warn().Err(err).Msg("Snapshot poll failed")
				continue
			}
			w.observe(snap)
		}
	}
}

// observe logs the progression between consecutive snapshots. Polling
// re-reads the latest snapshot every round, so repeated and out-of-order
// timestamps are dropped silently.
func (w *SnapshotWatcher) observe(snap *models.Snapshot) {
	if snap == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.prev == nil {
		w.prev = snap
		total, _ := gains.SnapshotValue(snap, activity.Overall)
		w.log.Info().
			Int64("timestamp", snap.Timestamp).
			Str("overall_xp", gains.FormatValue(float64(total))).
			Int("combat_level", gains.CombatLevel(snap)).
			Msg("Initial snapshot observed")
		return
	}
	if snap.Timestamp <= w.prev.Timestamp {
		w.log.Debug().Int64("timestamp", snap.Timestamp).Msg("Snapshot already observed, skipping")
		return
	}

	report := gains.Calculate(w.prev, snap)
	w.prev = snap

	skillsTrained := 0
	for _, g := range report.Skills {
		if g.ExperienceGain > 0 {
			skillsTrained++
		}
	}
	killsGained := 0
	for _, kc := range report.Bosses {
		if kc > 0 {
			killsGained += kc
		}
	}

	w.log.Info().
		Int64("timestamp", snap.Timestamp).
		Str("xp_gained", gains.FormatGain(float64(report.TotalExperienceGain))).
		Int("skills_trained", skillsTrained).
		Int("kills_gained", killsGained).
		Msg("Snapshot observed")
}

// LastObserved returns the timestamp of the most recently observed snapshot,
// or zero when none has arrived yet.
func (w *SnapshotWatcher) LastObserved() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.prev == nil {
		return 0
	}
	return w.prev.Timestamp
}

// String implements fmt.Stringer; suture uses it to identify the service in
// log messages.
func (w *SnapshotWatcher) String() string {
	return "snapshot-watcher-" + w.userID
}
