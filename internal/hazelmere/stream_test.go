// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package hazelmere

import (
	"context"
	"testing"
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/models"
	"github.com/ctfloyd/hazelmere-charts/internal/testinfra"
)

// pushUntilDelivered retries a stream push until a client is connected to
// receive it. Reconnecting clients are not attached instantly, so pushes
// into the void are expected while the watcher backs off.
func pushUntilDelivered(t *testing.T, api *testinfra.MockAPI, snap models.Snapshot, deadline time.Duration) {
	t.Helper()
	stop := time.Now().Add(deadline)
	for time.Now().Before(stop) {
		if api.PushSnapshot(snap) > 0 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("no stream client connected before deadline")
}

func receiveSnapshot(t *testing.T, events <-chan models.Snapshot, deadline time.Duration) models.Snapshot {
	t.Helper()
	select {
	case snap, ok := <-events:
		if !ok {
			t.Fatal("event channel closed unexpectedly")
		}
		return snap
	case <-time.After(deadline):
		t.Fatal("timed out waiting for snapshot event")
	}
	return models.Snapshot{}
}

func TestWatchSnapshotsDeliversPushes(t *testing.T) {
	t.Parallel()

	api := testinfra.NewMockAPI(t)
	client := testClient(t, api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := client.WatchSnapshots(ctx, "bruno")
	if err != nil {
		t.Fatalf("WatchSnapshots: %v", err)
	}

	pushUntilDelivered(t, api, testSnapshot("bruno", 1000, 100), 5*time.Second)
	snap := receiveSnapshot(t, events, 5*time.Second)
	if snap.Timestamp != 1000 {
		t.Errorf("expected timestamp 1000, got %d", snap.Timestamp)
	}
	if snap.Skills[0].Experience != 100 {
		t.Errorf("expected experience 100, got %d", snap.Skills[0].Experience)
	}

	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event channel not closed after cancel")
		}
	}
}

func TestWatchSnapshotsReconnects(t *testing.T) {
	t.Parallel()

	api := testinfra.NewMockAPI(t)
	client := testClient(t, api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := client.WatchSnapshots(ctx, "bruno")
	if err != nil {
		t.Fatalf("WatchSnapshots: %v", err)
	}

	pushUntilDelivered(t, api, testSnapshot("bruno", 1000, 100), 5*time.Second)
	first := receiveSnapshot(t, events, 5*time.Second)
	if first.Timestamp != 1000 {
		t.Errorf("expected first timestamp 1000, got %d", first.Timestamp)
	}

	// Drop the server side of every stream; the watcher should dial back in.
	api.CloseStreams()

	pushUntilDelivered(t, api, testSnapshot("bruno", 2000, 200), 10*time.Second)
	second := receiveSnapshot(t, events, 5*time.Second)
	if second.Timestamp != 2000 {
		t.Errorf("expected timestamp 2000 after reconnect, got %d", second.Timestamp)
	}
}

func TestWatchSnapshotsDialFailure(t *testing.T) {
	t.Parallel()

	cfg := testClientConfig("http://127.0.0.1:1")
	client, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := client.WatchSnapshots(context.Background(), "bruno"); err == nil {
		t.Fatal("expected dial error for unreachable server")
	}
}

func TestWatchSnapshotsRequiresUserID(t *testing.T) {
	t.Parallel()

	api := testinfra.NewMockAPI(t)
	client := testClient(t, api)

	if _, err := client.WatchSnapshots(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty user id")
	}
}
