// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package models

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
)

func TestSnapshotJSONRoundTrip(t *testing.T) {
	t.Parallel()

	orig := SnapshotWithDeltas{
		Snapshot: Snapshot{
			ID:        "snap-1",
			UserID:    "user-1",
			Timestamp: 1714857574400,
			Skills: []SkillEntry{
				{Type: activity.Overall, Level: 2277, Experience: 299_791_913},
				{Type: activity.Attack, Level: 99, Experience: 13_034_431},
			},
			Bosses:     []BossEntry{{Type: activity.TheatreOfBlood, KillCount: 250}},
			Activities: []ActivityEntry{{Type: activity.ClueScrollsMaster, Score: 42}},
		},
		Deltas: []Delta{
			{
				Timestamp: 1714943974400,
				Skills:    []SkillDelta{{Type: activity.Attack, ExperienceGain: 50_000, LevelGain: 0}},
			},
		},
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// The transport carries symbolic names, not ordinals.
	for _, want := range []string{`"Overall"`, `"Theatre Of Blood"`, `"Clue Scrolls Master"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("encoded document missing %s:\n%s", want, data)
		}
	}

	var got SnapshotWithDeltas
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, orig)
	}
}

func TestDeltaAbsentSectionsOmitted(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Delta{Timestamp: 1000})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, absent := range []string{"skills", "bosses", "activities"} {
		if strings.Contains(string(data), absent) {
			t.Errorf("absent section %q serialized: %s", absent, data)
		}
	}

	var got Delta
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Skills != nil || got.Bosses != nil || got.Activities != nil {
		t.Errorf("absent sections decoded non-nil: %+v", got)
	}
}

func TestUnknownActivityNameDecodesToUnknown(t *testing.T) {
	t.Parallel()

	var e SkillEntry
	if err := json.Unmarshal([]byte(`{"activityType":"Shadow Boxing","level":1,"experience":0,"rank":0}`), &e); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if e.Type != activity.Unknown {
		t.Errorf("unknown name decoded to %v, want Unknown", e.Type)
	}
}

func TestSnapshotEntryLookups(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		Skills: []SkillEntry{{Type: activity.Magic, Level: 94, Experience: 8_000_000}},
		Bosses: []BossEntry{{Type: activity.Kraken, KillCount: 77}},
	}

	if e, ok := s.Skill(activity.Magic); !ok || e.Level != 94 {
		t.Errorf("Skill(Magic) = %+v, %v", e, ok)
	}
	if _, ok := s.Skill(activity.Cooking); ok {
		t.Error("Skill(Cooking) should be absent")
	}
	if e, ok := s.Boss(activity.Kraken); !ok || e.KillCount != 77 {
		t.Errorf("Boss(Kraken) = %+v, %v", e, ok)
	}
	if _, ok := s.Activity(activity.RiftsClosed); ok {
		t.Error("Activity(RiftsClosed) should be absent")
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var nilResult *SnapshotWithDeltas
	if !nilResult.IsEmpty() {
		t.Error("nil result must report empty")
	}
	empty := &SnapshotWithDeltas{Snapshot: Snapshot{UserID: "u", Timestamp: 1}}
	if !empty.IsEmpty() {
		t.Error("entry-free result must report empty")
	}
	full := &SnapshotWithDeltas{Snapshot: Snapshot{
		Skills: []SkillEntry{{Type: activity.Attack}},
	}}
	if full.IsEmpty() {
		t.Error("populated result must not report empty")
	}
}
