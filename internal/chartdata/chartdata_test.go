// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package chartdata

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
)

func overallSnapshot(ts int64, level int, exp int64) models.Snapshot {
	return models.Snapshot{
		UserID:    "user-1",
		Timestamp: ts,
		Skills:    []models.SkillEntry{{Type: activity.Overall, Level: level, Experience: exp}},
	}
}

func overallDelta(ts int64, expGain int64, levelGain int) models.Delta {
	return models.Delta{
		Timestamp: ts,
		Skills:    []models.SkillDelta{{Type: activity.Overall, ExperienceGain: expGain, LevelGain: levelGain}},
	}
}

func TestFromSnapshots_GainIsConsecutiveDiff(t *testing.T) {
	t.Parallel()

	snapshots := []models.Snapshot{
		overallSnapshot(1000, 100, 10_000),
		overallSnapshot(2000, 101, 15_000),
		overallSnapshot(3000, 105, 215_000),
	}

	points := FromSnapshots(snapshots, activity.Overall)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	if points[0].Gain != 0 {
		t.Errorf("first point gain = %f, want 0", points[0].Gain)
	}
	if points[0].Cumulative != 10_000 {
		t.Errorf("first point cumulative = %f, want 10000", points[0].Cumulative)
	}
	if points[1].Gain != 5_000 {
		t.Errorf("second point gain = %f, want 5000", points[1].Gain)
	}
	if points[2].Gain != 200_000 {
		t.Errorf("third point gain = %f, want 200000", points[2].Gain)
	}
	if points[2].Cumulative != 215_000 {
		t.Errorf("third point cumulative = %f, want 215000", points[2].Cumulative)
	}

	for i, want := range []int{100, 101, 105} {
		if points[i].Level == nil || *points[i].Level != want {
			t.Errorf("point %d level = %v, want %d", i, points[i].Level, want)
		}
	}
}

func TestFromSnapshots_OrdersInputWithoutMutatingIt(t *testing.T) {
	t.Parallel()

	shuffled := []models.Snapshot{
		overallSnapshot(3000, 105, 215_000),
		overallSnapshot(1000, 100, 10_000),
		overallSnapshot(2000, 101, 15_000),
	}

	points := FromSnapshots(shuffled, activity.Overall)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Timestamp <= points[i-1].Timestamp {
			t.Fatalf("points out of order at %d: %d then %d", i, points[i-1].Timestamp, points[i].Timestamp)
		}
	}

	if shuffled[0].Timestamp != 3000 {
		t.Errorf("input slice was reordered; first timestamp now %d", shuffled[0].Timestamp)
	}
}

func TestFromSnapshots_SkipsSnapshotsMissingSelection(t *testing.T) {
	t.Parallel()

	withBoss := func(ts int64, kc int) models.Snapshot {
		return models.Snapshot{
			UserID:    "user-1",
			Timestamp: ts,
			Bosses:    []models.BossEntry{{Type: activity.Zulrah, KillCount: kc}},
		}
	}
	snapshots := []models.Snapshot{
		withBoss(1000, 100),
		overallSnapshot(2000, 100, 10_000), // no Zulrah entry
		withBoss(3000, 150),
	}

	points := FromSnapshots(snapshots, activity.Zulrah)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[1].Timestamp != 3000 {
		t.Errorf("second point timestamp = %d, want 3000", points[1].Timestamp)
	}
	if points[1].Gain != 50 {
		t.Errorf("gain across the skipped snapshot = %f, want 50", points[1].Gain)
	}
	if points[1].Level != nil {
		t.Errorf("boss series should carry no level, got %v", points[1].Level)
	}
}

func TestFromSnapshots_SuppressedGainKeepsCumulative(t *testing.T) {
	t.Parallel()

	snapshots := []models.Snapshot{
		overallSnapshot(1000, 100, 1_000_000),
		overallSnapshot(2000, 100, 16_000_000),
	}

	points := FromSnapshots(snapshots, activity.Overall)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[1].Gain != 0 {
		t.Errorf("15M single-interval gain should display as 0, got %f", points[1].Gain)
	}
	if points[1].Cumulative != 16_000_000 {
		t.Errorf("cumulative must keep the full increment, got %f", points[1].Cumulative)
	}
}

func TestFromDeltas_FirstPointIsBaseline(t *testing.T) {
	t.Parallel()

	base := overallSnapshot(500, 80, 1_000_000)
	deltas := []models.Delta{overallDelta(1500, 5_000, 1)}

	points := FromDeltas(base, deltas, activity.Overall)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}

	if points[0].Timestamp != 500 || points[0].Gain != 0 || points[0].Cumulative != 1_000_000 {
		t.Errorf("baseline point = %+v, want base value with zero gain", points[0])
	}
	if points[0].Level == nil || *points[0].Level != 80 {
		t.Errorf("baseline level = %v, want 80", points[0].Level)
	}
	if points[1].Cumulative != 1_005_000 || points[1].Gain != 5_000 {
		t.Errorf("delta point = %+v, want cumulative 1005000 gain 5000", points[1])
	}
	if points[1].Level == nil || *points[1].Level != 81 {
		t.Errorf("delta level = %v, want 81", points[1].Level)
	}
}

func TestFromDeltas_SuppressedGainKeepsCumulative(t *testing.T) {
	t.Parallel()

	base := overallSnapshot(500, 80, 1_000_000)
	deltas := []models.Delta{overallDelta(1500, 15_000_000, 0)}

	points := FromDeltas(base, deltas, activity.Overall)
	if points[1].Gain != 0 {
		t.Errorf("15M delta gain should display as 0, got %f", points[1].Gain)
	}
	if points[1].Cumulative != 16_000_000 {
		t.Errorf("cumulative must keep the full increment, got %f", points[1].Cumulative)
	}
}

func TestFromDeltas_MissingEntryEmitsFlatPoint(t *testing.T) {
	t.Parallel()

	base := models.Snapshot{
		UserID:    "user-1",
		Timestamp: 1000,
		Bosses:    []models.BossEntry{{Type: activity.Zulrah, KillCount: 100}},
	}
	deltas := []models.Delta{
		overallDelta(2000, 5_000, 0), // no Zulrah entry
		{Timestamp: 3000, Bosses: []models.BossDelta{{Type: activity.Zulrah, KillCountGain: 5}}},
	}

	points := FromDeltas(base, deltas, activity.Zulrah)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[1].Gain != 0 || points[1].Cumulative != 100 {
		t.Errorf("flat point = %+v, want zero gain over cumulative 100", points[1])
	}
	if points[2].Gain != 5 || points[2].Cumulative != 105 {
		t.Errorf("boss point = %+v, want gain 5 cumulative 105", points[2])
	}
}

func TestModesProduceIdenticalSeries(t *testing.T) {
	t.Parallel()

	s0 := overallSnapshot(1000, 50, 10_000)
	snapshots := []models.Snapshot{
		s0,
		overallSnapshot(2000, 51, 15_000),
		overallSnapshot(3000, 55, 215_000),
	}
	deltas := []models.Delta{
		overallDelta(2000, 5_000, 1),
		overallDelta(3000, 200_000, 4),
	}

	fromSnapshots := FromSnapshots(snapshots, activity.Overall)
	fromDeltas := FromDeltas(s0, deltas, activity.Overall)

	if !reflect.DeepEqual(fromSnapshots, fromDeltas) {
		t.Errorf("modes diverged:\n snapshots: %+v\n deltas:    %+v", fromSnapshots, fromDeltas)
	}
}

func TestBreakdown_TopFiveDescendingWithCap(t *testing.T) {
	t.Parallel()

	base := overallSnapshot(1000, 100, 10_000)
	delta := models.Delta{
		Timestamp: 2000,
		Skills: []models.SkillDelta{
			{Type: activity.Overall, ExperienceGain: 1_300_100},
			{Type: activity.Attack, ExperienceGain: 500_000},
			{Type: activity.Strength, ExperienceGain: 300_000},
			{Type: activity.Magic, ExperienceGain: 12_000_000}, // over the cap, ineligible
			{Type: activity.Fishing, ExperienceGain: 200_000},
			{Type: activity.Woodcutting, ExperienceGain: 150_000},
			{Type: activity.Cooking, ExperienceGain: 50_000},
			{Type: activity.Herblore, ExperienceGain: 100},
			{Type: activity.Mining, ExperienceGain: -50},
		},
	}

	// The zero value selection is the Overall aggregate; an unset selection
	// must break down identically to an explicit Overall one.
	var unset activity.ActivityType
	points := FromDeltas(base, []models.Delta{delta}, unset)

	want := []models.SkillGain{
		{Type: activity.Attack, Gain: 500_000},
		{Type: activity.Strength, Gain: 300_000},
		{Type: activity.Fishing, Gain: 200_000},
		{Type: activity.Woodcutting, Gain: 150_000},
		{Type: activity.Cooking, Gain: 50_000},
	}
	if !reflect.DeepEqual(points[1].Breakdown, want) {
		t.Errorf("breakdown = %+v, want %+v", points[1].Breakdown, want)
	}

	if points[0].Breakdown != nil {
		t.Errorf("baseline point should carry no breakdown, got %+v", points[0].Breakdown)
	}
}

func TestBreakdown_AbsentForSpecificSelection(t *testing.T) {
	t.Parallel()

	base := models.Snapshot{
		UserID:    "user-1",
		Timestamp: 1000,
		Skills: []models.SkillEntry{
			{Type: activity.Overall, Level: 100, Experience: 10_000},
			{Type: activity.Attack, Level: 60, Experience: 300_000},
		},
	}
	deltas := []models.Delta{{
		Timestamp: 2000,
		Skills: []models.SkillDelta{
			{Type: activity.Overall, ExperienceGain: 50_000},
			{Type: activity.Attack, ExperienceGain: 50_000, LevelGain: 1},
		},
	}}

	points := FromDeltas(base, deltas, activity.Attack)
	for i, p := range points {
		if p.Breakdown != nil {
			t.Errorf("point %d carries a breakdown for a specific selection: %+v", i, p.Breakdown)
		}
	}
	if points[1].Level == nil || *points[1].Level != 61 {
		t.Errorf("attack level = %v, want 61", points[1].Level)
	}
}

func TestBreakdown_IdenticalAcrossModes(t *testing.T) {
	t.Parallel()

	older := models.Snapshot{
		UserID:    "user-1",
		Timestamp: 1000,
		Skills: []models.SkillEntry{
			{Type: activity.Overall, Level: 100, Experience: 1_000_000},
			{Type: activity.Attack, Level: 60, Experience: 300_000},
			{Type: activity.Magic, Level: 70, Experience: 800_000},
			{Type: activity.Cooking, Level: 50, Experience: 110_000},
		},
	}
	newer := models.Snapshot{
		UserID:    "user-1",
		Timestamp: 2000,
		Skills: []models.SkillEntry{
			{Type: activity.Overall, Level: 101, Experience: 13_550_000},
			{Type: activity.Attack, Level: 61, Experience: 750_000},
			{Type: activity.Magic, Level: 99, Experience: 12_800_000}, // +12M, over the cap
			{Type: activity.Cooking, Level: 52, Experience: 210_000},
		},
	}
	deltas := []models.Delta{{
		Timestamp: 2000,
		Skills: []models.SkillDelta{
			{Type: activity.Overall, ExperienceGain: 12_550_000, LevelGain: 1},
			{Type: activity.Attack, ExperienceGain: 450_000, LevelGain: 1},
			{Type: activity.Magic, ExperienceGain: 12_000_000, LevelGain: 29},
			{Type: activity.Cooking, ExperienceGain: 100_000, LevelGain: 2},
		},
	}}

	a := FromSnapshots([]models.Snapshot{older, newer}, activity.Overall)
	b := FromDeltas(older, deltas, activity.Overall)

	if !reflect.DeepEqual(a[1].Breakdown, b[1].Breakdown) {
		t.Errorf("breakdowns diverged:\n snapshots: %+v\n deltas:    %+v", a[1].Breakdown, b[1].Breakdown)
	}

	want := []models.SkillGain{
		{Type: activity.Attack, Gain: 450_000},
		{Type: activity.Cooking, Gain: 100_000},
	}
	if !reflect.DeepEqual(b[1].Breakdown, want) {
		t.Errorf("breakdown = %+v, want %+v", b[1].Breakdown, want)
	}
}

func TestAnomalyMarking(t *testing.T) {
	t.Parallel()

	base := overallSnapshot(0, 100, 5_000_000)
	deltas := []models.Delta{
		overallDelta(1000, 1_000, 0),
		overallDelta(2000, 1_200, 0),
		overallDelta(3000, 1_100, 0),
		overallDelta(4000, 1_300, 0),
		overallDelta(5000, 1_000_000, 0),
	}

	points := FromDeltas(base, deltas, activity.Overall)
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}

	for i, p := range points[:5] {
		if p.Anomalous {
			t.Errorf("point %d incorrectly flagged anomalous (gain %f)", i, p.Gain)
		}
	}
	if !points[5].Anomalous {
		t.Error("the 1M gain should be flagged anomalous against the 1900 fence")
	}
	if points[5].Gain != 1_000_000 {
		t.Errorf("anomalous point keeps its display gain, got %f", points[5].Gain)
	}
}

func TestAnomalyMarking_NeedsFourSamples(t *testing.T) {
	t.Parallel()

	base := overallSnapshot(0, 100, 0)
	deltas := []models.Delta{
		overallDelta(1000, 1_000, 0),
		overallDelta(2000, 1_200, 0),
		overallDelta(3000, 9_000_000, 0),
	}

	points := FromDeltas(base, deltas, activity.Overall)
	for i, p := range points {
		if p.Anomalous {
			t.Errorf("point %d flagged with only 3 positive samples", i)
		}
	}
}

func TestIdempotentRederivation(t *testing.T) {
	t.Parallel()

	base := overallSnapshot(0, 100, 5_000_000)
	deltas := []models.Delta{
		overallDelta(1000, 1_000, 0),
		overallDelta(2000, 1_200, 0),
		{
			Timestamp: 3000,
			Skills: []models.SkillDelta{
				{Type: activity.Overall, ExperienceGain: 750_000},
				{Type: activity.Slayer, ExperienceGain: 500_000},
				{Type: activity.Ranged, ExperienceGain: 250_000},
			},
		},
		overallDelta(4000, 1_300, 0),
		overallDelta(5000, 1_000_000, 0),
	}

	first, err := json.Marshal(FromDeltas(base, deltas, activity.Overall))
	if err != nil {
		t.Fatalf("marshal first derivation: %v", err)
	}
	second, err := json.Marshal(FromDeltas(base, deltas, activity.Overall))
	if err != nil {
		t.Fatalf("marshal second derivation: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("re-derivation is not byte-identical:\n first:  %s\n second: %s", first, second)
	}

	snapshots := []models.Snapshot{
		overallSnapshot(3000, 105, 215_000),
		overallSnapshot(1000, 100, 10_000),
		overallSnapshot(2000, 101, 15_000),
	}
	a, err := json.Marshal(FromSnapshots(snapshots, activity.Overall))
	if err != nil {
		t.Fatalf("marshal first derivation: %v", err)
	}
	b, err := json.Marshal(FromSnapshots(snapshots, activity.Overall))
	if err != nil {
		t.Fatalf("marshal second derivation: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("snapshot re-derivation is not byte-identical:\n first:  %s\n second: %s", a, b)
	}
}

func TestFromSnapshots_Empty(t *testing.T) {
	t.Parallel()

	if points := FromSnapshots(nil, activity.Overall); points != nil {
		t.Errorf("expected nil for no snapshots, got %+v", points)
	}
}

func TestFromDeltas_EmptyEverything(t *testing.T) {
	t.Parallel()

	if points := FromDeltas(models.Snapshot{}, nil, activity.Overall); points != nil {
		t.Errorf("expected nil for empty base and no deltas, got %+v", points)
	}
}
