// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package models

import (
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
)

// Snapshot is a point-in-time hiscore capture for one user. Each collection
// holds at most one entry per activity type. The synthetic Overall skill entry
// carries the server-summed total experience and is the canonical total-XP
// reference for the delta path.
type Snapshot struct {
	ID         string          `json:"id,omitempty"`
	UserID     string          `json:"userId"`
	Timestamp  int64           `json:"timestamp"` // epoch milliseconds, UTC
	Skills     []SkillEntry    `json:"skills"`
	Bosses     []BossEntry     `json:"bosses"`
	Activities []ActivityEntry `json:"activities"`
}

// SkillEntry is one skill's state within a snapshot. Rank is never carried by
// the binary transport; decoded entries always hold rank 0.
type SkillEntry struct {
	Type       activity.ActivityType `json:"activityType"`
	Level      int                   `json:"level"`
	Experience int64                 `json:"experience"`
	Rank       int                   `json:"rank"`
}

// BossEntry is one boss encounter's state within a snapshot.
type BossEntry struct {
	Type      activity.ActivityType `json:"activityType"`
	KillCount int                   `json:"killCount"`
	Rank      int                   `json:"rank"`
}

// ActivityEntry is one score-based activity's state within a snapshot.
type ActivityEntry struct {
	Type  activity.ActivityType `json:"activityType"`
	Score int                   `json:"score"`
	Rank  int                   `json:"rank"`
}

// Time returns the snapshot timestamp as UTC wall time.
func (s *Snapshot) Time() time.Time {
	return time.UnixMilli(s.Timestamp).UTC()
}

// Skill returns the entry for the given skill type, if present.
func (s *Snapshot) Skill(t activity.ActivityType) (SkillEntry, bool) {
	for _, e := range s.Skills {
		if e.Type == t {
			return e, true
		}
	}
	return SkillEntry{}, false
}

// Boss returns the entry for the given boss type, if present.
func (s *Snapshot) Boss(t activity.ActivityType) (BossEntry, bool) {
	for _, e := range s.Bosses {
		if e.Type == t {
			return e, true
		}
	}
	return BossEntry{}, false
}

// Activity returns the entry for the given activity type, if present.
func (s *Snapshot) Activity(t activity.ActivityType) (ActivityEntry, bool) {
	for _, e := range s.Activities {
		if e.Type == t {
			return e, true
		}
	}
	return ActivityEntry{}, false
}

// SnapshotWithDeltas pairs a base snapshot with the chronologically ordered
// deltas that follow it, as produced by the interval transport.
type SnapshotWithDeltas struct {
	Snapshot Snapshot `json:"snapshot"`
	Deltas   []Delta  `json:"deltas,omitempty"`
}

// IsEmpty reports the no-data terminal state: a result carrying neither
// snapshot entries nor deltas. Callers render an explicit empty affordance
// for it; it is not an error.
func (s *SnapshotWithDeltas) IsEmpty() bool {
	return s == nil ||
		(len(s.Snapshot.Skills) == 0 &&
			len(s.Snapshot.Bosses) == 0 &&
			len(s.Snapshot.Activities) == 0 &&
			len(s.Deltas) == 0)
}

// User identifies one tracked account.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
}
