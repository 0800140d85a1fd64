// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package models

import (
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
)

// Delta is the change between two chronologically adjacent snapshots. The
// three collections are sparse: a nil collection means no entry in that
// category changed over the interval, not that the change is unknown.
// Entries appear only for activity types that actually changed.
type Delta struct {
	Timestamp  int64           `json:"timestamp"` // epoch milliseconds, UTC
	Skills     []SkillDelta    `json:"skills,omitempty"`
	Bosses     []BossDelta     `json:"bosses,omitempty"`
	Activities []ActivityDelta `json:"activities,omitempty"`
}

// SkillDelta is one skill's gain over a delta interval.
type SkillDelta struct {
	Type           activity.ActivityType `json:"activityType"`
	ExperienceGain int64                 `json:"experienceGain"`
	LevelGain      int                   `json:"levelGain"`
}

// BossDelta is one boss encounter's kill-count gain over a delta interval.
type BossDelta struct {
	Type          activity.ActivityType `json:"activityType"`
	KillCountGain int                   `json:"killCountGain"`
}

// ActivityDelta is one score-based activity's gain over a delta interval.
type ActivityDelta struct {
	Type      activity.ActivityType `json:"activityType"`
	ScoreGain int                   `json:"scoreGain"`
}

// Time returns the delta timestamp as UTC wall time.
func (d *Delta) Time() time.Time {
	return time.UnixMilli(d.Timestamp).UTC()
}

// Skill returns the skill delta for the given type, if present.
func (d *Delta) Skill(t activity.ActivityType) (SkillDelta, bool) {
	for _, e := range d.Skills {
		if e.Type == t {
			return e, true
		}
	}
	return SkillDelta{}, false
}
