// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package gains

import (
	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
)

// SkillGainDetail is one skill's progression over an interval.
type SkillGainDetail struct {
	ExperienceGain int64
	LevelGain      int
}

// Report holds per-activity gains derived from either computation path.
// TotalExperienceGain is the Overall aggregate's gain, the canonical total;
// it is not recomputed from the individual skills.
type Report struct {
	Skills              map[activity.ActivityType]SkillGainDetail
	Bosses              map[activity.ActivityType]int
	Activities          map[activity.ActivityType]int
	TotalExperienceGain int64
}

func newReport() *Report {
	return &Report{
		Skills:     make(map[activity.ActivityType]SkillGainDetail),
		Bosses:     make(map[activity.ActivityType]int),
		Activities: make(map[activity.ActivityType]int),
	}
}

// Calculate diffs two full snapshots, newer minus older. Entries present in
// only one snapshot emit no gain; they are skipped, never treated as zero.
func Calculate(older, newer *models.Snapshot) *Report {
	r := newReport()
	if older == nil || newer == nil {
		return r
	}

	for _, ne := range newer.Skills {
		oe, ok := older.Skill(ne.Type)
		if !ok {
			continue
		}
		r.Skills[ne.Type] = SkillGainDetail{
			ExperienceGain: ne.Experience - oe.Experience,
			LevelGain:      ne.Level - oe.Level,
		}
	}
	for _, ne := range newer.Bosses {
		oe, ok := older.Boss(ne.Type)
		if !ok {
			continue
		}
		r.Bosses[ne.Type] = ne.KillCount - oe.KillCount
	}
	for _, ne := range newer.Activities {
		oe, ok := older.Activity(ne.Type)
		if !ok {
			continue
		}
		r.Activities[ne.Type] = ne.Score - oe.Score
	}

	if g, ok := r.Skills[activity.Overall]; ok {
		r.TotalExperienceGain = g.ExperienceGain
	}
	return r
}

// CalculateFromDeltas sums gains per activity type across an ordered delta
// sequence.
func CalculateFromDeltas(deltas []models.Delta) *Report {
	r := newReport()
	for _, d := range deltas {
		for _, sd := range d.Skills {
			g := r.Skills[sd.Type]
			g.ExperienceGain += sd.ExperienceGain
			g.LevelGain += sd.LevelGain
			r.Skills[sd.Type] = g
			if sd.Type == activity.Overall {
				r.TotalExperienceGain += sd.ExperienceGain
			}
		}
		for _, bd := range d.Bosses {
			r.Bosses[bd.Type] += bd.KillCountGain
		}
		for _, ad := range d.Activities {
			r.Activities[ad.Type] += ad.ScoreGain
		}
	}
	return r
}

// SnapshotValue extracts the charted value for the selected activity type
// from a snapshot: experience for skills, kill count for bosses, score for
// activities. ok is false when the snapshot carries no entry for the type.
func SnapshotValue(s *models.Snapshot, t activity.ActivityType) (int64, bool) {
	switch t.Category() {
	case activity.CategoryBoss:
		if e, ok := s.Boss(t); ok {
			return int64(e.KillCount), true
		}
	case activity.CategoryActivity:
		if e, ok := s.Activity(t); ok {
			return int64(e.Score), true
		}
	default:
		if e, ok := s.Skill(t); ok {
			return e.Experience, true
		}
	}
	return 0, false
}

// SnapshotLevel extracts the skill level for the selected type, when the
// selection is a skill the snapshot carries.
func SnapshotLevel(s *models.Snapshot, t activity.ActivityType) (int, bool) {
	if !t.IsSkill() {
		return 0, false
	}
	e, ok := s.Skill(t)
	if !ok {
		return 0, false
	}
	return e.Level, true
}

// DeltaGain extracts the selected activity type's gain from one delta. ok is
// false when the delta carries no entry for the type.
func DeltaGain(d *models.Delta, t activity.ActivityType) (int64, bool) {
	switch t.Category() {
	case activity.CategoryBoss:
		for _, e := range d.Bosses {
			if e.Type == t {
				return int64(e.KillCountGain), true
			}
		}
	case activity.CategoryActivity:
		for _, e := range d.Activities {
			if e.Type == t {
				return int64(e.ScoreGain), true
			}
		}
	default:
		for _, e := range d.Skills {
			if e.Type == t {
				return e.ExperienceGain, true
			}
		}
	}
	return 0, false
}

// DeltaLevelGain extracts the selected skill's level gain from one delta.
func DeltaLevelGain(d *models.Delta, t activity.ActivityType) (int, bool) {
	if !t.IsSkill() {
		return 0, false
	}
	e, ok := d.Skill(t)
	if !ok {
		return 0, false
	}
	return e.LevelGain, true
}
