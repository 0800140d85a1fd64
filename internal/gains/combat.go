// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package gains

import (
	"math"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
)

// CombatLevel computes the combat level from a snapshot's skill entries.
// Skills absent from the snapshot count as level 1.
//
//	base   = 0.25 x (defence + hitpoints + floor(prayer/2))
//	melee  = 0.325 x (attack + strength)
//	ranged = 0.325 x (floor(ranged/2) + ranged)
//	magic  = 0.325 x (floor(magic/2) + magic)
//	level  = floor(base + max(melee, ranged, magic))
func CombatLevel(s *models.Snapshot) int {
	level := func(t activity.ActivityType) float64 {
		e, ok := s.Skill(t)
		if !ok {
			return 1
		}
		return float64(e.Level)
	}

	attack := level(activity.Attack)
	strength := level(activity.Strength)
	defence := level(activity.Defence)
	hitpoints := level(activity.Hitpoints)
	prayer := level(activity.Prayer)
	ranged := level(activity.Ranged)
	magic := level(activity.Magic)

	base := 0.25 * (defence + hitpoints + math.Floor(prayer/2))
	melee := 0.325 * (attack + strength)
	rangedEff := 0.325 * (math.Floor(ranged/2) + ranged)
	magicEff := 0.325 * (math.Floor(magic/2) + magic)

	return int(math.Floor(base + math.Max(melee, math.Max(rangedEff, magicEff))))
}
