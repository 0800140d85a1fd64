// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package outlier

import "github.com/ctfloyd/hazelmere-charts/internal/activity"

const (
	// MaxSingleIntervalExperience caps a believable single-interval
	// experience gain. Anything above it is corrupted input, suppressed to
	// zero for display. The cap applies to experience series only, never to
	// kill counts or scores.
	MaxSingleIntervalExperience = 10_000_000

	// minExperienceDisplay and minScoreDisplay hide sub-100 noise;
	// minBossDisplay hides fractional artifacts below a single kill.
	minExperienceDisplay = 100
	minScoreDisplay      = 100
	minBossDisplay       = 1
)

// DisplayGain filters one interval gain for charting. Suppressed values
// return 0; the caller keeps the raw gain in its cumulative totals.
func DisplayGain(t activity.ActivityType, gain float64) float64 {
	switch t.Category() {
	case activity.CategoryBoss:
		if gain < minBossDisplay {
			return 0
		}
	case activity.CategoryActivity:
		if gain < minScoreDisplay {
			return 0
		}
	default:
		if gain > MaxSingleIntervalExperience {
			return 0
		}
		if gain < minExperienceDisplay {
			return 0
		}
	}
	return gain
}
