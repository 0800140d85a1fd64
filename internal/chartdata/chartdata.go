// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package chartdata

import (
	"sort"
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/gains"
	"github.com/ctfloyd/hazelmere-charts/internal/logging"
	"github.com/ctfloyd/hazelmere-charts/internal/metrics"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
	"github.com/ctfloyd/hazelmere-charts/internal/outlier"
	"github.com/ctfloyd/hazelmere-charts/internal/timeseries"
)

// breakdownLimit caps the tooltip skill breakdown.
const breakdownLimit = 5

// FromSnapshots derives the chart series from a snapshot sequence, computing
// each interval's gain as the difference between consecutive extracted values.
// Snapshots carrying no entry for the selection are skipped, never zeroed, so
// the next emitted interval spans back to the last snapshot that had one.
func FromSnapshots(snapshots []models.Snapshot, selected activity.ActivityType) []models.ChartDataPoint {
	if len(snapshots) == 0 {
		return nil
	}
	began := time.Now()

	ordered := make([]models.Snapshot, len(snapshots))
	copy(ordered, snapshots)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Timestamp < ordered[j].Timestamp })

	points := make([]models.ChartDataPoint, 0, len(ordered))
	var prev *models.Snapshot
	var prevValue int64
	for i := range ordered {
		s := &ordered[i]
		value, ok := gains.SnapshotValue(s, selected)
		if !ok {
			continue
		}

		p := models.ChartDataPoint{
			Timestamp:  s.Timestamp,
			Cumulative: float64(value),
		}
		if lvl, ok := gains.SnapshotLevel(s, selected); ok {
			p.Level = &lvl
		}
		if prev != nil {
			p.Gain = displayGain(selected, float64(value-prevValue))
			if wantBreakdown(selected) {
				p.Breakdown = snapshotBreakdown(prev, s)
			}
		}
		points = append(points, p)
		prev = s
		prevValue = value
	}

	finish("snapshot_diff", points, selected, began)
	return points
}

// FromDeltas derives the chart series from a base snapshot plus a delta
// sequence, reading each interval's gain directly from the matching delta
// entry. The first emitted point is the base value with zero gain, the
// baseline before any deltas apply. Deltas carrying no entry for the
// selection still emit a point, flat against the running total.
func FromDeltas(base models.Snapshot, deltas []models.Delta, selected activity.ActivityType) []models.ChartDataPoint {
	if len(base.Skills) == 0 && len(base.Bosses) == 0 && len(base.Activities) == 0 && len(deltas) == 0 {
		return nil
	}
	began := time.Now()

	ordered := make([]models.Delta, len(deltas))
	copy(ordered, deltas)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Timestamp < ordered[j].Timestamp })

	points := make([]models.ChartDataPoint, 0, len(ordered)+1)

	cumulative, _ := gains.SnapshotValue(&base, selected)
	level, hasLevel := gains.SnapshotLevel(&base, selected)

	baseline := models.ChartDataPoint{
		Timestamp:  base.Timestamp,
		Cumulative: float64(cumulative),
	}
	if hasLevel {
		lvl := level
		baseline.Level = &lvl
	}
	points = append(points, baseline)

	for i := range ordered {
		d := &ordered[i]
		raw, _ := gains.DeltaGain(d, selected)
		cumulative += raw
		if lg, ok := gains.DeltaLevelGain(d, selected); ok {
			level += lg
		}

		p := models.ChartDataPoint{
			Timestamp:  d.Timestamp,
			Cumulative: float64(cumulative),
			Gain:       displayGain(selected, float64(raw)),
		}
		if hasLevel {
			lvl := level
			p.Level = &lvl
		}
		if wantBreakdown(selected) {
			p.Breakdown = deltaBreakdown(d)
		}
		points = append(points, p)
	}

	finish("delta_sequence", points, selected, began)
	return points
}

// wantBreakdown reports whether the selection carries a skill breakdown. The
// Overall aggregate does, and Overall is also the zero value, so an unset
// selection breaks down too.
func wantBreakdown(selected activity.ActivityType) bool {
	return selected == activity.Overall
}

// snapshotBreakdown ranks the per-skill experience gains between two
// snapshots. Eligible gains are positive and within the single-interval cap;
// skills missing from either snapshot are skipped.
func snapshotBreakdown(older, newer *models.Snapshot) []models.SkillGain {
	top := timeseries.NewTopK[models.SkillGain](breakdownLimit)
	for _, ne := range newer.Skills {
		if !ne.Type.IsRealSkill() {
			continue
		}
		oe, ok := older.Skill(ne.Type)
		if !ok {
			continue
		}
		g := ne.Experience - oe.Experience
		if g <= 0 || g > outlier.MaxSingleIntervalExperience {
			continue
		}
		top.Push(models.SkillGain{Type: ne.Type, Gain: g}, g)
	}
	if top.Len() == 0 {
		return nil
	}
	return top.Descending()
}

// deltaBreakdown ranks one delta's per-skill experience gains under the same
// eligibility rules as snapshotBreakdown.
func deltaBreakdown(d *models.Delta) []models.SkillGain {
	top := timeseries.NewTopK[models.SkillGain](breakdownLimit)
	for _, sd := range d.Skills {
		if !sd.Type.IsRealSkill() {
			continue
		}
		if sd.ExperienceGain <= 0 || sd.ExperienceGain > outlier.MaxSingleIntervalExperience {
			continue
		}
		top.Push(models.SkillGain{Type: sd.Type, Gain: sd.ExperienceGain}, sd.ExperienceGain)
	}
	if top.Len() == 0 {
		return nil
	}
	return top.Descending()
}

// displayGain applies the shared display filter and counts suppressions.
func displayGain(t activity.ActivityType, raw float64) float64 {
	shown := outlier.DisplayGain(t, raw)
	if shown == 0 && raw > 0 {
		if t.IsSkill() && raw > outlier.MaxSingleIntervalExperience {
			metrics.RecordGainSuppressed("outlier_cap")
		} else {
			metrics.RecordGainSuppressed("noise_floor")
		}
	}
	return shown
}

// finish flags anomalous points and records derivation telemetry.
func finish(mode string, points []models.ChartDataPoint, selected activity.ActivityType, began time.Time) {
	if n := markAnomalies(points); n > 0 {
		metrics.RecordAnomalies(selected.Category().String(), n)
		log := logging.WithComponent("chartdata")
		log.Debug().
			Str("activity", selected.Name()).
			Str("mode", mode).
			Int("anomalies", n).
			Msg("flagged anomalous gains")
	}
	metrics.RecordChartDerivation(mode, len(points), time.Since(began))
}

// markAnomalies applies the IQR fence to the positive display gains and marks
// the points exceeding it, returning how many were marked. Fewer than four
// positive gains mark nothing.
func markAnomalies(points []models.ChartDataPoint) int {
	values := make([]float64, 0, len(points))
	indexes := make([]int, 0, len(points))
	for i := range points {
		if points[i].Gain > 0 {
			values = append(values, points[i].Gain)
			indexes = append(indexes, i)
		}
	}
	bound, ok := outlier.UpperBound(values)
	if !ok {
		return 0
	}
	marked := 0
	for j, v := range values {
		if v > bound {
			points[indexes[j]].Anomalous = true
			marked++
		}
	}
	return marked
}
