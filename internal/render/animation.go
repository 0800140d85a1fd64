// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package render

import (
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/models"
)

// revealDuration is how long the left-to-right reveal runs.
const revealDuration = time.Second

// datasetIdentity fingerprints a point series by its endpoints, length, and
// value sum. The line renderer restarts its reveal whenever the identity
// changes and leaves it alone when a re-render carries the same data.
type datasetIdentity struct {
	first int64
	last  int64
	n     int
	sum   float64
}

func identityOf(points []models.ChartDataPoint) datasetIdentity {
	id := datasetIdentity{n: len(points)}
	if len(points) == 0 {
		return id
	}
	id.first = points[0].Timestamp
	id.last = points[len(points)-1].Timestamp
	for i := range points {
		id.sum += points[i].Cumulative
	}
	return id
}

// reveal is the reveal animation state machine: idle until a dataset change
// starts it, animating for revealDuration, then idle again. State advances
// only inside Progress calls; there are no timers to cancel, a restart just
// replaces the state.
type reveal struct {
	animating bool
	start     time.Time
	id        datasetIdentity
}

// Observe restarts the reveal if the dataset identity changed.
func (r *reveal) Observe(id datasetIdentity, now time.Time) {
	if id == r.id {
		return
	}
	r.id = id
	r.animating = true
	r.start = now
}

// Progress returns the eased reveal fraction in [0,1], flipping back to idle
// once the duration has elapsed.
func (r *reveal) Progress(now time.Time) float64 {
	if !r.animating {
		return 1
	}
	elapsed := now.Sub(r.start)
	if elapsed >= revealDuration {
		r.animating = false
		return 1
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return easeOutCubic(float64(elapsed) / float64(revealDuration))
}

// Active reports whether the reveal still needs frames.
func (r *reveal) Active() bool { return r.animating }

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
