// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package outlier

import (
	"math"
	"reflect"
	"testing"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
)

func TestDetectAnomalies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		want   []int
	}{
		{
			name:   "single spike flagged",
			values: []float64{10, 12, 11, 13, 10000},
			want:   []int{4},
		},
		{
			name:   "below four samples nothing is flagged",
			values: []float64{10, 12, 11},
			want:   nil,
		},
		{
			name:   "huge but tiny sample",
			values: []float64{1, 50_000_000},
			want:   nil,
		},
		{
			name:   "uniform values",
			values: []float64{5, 5, 5, 5, 5},
			want:   nil,
		},
		{
			name:   "spike keeps input order",
			values: []float64{9000, 10, 12, 11, 13},
			want:   []int{0},
		},
		{
			name:   "steady grind is not anomalous",
			values: []float64{100_000, 120_000, 90_000, 110_000, 105_000},
			want:   nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectAnomalies(tt.values); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectAnomalies(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestUpperBoundFloorIndexing(t *testing.T) {
	t.Parallel()

	// Sorted: [10 11 12 13 10000]; Q1 = idx 1 -> 11, Q3 = idx 3 -> 13,
	// IQR = 2, bound = 13 + 6 = 19.
	bound, ok := UpperBound([]float64{10, 12, 11, 13, 10000})
	if !ok {
		t.Fatal("UpperBound() not ok for 5 samples")
	}
	if bound != 19 {
		t.Errorf("UpperBound() = %v, want 19", bound)
	}

	if _, ok := UpperBound([]float64{1, 2, 3}); ok {
		t.Error("UpperBound() ok for 3 samples, want not ok")
	}
}

func TestDisplayGain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  activity.ActivityType
		gain float64
		want float64
	}{
		{"experience above cap suppressed", activity.Overall, 15_000_000, 0},
		{"experience at cap kept", activity.Overall, 10_000_000, 10_000_000},
		{"experience noise floored", activity.Attack, 99, 0},
		{"experience at floor kept", activity.Attack, 100, 100},
		{"negative experience floored", activity.Attack, -500, 0},
		{"boss single kill kept", activity.Zulrah, 1, 1},
		{"boss zero floored", activity.Zulrah, 0, 0},
		{"boss huge gain passes uncapped", activity.Zulrah, 20_000_000, 20_000_000},
		{"score noise floored", activity.RiftsClosed, 50, 0},
		{"score kept", activity.RiftsClosed, 150, 150},
		{"score huge gain passes uncapped", activity.LeaguePoints, 12_000_000, 12_000_000},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DisplayGain(tt.typ, tt.gain); got != tt.want {
				t.Errorf("DisplayGain(%v, %v) = %v, want %v", tt.typ, tt.gain, got, tt.want)
			}
		})
	}
}

func TestDailyDomain(t *testing.T) {
	t.Parallel()

	// The 10000 spike is excluded before the max is taken.
	d := DailyDomain([]float64{10, 12, 11, 13, 10000})
	if d.Min != 0 {
		t.Errorf("Min = %v, want 0", d.Min)
	}
	if want := 13 * 1.05; math.Abs(d.Max-want) > 1e-9 {
		t.Errorf("Max = %v, want %v", d.Max, want)
	}

	// Below the sample floor everything participates.
	d = DailyDomain([]float64{5, 500})
	if want := 500 * 1.05; math.Abs(d.Max-want) > 1e-9 {
		t.Errorf("Max = %v, want %v", d.Max, want)
	}

	// Degenerate input still yields a drawable axis.
	d = DailyDomain(nil)
	if d.Min != 0 || d.Max <= 0 {
		t.Errorf("empty domain = %+v", d)
	}
}

func TestCumulativeDomainFlatSeries(t *testing.T) {
	t.Parallel()

	// Experience series barely moving: 20% of range but at least 1000.
	d := CumulativeDomain([]float64{1_000_000, 1_000_200}, activity.Overall)
	if want := 1_000_200 + 1000.0; d.Max != want {
		t.Errorf("Max = %v, want %v", d.Max, want)
	}
	if want := 1_000_000 - 1000.0; d.Min != want {
		t.Errorf("Min = %v, want %v", d.Min, want)
	}

	// Small-value series: minimum padding is 10% of max, not the flat 1000.
	d = CumulativeDomain([]float64{100, 102}, activity.Zulrah)
	if want := 102 + 10.2; math.Abs(d.Max-want) > 1e-6 {
		t.Errorf("boss Max = %v, want %v", d.Max, want)
	}
	if want := 100 - 10.2; math.Abs(d.Min-want) > 1e-6 {
		t.Errorf("boss Min = %v, want %v", d.Min, want)
	}
}

func TestCumulativeDomainSteepSeries(t *testing.T) {
	t.Parallel()

	// Range 9M on max 10M: pad = max(5% of range, 2% of max) = 450K.
	d := CumulativeDomain([]float64{1_000_000, 10_000_000}, activity.Overall)
	if want := 10_000_000 + 450_000.0; math.Abs(d.Max-want) > 1e-3 {
		t.Errorf("Max = %v, want %v", d.Max, want)
	}
	if want := 1_000_000 - 450_000.0; math.Abs(d.Min-want) > 1e-3 {
		t.Errorf("Min = %v, want %v", d.Min, want)
	}
}

func TestCumulativeDomainNeverNegative(t *testing.T) {
	t.Parallel()

	d := CumulativeDomain([]float64{0, 5}, activity.Zulrah)
	if d.Min < 0 {
		t.Errorf("Min = %v, want >= 0", d.Min)
	}

	d = CumulativeDomain(nil, activity.Overall)
	if d.Min != 0 || d.Max <= 0 {
		t.Errorf("empty domain = %+v", d)
	}
}
