// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package gains

import (
	"math"
	"strconv"
)

// FormatValue renders a value in the compact axis/tooltip notation: billions
// as B, millions as M, thousands as K, one decimal place unless the scaled
// value is integral. Values under a thousand round to a plain integer.
func FormatValue(v float64) string {
	neg := v < 0
	abs := math.Abs(v)

	var out string
	switch {
	case abs >= 1e9:
		out = scaled(abs/1e9) + "B"
	case abs >= 1e6:
		out = scaled(abs/1e6) + "M"
	case abs >= 1e3:
		out = scaled(abs/1e3) + "K"
	default:
		out = strconv.FormatFloat(math.Round(abs), 'f', -1, 64)
	}
	if neg {
		out = "-" + out
	}
	return out
}

func scaled(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatGain renders a gain with an explicit sign for positive values, the
// form tooltips use for interval changes.
func FormatGain(v float64) string {
	if v > 0 {
		return "+" + FormatValue(v)
	}
	return FormatValue(v)
}
