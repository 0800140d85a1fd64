// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package render

// Color is a premultiplication-free RGBA quad in the 0..1 range, matching
// the uniform layout the fragment shaders expect.
type Color [4]float32

// Theme carries every color the renderers draw with. Heat is the nine-step
// quantized heatmap scale, index 0 for quiet days through index 8 for days
// past the top gain threshold.
type Theme struct {
	Background Color
	Line       Color
	Dot        Color
	HoverDot   Color
	Bar        Color
	Overflow   Color
	Guide      Color
	Selection  Color
	Heat       [9]Color
}

// Light is the default palette for light backgrounds.
func Light() Theme {
	return Theme{
		Background: Color{1, 1, 1, 1},
		Line:       Color{0.310, 0.275, 0.898, 1},    // #4f46e5
		Dot:        Color{0.310, 0.275, 0.898, 1},    // #4f46e5
		HoverDot:   Color{0.118, 0.106, 0.294, 1},    // #1e1b4b
		Bar:        Color{0.388, 0.400, 0.945, 1},    // #6366f1
		Overflow:   Color{0.937, 0.267, 0.267, 1},    // #ef4444
		Guide:      Color{0.612, 0.639, 0.686, 0.6},  // #9ca3af
		Selection:  Color{0.310, 0.275, 0.898, 0.12}, // #4f46e5
		Heat: [9]Color{
			{0.922, 0.929, 0.941, 1}, // #ebedf0
			{0.863, 0.988, 0.906, 1}, // #dcfce7
			{0.733, 0.969, 0.816, 1}, // #bbf7d0
			{0.525, 0.937, 0.675, 1}, // #86efac
			{0.290, 0.871, 0.502, 1}, // #4ade80
			{0.133, 0.773, 0.369, 1}, // #22c55e
			{0.086, 0.639, 0.290, 1}, // #16a34a
			{0.082, 0.502, 0.239, 1}, // #15803d
			{0.078, 0.325, 0.176, 1}, // #14532d
		},
	}
}

// Dark is the palette for dark backgrounds.
func Dark() Theme {
	return Theme{
		Background: Color{0.043, 0.067, 0.125, 1},    // #0b1120
		Line:       Color{0.506, 0.549, 0.973, 1},    // #818cf8
		Dot:        Color{0.506, 0.549, 0.973, 1},    // #818cf8
		HoverDot:   Color{0.878, 0.906, 1.000, 1},    // #e0e7ff
		Bar:        Color{0.388, 0.400, 0.945, 1},    // #6366f1
		Overflow:   Color{0.973, 0.443, 0.443, 1},    // #f87171
		Guide:      Color{0.420, 0.447, 0.502, 0.6},  // #6b7280
		Selection:  Color{0.506, 0.549, 0.973, 0.15}, // #818cf8
		Heat: [9]Color{
			{0.086, 0.106, 0.133, 1}, // #161b22
			{0.039, 0.180, 0.122, 1}, // #0a2e1f
			{0.055, 0.267, 0.161, 1}, // #0e4429
			{0.000, 0.427, 0.196, 1}, // #006d32
			{0.102, 0.541, 0.235, 1}, // #1a8a3c
			{0.149, 0.651, 0.255, 1}, // #26a641
			{0.224, 0.827, 0.325, 1}, // #39d353
			{0.435, 0.910, 0.518, 1}, // #6fe884
			{0.718, 0.969, 0.761, 1}, // #b7f7c2
		},
	}
}

// heatLevel quantizes a daily gain onto the nine-step heat scale.
func heatLevel(gain float64) int {
	switch {
	case gain <= 0:
		return 0
	case gain < 50_000:
		return 1
	case gain < 150_000:
		return 2
	case gain < 300_000:
		return 3
	case gain < 500_000:
		return 4
	case gain < 750_000:
		return 5
	case gain < 1_000_000:
		return 6
	case gain < 2_000_000:
		return 7
	default:
		return 8
	}
}
