// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package render

// Shader sources target GLSL ES 1.00, the baseline every WebGL 1 context
// accepts.
//
// The series vertex stage does the axis mapping on the GPU: each vertex
// carries a millisecond offset from the view window start and a raw axis
// value, and the per-frame uniforms carry the window span, axis domain,
// plot box, and canvas resolution. Timestamps are rebased to the window
// start before upload because absolute epoch milliseconds exceed float32
// precision.

const seriesVertexSrc = `
attribute float a_t;
attribute float a_value;

uniform vec2 u_resolution;
uniform vec4 u_plot;
uniform float u_span;
uniform vec2 u_domain;
uniform float u_pointSize;

void main() {
	float fx = a_t / max(u_span, 1.0);
	float fy = (a_value - u_domain.x) / max(u_domain.y - u_domain.x, 0.000001);
	float px = u_plot.x + fx * u_plot.z;
	float py = u_plot.y + (1.0 - fy) * u_plot.w;
	vec2 clip = vec2(px / u_resolution.x, py / u_resolution.y) * 2.0 - 1.0;
	gl_Position = vec4(clip.x, -clip.y, 0.0, 1.0);
	gl_PointSize = u_pointSize;
}
`

const solidFragmentSrc = `
precision mediump float;

uniform vec4 u_color;

void main() {
	gl_FragColor = u_color;
}
`

// dotFragmentSrc rounds point sprites into dots.
const dotFragmentSrc = `
precision mediump float;

uniform vec4 u_color;

void main() {
	vec2 d = gl_PointCoord - vec2(0.5);
	if (dot(d, d) > 0.25) {
		discard;
	}
	gl_FragColor = u_color;
}
`

const heatVertexSrc = `
attribute vec2 a_pos;
attribute vec2 a_local;
attribute vec4 a_color;

uniform vec2 u_resolution;

varying vec2 v_local;
varying vec4 v_color;

void main() {
	vec2 clip = a_pos / u_resolution * 2.0 - 1.0;
	gl_Position = vec4(clip.x, -clip.y, 0.0, 1.0);
	v_local = a_local;
	v_color = a_color;
}
`

// heatFragmentSrc draws an anti-aliased rounded rectangle by signed distance
// in the cell's local -1..1 space.
const heatFragmentSrc = `
precision mediump float;

uniform float u_radius;
uniform float u_soft;

varying vec2 v_local;
varying vec4 v_color;

void main() {
	vec2 q = abs(v_local) - vec2(1.0 - u_radius);
	float d = length(max(q, 0.0)) - u_radius;
	float alpha = 1.0 - smoothstep(0.0, u_soft, d);
	gl_FragColor = vec4(v_color.rgb, v_color.a * alpha);
}
`
