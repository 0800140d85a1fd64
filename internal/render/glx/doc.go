// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

/*
Package glx abstracts the minimal GL command surface the chart renderers need.

Context is the portable interface: program compilation, short-lived vertex
buffers, scalar and vector uniforms, and draw calls. Two implementations exist.
WebGL, built only for js/wasm, wraps a WebGLRenderingContext obtained from a
canvas element via syscall/js. Recorder is a pure-Go fake that records every
command for test assertions and runs on any platform, which keeps the renderer
logic testable outside a browser.

Handles returned by a Context are plain integers valid only against the
Context that issued them. The zero value of Program and Buffer is never a
valid handle.
*/
package glx
