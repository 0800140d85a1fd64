// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

//go:build js && wasm

package glx

import (
	"encoding/binary"
	"math"
	"syscall/js"
)

// WebGL numeric enums are fixed by the WebGL 1.0 specification.
const (
	glArrayBuffer      = 0x8892
	glStreamDraw       = 0x88E0
	glCompileStatus    = 0x8B81
	glLinkStatus       = 0x8B82
	glVertexShader     = 0x8B31
	glFragmentShader   = 0x8B30
	glColorBufferBit   = 0x4000
	glFloat            = 0x1406
	glBlend            = 0x0BE2
	glSrcAlpha         = 0x0302
	glOneMinusSrcAlpha = 0x0303
	glPoints           = 0x0000
	glLines            = 0x0001
	glLineStrip        = 0x0003
	glTriangles        = 0x0004
	glTriangleStrip    = 0x0005
)

type locKey struct {
	p    Program
	name string
}

// WebGL adapts a WebGLRenderingContext to the Context interface.
type WebGL struct {
	gl       js.Value
	programs []js.Value
	buffers  []js.Value
	uniforms map[locKey]js.Value
	attribs  map[locKey]int
}

var _ Context = (*WebGL)(nil)

// NewWebGL acquires a WebGL context from a canvas element. Acquisition
// failure returns ErrContextUnavailable; the caller renders nothing and
// surfaces the failure to the host for fallback UI.
func NewWebGL(canvas js.Value) (*WebGL, error) {
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, ErrContextUnavailable
	}
	gl := canvas.Call("getContext", "webgl")
	if gl.IsNull() || gl.IsUndefined() {
		gl = canvas.Call("getContext", "experimental-webgl")
	}
	if gl.IsNull() || gl.IsUndefined() {
		return nil, ErrContextUnavailable
	}

	gl.Call("enable", glBlend)
	gl.Call("blendFunc", glSrcAlpha, glOneMinusSrcAlpha)

	return &WebGL{
		gl:       gl,
		uniforms: make(map[locKey]js.Value),
		attribs:  make(map[locKey]int),
	}, nil
}

// NewWebGLFromID acquires a WebGL context from the canvas with the given
// document element id.
func NewWebGLFromID(canvasID string) (*WebGL, error) {
	doc := js.Global().Get("document")
	if doc.IsUndefined() {
		return nil, ErrContextUnavailable
	}
	return NewWebGL(doc.Call("getElementById", canvasID))
}

func (w *WebGL) CreateProgram(vertexSrc, fragmentSrc string) (Program, error) {
	vs, err := w.compile(glVertexShader, "vertex", vertexSrc)
	if err != nil {
		return 0, err
	}
	fs, err := w.compile(glFragmentShader, "fragment", fragmentSrc)
	if err != nil {
		w.gl.Call("deleteShader", vs)
		return 0, err
	}

	prog := w.gl.Call("createProgram")
	w.gl.Call("attachShader", prog, vs)
	w.gl.Call("attachShader", prog, fs)
	w.gl.Call("linkProgram", prog)
	// Shaders are no longer needed once the program is linked.
	w.gl.Call("deleteShader", vs)
	w.gl.Call("deleteShader", fs)

	if !w.gl.Call("getProgramParameter", prog, glLinkStatus).Bool() {
		log := w.gl.Call("getProgramInfoLog", prog).String()
		w.gl.Call("deleteProgram", prog)
		return 0, &ShaderError{Stage: "link", Log: log}
	}

	w.programs = append(w.programs, prog)
	return Program(len(w.programs)), nil
}

func (w *WebGL) compile(kind int, stage, src string) (js.Value, error) {
	sh := w.gl.Call("createShader", kind)
	w.gl.Call("shaderSource", sh, src)
	w.gl.Call("compileShader", sh)
	if !w.gl.Call("getShaderParameter", sh, glCompileStatus).Bool() {
		log := w.gl.Call("getShaderInfoLog", sh).String()
		w.gl.Call("deleteShader", sh)
		return js.Null(), &ShaderError{Stage: stage, Log: log}
	}
	return sh, nil
}

func (w *WebGL) DeleteProgram(p Program) {
	if v, ok := w.program(p); ok {
		w.gl.Call("deleteProgram", v)
		w.programs[p-1] = js.Null()
	}
	for k := range w.uniforms {
		if k.p == p {
			delete(w.uniforms, k)
		}
	}
	for k := range w.attribs {
		if k.p == p {
			delete(w.attribs, k)
		}
	}
}

func (w *WebGL) UseProgram(p Program) {
	if v, ok := w.program(p); ok {
		w.gl.Call("useProgram", v)
	}
}

func (w *WebGL) CreateBuffer() Buffer {
	w.buffers = append(w.buffers, w.gl.Call("createBuffer"))
	return Buffer(len(w.buffers))
}

func (w *WebGL) BindBuffer(b Buffer) {
	if v, ok := w.buffer(b); ok {
		w.gl.Call("bindBuffer", glArrayBuffer, v)
	}
}

func (w *WebGL) BufferData(data []float32) {
	raw := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}
	u8 := js.Global().Get("Uint8Array").New(len(raw))
	js.CopyBytesToJS(u8, raw)
	f32 := js.Global().Get("Float32Array").New(u8.Get("buffer"), 0, len(data))
	w.gl.Call("bufferData", glArrayBuffer, f32, glStreamDraw)
}

func (w *WebGL) DeleteBuffer(b Buffer) {
	if v, ok := w.buffer(b); ok {
		w.gl.Call("deleteBuffer", v)
		w.buffers[b-1] = js.Null()
	}
}

func (w *WebGL) VertexAttrib(p Program, name string, size, stride, offset int) {
	loc, ok := w.attribLoc(p, name)
	if !ok {
		return
	}
	w.gl.Call("enableVertexAttribArray", loc)
	w.gl.Call("vertexAttribPointer", loc, size, glFloat, false, stride*4, offset*4)
}

func (w *WebGL) Uniform1f(p Program, name string, v float32) {
	if loc, ok := w.uniformLoc(p, name); ok {
		w.gl.Call("uniform1f", loc, v)
	}
}

func (w *WebGL) Uniform2f(p Program, name string, x, y float32) {
	if loc, ok := w.uniformLoc(p, name); ok {
		w.gl.Call("uniform2f", loc, x, y)
	}
}

func (w *WebGL) Uniform4f(p Program, name string, x, y, z, wv float32) {
	if loc, ok := w.uniformLoc(p, name); ok {
		w.gl.Call("uniform4f", loc, x, y, z, wv)
	}
}

func (w *WebGL) Viewport(width, height int) {
	w.gl.Call("viewport", 0, 0, width, height)
}

func (w *WebGL) ClearColor(r, g, b, a float32) {
	w.gl.Call("clearColor", r, g, b, a)
}

func (w *WebGL) Clear() {
	w.gl.Call("clear", glColorBufferBit)
}

func (w *WebGL) DrawArrays(mode DrawMode, first, count int) {
	w.gl.Call("drawArrays", glMode(mode), first, count)
}

func (w *WebGL) program(p Program) (js.Value, bool) {
	if p == 0 || int(p) > len(w.programs) {
		return js.Value{}, false
	}
	v := w.programs[p-1]
	return v, !v.IsNull()
}

func (w *WebGL) buffer(b Buffer) (js.Value, bool) {
	if b == 0 || int(b) > len(w.buffers) {
		return js.Value{}, false
	}
	v := w.buffers[b-1]
	return v, !v.IsNull()
}

func (w *WebGL) uniformLoc(p Program, name string) (js.Value, bool) {
	key := locKey{p: p, name: name}
	if loc, ok := w.uniforms[key]; ok {
		return loc, true
	}
	v, ok := w.program(p)
	if !ok {
		return js.Value{}, false
	}
	loc := w.gl.Call("getUniformLocation", v, name)
	if loc.IsNull() {
		return js.Value{}, false
	}
	w.uniforms[key] = loc
	return loc, true
}

func (w *WebGL) attribLoc(p Program, name string) (int, bool) {
	key := locKey{p: p, name: name}
	if loc, ok := w.attribs[key]; ok {
		return loc, true
	}
	v, ok := w.program(p)
	if !ok {
		return 0, false
	}
	loc := w.gl.Call("getAttribLocation", v, name).Int()
	if loc < 0 {
		return 0, false
	}
	w.attribs[key] = loc
	return loc, true
}

func glMode(m DrawMode) int {
	switch m {
	case TriangleStrip:
		return glTriangleStrip
	case LineStrip:
		return glLineStrip
	case Lines:
		return glLines
	case Points:
		return glPoints
	default:
		return glTriangles
	}
}
