// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package glx

import (
	"errors"
	"fmt"
)

// Program is an opaque handle to a compiled and linked shader pair.
type Program uint32

// Buffer is an opaque handle to a GPU vertex buffer.
type Buffer uint32

// DrawMode selects primitive assembly for a draw call.
type DrawMode uint8

const (
	Triangles DrawMode = iota
	TriangleStrip
	LineStrip
	Lines
	Points
)

// ErrContextUnavailable reports that no rendering context could be acquired.
// It is terminal for the chart instance that requested it, never for the
// surrounding page.
var ErrContextUnavailable = errors.New("glx: rendering context unavailable")

// ShaderError reports a shader compile or program link failure.
type ShaderError struct {
	Stage string // "vertex", "fragment", "link"
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("glx: %s shader: %s", e.Stage, e.Log)
}

// Context is the GL command surface shared by all chart renderers.
//
// Buffers are short-lived: renderers create, upload, draw, and delete within
// a single frame. Programs live for the renderer's lifetime and are released
// by its Close. Attribute stride and offset are counted in float32 elements,
// not bytes.
type Context interface {
	CreateProgram(vertexSrc, fragmentSrc string) (Program, error)
	DeleteProgram(p Program)
	UseProgram(p Program)

	CreateBuffer() Buffer
	BindBuffer(b Buffer)
	BufferData(data []float32)
	DeleteBuffer(b Buffer)

	VertexAttrib(p Program, name string, size, stride, offset int)
	Uniform1f(p Program, name string, v float32)
	Uniform2f(p Program, name string, x, y float32)
	Uniform4f(p Program, name string, x, y, z, w float32)

	Viewport(width, height int)
	ClearColor(r, g, b, a float32)
	Clear()
	DrawArrays(mode DrawMode, first, count int)
}
