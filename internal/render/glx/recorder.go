// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package glx

// DrawCall records one DrawArrays invocation.
type DrawCall struct {
	Mode  DrawMode
	First int
	Count int
}

// Recorder is a Context fake that records every command. It backs renderer
// tests on platforms without a GL context. The zero value is ready to use.
type Recorder struct {
	// FailCompile makes CreateProgram fail, for exercising the terminal
	// context-failure path.
	FailCompile bool

	ProgramsCompiled int
	ProgramsDeleted  int
	BuffersCreated   int
	BuffersDeleted   int
	Clears           int
	ViewportWidth    int
	ViewportHeight   int

	// Uploads holds each BufferData payload in call order.
	Uploads [][]float32
	// Draws holds each draw call in order.
	Draws []DrawCall
	// Uniforms holds the last value set per uniform name.
	Uniforms map[string][]float32
	// Attribs holds the last pointer layout set per attribute name.
	Attribs map[string][3]int

	bound Buffer
}

var _ Context = (*Recorder)(nil)

func (r *Recorder) CreateProgram(vertexSrc, fragmentSrc string) (Program, error) {
	if r.FailCompile {
		return 0, &ShaderError{Stage: "link", Log: "recorder: compile disabled"}
	}
	if vertexSrc == "" || fragmentSrc == "" {
		return 0, &ShaderError{Stage: "vertex", Log: "recorder: empty shader source"}
	}
	r.ProgramsCompiled++
	return Program(r.ProgramsCompiled), nil
}

func (r *Recorder) DeleteProgram(Program) { r.ProgramsDeleted++ }

func (r *Recorder) UseProgram(Program) {}

func (r *Recorder) CreateBuffer() Buffer {
	r.BuffersCreated++
	return Buffer(r.BuffersCreated)
}

func (r *Recorder) BindBuffer(b Buffer) { r.bound = b }

func (r *Recorder) BufferData(data []float32) {
	cp := make([]float32, len(data))
	copy(cp, data)
	r.Uploads = append(r.Uploads, cp)
}

func (r *Recorder) DeleteBuffer(Buffer) { r.BuffersDeleted++ }

func (r *Recorder) VertexAttrib(_ Program, name string, size, stride, offset int) {
	if r.Attribs == nil {
		r.Attribs = make(map[string][3]int)
	}
	r.Attribs[name] = [3]int{size, stride, offset}
}

func (r *Recorder) Uniform1f(_ Program, name string, v float32) {
	r.setUniform(name, v)
}

func (r *Recorder) Uniform2f(_ Program, name string, x, y float32) {
	r.setUniform(name, x, y)
}

func (r *Recorder) Uniform4f(_ Program, name string, x, y, z, w float32) {
	r.setUniform(name, x, y, z, w)
}

func (r *Recorder) setUniform(name string, vs ...float32) {
	if r.Uniforms == nil {
		r.Uniforms = make(map[string][]float32)
	}
	r.Uniforms[name] = vs
}

func (r *Recorder) Viewport(width, height int) {
	r.ViewportWidth = width
	r.ViewportHeight = height
}

func (r *Recorder) ClearColor(float32, float32, float32, float32) {}

func (r *Recorder) Clear() { r.Clears++ }

func (r *Recorder) DrawArrays(mode DrawMode, first, count int) {
	r.Draws = append(r.Draws, DrawCall{Mode: mode, First: first, Count: count})
}

// LiveBuffers returns how many created buffers have not been deleted.
func (r *Recorder) LiveBuffers() int { return r.BuffersCreated - r.BuffersDeleted }

// LivePrograms returns how many compiled programs have not been deleted.
func (r *Recorder) LivePrograms() int { return r.ProgramsCompiled - r.ProgramsDeleted }

// Uniform1 returns the last scalar value set for name.
func (r *Recorder) Uniform1(name string) (float32, bool) {
	vs, ok := r.Uniforms[name]
	if !ok || len(vs) != 1 {
		return 0, false
	}
	return vs[0], true
}
