// Package glcore implements graphics.GL on the OpenGL 4.1 core profile.
package glcore

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/shaderbackdrop/graphics"
)

var glInitOnce sync.Once
var glInitErr error

// Init loads the GL function pointers for the current context.
// The context must be current on the calling thread.
func Init() error {
	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", glInitErr)
	}
	return nil
}

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

type GL struct{}

// New returns the function table. Init must have succeeded first.
func New() *GL {
	return &GL{}
}

var _ graphics.GL = (*GL)(nil)

func (*GL) CreateShader(stage graphics.ShaderStage) uint32 {
	switch stage {
	case graphics.VertexStage:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case graphics.FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return 0
}

func (*GL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (*GL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*GL) ShaderStatus(shader uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
	return false, strings.TrimRight(logText, "\x00")
}

func (*GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*GL) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*GL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*GL) ProgramStatus(program uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
	return false, strings.TrimRight(logText, "\x00")
}

func (*GL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*GL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*GL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*GL) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (*GL) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (*GL) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (*GL) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (*GL) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

func (*GL) ArrayBufferData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (*GL) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (*GL) VertexAttribPointer2f(index uint32) {
	gl.VertexAttribPointer(index, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
}

func (*GL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (*GL) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (*GL) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

func (*GL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (*GL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*GL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (*GL) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}
