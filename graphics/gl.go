package graphics

// ShaderStage selects which pipeline stage a shader object is compiled for.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// GL is the subset of the GL API the background renderer drives.
// Object names are GL names; 0 is never a valid object and -1 is the
// "not found" uniform location, as in GL itself.
type GL interface {
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	// ShaderStatus reports COMPILE_STATUS and the info log when it failed.
	ShaderStatus(shader uint32) (bool, string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	// ProgramStatus reports LINK_STATUS and the info log when it failed.
	ProgramStatus(program uint32) (bool, string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindArrayBuffer(buffer uint32)
	// ArrayBufferData uploads data to the bound array buffer with STATIC_DRAW usage.
	ArrayBufferData(data []float32)
	DeleteBuffer(buffer uint32)
	// VertexAttribPointer2f describes attribute index as tightly packed vec2 floats.
	VertexAttribPointer2f(index uint32)
	EnableVertexAttribArray(index uint32)

	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
	// DrawTriangles draws count vertices of the bound vertex array as a triangle list.
	DrawTriangles(first, count int32)
}
