package renderer

import (
	"errors"
	"fmt"

	"github.com/richinsley/shaderbackdrop/graphics"
	"github.com/richinsley/shaderbackdrop/shader"
)

// ErrContextUnavailable is returned when the host cannot provide a GL context.
var ErrContextUnavailable = errors.New("graphics context unavailable")

// BuildError reports a stage that failed to compile, or a failed link.
type BuildError struct {
	// Stage is "vertex", "fragment" or "link".
	Stage string
	Log   string
}

func (e *BuildError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("failed to link program: %s", e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// ShaderProgram is a linked program together with the stages it was linked
// from and the uniform locations the frame loop pushes every frame.
type ShaderProgram struct {
	Program        uint32
	VertexShader   uint32
	FragmentShader uint32

	timeLoc       int32
	mouseLoc      int32
	resolutionLoc int32
}

func newProgram(g graphics.GL, src shader.Sources) (*ShaderProgram, error) {
	vertexShader, err := compileShader(g, src.Vertex, graphics.VertexStage)
	if err != nil {
		return nil, err
	}
	fragmentShader, err := compileShader(g, src.Fragment, graphics.FragmentStage)
	if err != nil {
		g.DeleteShader(vertexShader)
		return nil, err
	}

	program := g.CreateProgram()
	g.AttachShader(program, vertexShader)
	g.AttachShader(program, fragmentShader)
	g.LinkProgram(program)

	if ok, infoLog := g.ProgramStatus(program); !ok {
		g.DeleteProgram(program)
		g.DeleteShader(vertexShader)
		g.DeleteShader(fragmentShader)
		return nil, &BuildError{Stage: "link", Log: infoLog}
	}

	p := &ShaderProgram{
		Program:        program,
		VertexShader:   vertexShader,
		FragmentShader: fragmentShader,
	}
	g.UseProgram(program)
	p.timeLoc = g.GetUniformLocation(program, src.UniformName(shader.UniformTime))
	p.mouseLoc = g.GetUniformLocation(program, src.UniformName(shader.UniformMouse))
	p.resolutionLoc = g.GetUniformLocation(program, src.UniformName(shader.UniformResolution))
	return p, nil
}

func compileShader(g graphics.GL, source string, stage graphics.ShaderStage) (uint32, error) {
	s := g.CreateShader(stage)
	if s == 0 {
		return 0, &BuildError{Stage: stage.String(), Log: "unable to create shader object"}
	}
	g.ShaderSource(s, source)
	g.CompileShader(s)

	if ok, infoLog := g.ShaderStatus(s); !ok {
		g.DeleteShader(s)
		return 0, &BuildError{Stage: stage.String(), Log: infoLog}
	}
	return s, nil
}

// A location of -1 is a uniform the program optimised out.
func (p *ShaderProgram) setUniforms(g graphics.GL, fs FrameState, width, height int) {
	if p.timeLoc != -1 {
		g.Uniform1f(p.timeLoc, fs.Time)
	}
	if p.mouseLoc != -1 {
		g.Uniform2f(p.mouseLoc, fs.Pointer[0], fs.Pointer[1])
	}
	if p.resolutionLoc != -1 {
		g.Uniform2f(p.resolutionLoc, float32(width), float32(height))
	}
}

func (p *ShaderProgram) release(g graphics.GL) {
	g.DeleteProgram(p.Program)
	g.DeleteShader(p.VertexShader)
	g.DeleteShader(p.FragmentShader)
}
