package shader

import (
	"fmt"
	"strings"

	gst "github.com/richinsley/goshadertranslator"
	xlate "github.com/richinsley/shaderbackdrop/translator"
)

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 in_vert;
void main() {
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

// ──────────────────────────────────── GLES ──────────────────────────────────────

const vertexShaderSourceGLES = `#version 300 es
layout (location = 0) in vec2 in_vert;
void main() {
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

// Uniform names every visual policy declares.
const (
	UniformTime       = "u_time"
	UniformMouse      = "u_mouse"
	UniformResolution = "u_resolution"
)

// Policy names a fragment-stage visual effect.
type Policy string

const (
	PolicyFBM  Policy = "fbm"
	PolicyRain Policy = "rain"
)

// DefaultPolicy is used when no policy is configured.
const DefaultPolicy = PolicyFBM

// Policies lists every known policy.
func Policies() []Policy {
	return []Policy{PolicyFBM, PolicyRain}
}

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DefaultPolicy, nil
	case PolicyFBM, PolicyRain:
		return p, nil
	}
	return "", fmt.Errorf("unknown shader policy %q (want one of %v)", s, Policies())
}

// FragmentSource returns the WebGL2 (ESSL 3.00) source of the policy.
func (p Policy) FragmentSource() (string, error) {
	switch p {
	case PolicyFBM:
		return fbmFragmentSource, nil
	case PolicyRain:
		return rainFragmentSource, nil
	}
	return "", fmt.Errorf("unknown shader policy %q", string(p))
}

// Sources is a ready-to-compile pair of stages.
type Sources struct {
	Vertex   string
	Fragment string
	// Uniforms maps declared uniform names to their names in Fragment.
	Uniforms map[string]string
}

// UniformName returns the name to query in the linked program for a declared uniform.
func (s Sources) UniformName(name string) string {
	if mapped, ok := s.Uniforms[name]; ok && mapped != "" {
		return mapped
	}
	return name
}

func GenerateVertexShader(isGLES bool) string {
	if isGLES {
		return vertexShaderSourceGLES
	}
	return vertexShaderSourceGL
}

// Build translates the policy's fragment stage to the dialect of the target
// context and pairs it with the matching vertex stage.
func Build(p Policy, isGLES bool) (Sources, error) {
	fragment, err := p.FragmentSource()
	if err != nil {
		return Sources{}, err
	}

	translator, err := xlate.GetTranslator()
	if err != nil {
		return Sources{}, err
	}

	outputFormat := gst.OutputFormatGLSL410
	if isGLES {
		outputFormat = gst.OutputFormatESSL
	}
	fsShader, err := translator.TranslateShader(fragment, "fragment", gst.ShaderSpecWebGL2, outputFormat)
	if err != nil {
		return Sources{}, fmt.Errorf("fragment shader translation failed: %w", err)
	}

	uniforms := make(map[string]string, 3)
	for _, name := range []string{UniformTime, UniformMouse, UniformResolution} {
		if v, ok := fsShader.Variables[name]; ok {
			uniforms[name] = v.MappedName
		}
	}

	return Sources{
		Vertex:   GenerateVertexShader(isGLES),
		Fragment: fsShader.Code,
		Uniforms: uniforms,
	}, nil
}
