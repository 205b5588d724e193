// Package shader compiles the embedded GLSL stages, links them into programs and
// resolves the uniforms the renderer uploads per draw.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Uniform names shared by every vertex stage.
const (
	UniformWorld                 = "world"
	UniformWorldInverseTranspose = "worldInverseTranspose"
	UniformView                  = "view"
	UniformProjection            = "projection"
	UniformColorTint             = "colorTint"
)

// Uniform names for the directional light, read by lit pixel stages.
const (
	UniformLightDirection = "lightDirection"
	UniformLightColor     = "lightColor"
	UniformAmbient        = "ambient"
)

// Program is a linked program and its per-draw uniform locations.
// A location of -1 means the program does not use that uniform.
type Program struct {
	ID uint32

	World                 int32
	WorldInverseTranspose int32
	View                  int32
	Projection            int32
	ColorTint             int32

	LightDirection int32
	LightColor     int32
	Ambient        int32
}

// compileShader compiles a single stage. The caller owns the returned shader object.
func compileShader(source string, stage Stage, name string) (uint32, error) {
	shaderType := uint32(gl.VERTEX_SHADER)
	if stage == Pixel {
		shaderType = gl.FRAGMENT_SHADER
	}

	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader %q: %s", stage, name, string(log))
	}

	return shader, nil
}

// linkProgram links two compiled stages. The stages stay owned by the caller.
func linkProgram(vs, ps uint32) (*Program, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, ps)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("link: %s", string(log))
	}

	// Shader objects can be detached once linked.
	gl.DetachShader(program, vs)
	gl.DetachShader(program, ps)

	return &Program{
		ID:                    program,
		World:                 GetUniform(program, UniformWorld),
		WorldInverseTranspose: GetUniform(program, UniformWorldInverseTranspose),
		View:                  GetUniform(program, UniformView),
		Projection:            GetUniform(program, UniformProjection),
		ColorTint:             GetUniform(program, UniformColorTint),
		LightDirection:        GetUniform(program, UniformLightDirection),
		LightColor:            GetUniform(program, UniformLightColor),
		Ambient:               GetUniform(program, UniformAmbient),
	}, nil
}

// GetUniform returns the uniform location for the given name, or -1 if it is unused.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
