//go:build !headless

package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/debugdraw/engine/core"
)

const vertexShaderSource = `
#version 410 core
layout(location = 0) in vec3 position;
uniform mat4 transformationMatrix;
out vec4 outputData;
void main() {
	gl_Position = transformationMatrix*vec4(position, 1.0);
	outputData = gl_Position;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
uniform vec4 color;
out vec4 fragmentColor;
void main() {
	fragmentColor = color;
}
` + "\x00"

// flatShader writes a uniform color and captures the clip position.
type flatShader struct {
	program        uint32
	transformation int32
	color          int32
}

func newFlatShader() (*flatShader, error) {
	vertex, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertex)
	fragment, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragment)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)

	// varyings have to be declared before linking
	varyings, free := gl.Strs("outputData\x00")
	gl.TransformFeedbackVaryings(program, 1, varyings, gl.INTERLEAVED_ATTRIBS)
	free()

	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programLog(program)
		gl.DeleteProgram(program)
		core.LogError("failed to link flat shader: %s", log)
		return nil, fmt.Errorf("failed to link flat shader: %s", log)
	}

	return &flatShader{
		program:        program,
		transformation: gl.GetUniformLocation(program, gl.Str("transformationMatrix\x00")),
		color:          gl.GetUniformLocation(program, gl.Str("color\x00")),
	}, nil
}

func (s *flatShader) use(transformation mgl32.Mat4, color mgl32.Vec4) {
	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.transformation, 1, false, &transformation[0])
	gl.Uniform4fv(s.color, 1, &color[0])
}

func (s *flatShader) destroy() {
	gl.DeleteProgram(s.program)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	sources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, sources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}
	return shader, nil
}

func programLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	log := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
	return log
}
