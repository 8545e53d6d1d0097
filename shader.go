package main

import (
	"errors"
	"fmt"
	"log/slog"
)

// maxInfoLog bounds every diagnostic log fetched from the driver.
const maxInfoLog = 512

const vertexShaderSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main() {
	gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fragmentShaderSource = `#version 330 core
out vec4 FragColor;
void main() {
	FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

// ShaderBuildError reports a failed compile or link step together with the
// driver's diagnostic log.
type ShaderBuildError struct {
	// Stage is "vertex", "fragment" or "program".
	Stage string
	Log   string
}

func (e *ShaderBuildError) Error() string {
	if e.Stage == "program" {
		return fmt.Sprintf("failed to link program: %s", e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// ShaderSources are the texts of the two stages linked into a program.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

var defaultShaderSources = ShaderSources{
	Vertex:   vertexShaderSource,
	Fragment: fragmentShaderSource,
}

func shaderErrorCheck(dev Device, shader uint32, kind StageKind) error {
	if dev.CompileStatus(shader) {
		return nil
	}
	return &ShaderBuildError{Stage: kind.String(), Log: dev.ShaderInfoLog(shader, maxInfoLog)}
}

func linkerErrorCheck(dev Device, program uint32) error {
	if dev.LinkStatus(program) {
		return nil
	}
	return &ShaderBuildError{Stage: "program", Log: dev.ProgramInfoLog(program, maxInfoLog)}
}

func compileStage(dev Device, kind StageKind, source string) (uint32, error) {
	shader := dev.CreateShader(kind)
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)
	return shader, shaderErrorCheck(dev, shader, kind)
}

// BuildProgram compiles both stages and links them. Every failed step is
// logged as it happens and a later step still runs; the returned error joins
// all of them. Both stage objects are deleted exactly once after linking,
// whatever the outcome. The program handle is valid even when err != nil.
func BuildProgram(dev Device, src ShaderSources, logger *slog.Logger) (uint32, error) {
	var errs []error
	record := func(err error) {
		if err == nil {
			return
		}
		var sbe *ShaderBuildError
		if errors.As(err, &sbe) {
			logger.Error("shader build failed", "stage", sbe.Stage, "log", sbe.Log)
		}
		errs = append(errs, err)
	}

	vs, err := compileStage(dev, VertexStage, src.Vertex)
	record(err)
	fs, err := compileStage(dev, FragmentStage, src.Fragment)
	record(err)

	program := dev.CreateProgram()
	dev.AttachShader(program, vs)
	dev.AttachShader(program, fs)
	dev.LinkProgram(program)
	record(linkerErrorCheck(dev, program))

	dev.DeleteShader(vs)
	dev.DeleteShader(fs)

	return program, errors.Join(errs...)
}
