// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file of golang.org/x/mobile.

// CreateShader and CreateProgram are adapted from CreateProgram and
// loadShader in golang.org/x/mobile/exp/gl/glutil.  They return typed
// errors and release the program object when a shader fails to compile.

package glprog

import (
	"fmt"

	"golang.org/x/mobile/gl"
)

// CreateShader compiles src as a shader of type ty.  If compilation fails the
// shader object is deleted and a *CompileError is returned.
func CreateShader(glctx gl.Context, ty gl.Enum, src string) (gl.Shader, error) {
	shader := glctx.CreateShader(ty)
	if shader.Value == 0 {
		return gl.Shader{}, fmt.Errorf("could not create %s shader", shaderKind(ty))
	}
	glctx.ShaderSource(shader, src)
	glctx.CompileShader(shader)
	if glctx.GetShaderi(shader, gl.COMPILE_STATUS) == 0 {
		defer glctx.DeleteShader(shader)
		return gl.Shader{}, &CompileError{Type: ty, Log: glctx.GetShaderInfoLog(shader)}
	}
	return shader, nil
}

// CreateProgram compiles and links a program from vertex and fragment shader
// sources.  Nothing is left allocated in glctx when an error is returned.
func CreateProgram(glctx gl.Context, vertexSrc, fragmentSrc string) (gl.Program, error) {
	program := glctx.CreateProgram()
	if program.Value == 0 {
		return gl.Program{}, fmt.Errorf("no programs available")
	}

	vertexShader, err := CreateShader(glctx, gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		glctx.DeleteProgram(program)
		return gl.Program{}, err
	}
	fragmentShader, err := CreateShader(glctx, gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		glctx.DeleteShader(vertexShader)
		glctx.DeleteProgram(program)
		return gl.Program{}, err
	}

	glctx.AttachShader(program, vertexShader)
	glctx.AttachShader(program, fragmentShader)
	glctx.LinkProgram(program)

	// Flag shaders for deletion when program is unlinked.
	glctx.DeleteShader(vertexShader)
	glctx.DeleteShader(fragmentShader)

	if glctx.GetProgrami(program, gl.LINK_STATUS) == 0 {
		defer glctx.DeleteProgram(program)
		return gl.Program{}, &LinkError{Log: glctx.GetProgramInfoLog(program)}
	}
	return program, nil
}
