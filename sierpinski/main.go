//go:build darwin || linux || windows
// +build darwin linux windows

// Sierpinski draws a red Sierpinski gasket on a black background.
//
// Run it on the desktop with
//
//	$ go run ./sierpinski
//
// or package it for a device with gomobile.
//
//	$ gomobile build github.com/bmatsuo/mobile-gl-demos/sierpinski
//
// The gasket is built once when the surface becomes visible and redrawn only
// when the system asks for a paint.
package main

import (
	"log"

	"github.com/bmatsuo/mobile-gl-demos/gasket"
	"github.com/bmatsuo/mobile-gl-demos/glprog"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/gl"
)

// maxDepth is the recursion depth of the gasket.  At zero the outer triangle
// is drawn without subdivision.
const maxDepth = 0

var (
	program     gl.Program
	bufVertex   gl.Buffer
	position    gl.Attrib
	vertexCount int
	ready       bool
)

func main() {
	app.Main(func(a app.App) {
		var glctx gl.Context
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					var ok bool
					glctx, ok = e.DrawContext.(gl.Context)
					if !ok {
						log.Printf("GL context not available (%T)", e.DrawContext)
						continue
					}
					onStart(glctx)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if glctx != nil {
						onStop(glctx)
					}
					glctx = nil
				}
			case paint.Event:
				if glctx == nil {
					continue
				}
				onPaint(glctx)
				a.Publish()
			}
		}
	})
}

func onStart(glctx gl.Context) {
	var err error
	program, err = glprog.CreateProgram(glctx, vertexShader, fragmentShader)
	if err != nil {
		log.Printf("error creating GL program: %v", err)
		return
	}

	vertices := gasket.Vertices(maxDepth)
	vertexCount = len(vertices) / gasket.CoordsPerVertex

	bufVertex = glctx.CreateBuffer()
	glctx.BindBuffer(gl.ARRAY_BUFFER, bufVertex)
	glctx.BufferData(gl.ARRAY_BUFFER, gasket.Bytes(vertices), gl.STATIC_DRAW)

	attribs, _, err := glprog.Locations(glctx, program, []string{"a_Position"}, nil)
	if err != nil {
		log.Printf("error locating shader inputs: %v", err)
		return
	}
	position = attribs[0]
	ready = true
}

func onStop(glctx gl.Context) {
	glctx.DeleteProgram(program)
	glctx.DeleteBuffer(bufVertex)
	program, bufVertex = gl.Program{}, gl.Buffer{}
	ready = false
}

func onPaint(glctx gl.Context) {
	glctx.ClearColor(0, 0, 0, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)
	if !ready {
		return
	}

	glctx.UseProgram(program)
	glctx.BindBuffer(gl.ARRAY_BUFFER, bufVertex)
	glctx.EnableVertexAttribArray(position)
	glctx.VertexAttribPointer(position, gasket.CoordsPerVertex, gl.FLOAT, false, 0, 0)
	glctx.DrawArrays(gl.TRIANGLES, 0, vertexCount)
	glctx.DisableVertexAttribArray(position)
}

const vertexShader = `#version 100

attribute vec4 a_Position;

void main() {
	gl_Position = a_Position;
}`

const fragmentShader = `#version 100
precision mediump float;

void main() {
	gl_FragColor = vec4(1, 0, 0, 1);
}`
