//go:build darwin || linux || windows
// +build darwin linux windows

// Coloredcube draws a vertex-colored cube that sways and tumbles over a dark
// green background, with a frame rate counter in the corner.
//
// Run it on the desktop with
//
//	$ go run ./coloredcube
//
// or package it for a device with gomobile.
//
//	$ gomobile build github.com/bmatsuo/mobile-gl-demos/coloredcube
package main

import (
	"log"

	"github.com/bmatsuo/mobile-gl-demos/cube"
	"github.com/bmatsuo/mobile-gl-demos/f32hack"
	"github.com/bmatsuo/mobile-gl-demos/glprog"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/exp/app/debug"
	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"
)

var (
	images  *glutil.Images
	fps     *debug.FPS
	program gl.Program
	ready   bool

	aPosition         gl.Attrib
	aColor            gl.Attrib
	uModelViewMatrix  gl.Uniform
	uProjectionMatrix gl.Uniform

	bufVertex gl.Buffer
	bufIndex  gl.Buffer

	motion     cube.Motion
	modelView  f32.Mat4
	projection f32.Mat4
	mvColMaj   [16]float32
	pColMaj    [16]float32
)

func main() {
	app.Main(func(a app.App) {
		var glctx gl.Context
		var sz size.Event
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
					onStart(glctx, sz)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if glctx != nil {
						onStop(glctx)
					}
					glctx = nil
				}
			case size.Event:
				sz = e
				cube.Projection(&projection, sz.WidthPx, sz.HeightPx)
			case paint.Event:
				if glctx == nil || e.External {
					// As we are actively painting as fast as
					// we can (usually 60 FPS), skip any paint
					// events sent by the system.
					continue
				}

				onPaint(glctx, sz)
				a.Publish()
				// Drive the animation by preparing to paint the next frame
				// after this one is shown.
				a.Send(paint.Event{})
			}
		}
	})
}

func onStart(glctx gl.Context, sz size.Event) {
	images = glutil.NewImages(glctx)
	fps = debug.NewFPS(images)
	cube.Projection(&projection, sz.WidthPx, sz.HeightPx)

	var err error
	program, err = glprog.CreateProgram(glctx, vertexShader, fragmentShader)
	if err != nil {
		log.Printf("error creating GL program: %v", err)
		return
	}

	bufVertex = glctx.CreateBuffer()
	glctx.BindBuffer(gl.ARRAY_BUFFER, bufVertex)
	glctx.BufferData(gl.ARRAY_BUFFER, cube.VertexData, gl.STATIC_DRAW)

	bufIndex = glctx.CreateBuffer()
	glctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, bufIndex)
	glctx.BufferData(gl.ELEMENT_ARRAY_BUFFER, cube.IndexData, gl.STATIC_DRAW)

	attribs, uniforms, err := glprog.Locations(glctx, program,
		[]string{"aPosition", "aColor"},
		[]string{"uModelViewMatrix", "uProjectionMatrix"})
	if err != nil {
		log.Printf("error locating shader inputs: %v", err)
		return
	}
	aPosition, aColor = attribs[0], attribs[1]
	uModelViewMatrix, uProjectionMatrix = uniforms[0], uniforms[1]

	glctx.Enable(gl.DEPTH_TEST)
	glctx.DepthFunc(gl.LESS)
	ready = true
}

func onStop(glctx gl.Context) {
	glctx.DeleteProgram(program)
	glctx.DeleteBuffer(bufVertex)
	glctx.DeleteBuffer(bufIndex)
	program, bufVertex, bufIndex = gl.Program{}, gl.Buffer{}, gl.Buffer{}
	ready = false
	fps.Release()
	images.Release()
}

func onPaint(glctx gl.Context, sz size.Event) {
	glctx.ClearColor(42.0/255, 59.0/255, 45.0/255, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if ready {
		drawCube(glctx)
	}
	fps.Draw(sz)
}

func drawCube(glctx gl.Context) {
	glctx.UseProgram(program)

	motion.Frame(&modelView)
	glctx.UniformMatrix4fv(uModelViewMatrix, f32hack.Serialize4(mvColMaj[:], &modelView))
	glctx.UniformMatrix4fv(uProjectionMatrix, f32hack.Serialize4(pColMaj[:], &projection))

	glctx.BindBuffer(gl.ARRAY_BUFFER, bufVertex)
	glctx.EnableVertexAttribArray(aPosition)
	glctx.VertexAttribPointer(aPosition, cube.CoordsPerVertex, gl.FLOAT, false, cube.Stride, 0)
	glctx.EnableVertexAttribArray(aColor)
	glctx.VertexAttribPointer(aColor, cube.ColorsPerVertex, gl.FLOAT, false, cube.Stride, cube.ColorOffset)

	glctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, bufIndex)
	glctx.DrawElements(gl.TRIANGLES, cube.IndexCount, gl.UNSIGNED_SHORT, 0)

	glctx.DisableVertexAttribArray(aPosition)
	glctx.DisableVertexAttribArray(aColor)
}

const vertexShader = `#version 100

attribute vec3 aPosition;
attribute vec3 aColor;
uniform mat4 uModelViewMatrix;
uniform mat4 uProjectionMatrix;

varying vec3 vColor;

void main() {
	gl_Position = uProjectionMatrix * uModelViewMatrix * vec4(aPosition, 1);
	vColor = aColor;
}`

const fragmentShader = `#version 100
precision mediump float;

varying vec3 vColor;

void main() {
	gl_FragColor = vec4(vColor * 1.2, 1);
}`
