// Package gasket builds the vertex data for a Sierpinski gasket by recursive
// midpoint subdivision of a triangle.
package gasket

import (
	"encoding/binary"
	"strconv"

	"golang.org/x/mobile/exp/f32"
)

// CoordsPerVertex is the number of float32 values per emitted vertex.
const CoordsPerVertex = 2

// Point is a position in clip space.
type Point [2]float32

// The corners of the default triangle, listed in emission order.
var (
	Apex  = Point{0.0, 0.5}
	Left  = Point{-0.5, -0.5}
	Right = Point{0.5, -0.5}
)

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

// Subdivide appends the gasket of triangle (a, b, c) at the given depth to
// dst and returns the extended slice.  At depth zero the triangle itself is
// emitted.  Otherwise the three corner triangles formed by the edge
// midpoints are subdivided at depth-1; the centre triangle is left out.
// A negative depth is treated as zero.
func Subdivide(dst []float32, a, b, c Point, depth int) []float32 {
	if depth <= 0 {
		return append(dst, a[0], a[1], b[0], b[1], c[0], c[1])
	}
	ab := Midpoint(a, b)
	bc := Midpoint(b, c)
	ca := Midpoint(c, a)
	dst = Subdivide(dst, a, ab, ca, depth-1)
	dst = Subdivide(dst, ab, b, bc, depth-1)
	dst = Subdivide(dst, ca, bc, c, depth-1)
	return dst
}

// MaxDepth is the deepest subdivision whose vertex count 3·3^depth fits in
// an int: 18 where int is 32 bits, 38 where it is 64 bits.
const MaxDepth = 18 + 20*(strconv.IntSize/64)

// VertexCount returns the number of vertices Subdivide emits at depth.
// Depths beyond MaxDepth are counted as MaxDepth.
func VertexCount(depth int) int {
	if depth > MaxDepth {
		depth = MaxDepth
	}
	n := 3
	for ; depth > 0; depth-- {
		n *= 3
	}
	return n
}

// Vertices returns the gasket of the default triangle at depth.
func Vertices(depth int) []float32 {
	dst := make([]float32, 0, CoordsPerVertex*VertexCount(depth))
	return Subdivide(dst, Apex, Left, Right, depth)
}

// Bytes encodes vertices for gl.Context.BufferData.
func Bytes(vertices []float32) []byte {
	return f32.Bytes(binary.LittleEndian, vertices...)
}
