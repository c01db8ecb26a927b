// Package cube holds the geometry and animation of the swaying colored cube.
package cube

import (
	"encoding/binary"
	colour "image/color"

	"golang.org/x/mobile/exp/f32"
)

const (
	// CoordsPerVertex and ColorsPerVertex describe the interleaved layout of
	// VertexData: x, y, z, r, g, b.
	CoordsPerVertex = 3
	ColorsPerVertex = 3

	// Stride is the byte distance between consecutive vertices.
	Stride = 4 * (CoordsPerVertex + ColorsPerVertex)
	// ColorOffset is the byte offset of the color within a vertex.
	ColorOffset = 4 * CoordsPerVertex

	VertexCount = 8
	IndexCount  = 3 * 2 * 6
)

var vertexPositions = [VertexCount]f32.Vec3{
	// front
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
	// back
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
}

var vertexColors = [VertexCount]colour.RGBA{
	{R: 74, G: 122, B: 48, A: 255},
	{R: 232, G: 117, B: 45, A: 255},
	{R: 242, G: 193, B: 78, A: 255},
	{R: 217, G: 123, B: 43, A: 255},
	{R: 46, G: 125, B: 50, A: 255},
	{R: 79, G: 109, B: 64, A: 255},
	{R: 139, G: 58, B: 58, A: 255},
	{R: 166, G: 73, B: 45, A: 255},
}

// Indices groups the vertices into two triangles per face.
var Indices = [IndexCount]uint16{
	0, 1, 2, 2, 3, 0, // front
	4, 5, 6, 6, 7, 4, // back
	3, 2, 6, 6, 7, 3, // top
	0, 1, 5, 5, 4, 0, // bottom
	1, 2, 6, 6, 5, 1, // right
	0, 3, 7, 7, 4, 0, // left
}

// Vertices returns the interleaved position and color data of the cube.
func Vertices() []float32 {
	v := make([]float32, 0, VertexCount*(CoordsPerVertex+ColorsPerVertex))
	for i, p := range vertexPositions {
		c := vertexColors[i]
		v = append(v, p[0], p[1], p[2],
			float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
	}
	return v
}

// VertexData is Vertices encoded for an ARRAY_BUFFER.
var VertexData = f32.Bytes(binary.LittleEndian, Vertices()...)

// IndexData is Indices encoded for an ELEMENT_ARRAY_BUFFER.
var IndexData = indexBytes(Indices[:])

func indexBytes(idx []uint16) []byte {
	b := make([]byte, 2*len(idx))
	for i, n := range idx {
		binary.LittleEndian.PutUint16(b[2*i:], n)
	}
	return b
}
