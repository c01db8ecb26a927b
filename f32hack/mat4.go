// Package f32hack fills in the matrix operations the demos need that
// golang.org/x/mobile/exp/f32 either lacks or produces in transposed form.
//
// Every matrix here is row-major, the way f32.Mat4 documents itself, so the
// results compose with Mat4.Mul, Mat4.Translate and friends. Use Serialize4
// to hand a matrix to gl.Context.UniformMatrix4fv.
package f32hack

import (
	"math"

	"golang.org/x/mobile/exp/f32"
)

// SetPerspective stores in m a perspective projection with vertical field of
// view fovy.  Unlike f32.Mat4.Perspective the result is not transposed and
// every element of m is overwritten.
func SetPerspective(m *f32.Mat4, fovy f32.Radian, aspect, near, far float32) {
	f := float32(1 / math.Tan(float64(fovy)/2))
	nf := 1 / (near - far)
	*m = f32.Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * nf, 2 * far * near * nf},
		{0, 0, -1, 0},
	}
}

// Sin returns the sine of x.  Unlike f32.Sin it is not read from a lookup
// table.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns the cosine of x.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// RotateX sets m to src rotated by angle about the x axis.
func RotateX(m, src *f32.Mat4, angle f32.Radian) {
	s, c := Sin(float32(angle)), Cos(float32(angle))
	m.Mul(src, &f32.Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	})
}

// RotateY sets m to src rotated by angle about the y axis.
func RotateY(m, src *f32.Mat4, angle f32.Radian) {
	s, c := Sin(float32(angle)), Cos(float32(angle))
	m.Mul(src, &f32.Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	})
}

// Serialize4 returns a slice containing m serialized into column-major order.
// If len(dst) is at least 16 then a slice of dst is used to hold the data,
// otherwise a new slice is allocated.
func Serialize4(dst []float32, m *f32.Mat4) []float32 {
	if len(dst) < 16 {
		dst = make([]float32, 16)
	}
	dst = dst[:16]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			dst[4*col+row] = m[row][col]
		}
	}
	return dst
}
