package f32hack

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/exp/f32"
)

const epsilon = 1e-5

func toMgl(m *f32.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	copy(out[:], Serialize4(nil, m))
	return out
}

func requireMat4(t *testing.T, want mgl32.Mat4, got *f32.Mat4) {
	t.Helper()
	have := toMgl(got)
	require.Truef(t, want.ApproxEqualThreshold(have, epsilon), "want\n%v\ngot\n%v", want, have)
}

func TestSerialize4(t *testing.T) {
	m := f32.Mat4{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	}
	got := Serialize4(nil, &m)
	require.Equal(t, []float32{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}, got)

	buf := make([]float32, 20)
	got = Serialize4(buf, &m)
	require.Len(t, got, 16)
	require.Same(t, &buf[0], &got[0])
}

func TestSinCos(t *testing.T) {
	for _, x := range []float32{0, 0.3, 1, 2.5, -4, 100} {
		require.InDelta(t, math.Sin(float64(x)), Sin(x), 1e-7, "sin(%v)", x)
		require.InDelta(t, math.Cos(float64(x)), Cos(x), 1e-7, "cos(%v)", x)
	}
}

func TestSetPerspective(t *testing.T) {
	var m f32.Mat4
	for i := range m {
		for j := range m[i] {
			m[i][j] = 7 // garbage must not survive
		}
	}
	SetPerspective(&m, math.Pi/3, 1.5, 0.1, 100)
	requireMat4(t, mgl32.Perspective(math.Pi/3, 1.5, 0.1, 100), &m)
}

func TestRotate(t *testing.T) {
	for _, angle := range []float32{0, 0.3, -1.2, math.Pi} {
		var m f32.Mat4
		m.Identity()
		RotateX(&m, &m, f32.Radian(angle))
		requireMat4(t, mgl32.HomogRotate3DX(angle), &m)

		m.Identity()
		RotateY(&m, &m, f32.Radian(angle))
		requireMat4(t, mgl32.HomogRotate3DY(angle), &m)
	}
}

func TestTranslateThenRotate(t *testing.T) {
	var m f32.Mat4
	m.Identity()
	m.Translate(&m, 0.2, -0.1, -4)
	RotateX(&m, &m, 0.5)
	RotateY(&m, &m, 0.5)

	want := mgl32.Translate3D(0.2, -0.1, -4).
		Mul4(mgl32.HomogRotate3DX(0.5)).
		Mul4(mgl32.HomogRotate3DY(0.5))
	requireMat4(t, want, &m)
}
