package cube

import (
	"math"

	"github.com/bmatsuo/mobile-gl-demos/f32hack"
	"golang.org/x/mobile/exp/f32"
)

// Per-frame increments of the phase accumulators and the amplitudes applied
// to them.
const (
	SwaySpeed         = 0.10
	SwayIntensity     = 0.10
	RotationSpeed     = 0.06
	RotationIntensity = 0.06

	// Distance pushes the cube away from the camera along -z.
	Distance = 4
)

// The phases repeat with these periods.  Sway feeds sin(s) and cos(0.8s),
// which share a period of 10π.
const (
	SwayPeriod     = 10 * math.Pi
	RotationPeriod = 2 * math.Pi / RotationIntensity
)

// Motion accumulates the sway and rotation phases of the cube.  The zero
// value is the resting position.  Step keeps both phases within one period
// so the animation never stalls on float32 precision.
type Motion struct {
	Sway     float32
	Rotation float32
}

// ModelView stores in m the model-view transform for the current phases:
// a sway translation followed by equal rotations about x and then y.
func (mo *Motion) ModelView(m *f32.Mat4) {
	m.Identity()
	m.Translate(m,
		f32hack.Sin(mo.Sway)*SwayIntensity,
		f32hack.Cos(mo.Sway*0.8)*(SwayIntensity/2),
		-Distance)
	angle := f32.Radian(mo.Rotation * RotationIntensity)
	f32hack.RotateX(m, m, angle)
	f32hack.RotateY(m, m, angle)
}

// Step advances both phases by one frame.
func (mo *Motion) Step() {
	mo.Sway = advance(mo.Sway, SwaySpeed, SwayPeriod)
	mo.Rotation = advance(mo.Rotation, RotationSpeed, RotationPeriod)
}

func advance(phase float32, speed, period float64) float32 {
	return float32(math.Mod(float64(phase)+speed, period))
}

// Frame computes the model-view transform for this frame into m and then
// advances the animation.
func (mo *Motion) Frame(m *f32.Mat4) {
	mo.ModelView(m)
	mo.Step()
}

// Camera parameters of the projection.
const (
	FieldOfView = f32.Radian(math.Pi / 3)
	Near        = 0.1
	Far         = 100.0
)

// Projection stores in m the perspective projection for a surface of the
// given pixel size.  A surface without a size yet is treated as 4:3.
func Projection(m *f32.Mat4, widthPx, heightPx int) {
	aspect := float32(4) / float32(3)
	if widthPx > 0 && heightPx > 0 {
		aspect = float32(widthPx) / float32(heightPx)
	}
	f32hack.SetPerspective(m, FieldOfView, aspect, Near, Far)
}
