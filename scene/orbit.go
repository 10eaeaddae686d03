package scene

import (
	"math"

	"github.com/spendupee/plato/vmath"
)

// Orbit is the shared elliptical path the whole solid group follows around
// the canvas center. A single angle drives every solid's offset each frame.
type Orbit struct {
	A, B, C float64 // per-axis radii
	Speed   float64
	angle   float64
}

// Offset returns the group center for the current orbit angle.
// The quarter-turn phase shift on z tilts the path out of the xy plane.
func (o *Orbit) Offset() vmath.Vec3 {
	return vmath.Vec3{
		X: o.A * math.Cos(o.angle),
		Y: o.B * math.Sin(o.angle),
		Z: o.C * math.Sin(o.angle+math.Pi/2),
	}
}

// Advance steps the orbit angle by one frame increment
func (o *Orbit) Advance() {
	o.angle += o.Speed
}

func (o *Orbit) Angle() float64 { return o.angle }
