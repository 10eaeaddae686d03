package render

import (
	"math"

	"github.com/spendupee/plato/vmath"
)

// Camera is a fixed pinhole projection from camera space into character cells.
// The origin projects to the canvas center; z increases away from the camera.
type Camera struct {
	FocalLength float64
	Distance    float64 // camera-to-origin offset along z
	Width       int
	Height      int
}

// Project maps a camera-space point to integer screen coordinates.
// The 0.5 vertical factor corrects for the 1:2 aspect of terminal cells.
// Precondition: geometry keeps z + Distance bounded away from zero; there is
// no runtime check on the denominator.
func (c Camera) Project(p vmath.Vec3) (int, int) {
	scale := c.FocalLength / (p.Z + c.Distance)
	sx := int(math.Round(p.X*scale + float64(c.Width)/2))
	sy := int(math.Round(p.Y*scale*0.5 + float64(c.Height)/2))
	return sx, sy
}
