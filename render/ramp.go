package render

import (
	"math"

	"github.com/spendupee/plato/vmath"
)

// Ramp is an ordered glyph set from visually sparsest to densest
type Ramp []rune

// Glyph maps an intensity to a ramp character. Intensity is clamped to [0,1]
// before linear mapping onto the ramp.
func (r Ramp) Glyph(intensity float64) rune {
	t := vmath.Clamp01(intensity)
	return r[int(math.Round(t*float64(len(r)-1)))]
}
