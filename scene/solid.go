package scene

import (
	"github.com/spendupee/plato/geometry"
	"github.com/spendupee/plato/vmath"
)

// Solid is one spinning wireframe in the orbiting group: base vertices scaled
// once at construction, a static edge list, and the current spin angle.
type Solid struct {
	vertices []vmath.Vec3
	edges    [][2]int
	ratio    float64
	angle    float64
}

// NewSolid scales the mesh vertices by scale. Ratio is the per-solid
// multiplier on the shared base spin speed, giving each solid a distinct
// rotation rate without storing angular velocity.
func NewSolid(m geometry.Mesh, scale, ratio float64) *Solid {
	verts := make([]vmath.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		verts[i] = vmath.Scale(v, scale)
	}
	return &Solid{
		vertices: verts,
		edges:    m.Edges,
		ratio:    ratio,
	}
}

// Advance spins the solid by one frame step
func (s *Solid) Advance(baseSpeed float64) {
	s.angle += baseSpeed * s.ratio
}

func (s *Solid) Angle() float64 { return s.angle }
