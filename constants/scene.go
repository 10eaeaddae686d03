package constants

// Spin & orbit
const (
	// BaseSpinSpeed is the shared per-frame angle increment every solid
	// multiplies by its own ratio
	BaseSpinSpeed = 0.005

	OrbitSpeed   = 0.02
	OrbitRadiusA = 6.0
	OrbitRadiusB = 3.0
	OrbitRadiusC = 2.0
)

// Central sphere
const (
	SphereRadius = 2.0
	SphereLats   = 10
	SphereLongs  = 20
)

// Directional light (unnormalized)
const (
	LightX = 1.0
	LightY = 1.0
	LightZ = 1.0
)

// Per-solid tuning in registration order:
// tetrahedron, cube, octahedron, dodecahedron, icosahedron
var (
	SolidScales     = [5]float64{0.234, 0.286, 0.606, 0.539, 1.0}
	SolidSpinRatios = [5]float64{14.697, 6.0, 7.348, 3.013, 4.899}
)
