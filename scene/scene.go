package scene

import (
	"github.com/spendupee/plato/geometry"
	"github.com/spendupee/plato/render"
	"github.com/spendupee/plato/vmath"
)

// Scene holds the central sphere, the orbiting solids in registration order,
// and the shared animation state. Rendering is single-threaded; the scene is
// the sole owner of all geometry and scratch buffers.
type Scene struct {
	sphere geometry.Mesh
	solids []*Solid
	light  vmath.Vec3
	orbit  *Orbit
	base   float64

	// per-frame scratch, reused to keep the hot path allocation-free
	pos []vmath.Vec3
	px  []int
	py  []int
	pz  []float64
}

// New creates an empty scene. Light is the directional light vector
// (normalized once per frame); base is the shared spin speed.
func New(light vmath.Vec3, orbit *Orbit, base float64) *Scene {
	return &Scene{
		light: light,
		orbit: orbit,
		base:  base,
	}
}

// SetSphere installs the static central sphere. It never spins or orbits.
func (sc *Scene) SetSphere(m geometry.Mesh) {
	sc.sphere = m
}

// AddSolid appends a solid; registration order is draw order within a frame
func (sc *Scene) AddSolid(s *Solid) {
	sc.solids = append(sc.solids, s)
}

func (sc *Scene) OrbitAngle() float64 {
	return sc.orbit.Angle()
}

// Render builds one frame into buf: advances every solid's spin, draws the
// sphere then each solid in registration order, and finally steps the orbit
// angle. Visual stacking is resolved by the buffer's depth test, so draw
// order only matters for exact depth ties.
func (sc *Scene) Render(buf *render.Buffer, cam render.Camera, ramp render.Ramp) {
	lightN := vmath.Normalize(sc.light)

	sc.drawMesh(buf, cam, ramp, lightN, sc.sphere.Vertices, sc.sphere.Vertices, sc.sphere.Edges)

	offset := sc.orbit.Offset()
	for _, s := range sc.solids {
		s.Advance(sc.base)
		sc.grow(len(s.vertices))
		for i, v := range s.vertices {
			sc.pos[i] = vmath.Add(vmath.RotateY(v, s.angle), offset)
		}
		// Lighting uses the unrotated base edge vectors; spin and orbit do
		// not modulate shading.
		sc.drawMesh(buf, cam, ramp, lightN, sc.pos[:len(s.vertices)], s.vertices, s.edges)
	}

	sc.orbit.Advance()
}

// drawMesh projects transformed vertices and rasterizes every edge with flat
// per-edge shading. base supplies the edge vectors used for lighting.
func (sc *Scene) drawMesh(buf *render.Buffer, cam render.Camera, ramp render.Ramp, lightN vmath.Vec3, verts, base []vmath.Vec3, edges [][2]int) {
	sc.grow(len(verts))
	for i, v := range verts {
		sc.pz[i] = v.Z
		sc.px[i], sc.py[i] = cam.Project(v)
	}
	for _, e := range edges {
		a, b := e[0], e[1]
		avgDepth := (sc.pz[a] + sc.pz[b]) / 2
		light := vmath.Dot(vmath.Normalize(vmath.Sub(base[b], base[a])), lightN)
		intensity := vmath.Clamp01(light*0.5 + 0.5)
		buf.DrawLine(sc.px[a], sc.py[a], sc.px[b], sc.py[b], avgDepth, intensity, ramp)
	}
}

func (sc *Scene) grow(n int) {
	if cap(sc.pos) < n {
		sc.pos = make([]vmath.Vec3, n)
		sc.px = make([]int, n)
		sc.py = make([]int, n)
		sc.pz = make([]float64, n)
	}
	sc.pos = sc.pos[:cap(sc.pos)]
	sc.px = sc.px[:cap(sc.px)]
	sc.py = sc.py[:cap(sc.py)]
	sc.pz = sc.pz[:cap(sc.pz)]
}
