package geometry

import (
	"github.com/spendupee/plato/vmath"
)

// Mesh is a static wireframe: base vertices plus index pairs defining edges.
// Edge indices are assumed valid for the vertex list; callers get no bounds
// checking on the render path.
type Mesh struct {
	Vertices []vmath.Vec3
	Edges    [][2]int
}

// phi-derived coordinates for the dodecahedron and icosahedron
const (
	phi    = 1.618
	invPhi = 0.618
)

func Tetrahedron() Mesh {
	return Mesh{
		Vertices: []vmath.Vec3{
			{X: 1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1},
		},
		Edges: [][2]int{
			{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
		},
	}
}

func Cube() Mesh {
	return Mesh{
		Vertices: []vmath.Vec3{
			{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}
}

func Octahedron() Mesh {
	return Mesh{
		Vertices: []vmath.Vec3{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		},
		Edges: [][2]int{
			{0, 2}, {0, 3}, {0, 4}, {0, 5}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
			{2, 4}, {2, 5}, {3, 4}, {3, 5},
		},
	}
}

func Dodecahedron() Mesh {
	return Mesh{
		Vertices: []vmath.Vec3{
			{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1},
			{Y: phi, Z: invPhi}, {Y: phi, Z: -invPhi}, {Y: -phi, Z: invPhi}, {Y: -phi, Z: -invPhi},
			{X: invPhi, Z: phi}, {X: invPhi, Z: -phi}, {X: -invPhi, Z: phi}, {X: -invPhi, Z: -phi},
			{X: phi, Y: invPhi}, {X: phi, Y: -invPhi}, {X: -phi, Y: invPhi}, {X: -phi, Y: -invPhi},
		},
		Edges: [][2]int{
			{0, 12}, {0, 16}, {0, 8}, {1, 13}, {1, 16}, {1, 9},
			{2, 12}, {2, 17}, {2, 10}, {3, 13}, {3, 17}, {3, 11},
			{4, 14}, {4, 18}, {4, 8}, {5, 15}, {5, 18}, {5, 9},
			{6, 14}, {6, 19}, {6, 10}, {7, 15}, {7, 19}, {7, 11},
			{8, 9}, {10, 11}, {12, 14}, {13, 15}, {16, 17}, {18, 19},
		},
	}
}

func Icosahedron() Mesh {
	return Mesh{
		Vertices: []vmath.Vec3{
			{Y: 1, Z: phi}, {Y: 1, Z: -phi}, {Y: -1, Z: phi}, {Y: -1, Z: -phi},
			{X: phi, Z: 1}, {X: phi, Z: -1}, {X: -phi, Z: 1}, {X: -phi, Z: -1},
			{X: 1, Y: phi}, {X: 1, Y: -phi}, {X: -1, Y: phi}, {X: -1, Y: -phi},
		},
		Edges: [][2]int{
			{0, 4}, {0, 6}, {0, 8}, {0, 10}, {0, 2}, {1, 5}, {1, 7}, {1, 8}, {1, 10}, {1, 3},
			{2, 4}, {2, 6}, {2, 9}, {2, 11}, {3, 5}, {3, 7}, {3, 9}, {3, 11}, {4, 5}, {4, 8},
			{4, 9}, {5, 8}, {5, 9}, {6, 7}, {6, 10}, {6, 11}, {7, 10}, {7, 11}, {8, 10}, {9, 11},
		},
	}
}
