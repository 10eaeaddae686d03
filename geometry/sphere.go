package geometry

import (
	"math"

	"github.com/spendupee/plato/vmath"
)

// Sphere builds a latitude/longitude wireframe sphere centered on the origin.
// Latitude rings span pole to pole over lats samples; each ring carries longs
// vertices. Edges connect ring neighbors and adjacent rings along meridians.
func Sphere(radius float64, lats, longs int) Mesh {
	vertices := make([]vmath.Vec3, 0, lats*longs)
	for i := 0; i < lats; i++ {
		lat := math.Pi*float64(i)/float64(lats-1) - math.Pi/2
		for j := 0; j < longs; j++ {
			lon := 2 * math.Pi * float64(j) / float64(longs)
			vertices = append(vertices, vmath.Vec3{
				X: radius * math.Cos(lat) * math.Cos(lon),
				Y: radius * math.Sin(lat),
				Z: radius * math.Cos(lat) * math.Sin(lon),
			})
		}
	}

	edges := make([][2]int, 0, (2*lats-1)*longs)
	for i := 0; i < lats; i++ {
		for j := 0; j < longs; j++ {
			idx := i*longs + j
			if i < lats-1 {
				edges = append(edges, [2]int{idx, idx + longs})
			}
			nextJ := (j + 1) % longs
			edges = append(edges, [2]int{idx, i*longs + nextJ})
		}
	}

	return Mesh{Vertices: vertices, Edges: edges}
}
