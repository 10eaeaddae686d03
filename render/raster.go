package render

// DrawLine rasterizes a depth-tested segment between two integer points using
// Bresenham stepping. One glyph is chosen for the whole segment (flat per-edge
// shading). Coordinates wrap toroidally, so off-canvas geometry reappears on
// the opposite side instead of being clipped. A cell is painted only when z is
// strictly nearer than the stored depth; glyph and depth update together.
func (b *Buffer) DrawLine(x0, y0, x1, y1 int, z, intensity float64, ramp Ramp) {
	glyph := ramp.Glyph(intensity)

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		cx := ((x % b.width) + b.width) % b.width
		cy := ((y % b.height) + b.height) % b.height
		idx := cy*b.width + cx
		if z > b.depth[idx] {
			b.depth[idx] = z
			b.glyphs[idx] = glyph
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
