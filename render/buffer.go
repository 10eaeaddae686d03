package render

import (
	"math"
)

// blank is the glyph buffers reset to each frame
const blank = ' '

// Buffer holds one frame: a row-major glyph grid and a parallel depth grid.
// Depth records the nearest z painted at each cell so far this frame; cells
// start at -Inf so the first draw over a cell always wins.
type Buffer struct {
	glyphs []rune
	depth  []float64
	width  int
	height int
}

// NewBuffer creates a cleared buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		glyphs: make([]rune, width*height),
		depth:  make([]float64, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Clear resets glyphs to blank and depth to the sentinel using exponential copy
func (b *Buffer) Clear() {
	if len(b.glyphs) == 0 {
		return
	}
	b.glyphs[0] = blank
	b.depth[0] = math.Inf(-1)
	for filled := 1; filled < len(b.glyphs); filled *= 2 {
		copy(b.glyphs[filled:], b.glyphs[:filled])
	}
	for filled := 1; filled < len(b.depth); filled *= 2 {
		copy(b.depth[filled:], b.depth[:filled])
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Glyph returns the character at a cell. Coordinates must be in range.
func (b *Buffer) Glyph(x, y int) rune {
	return b.glyphs[y*b.width+x]
}

// Depth returns the stored depth at a cell. Coordinates must be in range.
func (b *Buffer) Depth(x, y int) float64 {
	return b.depth[y*b.width+x]
}
