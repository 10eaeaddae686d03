package render

import (
	"github.com/gdamore/tcell/v2"
)

// Display is the output surface the presenter writes changed cells to.
// tcell.Screen satisfies it directly.
type Display interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Presenter owns the double-buffered frame state. Each frame it diffs the
// freshly built buffer against the previously emitted one and writes only the
// cells that changed, then swaps the buffers.
type Presenter struct {
	display  Display
	current  *Buffer
	previous *Buffer
	styles   map[rune]tcell.Style
}

// NewPresenter creates a presenter over a display of the given dimensions.
// With shade enabled, each ramp glyph is drawn with a grayscale foreground
// proportional to its ramp position; otherwise the default style is used.
func NewPresenter(d Display, width, height int, ramp Ramp, shade bool) *Presenter {
	p := &Presenter{
		display:  d,
		current:  NewBuffer(width, height),
		previous: NewBuffer(width, height),
	}
	if shade && len(ramp) > 1 {
		p.styles = make(map[rune]tcell.Style, len(ramp))
		for i, g := range ramp {
			v := int32(64 + 191*i/(len(ramp)-1))
			p.styles[g] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(v, v, v))
		}
	}
	return p
}

// Frame clears and returns the buffer the next frame is built into
func (p *Presenter) Frame() *Buffer {
	p.current.Clear()
	return p.current
}

// Present diffs the current frame against the previous one, emits updates for
// changed cells only, and makes the current frame the new baseline. Returns
// the number of cells written; identical frames write nothing.
func (p *Presenter) Present() int {
	emitted := 0
	for y := 0; y < p.current.height; y++ {
		row := y * p.current.width
		for x := 0; x < p.current.width; x++ {
			g := p.current.glyphs[row+x]
			if g == p.previous.glyphs[row+x] {
				continue
			}
			p.display.SetContent(x, y, g, nil, p.style(g))
			emitted++
		}
	}
	if emitted > 0 {
		p.display.Show()
	}
	p.current, p.previous = p.previous, p.current
	return emitted
}

func (p *Presenter) style(g rune) tcell.Style {
	if s, ok := p.styles[g]; ok {
		return s
	}
	return tcell.StyleDefault
}
