package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type displayOp struct {
	x, y  int
	glyph rune
	style tcell.Style
}

// fakeDisplay records emitted cell updates for assertion
type fakeDisplay struct {
	ops   []displayOp
	shows int
}

func (d *fakeDisplay) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	d.ops = append(d.ops, displayOp{x: x, y: y, glyph: primary, style: style})
}

func (d *fakeDisplay) Show() {
	d.shows++
}

func TestPresentEmitsChangedCellsOnly(t *testing.T) {
	d := &fakeDisplay{}
	p := NewPresenter(d, 20, 10, testRamp, false)

	buf := p.Frame()
	buf.DrawLine(2, 3, 2, 3, 1.0, 1.0, testRamp)

	if n := p.Present(); n != 1 {
		t.Errorf("Expected 1 emitted cell, got %d", n)
	}
	if len(d.ops) != 1 {
		t.Fatalf("Expected 1 display op, got %d", len(d.ops))
	}
	op := d.ops[0]
	if op.x != 2 || op.y != 3 || op.glyph != '@' {
		t.Errorf("Expected '@' at (2,3), got %q at (%d,%d)", op.glyph, op.x, op.y)
	}
	if d.shows != 1 {
		t.Errorf("Expected 1 show, got %d", d.shows)
	}
}

func TestIdenticalFramesEmitNothing(t *testing.T) {
	d := &fakeDisplay{}
	p := NewPresenter(d, 20, 10, testRamp, false)

	buf := p.Frame()
	buf.DrawLine(0, 0, 5, 0, 1.0, 1.0, testRamp)
	p.Present()

	d.ops = nil
	d.shows = 0

	// Rebuild the exact same frame
	buf = p.Frame()
	buf.DrawLine(0, 0, 5, 0, 1.0, 1.0, testRamp)

	if n := p.Present(); n != 0 {
		t.Errorf("Expected 0 emitted cells for identical frame, got %d", n)
	}
	if len(d.ops) != 0 {
		t.Errorf("Expected no display ops, got %d", len(d.ops))
	}
	if d.shows != 0 {
		t.Errorf("Expected no show for identical frame, got %d", d.shows)
	}
}

func TestPresentClearsVacatedCells(t *testing.T) {
	d := &fakeDisplay{}
	p := NewPresenter(d, 20, 10, testRamp, false)

	buf := p.Frame()
	buf.DrawLine(4, 4, 4, 4, 1.0, 1.0, testRamp)
	p.Present()

	d.ops = nil

	// Next frame leaves the cell blank; the diff must repaint it blank
	p.Frame()
	if n := p.Present(); n != 1 {
		t.Errorf("Expected 1 emitted cell, got %d", n)
	}
	if len(d.ops) != 1 || d.ops[0].glyph != ' ' {
		t.Fatalf("Expected blank repaint at vacated cell, got %+v", d.ops)
	}
	if d.ops[0].x != 4 || d.ops[0].y != 4 {
		t.Errorf("Expected repaint at (4,4), got (%d,%d)", d.ops[0].x, d.ops[0].y)
	}
}

func TestEmptyFirstFrameEmitsNothing(t *testing.T) {
	d := &fakeDisplay{}
	p := NewPresenter(d, 20, 10, testRamp, false)

	// The display starts cleared, so an all-blank first frame needs no updates
	p.Frame()
	if n := p.Present(); n != 0 {
		t.Errorf("Expected 0 emitted cells for blank first frame, got %d", n)
	}
}

func TestShadedStylesFollowRamp(t *testing.T) {
	d := &fakeDisplay{}
	p := NewPresenter(d, 20, 10, testRamp, true)

	buf := p.Frame()
	buf.DrawLine(0, 0, 0, 0, 1.0, 0.0, testRamp) // paints blank glyph, no visible change
	buf.DrawLine(1, 0, 1, 0, 1.0, 1.0, testRamp)
	p.Present()

	if len(d.ops) != 1 {
		t.Fatalf("Expected 1 display op, got %d", len(d.ops))
	}
	dense := d.ops[0]
	if dense.glyph != '@' {
		t.Fatalf("Expected '@', got %q", dense.glyph)
	}
	expected := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 255))
	if dense.style != expected {
		t.Errorf("Expected densest glyph drawn white, got %v", dense.style)
	}
}
