package toolbox

import (
	"testing"

	"sandfall/internal/sandbox"
)

func newSandbox(t *testing.T, w, h int) *sandbox.SandBox {
	t.Helper()
	s, err := sandbox.NewWithConfig(sandbox.Config{Width: w, Height: h, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func count(s *sandbox.SandBox, el sandbox.Element) int {
	n := 0
	for _, c := range s.Cells() {
		if c.Element == el {
			n++
		}
	}
	return n
}

func TestPixelPaintsOneCell(t *testing.T) {
	s := newSandbox(t, 16, 16)
	tb := New()
	tb.Apply(s, 8, 8)
	if got := s.Get(8, 8).Element; got != sandbox.Sand {
		t.Fatalf("cell = %v, want Sand", got)
	}
	if n := count(s, sandbox.Sand); n != 1 {
		t.Fatalf("sand count = %d, want 1", n)
	}
}

func TestPaintClampsToInterior(t *testing.T) {
	s := newSandbox(t, 16, 16)
	tb := New()
	tb.Tool = ToolSquare
	tb.SetSize(10)
	tb.Apply(s, 0, 0)

	for x := 0; x < 16; x++ {
		if got := s.Get(x, 0).Element; got != sandbox.Indestructible {
			t.Fatalf("border cell (%d,0) = %v", x, got)
		}
	}
	if n := count(s, sandbox.Sand); n == 0 {
		t.Fatal("square brush near the corner painted nothing inside")
	}
}

func TestCircleStaysWithinRadius(t *testing.T) {
	s := newSandbox(t, 32, 32)
	tb := New()
	tb.Tool = ToolCircle
	tb.SetSize(8)
	tb.Apply(s, 16, 16)

	r := 4
	for y := 1; y < 31; y++ {
		for x := 1; x < 31; x++ {
			if s.Get(x, y).Element != sandbox.Sand {
				continue
			}
			dx, dy := x-16, y-16
			if dx*dx+dy*dy > r*r {
				t.Fatalf("painted cell (%d,%d) outside radius", x, y)
			}
		}
	}
	if got := s.Get(16, 16).Element; got != sandbox.Sand {
		t.Fatal("circle brush missed its center")
	}
}

func TestSprayStaysWithinBrush(t *testing.T) {
	s := newSandbox(t, 32, 32)
	tb := New()
	tb.Tool = ToolSpray
	tb.SetSize(16)
	for i := 0; i < 50; i++ {
		tb.Apply(s, 16, 16)
	}

	if n := count(s, sandbox.Sand); n == 0 {
		t.Fatal("spray painted nothing")
	}
	r := 8
	for y := 1; y < 31; y++ {
		for x := 1; x < 31; x++ {
			if s.Get(x, y).Element != sandbox.Sand {
				continue
			}
			dx, dy := x-16, y-16
			if dx*dx+dy*dy > r*r {
				t.Fatalf("spray dot (%d,%d) outside brush", x, y)
			}
		}
	}
}

func TestFloodFillConfinedByWalls(t *testing.T) {
	s := newSandbox(t, 16, 16)
	// Wall splitting the interior into two chambers.
	for y := 1; y < 15; y++ {
		s.SetElement(8, y, sandbox.Rock, false)
	}
	tb := New()
	tb.Tool = ToolFill
	tb.Element = sandbox.Water
	tb.Apply(s, 3, 3)

	if got := s.Get(3, 3).Element; got != sandbox.Water {
		t.Fatal("flood fill missed the clicked cell")
	}
	for y := 1; y < 15; y++ {
		for x := 9; x < 15; x++ {
			if got := s.Get(x, y).Element; got == sandbox.Water {
				t.Fatalf("flood fill leaked past the wall to (%d,%d)", x, y)
			}
		}
	}
	// Left chamber is 7x14 cells of former air.
	if n := count(s, sandbox.Water); n != 7*14 {
		t.Fatalf("water count = %d, want %d", n, 7*14)
	}
}

func TestSourceElementSetsSourceFlag(t *testing.T) {
	s := newSandbox(t, 16, 16)
	tb := New()
	tb.Element = sandbox.LavaSource
	tb.Apply(s, 5, 5)
	cell := s.Get(5, 5)
	if cell.Element != sandbox.LavaSource || !cell.Source {
		t.Fatalf("source painting gave %+v", cell)
	}
}

func TestParseToolRoundTrip(t *testing.T) {
	for _, tool := range []Tool{ToolPixel, ToolCircle, ToolSquare, ToolSpray, ToolFill} {
		parsed, err := ParseTool(tool.String())
		if err != nil {
			t.Fatalf("ParseTool(%q): %v", tool.String(), err)
		}
		if parsed != tool {
			t.Fatalf("ParseTool(%q) = %v", tool.String(), parsed)
		}
	}
	if _, err := ParseTool("laser"); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}
