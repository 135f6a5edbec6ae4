// Package toolbox implements the editing brushes the front ends paint with.
// Every write funnels through SandBox.SetElement, so the indestructible
// border stays untouchable no matter what the pointer does.
package toolbox

import (
	"fmt"
	"strings"

	"sandfall/internal/sandbox"
)

// Tool enumerates the brush shapes.
type Tool uint8

const (
	ToolPixel Tool = iota
	ToolCircle
	ToolSquare
	ToolSpray
	ToolFill

	// ToolCount is the number of brush shapes, for cycling through them.
	ToolCount
)

var toolNames = map[Tool]string{
	ToolPixel:  "pixel",
	ToolCircle: "circle",
	ToolSquare: "square",
	ToolSpray:  "spray",
	ToolFill:   "fill",
}

// String returns the lower-case tool name.
func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return "pixel"
}

// ParseTool resolves a tool name to its enum value.
func ParseTool(name string) (Tool, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for tool, n := range toolNames {
		if n == needle {
			return tool, nil
		}
	}
	return ToolPixel, fmt.Errorf("unknown tool %q", name)
}

// MaxSize bounds the brush diameter.
const MaxSize = 64

// ToolBox carries the currently selected brush, element and size.
type ToolBox struct {
	Tool    Tool
	Element sandbox.Element
	Size    int
}

// New returns a toolbox with the classic defaults: a small sand pixel brush.
func New() *ToolBox {
	return &ToolBox{Tool: ToolPixel, Element: sandbox.Sand, Size: 8}
}

// SetSize clamps and applies the brush diameter.
func (tb *ToolBox) SetSize(size int) {
	if size < 1 {
		size = 1
	}
	if size > MaxSize {
		size = MaxSize
	}
	tb.Size = size
}

// Apply paints with the current tool centered on (x, y). Coordinates may come
// straight from a pointer transform; everything is clamped to the interior.
func (tb *ToolBox) Apply(s *sandbox.SandBox, x, y int) {
	switch tb.Tool {
	case ToolCircle:
		tb.fillCircle(s, x, y)
	case ToolSquare:
		tb.fillSquare(s, x, y)
	case ToolSpray:
		tb.spray(s, x, y)
	case ToolFill:
		tb.floodFill(s, x, y)
	default:
		tb.paint(s, x, y)
	}
}

// paint writes a single cell if it lies in the interior.
func (tb *ToolBox) paint(s *sandbox.SandBox, x, y int) {
	if x < 1 || y < 1 || x > s.Width()-2 || y > s.Height()-2 {
		return
	}
	s.SetElement(x, y, tb.Element, tb.Element.IsSource())
}

func (tb *ToolBox) fillCircle(s *sandbox.SandBox, cx, cy int) {
	r := tb.Size / 2
	if r < 1 {
		r = 1
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			tb.paint(s, cx+dx, cy+dy)
		}
	}
}

func (tb *ToolBox) fillSquare(s *sandbox.SandBox, cx, cy int) {
	half := tb.Size / 2
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			tb.paint(s, cx+dx, cy+dy)
		}
	}
}

// spray scatters roughly one dot per two cells of brush diameter, drawn from
// the sandbox RNG so editing stays on the single deterministic stream.
func (tb *ToolBox) spray(s *sandbox.SandBox, cx, cy int) {
	r := tb.Size / 2
	if r < 1 {
		r = 1
	}
	dots := tb.Size/2 + 1
	for i := 0; i < dots; i++ {
		dx := s.Random(2*r+1) - r
		dy := s.Random(2*r+1) - r
		if dx*dx+dy*dy > r*r {
			continue
		}
		tb.paint(s, cx+dx, cy+dy)
	}
}

// floodFill replaces the contiguous region of the clicked element with the
// tool element, using 4-connectivity and an explicit stack.
func (tb *ToolBox) floodFill(s *sandbox.SandBox, x, y int) {
	if x < 1 || y < 1 || x > s.Width()-2 || y > s.Height()-2 {
		return
	}
	target := s.Get(x, y).Element
	if target == tb.Element || target == sandbox.Indestructible {
		return
	}
	stack := [][2]int{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		px, py := p[0], p[1]
		if px < 1 || py < 1 || px > s.Width()-2 || py > s.Height()-2 {
			continue
		}
		if s.Get(px, py).Element != target {
			continue
		}
		s.SetElement(px, py, tb.Element, tb.Element.IsSource())
		stack = append(stack,
			[2]int{px - 1, py}, [2]int{px + 1, py},
			[2]int{px, py - 1}, [2]int{px, py + 1})
	}
}
