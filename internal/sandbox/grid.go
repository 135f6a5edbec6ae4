package sandbox

import (
	"fmt"
	"time"

	"sandfall/internal/core"
)

// Random is the uniform integer source the sandbox draws from. It is an
// explicit dependency so tests can inject a fixed-seed generator.
type Random interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
	// Uint8 returns a uniform value covering the full byte range.
	Uint8() uint8
}

// Config controls sandbox construction.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Random overrides the seeded default generator when non-nil.
	Random Random
}

// DefaultConfig returns the standard sandbox dimensions and seed.
func DefaultConfig() Config {
	return Config{Width: 512, Height: 512, Seed: 1337}
}

// SandBox owns a bordered 2D grid of cells plus the sweep parity bit and the
// pseudo-random source shared by every rule. The outermost ring of cells is
// permanently Indestructible, which guarantees every interior cell has all 8
// neighbors in bounds and lets rule code skip bounds checks entirely.
type SandBox struct {
	width, height int
	cells         []Cell
	visitedState  bool
	random        Random
}

// New constructs a sandbox seeded from the wall clock.
func New(width, height int) (*SandBox, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = time.Now().UnixNano()
	return NewWithConfig(cfg)
}

// NewWithConfig constructs a sandbox from the provided options. Dimensions
// below 2 cannot carry the indestructible border and are rejected.
func NewWithConfig(cfg Config) (*SandBox, error) {
	if cfg.Width < 2 || cfg.Height < 2 {
		return nil, fmt.Errorf("sandbox dimensions %dx%d too small, need at least 2x2", cfg.Width, cfg.Height)
	}
	random := cfg.Random
	if random == nil {
		random = core.NewRNG(cfg.Seed)
	}
	s := &SandBox{
		width:  cfg.Width,
		height: cfg.Height,
		cells:  make([]Cell, cfg.Width*cfg.Height),
		random: random,
	}
	for x := 0; x < s.width; x++ {
		s.SetElement(x, 0, Indestructible, false)
		s.SetElement(x, s.height-1, Indestructible, false)
	}
	for y := 0; y < s.height; y++ {
		s.SetElement(0, y, Indestructible, false)
		s.SetElement(s.width-1, y, Indestructible, false)
	}
	return s, nil
}

// Width returns the grid width including the border.
func (s *SandBox) Width() int { return s.width }

// Height returns the grid height including the border.
func (s *SandBox) Height() int { return s.height }

// Cells exposes the backing row-major slice for bulk readers (rendering,
// census). Writers must go through SetElement/Swap to respect the border.
func (s *SandBox) Cells() []Cell { return s.cells }

// Get returns the cell at (x, y). Coordinates must be in bounds.
func (s *SandBox) Get(x, y int) Cell {
	return s.cells[s.index(x, y)]
}

func (s *SandBox) cellAt(x, y int) *Cell {
	return &s.cells[s.index(x, y)]
}

// SetElement overwrites the cell at (x, y) with a fresh instance of the given
// element: strength resets to the catalog default, the visited flag takes the
// current parity, and elements with color variance draw a new random variant.
// Indestructible cells are never overwritten.
func (s *SandBox) SetElement(x, y int, element Element, source bool) {
	cell := &s.cells[s.index(x, y)]
	if cell.Element == Indestructible {
		return
	}
	cell.Element = element
	cell.Visited = s.visitedState
	cell.Strength = element.InitialStrength()
	cell.Source = source
	if element.ColorVariance() > 0 {
		cell.Variant = s.random.Uint8()
	}
}

// Swap exchanges the full contents of two cells and stamps both with the
// current parity. It is the sole movement mechanism. If either endpoint is
// Indestructible the swap is a silent no-op.
func (s *SandBox) Swap(x, y, x2, y2 int) {
	i1 := s.index(x, y)
	i2 := s.index(x2, y2)
	if s.cells[i1].Element == Indestructible || s.cells[i2].Element == Indestructible {
		return
	}
	s.cells[i1], s.cells[i2] = s.cells[i2], s.cells[i1]
	s.cells[i1].Visited = s.visitedState
	s.cells[i2].Visited = s.visitedState
}

// ReduceStrength decrements the cell's strength and reports true while the
// cell is still alive. Once strength is at or below 1 it reports false
// without mutating, and the caller decides the terminal transformation.
func (s *SandBox) ReduceStrength(x, y int) bool {
	cell := &s.cells[s.index(x, y)]
	if cell.Strength > 1 {
		cell.Strength--
		return true
	}
	return false
}

// dissolveTo consumes the cell at (x, y) one step: while its strength can
// still drop the call reports false; once exhausted the cell converts to the
// target element and the call reports true.
func (s *SandBox) dissolveTo(x, y int, to Element) bool {
	if s.ReduceStrength(x, y) {
		return false
	}
	s.SetElement(x, y, to, false)
	return true
}

// ClearCell resets the cell at (x, y) to plain air.
func (s *SandBox) ClearCell(x, y int) {
	s.SetElement(x, y, Air, false)
}

// SetVisited stamps the cell with the current parity without touching its
// element, marking it processed for the remainder of the sweep.
func (s *SandBox) SetVisited(x, y int) {
	s.cells[s.index(x, y)].Visited = s.visitedState
}

// ToggleVisitedState flips the sweep parity and returns the new value.
func (s *SandBox) ToggleVisitedState() bool {
	s.visitedState = !s.visitedState
	return s.visitedState
}

// IsVisitedState returns the current sweep parity.
func (s *SandBox) IsVisitedState() bool { return s.visitedState }

// RandomNeighbourX picks x-1 or x+1 with equal probability.
func (s *SandBox) RandomNeighbourX(x int) int {
	if s.random.IntN(2) == 0 {
		return x + 1
	}
	return x - 1
}

// Random draws a uniform value in [0, max).
func (s *SandBox) Random(max int) int {
	return s.random.IntN(max)
}

// Clear resets every interior cell to air, leaving the border untouched.
func (s *SandBox) Clear() {
	for y := 1; y < s.height-1; y++ {
		for x := 1; x < s.width-1; x++ {
			cell := &s.cells[s.index(x, y)]
			cell.Element = Air
			cell.Visited = s.visitedState
			cell.Strength = 0
			cell.Source = false
		}
	}
}

func (s *SandBox) index(x, y int) int {
	return x + y*s.width
}
