//go:build ebiten

// Package ui draws the in-game status panel and debug overlays for the
// graphical front end.
package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"sandfall/internal/sandbox"
	"sandfall/internal/toolbox"
)

// HUD renders the current brush settings and simulation state in the top-left
// corner. Toggled with H.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD, visible by default.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the status lines over the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, sim *sandbox.Simulation, tb *toolbox.ToolBox) {
	if h == nil || !h.visible {
		return
	}
	mode := "running"
	if !sim.Running {
		mode = "paused"
	}
	lines := []string{
		fmt.Sprintf("%s  tick %v", mode, sim.TickTime.Round(time.Microsecond)),
		fmt.Sprintf("element: %v  tool: %v  brush: %d", tb.Element, tb.Tool, tb.Size),
	}
	face := basicfont.Face7x13
	for i, line := range lines {
		y := 14 + i*14
		text.Draw(screen, line, face, 7, y+1, color.Black)
		text.Draw(screen, line, face, 6, y, color.White)
	}
}
