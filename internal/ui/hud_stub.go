//go:build !ebiten

package ui

import (
	"sandfall/internal/sandbox"
	"sandfall/internal/toolbox"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns a stub HUD.
func NewHUD() *HUD { return &HUD{} }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, *sandbox.Simulation, *toolbox.ToolBox) {}
