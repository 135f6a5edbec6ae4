//go:build ebiten

// Package app adapts the sandbox to the ebiten game loop.
package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sandfall/internal/core"
	"sandfall/internal/render"
	"sandfall/internal/sandbox"
	"sandfall/internal/telemetry"
	"sandfall/internal/toolbox"
	"sandfall/internal/ui"
)

// Game wires the sandbox, simulation and toolbox into the ebiten.Game
// interface. The simulation advances on its own fixed-step clock so the
// tick rate is independent of the display refresh rate.
type Game struct {
	s   *sandbox.SandBox
	sim *sandbox.Simulation
	tb  *toolbox.ToolBox

	painter   *render.GridPainter
	hud       *ui.HUD
	overlay   *ui.Overlay
	clock     *core.FixedStep
	collector *telemetry.Collector

	scale  int
	frames int
}

// New constructs a Game around an existing sandbox.
func New(s *sandbox.SandBox, sim *sandbox.Simulation, tb *toolbox.ToolBox, scale, tps int) *Game {
	if scale < 1 {
		scale = 1
	}
	return &Game{
		s:         s,
		sim:       sim,
		tb:        tb,
		painter:   render.NewGridPainter(s.Width(), s.Height()),
		hud:       ui.NewHUD(),
		overlay:   ui.NewOverlay(),
		clock:     core.NewFixedStep(tps),
		collector: telemetry.NewCollector(60),
		scale:     scale,
	}
}

// Collector exposes the tick-duration window for status reporting.
func (g *Game) Collector() *telemetry.Collector { return g.collector }

var elementKeys = map[ebiten.Key]sandbox.Element{
	ebiten.KeyDigit2: sandbox.Sand,
	ebiten.KeyDigit3: sandbox.Water,
	ebiten.KeyDigit4: sandbox.Rock,
	ebiten.KeyDigit5: sandbox.Wood,
	ebiten.KeyDigit6: sandbox.Fire,
	ebiten.KeyDigit7: sandbox.Acid,
	ebiten.KeyDigit8: sandbox.Oil,
	ebiten.KeyDigit9: sandbox.Lava,
	ebiten.KeyDigit0: sandbox.Life,
}

// Update handles input and advances the simulation by however many ticks
// are due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.Running = !g.sim.Running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.StepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.s.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.tb.Tool = (g.tb.Tool + 1) % toolbox.ToolCount
	}
	for key, el := range elementKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.tb.Element = el
		}
	}
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		if wheelY > 0 {
			g.tb.SetSize(g.tb.Size + 1)
		} else {
			g.tb.SetSize(g.tb.Size - 1)
		}
	}

	g.hud.Update()
	g.overlay.Update()
	g.handlePointer()

	for n := g.clock.Due(); n > 0; n-- {
		start := time.Now()
		g.sim.Tick(g.s)
		g.collector.RecordTick(time.Since(start))
	}

	g.frames++
	if g.frames%60 == 0 {
		ws := g.collector.WindowStats()
		ebiten.SetWindowTitle(fmt.Sprintf("sandfall — %.2f ms/tick", ws.MeanMs))
	}
	return nil
}

func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	cx, cy := x/g.scale, y/g.scale
	if cx < 0 || cy < 0 || cx >= g.s.Width() || cy >= g.s.Height() {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.tb.Apply(g.s, cx, cy)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		erase := *g.tb
		erase.Element = sandbox.Air
		erase.Apply(g.s, cx, cy)
	}
}

// Draw renders the current world state plus HUD and overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.s, g.scale)
	g.overlay.Draw(screen, g.s, g.scale)
	g.hud.Draw(screen, g.sim, g.tb)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.s.Width() * g.scale, g.s.Height() * g.scale
}
