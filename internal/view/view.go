// Package view renders the sandbox in a terminal using gocui. It is the
// lightweight alternative to the graphical front end and shares the same
// simulation and toolbox plumbing.
package view

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"sandfall/internal/sandbox"
	"sandfall/internal/telemetry"
	"sandfall/internal/toolbox"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// TerminalUI owns the gocui session and drives the simulation at a fixed
// interval while the main loop handles input. The tick goroutine and the
// gocui main loop both touch the grid and the scheduler flags, so every
// access goes through mu; the sandbox itself is single-threaded by contract.
type TerminalUI struct {
	mu  sync.Mutex
	s   *sandbox.SandBox
	sim *sandbox.Simulation
	tb  *toolbox.ToolBox

	g *gocui.Gui
	k []keyBinding

	interval time.Duration
	glyphs   [len(glyphTable)]string
	done     chan struct{}
}

var glyphTable = [...]struct {
	r     rune
	color aurora.Color
}{
	sandbox.Air:            {' ', 0},
	sandbox.Sand:           {'░', aurora.YellowFg},
	sandbox.Rock:           {'█', aurora.WhiteFg},
	sandbox.Wood:           {'#', aurora.YellowFg},
	sandbox.Iron:           {'▓', aurora.WhiteFg},
	sandbox.Rust:           {'▒', aurora.RedFg},
	sandbox.Water:          {'~', aurora.BlueFg},
	sandbox.Acid:           {'~', aurora.GreenFg},
	sandbox.Oil:            {'~', aurora.MagentaFg},
	sandbox.Lava:           {'≈', aurora.RedFg},
	sandbox.Fire:           {'^', aurora.RedFg},
	sandbox.Ash:            {'░', aurora.WhiteFg},
	sandbox.Smoke:          {'.', aurora.WhiteFg},
	sandbox.Life:           {'●', aurora.CyanFg},
	sandbox.Plant:          {'*', aurora.GreenFg},
	sandbox.Drain:          {'◙', aurora.BlackFg | aurora.BoldFm},
	sandbox.WaterSource:    {'◘', aurora.BlueFg},
	sandbox.AcidSource:     {'◘', aurora.GreenFg},
	sandbox.OilSource:      {'◘', aurora.MagentaFg},
	sandbox.LavaSource:     {'◘', aurora.RedFg},
	sandbox.FireSource:     {'◘', aurora.RedFg | aurora.BoldFm},
	sandbox.Indestructible: {'█', aurora.WhiteFg | aurora.BoldFm},
}

func buildGlyphs() [len(glyphTable)]string {
	var glyphs [len(glyphTable)]string
	for i, g := range glyphTable {
		if g.color == 0 {
			glyphs[i] = string(g.r)
			continue
		}
		glyphs[i] = aurora.Colorize(string(g.r), g.color).String()
	}
	return glyphs
}

// NewTerminalUI wires a terminal session around an existing sandbox. The
// interval controls how often the simulation ticks while running.
func NewTerminalUI(s *sandbox.SandBox, sim *sandbox.Simulation, tb *toolbox.ToolBox, interval time.Duration) *TerminalUI {
	t := &TerminalUI{
		s:        s,
		sim:      sim,
		tb:       tb,
		interval: interval,
		glyphs:   buildGlyphs(),
		done:     make(chan struct{}),
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Run/Pause", t.cmdToggleRun, ""},
		{'n', "N", "Step", t.cmdStep, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'e', "E", "Next element", t.cmdNextElement, ""},
		{'t', "T", "Next tool", t.cmdNextTool, ""},
		{'+', "+", "Bigger brush", t.cmdGrowBrush, ""},
		{'-', "-", "Smaller brush", t.cmdShrinkBrush, ""},
		{gocui.MouseLeft, "MOUSE", "Paint", t.cmdPaint, "world"},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()

	return t
}

func (t *TerminalUI) initKeyBindings() {
	for _, kb := range t.k {
		h := kb.handler
		err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone,
			func(gui *gocui.Gui, view *gocui.View) error { return h(view) })
		if err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the tick loop and the gocui main loop. It blocks until the user
// quits.
func (t *TerminalUI) Start() {
	go t.tickLoop()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		t.g.Close()
		log.Panicln(err)
	}
	close(t.done)
	t.g.Close()
}

func (t *TerminalUI) tickLoop() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.tick()
			t.refresh()
		}
	}
}

// tick advances the simulation one scheduler call under the lock.
func (t *TerminalUI) tick() {
	t.mu.Lock()
	t.sim.Tick(t.s)
	t.mu.Unlock()
}

// paintAt applies the current brush at grid coordinates under the lock.
func (t *TerminalUI) paintAt(x, y int) {
	t.mu.Lock()
	t.tb.Apply(t.s, x, y)
	t.mu.Unlock()
}

func (t *TerminalUI) toggleRun() {
	t.mu.Lock()
	t.sim.Running = !t.sim.Running
	t.mu.Unlock()
}

func (t *TerminalUI) requestStep() {
	t.mu.Lock()
	t.sim.StepOnce = true
	t.mu.Unlock()
}

func (t *TerminalUI) clearWorld() {
	t.mu.Lock()
	t.s.Clear()
	t.mu.Unlock()
}

// worldString renders the grid as colored glyph rows, cropped to the given
// view size. It takes the lock so the snapshot never overlaps a sweep.
func (t *TerminalUI) worldString(maxW, maxH int) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b bytes.Buffer
	for y := 0; y < t.s.Height() && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < t.s.Width() && x < maxW; x++ {
			el := t.s.Get(x, y).Element
			if int(el) < len(t.glyphs) {
				b.WriteString(t.glyphs[el])
			}
		}
	}
	return b.String()
}

// statusLines assembles the status pane content under the lock.
func (t *TerminalUI) statusLines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	mode := aurora.Red("paused").String()
	if t.sim.Running {
		mode = aurora.Cyan("running").String()
	}
	lines := []string{
		renderProp("Mode", "%s", mode),
		renderProp("World", "%v x %v", t.s.Width(), t.s.Height()),
		renderProp("Element", "%v", t.tb.Element),
		renderProp("Tool", "%v", t.tb.Tool),
		renderProp("Brush", "%v", t.tb.Size),
		renderProp("Tick", "%v", t.sim.TickTime.Round(time.Microsecond)),
	}
	census := telemetry.TakeCensus(t.s)
	for _, el := range []sandbox.Element{sandbox.Sand, sandbox.Water, sandbox.Fire, sandbox.Life} {
		if n := census[el]; n > 0 {
			lines = append(lines, renderProp(el.String(), "%d", n))
		}
	}
	return lines
}

func (t *TerminalUI) refresh() {
	t.renderWorld()
	t.renderStatus()
}

func (t *TerminalUI) renderWorld() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("world")
		if err != nil {
			return err
		}
		v.Clear()
		maxW, maxH := v.Size()
		_, _ = fmt.Fprint(v, t.worldString(maxW, maxH))
		return nil
	})
}

func (t *TerminalUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("status")
		if err != nil {
			return nil
		}
		v.Clear()
		for _, line := range t.statusLines() {
			_, _ = fmt.Fprintln(v, line)
		}
		return nil
	})
}

func renderProp(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+format, values...)
}

func (t *TerminalUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 24

	if v, err := g.SetView("status", 0, 0, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("world", leftColumnWidth+1, 0, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "World"
		v.Frame = true
	}
	t.renderWorld()

	if v, err := g.SetView("help", -1, maxY-4, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *TerminalUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *TerminalUI) cmdToggleRun(_ *gocui.View) error {
	t.toggleRun()
	t.renderStatus()
	return nil
}

func (t *TerminalUI) cmdStep(_ *gocui.View) error {
	t.requestStep()
	return nil
}

func (t *TerminalUI) cmdClear(_ *gocui.View) error {
	t.clearWorld()
	t.refresh()
	return nil
}

func (t *TerminalUI) cmdNextElement(_ *gocui.View) error {
	t.mu.Lock()
	t.tb.Element = nextPaintable(t.tb.Element)
	t.mu.Unlock()
	t.renderStatus()
	return nil
}

func (t *TerminalUI) cmdNextTool(_ *gocui.View) error {
	t.mu.Lock()
	t.tb.Tool = (t.tb.Tool + 1) % toolbox.ToolCount
	t.mu.Unlock()
	t.renderStatus()
	return nil
}

func (t *TerminalUI) cmdGrowBrush(_ *gocui.View) error {
	t.mu.Lock()
	t.tb.SetSize(t.tb.Size + 1)
	t.mu.Unlock()
	t.renderStatus()
	return nil
}

func (t *TerminalUI) cmdShrinkBrush(_ *gocui.View) error {
	t.mu.Lock()
	t.tb.SetSize(t.tb.Size - 1)
	t.mu.Unlock()
	t.renderStatus()
	return nil
}

func (t *TerminalUI) cmdPaint(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.paintAt(cx, cy)
	t.renderWorld()
	return nil
}

// nextPaintable cycles through the elements the brush can place, skipping
// the border material.
func nextPaintable(el sandbox.Element) sandbox.Element {
	next := el
	for {
		next++
		if int(next) >= len(glyphTable) {
			next = sandbox.Air
		}
		if next != sandbox.Indestructible {
			return next
		}
	}
}
