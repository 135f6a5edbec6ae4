package sandbox

import "time"

// Simulation carries the per-tick scheduler state: whether the sweep runs
// continuously, whether a single step was requested, and how long the last
// sweep took (diagnostic only, never used for control).
type Simulation struct {
	Running  bool
	StepOnce bool
	TickTime time.Duration
}

// NewSimulation returns a scheduler in the running state.
func NewSimulation() *Simulation {
	return &Simulation{Running: true}
}

// Tick advances the sandbox by one discrete step when running or when a
// single step was requested (the request is consumed). The sweep covers the
// interior bottom-up so falling behavior propagates within one pass, and
// alternates horizontal direction every tick to cancel the directional bias
// a fixed scan order would feed into the lateral-flow rules.
func (sim *Simulation) Tick(s *SandBox) {
	start := time.Now()
	if sim.Running || sim.StepOnce {
		sim.StepOnce = false
		visited := s.ToggleVisitedState()
		w, h := s.Width()-1, s.Height()-1
		for y := h - 1; y >= 1; y-- {
			if visited {
				for x := 1; x < w; x++ {
					updateCell(s, x, y)
				}
			} else {
				for x := w - 1; x >= 1; x-- {
					updateCell(s, x, y)
				}
			}
		}
	}
	sim.TickTime = time.Since(start)
}

func updateCell(s *SandBox, x, y int) {
	cell := s.Get(x, y)
	if cell.Visited == s.IsVisitedState() {
		// Already produced at this position during the current sweep.
		return
	}
	var consumed bool
	switch cell.Element {
	case Air:
		consumed = updateAir(s, x, y)
	case Sand:
		consumed = updateSand(s, x, y)
	case Water:
		consumed = updateWater(s, x, y)
	case Acid:
		consumed = updateAcid(s, x, y)
	case Oil:
		consumed = updateOil(s, x, y)
	case Drain:
		consumed = updateDrain(s, x, y)
	case Fire:
		consumed = updateFire(s, x, y)
	case Ash:
		consumed = updateAsh(s, x, y)
	case Lava:
		consumed = updateLava(s, x, y)
	case Smoke:
		consumed = updateSmoke(s, x, y)
	case Life:
		consumed = updateLife(s, x, y)
	case Iron:
		consumed = updateIron(s, x, y)
	case Rust:
		consumed = updateSand(s, x, y)
	case Plant:
		consumed = updatePlant(s, x, y)
	case WaterSource, AcidSource, OilSource, LavaSource, FireSource:
		consumed = updateSource(s, x, y, cell.Element.Emits())
	case Wood, Rock, Indestructible:
		consumed = false
	}
	if !consumed {
		s.SetVisited(x, y)
	}
}
