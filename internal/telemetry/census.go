package telemetry

import "sandfall/internal/sandbox"

// Census counts how many cells currently hold each element.
type Census map[sandbox.Element]int

// TakeCensus scans the whole grid, border included.
func TakeCensus(s *sandbox.SandBox) Census {
	census := make(Census)
	for _, cell := range s.Cells() {
		census[cell.Element]++
	}
	return census
}

// TickRecord is one CSV row of the telemetry stream.
type TickRecord struct {
	Tick  int     `csv:"tick"`
	Ms    float64 `csv:"ms"`
	Sand  int     `csv:"sand"`
	Water int     `csv:"water"`
	Acid  int     `csv:"acid"`
	Oil   int     `csv:"oil"`
	Lava  int     `csv:"lava"`
	Fire  int     `csv:"fire"`
	Smoke int     `csv:"smoke"`
	Life  int     `csv:"life"`
	Plant int     `csv:"plant"`
}

// NewTickRecord assembles a CSV row from a tick duration and a census.
func NewTickRecord(tick int, ms float64, census Census) TickRecord {
	return TickRecord{
		Tick:  tick,
		Ms:    ms,
		Sand:  census[sandbox.Sand],
		Water: census[sandbox.Water],
		Acid:  census[sandbox.Acid],
		Oil:   census[sandbox.Oil],
		Lava:  census[sandbox.Lava],
		Fire:  census[sandbox.Fire],
		Smoke: census[sandbox.Smoke],
		Life:  census[sandbox.Life],
		Plant: census[sandbox.Plant],
	}
}
