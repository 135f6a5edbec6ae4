package sandbox

// Cell is the full mutable state of one grid position.
type Cell struct {
	// Element tags the substance occupying this position.
	Element Element
	// Variant shades the display color; rules that flicker or glow mutate it.
	// It never drives logic.
	Variant uint8
	// Strength is the decay/resistance countdown used by dissolve, burn-out
	// and cooling semantics.
	Strength uint8
	// Visited equals the sandbox parity when the cell has already been
	// produced or processed during the current sweep.
	Visited bool
	// Source marks a continuously emitting spawner cell.
	Source bool
}
