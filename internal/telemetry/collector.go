// Package telemetry aggregates tick timing and world census data and writes
// them out as CSV for offline analysis.
package telemetry

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// WindowStats summarizes tick durations over the rolling window.
type WindowStats struct {
	Ticks  int
	MeanMs float64
	StdMs  float64
	MinMs  float64
	MaxMs  float64
}

// Collector keeps a rolling window of tick durations.
type Collector struct {
	window     int
	samples    []float64
	writeIndex int
	count      int
}

// NewCollector creates a collector averaging over windowSize ticks.
func NewCollector(windowSize int) *Collector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &Collector{window: windowSize, samples: make([]float64, windowSize)}
}

// RecordTick adds one tick duration to the window.
func (c *Collector) RecordTick(d time.Duration) {
	c.samples[c.writeIndex] = float64(d) / float64(time.Millisecond)
	c.writeIndex = (c.writeIndex + 1) % c.window
	if c.count < c.window {
		c.count++
	}
}

// WindowStats computes summary statistics over the recorded samples.
func (c *Collector) WindowStats() WindowStats {
	if c.count == 0 {
		return WindowStats{}
	}
	window := c.samples[:c.count]
	ws := WindowStats{
		Ticks:  c.count,
		MeanMs: stat.Mean(window, nil),
		MinMs:  window[0],
		MaxMs:  window[0],
	}
	if c.count > 1 {
		ws.StdMs = stat.StdDev(window, nil)
	}
	for _, v := range window {
		if v < ws.MinMs {
			ws.MinMs = v
		}
		if v > ws.MaxMs {
			ws.MaxMs = v
		}
	}
	return ws
}
