// Command sandterm runs the falling-sand world inside a terminal.
package main

import (
	"log"
	"time"

	"github.com/integrii/flaggy"

	"sandfall/internal/config"
	"sandfall/internal/sandbox"
	"sandfall/internal/view"
)

func main() {
	var (
		configPath string
		width      = 120
		height     = 40
		seed       = 1337
		interval   = 50 * time.Millisecond
		paused     bool
	)

	flaggy.SetName("sandterm")
	flaggy.SetDescription("terminal front end for the sandfall cellular automaton")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&configPath, "f", "config", "Path to a YAML config file")
	flaggy.Int(&width, "x", "width", "Width of the world in cells")
	flaggy.Int(&height, "y", "height", "Height of the world in cells")
	flaggy.Int(&seed, "s", "seed", "Seed for the simulation RNG")
	flaggy.Duration(&interval, "i", "interval", "Time between simulation ticks, for example 50ms")
	flaggy.Bool(&paused, "p", "paused", "Start with the simulation paused")
	flaggy.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if configPath == "" {
		// Terminal worlds are much smaller than the graphical default.
		cfg.World.Width = width
		cfg.World.Height = height
		cfg.World.Seed = int64(seed)
	}

	s, err := cfg.NewSandBox()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.ApplyScene(s); err != nil {
		log.Fatal(err)
	}
	tb, err := cfg.NewToolBox()
	if err != nil {
		log.Fatal(err)
	}

	sim := sandbox.NewSimulation()
	sim.Running = !paused

	t := view.NewTerminalUI(s, sim, tb, interval)
	t.Start()
}
