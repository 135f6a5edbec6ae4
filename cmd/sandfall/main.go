//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandfall/internal/app"
	"sandfall/internal/config"
	"sandfall/internal/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Default()
	if err != nil {
		log.Fatal(err)
	}
	configPath := flag.String("config", "", "path to a YAML config file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		// Flags given on the command line win over the file.
		overrides := flag.NewFlagSet("overrides", flag.ContinueOnError)
		loaded.Bind(overrides)
		flag.Visit(func(f *flag.Flag) { _ = overrides.Set(f.Name, f.Value.String()) })
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
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

	game := app.New(s, sim, tb, cfg.Screen.Scale, cfg.Screen.TPS)

	ebiten.SetWindowTitle("sandfall")
	ebiten.SetWindowSize(s.Width()*cfg.Screen.Scale, s.Height()*cfg.Screen.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
