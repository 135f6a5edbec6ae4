// Command soak runs the simulation headless for a fixed number of ticks and
// reports timing and census telemetry. Useful for performance tracking and
// for checking long-run stability of a scene.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"sandfall/internal/config"
	"sandfall/internal/sandbox"
	"sandfall/internal/telemetry"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		ticks      = flag.Int("ticks", 10000, "number of ticks to simulate")
		outDir     = flag.String("out", "", "telemetry output directory (overrides config)")
		jsonLog    = flag.Bool("json", false, "emit JSON logs")
	)
	cfg, err := config.Default()
	if err != nil {
		slog.Error("loading defaults", "error", err)
		os.Exit(1)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *jsonLog {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("loading config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Telemetry.Dir = *outDir
	}

	s, err := cfg.NewSandBox()
	if err != nil {
		slog.Error("creating sandbox", "error", err)
		os.Exit(1)
	}
	if err := cfg.ApplyScene(s); err != nil {
		slog.Error("applying scene", "error", err)
		os.Exit(1)
	}

	out, err := telemetry.NewOutputManager(cfg.Telemetry.Dir)
	if err != nil {
		slog.Error("opening telemetry output", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	slog.Info("starting headless run",
		"width", s.Width(), "height", s.Height(),
		"seed", cfg.World.Seed, "ticks", *ticks,
		"telemetry", out.Dir())

	sim := sandbox.NewSimulation()
	collector := telemetry.NewCollector(cfg.Telemetry.Window)
	window := cfg.Telemetry.Window

	records := make([]telemetry.TickRecord, 0, window)
	start := time.Now()
	for tick := 1; tick <= *ticks; tick++ {
		tickStart := time.Now()
		sim.Tick(s)
		collector.RecordTick(time.Since(tickStart))

		ms := float64(sim.TickTime) / float64(time.Millisecond)
		records = append(records, telemetry.NewTickRecord(tick, ms, telemetry.TakeCensus(s)))
		if len(records) == window {
			if err := out.WriteTicks(records); err != nil {
				slog.Error("writing telemetry", "error", err)
				os.Exit(1)
			}
			records = records[:0]

			ws := collector.WindowStats()
			slog.Info("window",
				"tick", tick,
				"mean_ms", ws.MeanMs,
				"std_ms", ws.StdMs,
				"min_ms", ws.MinMs,
				"max_ms", ws.MaxMs)
		}
	}
	if len(records) > 0 {
		if err := out.WriteTicks(records); err != nil {
			slog.Error("writing telemetry", "error", err)
			os.Exit(1)
		}
	}

	elapsed := time.Since(start)
	census := telemetry.TakeCensus(s)
	slog.Info("finished",
		"ticks", *ticks,
		"elapsed", elapsed.Round(time.Millisecond),
		"ticks_per_sec", float64(*ticks)/elapsed.Seconds(),
		"sand", census[sandbox.Sand],
		"water", census[sandbox.Water],
		"lava", census[sandbox.Lava],
		"life", census[sandbox.Life])
}
