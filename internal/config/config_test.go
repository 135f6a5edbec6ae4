package config

import (
	"os"
	"path/filepath"
	"testing"

	"sandfall/internal/sandbox"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Width != 512 || cfg.World.Height != 512 {
		t.Fatalf("default world = %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Screen.TPS != 60 {
		t.Fatalf("default tps = %d", cfg.Screen.TPS)
	}
	if cfg.Tool.Element != "sand" {
		t.Fatalf("default tool element = %q", cfg.Tool.Element)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandfall.yaml")
	body := []byte("world:\n  width: 64\n  height: 48\n  seed: 7\nscene:\n  - {element: rock, x: 1, y: 40, w: 62, h: 2}\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Width != 64 || cfg.World.Height != 48 || cfg.World.Seed != 7 {
		t.Fatalf("override not applied: %+v", cfg.World)
	}
	// Untouched sections keep their defaults.
	if cfg.Screen.Scale != 2 {
		t.Fatalf("scale = %d, want default 2", cfg.Screen.Scale)
	}
	if len(cfg.Scene) != 1 || cfg.Scene[0].Element != "rock" {
		t.Fatalf("scene = %+v", cfg.Scene)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: {width: 1, height: 1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for 1x1 world")
	}

	if err := os.WriteFile(path, []byte("scene:\n  - {element: nope, x: 1, y: 1, w: 1, h: 1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown scene element")
	}
}

func TestApplySceneClampsToInterior(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	cfg.World.Width, cfg.World.Height = 16, 16
	cfg.Scene = []SceneRect{{Element: "wood", X: -5, Y: 14, W: 100, H: 10}}

	s, err := cfg.NewSandBox()
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.ApplyScene(s); err != nil {
		t.Fatal(err)
	}

	for x := 1; x <= 14; x++ {
		if got := s.Get(x, 14).Element; got != sandbox.Wood {
			t.Fatalf("cell (%d,14) = %v, want Wood", x, got)
		}
	}
	for x := 0; x < 16; x++ {
		if got := s.Get(x, 15).Element; got != sandbox.Indestructible {
			t.Fatalf("border breached at (%d,15): %v", x, got)
		}
	}
}

func TestNewToolBoxFromConfig(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Tool = ToolConfig{Shape: "circle", Element: "water-source", Size: 200}
	tb, err := cfg.NewToolBox()
	if err != nil {
		t.Fatal(err)
	}
	if tb.Element != sandbox.WaterSource {
		t.Fatalf("tool element = %v", tb.Element)
	}
	if tb.Size > 64 {
		t.Fatalf("tool size not clamped: %d", tb.Size)
	}
}
