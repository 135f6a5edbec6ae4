// Package config provides YAML configuration loading for the sandbox
// application, with compiled-in defaults and optional file overrides.
package config

import (
	_ "embed"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sandfall/internal/sandbox"
	"sandfall/internal/toolbox"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// WorldConfig controls sandbox construction.
type WorldConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

// ScreenConfig controls the display loop.
type ScreenConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// ToolConfig selects the initial brush.
type ToolConfig struct {
	Shape   string `yaml:"shape"`
	Element string `yaml:"element"`
	Size    int    `yaml:"size"`
}

// TelemetryConfig controls CSV output. An empty dir disables it.
type TelemetryConfig struct {
	Dir    string `yaml:"dir"`
	Window int    `yaml:"window"`
}

// SceneRect stamps a rectangle of one element into the world at reset.
type SceneRect struct {
	Element string `yaml:"element"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	W       int    `yaml:"w"`
	H       int    `yaml:"h"`
	Source  bool   `yaml:"source"`
}

// Config holds all application configuration.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Screen    ScreenConfig    `yaml:"screen"`
	Tool      ToolConfig      `yaml:"tool"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Scene     []SceneRect     `yaml:"scene"`
}

// Default returns the compiled-in configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path yields the plain defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the fields the core cares about.
func (c *Config) Validate() error {
	if c.World.Width < 2 || c.World.Height < 2 {
		return fmt.Errorf("world dimensions %dx%d too small, need at least 2x2", c.World.Width, c.World.Height)
	}
	if c.Screen.Scale < 1 {
		c.Screen.Scale = 1
	}
	if c.Screen.TPS < 1 {
		c.Screen.TPS = 60
	}
	if c.Telemetry.Window < 1 {
		c.Telemetry.Window = 60
	}
	if _, err := toolbox.ParseTool(c.Tool.Shape); err != nil {
		return err
	}
	if _, err := sandbox.ParseElement(c.Tool.Element); err != nil {
		return err
	}
	for _, r := range c.Scene {
		if _, err := sandbox.ParseElement(r.Element); err != nil {
			return fmt.Errorf("scene: %w", err)
		}
	}
	return nil
}

// Bind attaches the common knobs to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.World.Width, "width", c.World.Width, "world width in cells")
	fs.IntVar(&c.World.Height, "height", c.World.Height, "world height in cells")
	fs.Int64Var(&c.World.Seed, "seed", c.World.Seed, "seed for the simulation RNG")
	fs.IntVar(&c.Screen.Scale, "scale", c.Screen.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Screen.TPS, "tps", c.Screen.TPS, "ticks per second")
}

// NewSandBox constructs the sandbox described by the world section.
func (c *Config) NewSandBox() (*sandbox.SandBox, error) {
	return sandbox.NewWithConfig(sandbox.Config{
		Width:  c.World.Width,
		Height: c.World.Height,
		Seed:   c.World.Seed,
	})
}

// NewToolBox constructs the initial brush described by the tool section.
func (c *Config) NewToolBox() (*toolbox.ToolBox, error) {
	tool, err := toolbox.ParseTool(c.Tool.Shape)
	if err != nil {
		return nil, err
	}
	element, err := sandbox.ParseElement(c.Tool.Element)
	if err != nil {
		return nil, err
	}
	tb := toolbox.New()
	tb.Tool = tool
	tb.Element = element
	tb.SetSize(c.Tool.Size)
	return tb, nil
}

// ApplyScene stamps the configured rectangles into the sandbox, clamped to
// the interior.
func (c *Config) ApplyScene(s *sandbox.SandBox) error {
	for _, r := range c.Scene {
		element, err := sandbox.ParseElement(r.Element)
		if err != nil {
			return fmt.Errorf("scene: %w", err)
		}
		x0, y0 := clamp(r.X, 1, s.Width()-2), clamp(r.Y, 1, s.Height()-2)
		x1, y1 := clamp(r.X+r.W-1, 1, s.Width()-2), clamp(r.Y+r.H-1, 1, s.Height()-2)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				s.SetElement(x, y, element, r.Source)
			}
		}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
