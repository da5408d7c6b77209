package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bonsai/internal/tree"
)

const (
	DefaultWidth      = 60
	DefaultHeight     = 24
	DefaultLife       = 32
	DefaultMultiplier = 5
	DefaultFPS        = 30
	DefaultTheme      = "classic"
	DefaultDataDir    = ".bonsai"
)

// DefaultLeaves is the glyph set leaf cells draw from when the config does
// not supply one.
var DefaultLeaves = []string{"&"}

type Config struct {
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Life        int      `yaml:"life"`
	Multiplier  int      `yaml:"multiplier"`
	Seed        int64    `yaml:"seed"`
	Leaves      []string `yaml:"leaves"`
	Theme       string   `yaml:"theme"`
	ClampDeltas bool     `yaml:"clamp_deltas"`
	FPS         int      `yaml:"fps"`
	Screensaver bool     `yaml:"screensaver"`
	DataDir     string   `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Life:       DefaultLife,
		Multiplier: DefaultMultiplier,
		Leaves:     append([]string(nil), DefaultLeaves...),
		Theme:      DefaultTheme,
		FPS:        DefaultFPS,
		DataDir:    DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first configuration error. All configuration errors
// abort startup; none is retried.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: viewport must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Life < tree.MinLife || c.Life > tree.MaxLife {
		return fmt.Errorf("config: life must be in [%d, %d], got %d", tree.MinLife, tree.MaxLife, c.Life)
	}
	if c.Multiplier < tree.MinMultiplier || c.Multiplier > tree.MaxMultiplier {
		return fmt.Errorf("config: multiplier must be in [%d, %d], got %d", tree.MinMultiplier, tree.MaxMultiplier, c.Multiplier)
	}
	if len(c.Leaves) == 0 {
		return fmt.Errorf("config: leaf glyph set must not be empty")
	}
	for _, leaf := range c.Leaves {
		if leaf == "" {
			return fmt.Errorf("config: leaf glyph must not be empty")
		}
	}
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("config: fps must be in [1, 120], got %d", c.FPS)
	}
	return nil
}

// TreeOptions maps the config onto an engine options snapshot.
func (c *Config) TreeOptions() tree.Options {
	return tree.Options{
		Width:       c.Width,
		Height:      c.Height,
		Life:        c.Life,
		Multiplier:  c.Multiplier,
		Seed:        c.Seed,
		ClampDeltas: c.ClampDeltas,
	}
}

// ParseLeaves splits a comma-separated leaf list as given on the command
// line, e.g. "&,*,%".
func ParseLeaves(s string) []string {
	parts := strings.Split(s, ",")
	leaves := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			leaves = append(leaves, p)
		}
	}
	return leaves
}
