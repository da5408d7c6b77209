package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if cfg.Life != DefaultLife {
		t.Errorf("expected life %d, got %d", DefaultLife, cfg.Life)
	}
	if len(cfg.Leaves) == 0 {
		t.Error("default config should carry a leaf set")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Height = -5 }, false},
		{"life too small", func(c *Config) { c.Life = 0 }, false},
		{"life too large", func(c *Config) { c.Life = 999 }, false},
		{"multiplier too small", func(c *Config) { c.Multiplier = 0 }, false},
		{"multiplier too large", func(c *Config) { c.Multiplier = 21 }, false},
		{"empty leaves", func(c *Config) { c.Leaves = nil }, false},
		{"blank leaf", func(c *Config) { c.Leaves = []string{""} }, false},
		{"zero fps", func(c *Config) { c.FPS = 0 }, false},
		{"max bounds", func(c *Config) { c.Life = 200; c.Multiplier = 20 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Life != 32 {
		t.Errorf("expected life 32, got %d", cfg.Life)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestGetPresetIsolated(t *testing.T) {
	first := GetPreset("sapling")
	first.Life = 1
	first.Leaves[0] = "X"

	second := GetPreset("sapling")
	if second.Life != 16 {
		t.Errorf("preset table mutated through a returned config: life = %d", second.Life)
	}
	if second.Leaves[0] != "&" {
		t.Errorf("preset leaf slice shared with caller: got %q", second.Leaves[0])
	}
}

func TestPresetsValidate(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s does not validate: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bonsai.yaml")

	cfg := DefaultConfig()
	cfg.Life = 48
	cfg.Seed = 99
	cfg.Leaves = []string{"&", "*"}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Life != 48 || loaded.Seed != 99 {
		t.Errorf("round trip mismatch: life=%d seed=%d", loaded.Life, loaded.Seed)
	}
	if len(loaded.Leaves) != 2 {
		t.Errorf("expected 2 leaves, got %d", len(loaded.Leaves))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestParseLeaves(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"&", 1},
		{"&,*,%", 3},
		{" & , * ", 2},
		{"", 0},
		{",,", 0},
	}

	for _, tt := range tests {
		got := ParseLeaves(tt.in)
		if len(got) != tt.want {
			t.Errorf("ParseLeaves(%q): expected %d leaves, got %d", tt.in, tt.want, len(got))
		}
	}
}

func TestTreeOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.ClampDeltas = true

	opts := cfg.TreeOptions()
	if opts.Seed != 7 || !opts.ClampDeltas {
		t.Error("tree options do not reflect config")
	}
	if opts.Width != cfg.Width || opts.Height != cfg.Height {
		t.Error("viewport not carried into tree options")
	}
}
