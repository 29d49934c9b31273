package pipeline

import (
	"errors"
	"testing"

	"github.com/openchest/lungseg/internal/imaging"
)

func TestDefault_StockTuning(t *testing.T) {
	cfg := Default()

	if cfg.WindowMin != -1000 || cfg.WindowMax != 2000 {
		t.Errorf("window = [%g, %g], want [-1000, 2000]", cfg.WindowMin, cfg.WindowMax)
	}
	if cfg.KernelSize != 5 {
		t.Errorf("kernel size = %d, want 5", cfg.KernelSize)
	}
	if cfg.Sigma != 0 {
		t.Errorf("sigma = %g, want 0 for derived deviation", cfg.Sigma)
	}
	if cfg.AreaMin != 3000 || cfg.AreaMax != 40000 {
		t.Errorf("area bounds = [%g, %g], want [3000, 40000]", cfg.AreaMin, cfg.AreaMax)
	}
	if cfg.Subsample {
		t.Error("subsample enabled by default")
	}
	if cfg.KeepProbability != 0.7 {
		t.Errorf("keep probability = %g, want 0.7", cfg.KeepProbability)
	}
	if cfg.Overlay {
		t.Error("overlay enabled by default")
	}
	if cfg.OverlayColor != imaging.DefaultHighlight {
		t.Errorf("overlay color = %q, want %q", cfg.OverlayColor, imaging.DefaultHighlight)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestValidate_RejectsImpossibleSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"equal window bounds", func(c *Config) { c.WindowMax = c.WindowMin }, false},
		{"inverted window bounds", func(c *Config) { c.WindowMin, c.WindowMax = 500, -500 }, false},
		{"even kernel", func(c *Config) { c.KernelSize = 4 }, false},
		{"zero kernel", func(c *Config) { c.KernelSize = 0 }, false},
		{"negative kernel", func(c *Config) { c.KernelSize = -3 }, false},
		{"large odd kernel", func(c *Config) { c.KernelSize = 9 }, true},
		{"negative area floor", func(c *Config) { c.AreaMin = -1 }, false},
		{"inverted area bounds", func(c *Config) { c.AreaMin, c.AreaMax = 500, 100 }, false},
		{"probability below range", func(c *Config) { c.KeepProbability = -0.01 }, false},
		{"probability above range", func(c *Config) { c.KeepProbability = 1.01 }, false},
		{"probability zero", func(c *Config) { c.KeepProbability = 0 }, true},
		{"probability one", func(c *Config) { c.KeepProbability = 1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestValidate_WindowErrorCarriesType(t *testing.T) {
	cfg := Default()
	cfg.WindowMin, cfg.WindowMax = 300, 300

	var winErr *imaging.InvalidWindowError
	if err := cfg.Validate(); !errors.As(err, &winErr) {
		t.Fatalf("Validate() error = %v, want *imaging.InvalidWindowError", err)
	}
	if winErr.Min != 300 || winErr.Max != 300 {
		t.Errorf("error bounds = [%g, %g], want [300, 300]", winErr.Min, winErr.Max)
	}
}
