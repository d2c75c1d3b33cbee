package main

import (
	"flag"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/lgbarn/chessgame-go/internal/config"
)

// withFlags sets command-line flags for one test and restores every flag
// to its default afterwards. Arguments are name, value pairs.
func withFlags(t *testing.T, args ...string) {
	t.Helper()
	t.Cleanup(func() {
		flag.VisitAll(func(f *flag.Flag) {
			if strings.HasPrefix(f.Name, "test.") {
				return
			}
			_ = f.Value.Set(f.DefValue)
		})
	})
	for i := 0; i+1 < len(args); i += 2 {
		if err := flag.Set(args[i], args[i+1]); err != nil {
			t.Fatalf("flag.Set(%q, %q) error = %v", args[i], args[i+1], err)
		}
	}
}

func TestApplyPGNFlags(t *testing.T) {
	t.Run("defaults keep the config values", func(t *testing.T) {
		withFlags(t)
		cfg := config.NewConfig()
		applyPGNFlags(cfg)
		if cfg.PGN.White != "Player" || cfg.PGN.Black != "Player" {
			t.Errorf("players = %q/%q; want Player/Player", cfg.PGN.White, cfg.PGN.Black)
		}
		if cfg.PGN.MaxLineLength != 80 {
			t.Errorf("MaxLineLength = %d; want 80", cfg.PGN.MaxLineLength)
		}
	})

	t.Run("tags and line length", func(t *testing.T) {
		withFlags(t, "white", "Alice", "black", "Bob", "event", "Club Night", "w", "0")
		cfg := config.NewConfig()
		applyPGNFlags(cfg)
		if cfg.PGN.White != "Alice" || cfg.PGN.Black != "Bob" {
			t.Errorf("players = %q/%q; want Alice/Bob", cfg.PGN.White, cfg.PGN.Black)
		}
		if cfg.PGN.Event != "Club Night" {
			t.Errorf("Event = %q; want Club Night", cfg.PGN.Event)
		}
		if cfg.PGN.MaxLineLength != 0 {
			t.Errorf("MaxLineLength = %d; want 0", cfg.PGN.MaxLineLength)
		}
	})
}

func TestApplyDisplayFlags(t *testing.T) {
	t.Run("nocolour disables colour", func(t *testing.T) {
		withFlags(t, "nocolour", "true", "flip", "true", "nocoords", "true")
		cfg := config.NewConfig()
		applyDisplayFlags(cfg)
		if cfg.Display.Colour {
			t.Error("Display.Colour = true; want false")
		}
		if !cfg.Display.Flip {
			t.Error("Display.Flip = false; want true")
		}
		if cfg.Display.Coordinates {
			t.Error("Display.Coordinates = true; want false")
		}
	})

	t.Run("colour follows the terminal", func(t *testing.T) {
		withFlags(t)
		cfg := config.NewConfig()
		applyDisplayFlags(cfg)
		if cfg.Display.Colour != !color.NoColor {
			t.Errorf("Display.Colour = %v; want %v", cfg.Display.Colour, !color.NoColor)
		}
	})
}

func TestApplyAnalysisFlags(t *testing.T) {
	t.Run("zero keeps the default", func(t *testing.T) {
		withFlags(t)
		cfg := config.NewConfig()
		want := cfg.Analysis.Workers
		applyAnalysisFlags(cfg)
		if cfg.Analysis.Workers != want {
			t.Errorf("Workers = %d; want %d", cfg.Analysis.Workers, want)
		}
	})

	t.Run("explicit count", func(t *testing.T) {
		withFlags(t, "workers", "3")
		cfg := config.NewConfig()
		applyAnalysisFlags(cfg)
		if cfg.Analysis.Workers != 3 {
			t.Errorf("Workers = %d; want 3", cfg.Analysis.Workers)
		}
	})
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"default", nil, 1},
		{"quiet", []string{"s", "true"}, 0},
		{"verbose", []string{"v", "true"}, 2},
		{"quiet wins", []string{"s", "true", "v", "true"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t, tt.args...)
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}
