package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chessgame-go/internal/errors"
)

// TestPGNConfig_Defaults verifies PGNConfig has sensible defaults
func TestPGNConfig_Defaults(t *testing.T) {
	cfg := NewPGNConfig()

	if cfg.Event != "Chess Game" {
		t.Errorf("Event = %q, want %q", cfg.Event, "Chess Game")
	}
	if cfg.Date != "????.??.??" {
		t.Errorf("Date = %q, want ????.??.??", cfg.Date)
	}
	if cfg.Round != "-" {
		t.Errorf("Round = %q, want -", cfg.Round)
	}
	if cfg.White != "Player" || cfg.Black != "Player" {
		t.Errorf("players = %q/%q, want Player/Player", cfg.White, cfg.Black)
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
}

func TestAnalysisConfig_Defaults(t *testing.T) {
	cfg := NewAnalysisConfig()
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"zero line length is valid", func(c *Config) { c.PGN.MaxLineLength = 0 }, false},
		{"negative line length", func(c *Config) { c.PGN.MaxLineLength = -1 }, true},
		{"zero workers", func(c *Config) { c.Analysis.Workers = 0 }, true},
		{"zero buffer", func(c *Config) { c.Analysis.BufferSize = 0 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.SetLog(&buf)

	cfg.Logf(1, "loaded %d games", 3)
	cfg.Logf(2, "hidden at verbosity 1")

	got := buf.String()
	if !strings.Contains(got, "loaded 3 games\n") {
		t.Errorf("log = %q, want the level-1 line", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("log = %q, level-2 line should be suppressed", got)
	}

	var nilCfg *Config
	nilCfg.Logf(0, "no panic")
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithMaxLineLength(120).
		WithPlayers("Alice", "Bob").
		WithEvent("Club Night", "Leeds").
		WithWorkers(3).
		WithColour(false).
		WithOutput(&out).
		WithVerbosity(2).
		Build()

	if cfg.PGN.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.PGN.MaxLineLength)
	}
	if cfg.PGN.White != "Alice" || cfg.PGN.Black != "Bob" {
		t.Errorf("players = %q/%q, want Alice/Bob", cfg.PGN.White, cfg.PGN.Black)
	}
	if cfg.PGN.Event != "Club Night" || cfg.PGN.Site != "Leeds" {
		t.Errorf("event = %q/%q", cfg.PGN.Event, cfg.PGN.Site)
	}
	if cfg.Analysis.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Analysis.Workers)
	}
	if cfg.Display.Colour {
		t.Error("Display.Colour should be false")
	}
	if cfg.OutputFile != &out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}
