package config

import (
	"fmt"

	"github.com/lgbarn/chessgame-go/internal/errors"
)

// PGNConfig holds the header defaults and layout used for PGN export.
type PGNConfig struct {
	Event string
	Site  string
	Date  string
	Round string
	White string
	Black string

	// MaxLineLength is the maximum line length for movetext
	MaxLineLength int
}

// NewPGNConfig creates a PGNConfig with default values.
func NewPGNConfig() *PGNConfig {
	return &PGNConfig{
		Event:         "Chess Game",
		Site:          "ChessGame App",
		Date:          "????.??.??",
		Round:         "-",
		White:         "Player",
		Black:         "Player",
		MaxLineLength: 80,
	}
}

// Validate checks that the PGN configuration is usable.
func (p *PGNConfig) Validate() error {
	if p.MaxLineLength < 0 {
		return fmt.Errorf("max line length %d: %w", p.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}

// DisplayConfig controls the terminal board diagram.
type DisplayConfig struct {
	// Colour enables ANSI colours
	Colour bool

	// Flip draws the board from Black's side
	Flip bool

	// Coordinates prints file letters and rank digits
	Coordinates bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:      true,
		Coordinates: true,
	}
}
