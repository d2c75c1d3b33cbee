package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessgame-go/internal/errors"
)

// AnalysisConfig holds settings for perft and divide runs.
type AnalysisConfig struct {
	// Workers is the number of goroutines splitting the root moves
	Workers int

	// BufferSize is the work and result channel capacity
	BufferSize int
}

// NewAnalysisConfig creates an AnalysisConfig with one worker per CPU.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
	}
}

// Validate checks that the analysis configuration is usable.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 1 {
		return fmt.Errorf("workers %d: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.BufferSize < 1 {
		return fmt.Errorf("buffer size %d: %w", a.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
