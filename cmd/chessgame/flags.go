// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/fatih/color"

	"github.com/lgbarn/chessgame-go/internal/config"
)

var (
	// Position input
	fenInput  = flag.String("fen", "", "Start from this FEN position")
	pgnFile   = flag.String("pgn", "", "Load moves from a PGN file (- for stdin)")
	movesList = flag.String("moves", "", "UCI moves to play, separated by spaces or commas (e.g. 'e2e4 e7e5')")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("format", "fen", "Output format: fen, pgn, json, state, legal")
	lineLength   = flag.Int("w", 80, "Maximum PGN line length (0 = no wrapping)")
	whitePlayer  = flag.String("white", "", "White tag for PGN output")
	blackPlayer  = flag.String("black", "", "Black tag for PGN output")
	eventName    = flag.String("event", "", "Event tag for PGN output")

	// Board diagram
	showBoard = flag.Bool("board", false, "Print a board diagram before the output")
	flipBoard = flag.Bool("flip", false, "Draw the board from Black's side")
	noColour  = flag.Bool("nocolour", false, "Draw the board without colours")
	noCoords  = flag.Bool("nocoords", false, "Leave out file and rank labels")

	// Analysis
	perftDepth  = flag.Int("perft", 0, "Count leaf nodes to this depth")
	divideDepth = flag.Int("divide", 0, "Count leaf nodes per root move to this depth")
	workers     = flag.Int("workers", 0, "Number of divide workers (0 = one per CPU core)")

	// Network play
	listenAddr  = flag.String("listen", "", "Wait for an opponent on this address (e.g. :7777)")
	connectAddr = flag.String("connect", "", "Connect to an opponent at this address")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	verbose = flag.Bool("v", false, "Log every move played")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPGNFlags(cfg)
	applyDisplayFlags(cfg)
	applyAnalysisFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyPGNFlags configures the PGN tags and line length.
func applyPGNFlags(cfg *config.Config) {
	cfg.PGN.MaxLineLength = *lineLength
	if *whitePlayer != "" {
		cfg.PGN.White = *whitePlayer
	}
	if *blackPlayer != "" {
		cfg.PGN.Black = *blackPlayer
	}
	if *eventName != "" {
		cfg.PGN.Event = *eventName
	}
}

// applyDisplayFlags configures the board diagram. Colour also follows
// NO_COLOR and whether stdout is a terminal.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Colour = !*noColour && !color.NoColor
	cfg.Display.Flip = *flipBoard
	cfg.Display.Coordinates = !*noCoords
}

// applyAnalysisFlags configures the divide worker count.
func applyAnalysisFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Analysis.Workers = *workers
	}
}
