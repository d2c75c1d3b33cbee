// chessgame plays, checks and analyses chess positions from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/lgbarn/chessgame-go/internal/analysis"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/errors"
	"github.com/lgbarn/chessgame-go/internal/game"
	"github.com/lgbarn/chessgame-go/internal/registry"
	"github.com/lgbarn/chessgame-go/internal/render"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessgame version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	var err error
	if *listenAddr != "" || *connectAddr != "" {
		err = runNetplay(ctx, cfg, os.Stdin)
	} else {
		err = run(ctx, cfg, os.Stdin)
	}
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// run builds the game described by the flags and writes the requested
// output. stdin is read when -pgn is "-". ctx cancels a running divide.
func run(ctx context.Context, cfg *config.Config, stdin io.Reader) error {
	games := registry.New(cfg)
	g := games.Create()
	defer games.Delete(g.ID())

	if err := loadGame(g, stdin); err != nil {
		return err
	}
	cfg.Logf(1, "%d move(s) played, %s", len(g.MoveHistory()), g.State())

	if *showBoard {
		board := g.Board()
		if err := render.Write(cfg.OutputFile, &board, cfg.Display); err != nil {
			return err
		}
	}

	switch {
	case *divideDepth > 0:
		result, err := analysis.DivideContext(ctx, g.ExportFEN(), *divideDepth, cfg.Analysis)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cfg.OutputFile, result.String())
		return err
	case *perftDepth > 0:
		_, err := fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", analysis.Perft(g, *perftDepth))
		return err
	}
	return writeFormat(cfg.OutputFile, g, *outputFormat)
}

// loadGame applies -fen, then -pgn, then -moves.
func loadGame(g *game.Game, stdin io.Reader) error {
	if *fenInput != "" {
		if err := g.ImportFEN(*fenInput); err != nil {
			return err
		}
	}

	if *pgnFile != "" {
		text, err := readPGN(*pgnFile, stdin)
		if err != nil {
			return err
		}
		if err := g.ImportPGN(text); err != nil {
			return err
		}
	}

	for _, uci := range parseMoveList(*movesList) {
		if _, err := g.MakeUCIMove(uci); err != nil {
			return err
		}
	}
	return nil
}

func readPGN(name string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name) //nolint:gosec // G304: CLI tool opens user-specified files
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

// parseMoveList splits a move list on spaces and commas.
func parseMoveList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// writeFormat writes the game in one of the -format styles.
func writeFormat(w io.Writer, g *game.Game, format string) error {
	var err error
	switch format {
	case "fen":
		_, err = fmt.Fprintln(w, g.ExportFEN())
	case "pgn":
		_, err = fmt.Fprint(w, g.ExportPGN())
	case "json":
		err = g.ExportJSON(w)
	case "state":
		state := g.State()
		if !state.IsGameOver() && g.IsInCheck(g.ActiveColour()) {
			_, err = fmt.Fprintf(w, "%s, %s in check\n", state, g.ActiveColour())
		} else {
			_, err = fmt.Fprintln(w, state)
		}
	case "legal":
		moves := g.LegalMoves()
		names := make([]string, len(moves))
		for i, m := range moves {
			names[i] = m.UCI()
		}
		sort.Strings(names)
		_, err = fmt.Fprintln(w, strings.Join(names, " "))
	default:
		return fmt.Errorf("unknown output format %q: %w", format, errors.ErrInvalidConfig)
	}
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessgame [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves from a position and reports the result.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  fen    Final position as FEN (default)\n")
	fmt.Fprintf(os.Stderr, "  pgn    Game as PGN\n")
	fmt.Fprintf(os.Stderr, "  json   Game as JSON with the position after each move\n")
	fmt.Fprintf(os.Stderr, "  state  Game state (in progress, checkmate, draw)\n")
	fmt.Fprintf(os.Stderr, "  legal  Legal moves in the final position\n")
	fmt.Fprintf(os.Stderr, "\nNetwork play (-listen, -connect):\n")
	fmt.Fprintf(os.Stderr, "  Type one UCI move per line; each position is printed as FEN.\n")
}
