// Package analysis counts move-generation trees (perft) for validating the
// rules engine, optionally splitting the work across a worker pool.
package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/errors"
	"github.com/lgbarn/chessgame-go/internal/game"
	"github.com/lgbarn/chessgame-go/internal/worker"
)

// Perft returns the number of leaf positions depth plies below the current
// position of g. The game itself is not modified.
func Perft(g *game.Game, depth int) uint64 {
	board := g.Board()
	return perft(&board, depth)
}

func perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := engine.LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := *board
		engine.ApplyMove(&next, m)
		nodes += perft(&next, depth-1)
	}
	return nodes
}

// MoveCount is the subtree size below one root move.
type MoveCount struct {
	Move  string // UCI notation
	Nodes uint64
}

// DivideResult is a perft split by root move.
type DivideResult struct {
	Moves []MoveCount // Sorted by move text
	Total uint64
}

// String formats the result one move per line followed by the total, the
// layout used by most engines' divide command.
func (r DivideResult) String() string {
	var sb strings.Builder
	for _, mc := range r.Moves {
		fmt.Fprintf(&sb, "%s: %d\n", mc.Move, mc.Nodes)
	}
	fmt.Fprintf(&sb, "\nNodes searched: %d\n", r.Total)
	return sb.String()
}

// Divide runs perft to depth from fen and reports the count below each
// root move. Every root move is analysed on its own game by the worker
// pool.
func Divide(fen string, depth, workers int) (DivideResult, error) {
	cfg := config.NewAnalysisConfig()
	cfg.Workers = workers
	return DivideWithConfig(fen, depth, cfg)
}

// DivideWithConfig is Divide with the pool sized by cfg.
func DivideWithConfig(fen string, depth int, cfg *config.AnalysisConfig) (DivideResult, error) {
	return DivideContext(context.Background(), fen, depth, cfg)
}

// DivideContext is DivideWithConfig that gives up when ctx ends. Root
// moves already being counted finish first.
func DivideContext(ctx context.Context, fen string, depth int, cfg *config.AnalysisConfig) (DivideResult, error) {
	if depth < 1 {
		return DivideResult{}, errors.Wrapf(errors.ErrInvalidConfig, "divide depth %d", depth)
	}
	root := game.New(game.WithID("divide"), game.WithConfig(quietConfig()))
	if err := root.ImportFEN(fen); err != nil {
		return DivideResult{}, err
	}

	var items []worker.WorkItem
	for i, m := range root.LegalMoves() {
		child := root.Clone()
		if _, err := child.MakeMove(m.From, m.To, m.Promotion); err != nil {
			return DivideResult{}, err
		}
		items = append(items, worker.WorkItem{
			Index: i,
			FEN:   child.ExportFEN(),
			Move:  m.UCI(),
			Depth: depth - 1,
		})
	}

	pool := worker.NewPool(processSubtree, worker.WithConfig(cfg))
	results, err := pool.ProcessAll(ctx, items)
	if err != nil {
		return DivideResult{}, err
	}
	var result DivideResult
	for _, r := range results {
		if r.Error != nil {
			return DivideResult{}, r.Error
		}
		result.Moves = append(result.Moves, MoveCount{Move: r.Move, Nodes: r.Nodes})
		result.Total += r.Nodes
	}
	sort.Slice(result.Moves, func(i, j int) bool {
		return result.Moves[i].Move < result.Moves[j].Move
	})
	return result, nil
}

// processSubtree counts one root move's subtree on a fresh game.
func processSubtree(item worker.WorkItem) worker.ProcessResult {
	g := game.New(game.WithID("divide-"+item.Move), game.WithConfig(quietConfig()))
	if err := g.ImportFEN(item.FEN); err != nil {
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Error: err}
	}
	return worker.ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Nodes: Perft(g, item.Depth),
	}
}

func quietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	return cfg
}
