package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/engine"
)

// Well-known perft positions.
const (
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// MustBoard parses fen and calls t.Fatal on failure.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("invalid test FEN %q: %v", fen, err)
	}
	return board
}

// Sq parses a square name such as "e4" and calls t.Fatal on failure.
func Sq(t testing.TB, name string) chess.Position {
	t.Helper()
	pos, err := chess.ParsePosition(name)
	if err != nil {
		t.Fatalf("invalid test square %q: %v", name, err)
	}
	return pos
}

// UCIMoves returns the moves in UCI notation, sorted.
func UCIMoves(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	sort.Strings(out)
	return out
}
