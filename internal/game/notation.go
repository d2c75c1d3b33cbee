package game

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/errors"
	"github.com/lgbarn/chessgame-go/internal/pgn"
)

// ExportPGN returns the game as PGN using the configured header values.
// Games that did not begin from the initial position carry SetUp and FEN
// tags.
func (g *Game) ExportPGN() string {
	return pgn.Format(g.cfg.PGN, g.record())
}

// ExportJSON writes the game as JSON with the position after every move.
func (g *Game) ExportJSON(w io.Writer) error {
	return pgn.WriteJSON(w, g.cfg.PGN, g.record())
}

func (g *Game) record() pgn.Record {
	start := g.snapshots[0]
	return pgn.Record{
		Start:  &start,
		Moves:  g.moves,
		Result: g.State().Result(),
	}
}

// ImportPGN replays the movetext of a single PGN game. A FEN tag sets the
// starting position. Moves are matched on destination, piece and promotion
// with file and rank hints breaking ties; this covers ordinary SAN and long
// algebraic text but not every ambiguous form. On any failure the game is
// reset to the initial position.
func (g *Game) ImportPGN(text string) error {
	tags, tokens := pgn.Tokenize(text)

	g.Reset()
	if fen, ok := tags[chess.FENTag]; ok {
		board, err := engine.ParseFEN(fen)
		if err != nil {
			return g.failImport(fmt.Errorf("%w: %w", errors.ErrInvalidPGN, err), 0, "")
		}
		g.load(*board)
	}

	for i, text := range tokens {
		tok, err := pgn.ParseToken(text)
		if err != nil {
			return g.failImport(err, i+1, text)
		}
		m, ok := pgn.Resolve(tok, engine.LegalMoves(g.current()))
		if !ok {
			return g.failImport(errors.ErrInvalidPGN, i+1, text)
		}
		g.play(m)
	}

	g.cfg.Logf(2, "game %s: imported %d moves", g.id, len(tokens))
	return nil
}

// failImport resets the game and reports err, which must wrap ErrInvalidPGN.
func (g *Game) failImport(err error, ply int, moveText string) error {
	g.Reset()
	gerr := &errors.GameError{Err: err, GameID: g.id, PlyNum: ply, MoveText: moveText}
	g.cfg.Logf(1, "%v", gerr)
	return gerr
}
