// Package game provides a single chess game: the current position, the
// moves played to reach it and a snapshot per ply for undo. A Game is not
// safe for concurrent use; callers serialize access.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/engine"
	"github.com/lgbarn/chessgame-go/internal/errors"
)

// Game is one game of chess.
type Game struct {
	id  string
	cfg *config.Config

	// snapshots[0] is the starting position and the last entry is the
	// current one; there is always exactly one more snapshot than moves.
	snapshots []chess.Board
	moves     []chess.Move
}

// Option configures a Game.
type Option func(*Game)

// WithID sets the game id instead of generating one.
func WithID(id string) Option {
	return func(g *Game) {
		g.id = id
	}
}

// WithConfig sets the configuration used for logging and PGN export.
func WithConfig(cfg *config.Config) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// New creates a game in the standard initial position.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if g.id == "" {
		g.id = uuid.NewString()
	}
	if g.cfg == nil {
		g.cfg = config.NewConfig()
	}
	g.Reset()
	return g
}

// ID returns the game id.
func (g *Game) ID() string {
	return g.id
}

// Reset returns to the standard initial position with no history.
func (g *Game) Reset() {
	g.load(*chess.NewInitialBoard())
}

// load makes board the starting position and clears the history.
func (g *Game) load(board chess.Board) {
	g.snapshots = append(g.snapshots[:0], board)
	g.moves = g.moves[:0]
}

func (g *Game) current() *chess.Board {
	return &g.snapshots[len(g.snapshots)-1]
}

// SetupPosition loads an arbitrary position. The move history is cleared.
// On error the game is unchanged.
func (g *Game) SetupPosition(setup chess.Setup) error {
	board, err := setup.Apply()
	if err != nil {
		return &errors.GameError{Err: err, GameID: g.id}
	}
	g.load(*board)
	return nil
}

// ImportFEN loads the position described by fen, clearing the history.
// On error the game is unchanged.
func (g *Game) ImportFEN(fen string) error {
	board, err := engine.ParseFEN(fen)
	if err != nil {
		return &errors.GameError{Err: err, GameID: g.id}
	}
	g.load(*board)
	g.cfg.Logf(2, "game %s: loaded %s", g.id, fen)
	return nil
}

// ExportFEN returns the current position as FEN.
func (g *Game) ExportFEN() string {
	return engine.FormatFEN(g.current())
}

// PieceAt returns the piece on pos. The boolean is false for an empty or
// off-board square.
func (g *Game) PieceAt(pos chess.Position) (chess.Piece, bool) {
	p := g.current().Get(pos)
	return p, !p.IsEmpty()
}

// AllPieces returns every occupied square.
func (g *Game) AllPieces() map[chess.Position]chess.Piece {
	return g.current().Pieces()
}

// Board returns a copy of the current position.
func (g *Game) Board() chess.Board {
	return *g.current()
}

// ActiveColour returns the side to move.
func (g *Game) ActiveColour() chess.Colour {
	return g.current().ToMove
}

// MakeMove plays from-to for the side to move. The promotion piece is only
// consulted when a pawn reaches the last rank, where Empty means Queen.
func (g *Game) MakeMove(from, to chess.Position, promotion chess.PieceType) (chess.Move, error) {
	m, ok := engine.FindLegalMove(g.current(), from, to, promotion)
	if !ok {
		return chess.Move{}, &errors.GameError{
			Err:      errors.ErrIllegalMove,
			GameID:   g.id,
			PlyNum:   len(g.moves) + 1,
			MoveText: from.String() + to.String(),
		}
	}
	return g.play(m), nil
}

// MakeUCIMove plays a move given in coordinate notation such as "e2e4" or
// "e7e8n".
func (g *Game) MakeUCIMove(uci string) (chess.Move, error) {
	from, to, promotion, ok := chess.ParseUCI(uci)
	if !ok {
		return chess.Move{}, &errors.GameError{
			Err:      errors.ErrIllegalMove,
			GameID:   g.id,
			PlyNum:   len(g.moves) + 1,
			MoveText: uci,
		}
	}
	return g.MakeMove(from, to, promotion)
}

// play applies a legal move on a fresh snapshot.
func (g *Game) play(m chess.Move) chess.Move {
	next := *g.current()
	played := engine.ApplyMove(&next, m)
	g.snapshots = append(g.snapshots, next)
	g.moves = append(g.moves, played)
	g.cfg.Logf(2, "game %s: ply %d %s", g.id, len(g.moves), played.Algebraic())
	return played
}

// LegalMoves returns every legal move for the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return engine.LegalMoves(g.current())
}

// LegalMovesFrom returns the legal moves of the piece on from. It is empty
// for an empty square or a piece of the side not to move.
func (g *Game) LegalMovesFrom(from chess.Position) []chess.Move {
	return engine.LegalMovesFrom(g.current(), from)
}

// IsInCheck reports whether colour's king is attacked.
func (g *Game) IsInCheck(colour chess.Colour) bool {
	return engine.IsInCheck(g.current(), colour)
}

// State classifies the current position.
func (g *Game) State() chess.GameState {
	return engine.Classify(g.current())
}

// MoveHistory returns a copy of the moves played.
func (g *Game) MoveHistory() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// UndoCount returns the number of moves that can be taken back.
func (g *Game) UndoCount() int {
	return len(g.moves)
}

// UndoLastMove takes back the most recent move.
func (g *Game) UndoLastMove() error {
	if len(g.moves) == 0 {
		return &errors.GameError{Err: errors.ErrNothingToUndo, GameID: g.id}
	}
	return g.UndoToMove(len(g.moves) - 1)
}

// UndoToMove truncates the game to its first n moves. n must lie in
// [0, UndoCount()].
func (g *Game) UndoToMove(n int) error {
	if n < 0 || n > len(g.moves) {
		return &errors.GameError{
			Err:    errors.Wrapf(errors.ErrInvalidMoveNumber, "undo to %d of %d", n, len(g.moves)),
			GameID: g.id,
		}
	}
	g.snapshots = g.snapshots[:n+1]
	g.moves = g.moves[:n]
	return nil
}

// Clone returns an independent copy of the game, history included.
func (g *Game) Clone() *Game {
	return &Game{
		id:        g.id,
		cfg:       g.cfg,
		snapshots: append([]chess.Board(nil), g.snapshots...),
		moves:     append([]chess.Move(nil), g.moves...),
	}
}
