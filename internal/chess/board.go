package chess

import (
	"fmt"

	"github.com/lgbarn/chessgame-go/internal/errors"
)

// Board holds the full position: piece placement plus side to move,
// castling rights, en passant target and move counters.
//
// Board is a plain value. Assigning it copies every square, which is
// what the game history relies on for its snapshots.
type Board struct {
	// Squares indexed by rank*8+file.
	Squares [BoardSize * BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// When HasEnPassant is set, EnPassant is the square a pawn just skipped.
	HasEnPassant bool
	EnPassant    Position

	// Half-moves since the last pawn move or capture.
	HalfmoveClock int

	// The current full move number, starting at 1.
	MoveNumber int
}

// NewBoard creates an empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// NewInitialBoard creates a board in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(Sq(file, 0), W(backRank[file]))
		b.Set(Sq(file, 1), W(Pawn))
		b.Set(Sq(file, 6), B(Pawn))
		b.Set(Sq(file, 7), B(backRank[file]))
	}

	b.ToMove = White
	b.Castling = AllCastling
	b.MoveNumber = 1
}

// Get returns the piece at pos, or NoPiece when pos is off the board.
func (b *Board) Get(pos Position) Piece {
	if !pos.IsValid() {
		return NoPiece
	}
	return b.Squares[pos.Index()]
}

// Set places a piece at pos. Off-board positions are ignored.
func (b *Board) Set(pos Position, piece Piece) {
	if pos.IsValid() {
		if piece.Type == Empty {
			piece = NoPiece
		}
		b.Squares[pos.Index()] = piece
	}
}

// Clear empties pos.
func (b *Board) Clear(pos Position) {
	b.Set(pos, NoPiece)
}

// IsEmpty reports whether pos holds no piece.
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos).IsEmpty()
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// EnPassantTarget returns the en passant square, if any.
func (b *Board) EnPassantTarget() (Position, bool) {
	return b.EnPassant, b.HasEnPassant
}

// SetEnPassant sets or clears the en passant target.
func (b *Board) SetEnPassant(pos Position, ok bool) {
	if !ok {
		b.HasEnPassant = false
		b.EnPassant = Position{}
		return
	}
	b.HasEnPassant = true
	b.EnPassant = pos
}

// FindKing returns the square of the colour's king. The boolean is false
// when there is no such king.
func (b *Board) FindKing(colour Colour) (Position, bool) {
	king := NewPiece(colour, King)
	for i, p := range b.Squares {
		if p == king {
			return PositionFromIndex(i), true
		}
	}
	return Position{}, false
}

// Pieces returns every occupied square and its piece.
func (b *Board) Pieces() map[Position]Piece {
	out := make(map[Position]Piece)
	for i, p := range b.Squares {
		if !p.IsEmpty() {
			out[PositionFromIndex(i)] = p
		}
	}
	return out
}

// PieceCount returns the number of occupied squares.
func (b *Board) PieceCount() int {
	n := 0
	for _, p := range b.Squares {
		if !p.IsEmpty() {
			n++
		}
	}
	return n
}

// Setup describes an arbitrary position to load onto a board.
type Setup struct {
	Pieces         map[Position]Piece
	ActiveColour   Colour
	Castling       string // FEN castling field, "-" or a subset of KQkq
	EnPassant      *Position
	HalfmoveClock  int
	FullmoveNumber int
}

// Apply builds a board from the setup. The receiver is not modified.
func (s Setup) Apply() (*Board, error) {
	rights, err := ParseCastlingRights(s.Castling)
	if err != nil {
		return nil, err
	}
	if s.HalfmoveClock < 0 || s.FullmoveNumber < 1 {
		return nil, errInvalidCounters(s.HalfmoveClock, s.FullmoveNumber)
	}
	if !s.ActiveColour.IsValid() {
		return nil, fmt.Errorf("active colour %d: %w", int(s.ActiveColour), errors.ErrInvalidPosition)
	}

	b := NewBoard()
	for pos, piece := range s.Pieces {
		if !pos.IsValid() {
			return nil, errOffBoard(pos)
		}
		if piece.IsEmpty() {
			continue
		}
		if !piece.Type.IsValid() || !piece.Colour.IsValid() {
			return nil, fmt.Errorf("piece type %d colour %d on %s: %w",
				int(piece.Type), int(piece.Colour), pos, errors.ErrInvalidPosition)
		}
		b.Set(pos, piece)
	}
	b.ToMove = s.ActiveColour
	b.Castling = rights
	if s.EnPassant != nil {
		if !s.EnPassant.IsValid() {
			return nil, errOffBoard(*s.EnPassant)
		}
		b.SetEnPassant(*s.EnPassant, true)
	}
	b.HalfmoveClock = s.HalfmoveClock
	b.MoveNumber = s.FullmoveNumber
	return b, nil
}

func errInvalidCounters(halfmove, fullmove int) error {
	return fmt.Errorf("halfmove %d fullmove %d: %w", halfmove, fullmove, errors.ErrInvalidPosition)
}

func errOffBoard(pos Position) error {
	return fmt.Errorf("file %d rank %d is off the board: %w", pos.File, pos.Rank, errors.ErrInvalidPosition)
}
