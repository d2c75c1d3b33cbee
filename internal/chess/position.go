package chess

import (
	"fmt"

	"github.com/lgbarn/chessgame-go/internal/errors"
)

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Position is a square on the board. File 0 is the a-file, rank 0 is the
// first rank. Positions outside 0..7 can be represented but are not valid.
type Position struct {
	File int
	Rank int
}

// Sq builds a position without validation. Intended for literals in code
// and tests where the coordinates are known to be on the board.
func Sq(file, rank int) Position {
	return Position{File: file, Rank: rank}
}

// NewPosition returns the position at file/rank or ErrInvalidPosition.
func NewPosition(file, rank int) (Position, error) {
	p := Position{File: file, Rank: rank}
	if !p.IsValid() {
		return Position{}, fmt.Errorf("file %d rank %d: %w", file, rank, errors.ErrInvalidPosition)
	}
	return p, nil
}

// ParsePosition parses algebraic notation such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidPosition)
	}
	return Position{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, nil
}

// MustParsePosition is ParsePosition for known-good literals.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// PositionFromIndex converts a 0..63 index back to a position.
func PositionFromIndex(i int) Position {
	return Position{File: i % BoardSize, Rank: i / BoardSize}
}

// IsValid reports whether the position lies on the board.
func (p Position) IsValid() bool {
	return p.File >= 0 && p.File < BoardSize && p.Rank >= 0 && p.Rank < BoardSize
}

// Index returns rank*8+file.
func (p Position) Index() int {
	return p.Rank*BoardSize + p.File
}

// Offset returns the position shifted by df files and dr ranks.
// The result may be off the board.
func (p Position) Offset(df, dr int) Position {
	return Position{File: p.File + df, Rank: p.Rank + dr}
}

// FileLetter returns 'a'..'h'.
func (p Position) FileLetter() byte {
	return byte('a' + p.File)
}

// RankDigit returns '1'..'8'.
func (p Position) RankDigit() byte {
	return byte('1' + p.Rank)
}

// IsLight reports whether the square is a light square.
func (p Position) IsLight() bool {
	return (p.File+p.Rank)%2 == 1
}

// String returns algebraic notation, or "??" when off the board.
func (p Position) String() string {
	if !p.IsValid() {
		return "??"
	}
	return string([]byte{p.FileLetter(), p.RankDigit()})
}
