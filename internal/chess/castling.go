package chess

import (
	"fmt"

	"github.com/lgbarn/chessgame-go/internal/errors"
)

// CastlingRights is the set of castling options still available.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

var castlingLetters = [...]struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// KingsideRight returns the kingside right of the colour.
func KingsideRight(c Colour) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside right of the colour.
func QueensideRight(c Colour) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Has reports whether all rights in r are present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns the rights with r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field: a subset of "KQkq" in that order,
// or "-" when no rights remain.
func (c CastlingRights) String() string {
	buf := make([]byte, 0, 4)
	for _, cl := range castlingLetters {
		if c.Has(cl.right) {
			buf = append(buf, cl.letter)
		}
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// ParseCastlingRights parses a FEN castling field. Accepts "-" or a
// non-empty subset of "KQkq" without repeats.
func ParseCastlingRights(s string) (CastlingRights, error) {
	if s == "-" {
		return NoCastling, nil
	}
	if s == "" {
		return NoCastling, fmt.Errorf("empty castling field: %w", errors.ErrInvalidPosition)
	}
	var rights CastlingRights
	for i := 0; i < len(s); i++ {
		found := false
		for _, cl := range castlingLetters {
			if s[i] == cl.letter {
				if rights.Has(cl.right) {
					return NoCastling, fmt.Errorf("repeated castling letter %q: %w", s[i], errors.ErrInvalidPosition)
				}
				rights |= cl.right
				found = true
				break
			}
		}
		if !found {
			return NoCastling, fmt.Errorf("castling letter %q: %w", s[i], errors.ErrInvalidPosition)
		}
	}
	return rights, nil
}
