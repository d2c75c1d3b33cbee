package chess

import "strings"

// Move is a single executed or candidate move.
type Move struct {
	From  Position
	To    Position
	Piece Piece // The piece that moved, before any promotion
	// Captured is NoPiece unless a piece was removed. For en passant
	// it is the pawn taken from beside the destination.
	Captured    Piece
	IsEnPassant bool
	IsCastling  bool
	Promotion   PieceType // Empty unless a pawn reached the last rank
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// IsKingside reports whether a castling move goes towards the h-file.
func (m Move) IsKingside() bool {
	return m.IsCastling && m.To.File > m.From.File
}

// Algebraic returns long algebraic notation with a piece prefix:
// e2e4, Ng1f3, e4xd5, a7a8=Q, O-O, O-O-O.
func (m Move) Algebraic() string {
	if m.IsCastling {
		if m.IsKingside() {
			return "O-O"
		}
		return "O-O-O"
	}
	var sb strings.Builder
	if l := m.Piece.Type.Letter(); l != 0 {
		sb.WriteByte(l)
	}
	sb.WriteString(m.From.String())
	if m.IsCapture() || m.IsEnPassant {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}
	return sb.String()
}

// UCI returns coordinate notation: e2e4, e1g1, a7a8q.
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// String returns the algebraic form.
func (m Move) String() string {
	return m.Algebraic()
}

// ParseUCI splits coordinate notation into its squares and promotion type.
// The boolean is false for malformed input.
func ParseUCI(s string) (from, to Position, promotion PieceType, ok bool) {
	if len(s) != 4 && len(s) != 5 {
		return Position{}, Position{}, Empty, false
	}
	var err error
	if from, err = ParsePosition(s[0:2]); err != nil {
		return Position{}, Position{}, Empty, false
	}
	if to, err = ParsePosition(s[2:4]); err != nil {
		return Position{}, Position{}, Empty, false
	}
	if len(s) == 5 {
		switch s[4] {
		case 'q', 'Q':
			promotion = Queen
		case 'r', 'R':
			promotion = Rook
		case 'b', 'B':
			promotion = Bishop
		case 'n', 'N':
			promotion = Knight
		default:
			return Position{}, Position{}, Empty, false
		}
	}
	return from, to, promotion, true
}
