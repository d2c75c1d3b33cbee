// Package chess provides the core chess types: colours, pieces, squares,
// moves, castling rights and the board itself.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// IsValid reports whether c is White or Black.
func (c Colour) IsValid() bool {
	return c == White || c == Black
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the colour (0 or 7).
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PieceType represents a kind of chess piece.
type PieceType int

const (
	Empty PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// IsValid reports whether p names a real piece, Pawn through King.
func (p PieceType) IsValid() bool {
	return p >= Pawn && p <= King
}

// PromotionTypes lists the promotion choices in generation order.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter of a piece type.
// Pawns and empty squares return 0.
func (p PieceType) Letter() byte {
	letters := []byte{0, 0, 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return 0
}

// PieceTypeFromLetter converts an uppercase SAN letter (N, B, R, Q, K) to a
// piece type. Anything else is a pawn.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return Pawn
}

// IsMinor reports whether the piece type is a bishop or knight.
func (p PieceType) IsMinor() bool {
	return p == Bishop || p == Knight
}

// Piece is an immutable coloured piece. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// NewPiece creates a coloured piece.
func NewPiece(colour Colour, pieceType PieceType) Piece {
	if pieceType == Empty {
		return NoPiece
	}
	return Piece{Type: pieceType, Colour: colour}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return NewPiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return NewPiece(Black, pieceType)
}

// IsEmpty reports whether this is the empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	var c byte
	switch p.Type {
	case Pawn:
		c = 'P'
	case Empty:
		return 0
	default:
		c = p.Type.Letter()
	}
	if p.Colour == Black {
		c += 'a' - 'A'
	}
	return c
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// PieceFromFENLetter converts a FEN letter to a piece.
// The boolean is false for characters that are not piece letters.
func PieceFromFENLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var pt PieceType
	switch c {
	case 'P':
		pt = Pawn
	case 'N':
		pt = Knight
	case 'B':
		pt = Bishop
	case 'R':
		pt = Rook
	case 'Q':
		pt = Queen
	case 'K':
		pt = King
	default:
		return NoPiece, false
	}
	return NewPiece(colour, pt), true
}

// GameState is the classification of a position.
type GameState int

const (
	InProgress GameState = iota
	CheckmateWhiteWins
	CheckmateBlackWins
	Stalemate
	DrawByInsufficientMaterial
	DrawByFiftyMoveRule
	// DrawByThreefoldRepetition is never produced by the classifier;
	// repetition is not tracked.
	DrawByThreefoldRepetition
)

// String returns the name of the state.
func (s GameState) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case CheckmateWhiteWins:
		return "checkmate, White wins"
	case CheckmateBlackWins:
		return "checkmate, Black wins"
	case Stalemate:
		return "stalemate"
	case DrawByInsufficientMaterial:
		return "draw by insufficient material"
	case DrawByFiftyMoveRule:
		return "draw by fifty-move rule"
	case DrawByThreefoldRepetition:
		return "draw by threefold repetition"
	}
	return "unknown"
}

// IsGameOver reports whether the state ends the game.
func (s GameState) IsGameOver() bool {
	return s != InProgress
}

// Result returns the PGN result token for the state.
func (s GameState) Result() string {
	switch s {
	case CheckmateWhiteWins:
		return "1-0"
	case CheckmateBlackWins:
		return "0-1"
	case Stalemate, DrawByInsufficientMaterial, DrawByFiftyMoveRule, DrawByThreefoldRepetition:
		return "1/2-1/2"
	}
	return "*"
}
