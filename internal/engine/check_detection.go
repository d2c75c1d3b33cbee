package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is attacked.
// A side without a king is treated as in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return true
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
// Pawns attack diagonally only and kings attack adjacent squares only.
func IsSquareAttacked(board *chess.Board, sq chess.Position, byColour chess.Colour) bool {
	// A pawn of byColour attacks sq from one rank behind it.
	pawn := chess.NewPiece(byColour, chess.Pawn)
	back := -byColour.PawnDirection()
	if board.Get(sq.Offset(-1, back)) == pawn || board.Get(sq.Offset(1, back)) == pawn {
		return true
	}

	knight := chess.NewPiece(byColour, chess.Knight)
	for _, o := range knightOffsets {
		if board.Get(sq.Offset(o[0], o[1])) == knight {
			return true
		}
	}

	king := chess.NewPiece(byColour, chess.King)
	for _, o := range kingOffsets {
		if board.Get(sq.Offset(o[0], o[1])) == king {
			return true
		}
	}

	queen := chess.NewPiece(byColour, chess.Queen)
	if rayAttacked(board, sq, diagonalDirs[:], chess.NewPiece(byColour, chess.Bishop), queen) {
		return true
	}
	return rayAttacked(board, sq, straightDirs[:], chess.NewPiece(byColour, chess.Rook), queen)
}

// rayAttacked walks each direction from sq and reports whether the first
// piece met is one of the two given sliders.
func rayAttacked(board *chess.Board, sq chess.Position, dirs [][2]int, slider, queen chess.Piece) bool {
	for _, d := range dirs {
		for pos := sq.Offset(d[0], d[1]); pos.IsValid(); pos = pos.Offset(d[0], d[1]) {
			piece := board.Get(pos)
			if piece.IsEmpty() {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break // Blocked
		}
	}
	return false
}
