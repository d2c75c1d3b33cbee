package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

// Files used by castling.
const (
	kingFile          = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
)

// castlingMoves returns the castling candidates for the king on from.
// The king must be on its home square and not attacked; the squares
// between king and rook must be empty and the squares the king crosses
// or lands on must not be attacked. The rook's own square may be attacked.
//
// A castling right alone is not enough: the king must stand on its home
// square and the side's own rook on the corner. Rights held in a FEN or
// Setup with either piece elsewhere produce no castling move.
func castlingMoves(board *chess.Board, from chess.Position, king chess.Piece) []chess.Move {
	colour := king.Colour
	rank := colour.HomeRank()
	if from != chess.Sq(kingFile, rank) {
		return nil
	}
	enemy := colour.Opposite()
	if IsSquareAttacked(board, from, enemy) {
		return nil
	}

	rook := chess.NewPiece(colour, chess.Rook)
	var moves []chess.Move

	if board.Castling.Has(chess.KingsideRight(colour)) &&
		board.Get(chess.Sq(kingsideRookFile, rank)) == rook &&
		emptyFiles(board, rank, 5, 6) &&
		!attackedFiles(board, rank, enemy, 5, 6) {
		moves = append(moves, chess.Move{From: from, To: chess.Sq(6, rank), Piece: king, IsCastling: true})
	}

	if board.Castling.Has(chess.QueensideRight(colour)) &&
		board.Get(chess.Sq(queensideRookFile, rank)) == rook &&
		emptyFiles(board, rank, 3, 2, 1) &&
		!attackedFiles(board, rank, enemy, 3, 2) {
		moves = append(moves, chess.Move{From: from, To: chess.Sq(2, rank), Piece: king, IsCastling: true})
	}

	return moves
}

func emptyFiles(board *chess.Board, rank int, files ...int) bool {
	for _, f := range files {
		if !board.IsEmpty(chess.Sq(f, rank)) {
			return false
		}
	}
	return true
}

func attackedFiles(board *chess.Board, rank int, by chess.Colour, files ...int) bool {
	for _, f := range files {
		if IsSquareAttacked(board, chess.Sq(f, rank), by) {
			return true
		}
	}
	return false
}

// castleRook moves the rook that accompanies a castling king.
func castleRook(board *chess.Board, m chess.Move) {
	rank := m.From.Rank
	rookFrom, rookTo := chess.Sq(queensideRookFile, rank), chess.Sq(3, rank)
	if m.IsKingside() {
		rookFrom, rookTo = chess.Sq(kingsideRookFile, rank), chess.Sq(5, rank)
	}
	rook := board.Get(rookFrom)
	board.Clear(rookFrom)
	board.Set(rookTo, rook)
}

// cornerRight returns the castling right tied to a rook's home corner.
func cornerRight(pos chess.Position) chess.CastlingRights {
	switch pos {
	case chess.Sq(kingsideRookFile, 0):
		return chess.WhiteKingside
	case chess.Sq(queensideRookFile, 0):
		return chess.WhiteQueenside
	case chess.Sq(kingsideRookFile, 7):
		return chess.BlackKingside
	case chess.Sq(queensideRookFile, 7):
		return chess.BlackQueenside
	}
	return chess.NoCastling
}

// updateCastlingRights removes rights when a king moves or a rook leaves
// its home corner. Capturing a rook on its home corner also removes that
// right, so exported FENs drop it straight after the capture rather than
// keeping a right that can no longer be used.
func updateCastlingRights(board *chess.Board, m chess.Move) {
	switch m.Piece.Type {
	case chess.King:
		board.Castling = board.Castling.Without(chess.KingsideRight(m.Piece.Colour) | chess.QueensideRight(m.Piece.Colour))
	case chess.Rook:
		board.Castling = board.Castling.Without(cornerRight(m.From))
	}
	if m.Captured.Type == chess.Rook {
		board.Castling = board.Castling.Without(cornerRight(m.To))
	}
}
