package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

// GenerateMoves returns the pseudo-legal moves of the piece on from.
// Moves that leave the mover's own king attacked are included; an empty
// square yields nil.
func GenerateMoves(board *chess.Board, from chess.Position) []chess.Move {
	piece := board.Get(from)
	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(board, from, piece)
	case chess.Knight:
		return stepMoves(board, from, piece, knightOffsets[:])
	case chess.Bishop:
		return slidingMoves(board, from, piece, diagonalDirs[:])
	case chess.Rook:
		return slidingMoves(board, from, piece, straightDirs[:])
	case chess.Queen:
		moves := slidingMoves(board, from, piece, diagonalDirs[:])
		return append(moves, slidingMoves(board, from, piece, straightDirs[:])...)
	case chess.King:
		moves := stepMoves(board, from, piece, kingOffsets[:])
		return append(moves, castlingMoves(board, from, piece)...)
	}
	return nil
}

// stepMoves handles the single-step movers (knight and king).
func stepMoves(board *chess.Board, from chess.Position, piece chess.Piece, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, o := range offsets {
		to := from.Offset(o[0], o[1])
		if !to.IsValid() {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Colour != piece.Colour {
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
		}
	}
	return moves
}

// slidingMoves walks each ray until the edge, stopping after the first
// enemy piece and before the first friendly one.
func slidingMoves(board *chess.Board, from chess.Position, piece chess.Piece, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, d := range dirs {
		for to := from.Offset(d[0], d[1]); to.IsValid(); to = to.Offset(d[0], d[1]) {
			target := board.Get(to)
			if target.IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece})
				continue
			}
			if target.Colour != piece.Colour {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
			}
			break // Blocked
		}
	}
	return moves
}
