package engine

import (
	"github.com/lgbarn/chessgame-go/internal/chess"
)

// FiftyMoveHalfmoves is the halfmove clock value at which the fifty-move
// rule applies.
const FiftyMoveHalfmoves = 100

// Classify returns the state of the position. The order matters: a side
// without legal moves is mated or stalemated even when the fifty-move
// count or the material would also declare a draw.
//
// Repetition is not tracked, so DrawByThreefoldRepetition is never returned.
func Classify(board *chess.Board) chess.GameState {
	if !HasLegalMoves(board) {
		if !IsInCheck(board, board.ToMove) {
			return chess.Stalemate
		}
		if board.ToMove == chess.White {
			return chess.CheckmateBlackWins
		}
		return chess.CheckmateWhiteWins
	}
	if board.HalfmoveClock >= FiftyMoveHalfmoves {
		return chess.DrawByFiftyMoveRule
	}
	if HasInsufficientMaterial(board) {
		return chess.DrawByInsufficientMaterial
	}
	return chess.InProgress
}

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the side to move is stalemated.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// HasInsufficientMaterial returns true for king against king, or king and
// a single bishop or knight against a lone king.
func HasInsufficientMaterial(board *chess.Board) bool {
	var others []chess.PieceType
	for _, p := range board.Squares {
		if p.IsEmpty() || p.Type == chess.King {
			continue
		}
		others = append(others, p.Type)
		if len(others) > 1 {
			return false
		}
	}
	return len(others) == 0 || others[0].IsMinor()
}
