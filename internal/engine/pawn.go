package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

// pawnMoves generates pushes, double pushes, captures and en passant for
// the pawn on from. Moves onto the last rank fan out into four promotions.
func pawnMoves(board *chess.Board, from chess.Position, pawn chess.Piece) []chess.Move {
	colour := pawn.Colour
	dir := colour.PawnDirection()
	startRank := 1
	if colour == chess.Black {
		startRank = 6
	}

	var moves []chess.Move

	one := from.Offset(0, dir)
	if one.IsValid() && board.IsEmpty(one) {
		moves = appendPawnMove(moves, chess.Move{From: from, To: one, Piece: pawn})
		two := from.Offset(0, 2*dir)
		if from.Rank == startRank && board.IsEmpty(two) {
			moves = append(moves, chess.Move{From: from, To: two, Piece: pawn})
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.IsValid() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() {
			if target.Colour != colour {
				moves = appendPawnMove(moves, chess.Move{From: from, To: to, Piece: pawn, Captured: target})
			}
			continue
		}
		if ep, ok := board.EnPassantTarget(); ok && ep == to {
			victim := board.Get(enPassantVictim(from, to))
			if victim.Type == chess.Pawn && victim.Colour != colour {
				moves = append(moves, chess.Move{From: from, To: to, Piece: pawn, Captured: victim, IsEnPassant: true})
			}
		}
	}

	return moves
}

// appendPawnMove appends m, or its four promotion variants when m reaches
// the last rank.
func appendPawnMove(moves []chess.Move, m chess.Move) []chess.Move {
	if m.To.Rank != m.Piece.Colour.Opposite().HomeRank() {
		return append(moves, m)
	}
	for _, pt := range chess.PromotionTypes {
		p := m
		p.Promotion = pt
		moves = append(moves, p)
	}
	return moves
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture from from to to.
func enPassantVictim(from, to chess.Position) chess.Position {
	return chess.Sq(to.File, from.Rank)
}
