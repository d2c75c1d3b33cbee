package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

// ApplyMove executes a move already known to be legal and returns the
// move as played: Captured filled in from the board and Promotion
// resolved (Queen when a pawn reaches the last rank with no choice).
func ApplyMove(board *chess.Board, m chess.Move) chess.Move {
	colour := m.Piece.Colour

	if m.IsEnPassant {
		victimSq := enPassantVictim(m.From, m.To)
		m.Captured = board.Get(victimSq)
		board.Clear(victimSq)
	} else {
		m.Captured = board.Get(m.To)
	}

	placed := m.Piece
	if m.Piece.Type == chess.Pawn && m.To.Rank == colour.Opposite().HomeRank() {
		if m.Promotion == chess.Empty {
			m.Promotion = chess.Queen
		}
		placed = chess.NewPiece(colour, m.Promotion)
	} else {
		m.Promotion = chess.Empty
	}
	board.Clear(m.From)
	board.Set(m.To, placed)

	if m.IsCastling {
		castleRook(board, m)
	}

	updateCastlingRights(board, m)

	if m.Piece.Type == chess.Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		board.SetEnPassant(chess.Sq(m.From.File, (m.From.Rank+m.To.Rank)/2), true)
	} else {
		board.SetEnPassant(chess.Position{}, false)
	}

	if m.Piece.Type == chess.Pawn || m.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return m
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
