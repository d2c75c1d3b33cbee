package engine

import "github.com/lgbarn/chessgame-go/internal/chess"

// LegalMoves returns every legal move for the side to move.
func LegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for i := range board.Squares {
		if p := board.Squares[i]; p.IsEmpty() || p.Colour != board.ToMove {
			continue
		}
		moves = append(moves, legalFrom(board, chess.PositionFromIndex(i))...)
	}
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on from. It is empty
// unless that piece belongs to the side to move.
func LegalMovesFrom(board *chess.Board, from chess.Position) []chess.Move {
	p := board.Get(from)
	if p.IsEmpty() || p.Colour != board.ToMove {
		return nil
	}
	return legalFrom(board, from)
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for i := range board.Squares {
		if p := board.Squares[i]; p.IsEmpty() || p.Colour != board.ToMove {
			continue
		}
		for _, m := range GenerateMoves(board, chess.PositionFromIndex(i)) {
			if !leavesKingInCheck(board, m) {
				return true
			}
		}
	}
	return false
}

func legalFrom(board *chess.Board, from chess.Position) []chess.Move {
	candidates := GenerateMoves(board, from)
	legal := candidates[:0]
	for _, m := range candidates {
		if !leavesKingInCheck(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// leavesKingInCheck plays m on the cells it touches, tests the mover's
// king and puts the cells back. The rook of a castling move is not moved;
// the king's path was already checked during generation.
func leavesKingInCheck(board *chess.Board, m chess.Move) bool {
	fromPiece := board.Get(m.From)
	toPiece := board.Get(m.To)

	var victimSq chess.Position
	var victim chess.Piece
	if m.IsEnPassant {
		victimSq = enPassantVictim(m.From, m.To)
		victim = board.Get(victimSq)
		board.Clear(victimSq)
	}
	board.Clear(m.From)
	board.Set(m.To, fromPiece)

	inCheck := IsInCheck(board, m.Piece.Colour)

	board.Set(m.From, fromPiece)
	board.Set(m.To, toPiece)
	if m.IsEnPassant {
		board.Set(victimSq, victim)
	}
	return inCheck
}

// FindLegalMove looks up the legal move from from to to. For a pawn
// reaching the last rank the promotion choice selects among the four
// variants, with Empty meaning Queen; for any other move it is ignored.
// The returned move carries the capture and special-move flags.
func FindLegalMove(board *chess.Board, from, to chess.Position, promotion chess.PieceType) (chess.Move, bool) {
	if promotion == chess.Empty {
		promotion = chess.Queen
	}
	for _, m := range LegalMovesFrom(board, from) {
		if m.To != to {
			continue
		}
		if !m.IsPromotion() || m.Promotion == promotion {
			return m, true
		}
	}
	return chess.Move{}, false
}
