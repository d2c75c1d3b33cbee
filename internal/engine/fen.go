// Package engine implements the chess rules: move generation, attack
// detection, legality, move execution, position classification and the
// FEN codec.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a new board from a FEN string. The first four fields
// are required; missing clocks default to 0 and 1. Nothing is returned
// unless every field is well formed.
func ParseFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fenError("field count", "4 to 6 fields", strconv.Itoa(len(parts)))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4:]); err != nil {
		return nil, err
	}

	return board, nil
}

// MustParseFEN is ParseFEN for known-good literals.
func MustParseFEN(fen string) *chess.Board {
	board, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

func fenError(field, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: field, Expected: expected, Got: got}
}

// parsePiecePositions parses the piece placement field. Each of the eight
// ranks must cover exactly eight files.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("piece placement", "8 ranks", positions)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromFENLetter(c)
			if !ok {
				return fenError("piece placement", "piece letter or digit", string(c))
			}
			if file >= chess.BoardSize {
				return fenError("piece placement", "8 files per rank", row)
			}
			board.Set(chess.Sq(file, rank), piece)
			file++
		}
		if file != chess.BoardSize {
			return fenError("piece placement", "8 files per rank", row)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, side string) error {
	switch side {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError("side to move", "w or b", side)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	rights, err := chess.ParseCastlingRights(field)
	if err != nil {
		return fenError("castling", "- or a subset of KQkq", field)
	}
	board.Castling = rights
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	if field == "-" {
		board.SetEnPassant(chess.Position{}, false)
		return nil
	}
	pos, err := chess.ParsePosition(field)
	if err != nil || (pos.Rank != 2 && pos.Rank != 5) {
		return fenError("en passant", "- or a square on rank 3 or 6", field)
	}
	board.SetEnPassant(pos, true)
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number.
func parseClocks(board *chess.Board, fields []string) error {
	board.HalfmoveClock = 0
	board.MoveNumber = 1
	if len(fields) >= 1 {
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return fenError("halfmove clock", "non-negative integer", fields[0])
		}
		board.HalfmoveClock = n
	}
	if len(fields) >= 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return fenError("fullmove number", "positive integer", fields[1])
		}
		board.MoveNumber = n
	}
	return nil
}

// FormatFEN converts a board to a six-field FEN string.
func FormatFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if ep, ok := board.EnPassantTarget(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
}
