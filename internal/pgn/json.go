package pgn

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves"`
	Result     string            `json:"result"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN,omitempty"`
	FinalFEN   string            `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Colour     string `json:"color"` // "white" or "black"
	Text       string `json:"text"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castling   bool   `json:"castling,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
	FEN        string `json:"fen"` // Position after the move
}

// ToJSON converts rec, replaying its moves to record the position after
// each one.
func ToJSON(cfg *config.PGNConfig, rec Record) *JSONGame {
	tags := Tags(cfg, rec)
	jg := &JSONGame{
		Tags:     make(map[string]string, len(tags)),
		Moves:    make([]JSONMove, 0, len(rec.Moves)),
		Result:   rec.result(),
		PlyCount: len(rec.Moves),
	}
	for _, tag := range tags {
		jg.Tags[tag.Name] = tag.Value
	}

	var board chess.Board
	if rec.Start != nil {
		board = *rec.Start
	} else {
		board = *chess.NewInitialBoard()
	}
	if fen := engine.FormatFEN(&board); fen != engine.InitialFEN {
		jg.InitialFEN = fen
	}

	for _, move := range rec.Moves {
		jm := JSONMove{
			MoveNumber: board.MoveNumber,
			Colour:     strings.ToLower(board.ToMove.String()),
			Text:       move.Algebraic(),
			UCI:        move.UCI(),
			From:       move.From.String(),
			To:         move.To.String(),
			Piece:      pieceName(move.Piece.Type),
			Castling:   move.IsCastling,
			EnPassant:  move.IsEnPassant,
		}
		if move.IsCapture() {
			jm.Captured = pieceName(move.Captured.Type)
		}
		if move.Promotion != chess.Empty {
			jm.Promotion = pieceName(move.Promotion)
		}
		engine.ApplyMove(&board, move)
		jm.FEN = engine.FormatFEN(&board)
		jg.Moves = append(jg.Moves, jm)
	}
	jg.FinalFEN = engine.FormatFEN(&board)

	return jg
}

// WriteJSON writes rec as indented JSON.
func WriteJSON(w io.Writer, cfg *config.PGNConfig, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(cfg, rec))
}

func pieceName(t chess.PieceType) string {
	return strings.ToLower(t.String())
}
