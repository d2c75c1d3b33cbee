// Package render draws boards for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/engine"
)

const gridLine = "   +---+---+---+---+---+---+---+---+"

var (
	lightSquare = color.New(color.FgBlack, color.BgHiWhite)
	darkSquare  = color.New(color.FgBlack, color.BgGreen)
	checkSquare = color.New(color.FgBlack, color.BgRed)
	coordinate  = color.New(color.Bold)
)

var symbols = map[chess.Piece]string{
	chess.W(chess.Pawn): "♙", chess.W(chess.Knight): "♘", chess.W(chess.Bishop): "♗",
	chess.W(chess.Rook): "♖", chess.W(chess.Queen): "♕", chess.W(chess.King): "♔",
	chess.B(chess.Pawn): "♟", chess.B(chess.Knight): "♞", chess.B(chess.Bishop): "♝",
	chess.B(chess.Rook): "♜", chess.B(chess.Queen): "♛", chess.B(chess.King): "♚",
}

// String returns the diagram for board.
func String(board *chess.Board, cfg *config.DisplayConfig) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = Write(&sb, board, cfg)
	return sb.String()
}

// Write draws board to w. With colour enabled squares are shaded and the
// king of a side in check is highlighted; otherwise an ASCII grid with FEN
// letters is drawn.
func Write(w io.Writer, board *chess.Board, cfg *config.DisplayConfig) error {
	if cfg == nil {
		cfg = config.NewDisplayConfig()
	}
	var sb strings.Builder
	if cfg.Colour {
		drawColour(&sb, board, cfg)
	} else {
		drawPlain(&sb, board, cfg)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// order returns ranks and files in drawing order.
func order(flip bool) (ranks, files []int) {
	for i := 0; i < chess.BoardSize; i++ {
		if flip {
			ranks = append(ranks, i)
			files = append(files, chess.BoardSize-1-i)
		} else {
			ranks = append(ranks, chess.BoardSize-1-i)
			files = append(files, i)
		}
	}
	return ranks, files
}

func drawPlain(sb *strings.Builder, board *chess.Board, cfg *config.DisplayConfig) {
	ranks, files := order(cfg.Flip)
	for _, r := range ranks {
		sb.WriteString(gridLine + "\n")
		if cfg.Coordinates {
			fmt.Fprintf(sb, " %d |", r+1)
		} else {
			sb.WriteString("   |")
		}
		for _, f := range files {
			sym := " "
			if p := board.Get(chess.Sq(f, r)); !p.IsEmpty() {
				sym = string(p.FENLetter())
			}
			fmt.Fprintf(sb, " %s |", sym)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(gridLine + "\n")
	if cfg.Coordinates {
		sb.WriteString("   ")
		for _, f := range files {
			fmt.Fprintf(sb, "  %c ", 'a'+f)
		}
		sb.WriteString("\n")
	}
}

func drawColour(sb *strings.Builder, board *chess.Board, cfg *config.DisplayConfig) {
	for _, c := range []*color.Color{lightSquare, darkSquare, checkSquare, coordinate} {
		c.EnableColor()
	}

	var checked []chess.Position
	for _, side := range []chess.Colour{chess.White, chess.Black} {
		if king, ok := board.FindKing(side); ok && engine.IsInCheck(board, side) {
			checked = append(checked, king)
		}
	}

	ranks, files := order(cfg.Flip)
	for _, r := range ranks {
		if cfg.Coordinates {
			sb.WriteString(coordinate.Sprintf(" %d ", r+1))
		}
		for _, f := range files {
			pos := chess.Sq(f, r)
			sym := " "
			if p := board.Get(pos); !p.IsEmpty() {
				sym = symbols[p]
			}
			shade := darkSquare
			if pos.IsLight() {
				shade = lightSquare
			}
			for _, k := range checked {
				if k == pos {
					shade = checkSquare
				}
			}
			sb.WriteString(shade.Sprintf(" %s ", sym))
		}
		sb.WriteString("\n")
	}
	if cfg.Coordinates {
		sb.WriteString("   ")
		for _, f := range files {
			sb.WriteString(coordinate.Sprintf(" %c ", 'a'+f))
		}
		sb.WriteString("\n")
	}
}
