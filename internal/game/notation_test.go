package game

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/engine"
	chesserrors "github.com/lgbarn/chessgame-go/internal/errors"
	"github.com/lgbarn/chessgame-go/internal/pgn"
	"github.com/lgbarn/chessgame-go/internal/testutil"
)

func TestImportPGN_SAN(t *testing.T) {
	g := newTestGame(t, "")
	text := `[Event "Casual"]
[White "A"]
[Black "B"]
[Result "*"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 {Ruy Lopez} a6 (3... Nf6 4. O-O) 4. Bxc6 dxc6 5. O-O *`

	testutil.AssertNoError(t, g.ImportPGN(text))
	testutil.AssertEqual(t, g.ExportFEN(), "r1bqkbnr/1pp2ppp/p1p5/4p3/4P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 1 5")
	testutil.AssertEqual(t, g.UndoCount(), 9)
}

func TestImportPGN_FailureResets(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantPly int
	}{
		{"illegal move", "1. e4 e5 2. Ke3", 3},
		{"move for wrong side", "1. e4 e4", 2},
		{"bad FEN tag", `[FEN "8/8/8 w - - 0 1"] 1. e4`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, "")
			playAll(t, g, "d2d4")

			err := g.ImportPGN(tt.text)
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidPGN)
			testutil.AssertEqual(t, g.ExportFEN(), engine.InitialFEN)
			testutil.AssertEqual(t, g.UndoCount(), 0)
			if gerr, ok := err.(*chesserrors.GameError); !ok || gerr.PlyNum != tt.wantPly {
				t.Errorf("error = %v, want GameError at ply %d", err, tt.wantPly)
			}
		})
	}
}

func TestImportPGN_FENTag(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1"
	g := newTestGame(t, "")
	testutil.AssertNoError(t, g.ImportPGN(`[SetUp "1"]
[FEN "`+fen+`"]

1. O-O-O Kf7 *`))
	testutil.AssertEqual(t, g.ExportFEN(), "8/5k2/8/8/8/8/8/2KR4 w - - 2 2")

	testutil.AssertNoError(t, g.UndoToMove(0))
	testutil.AssertEqual(t, g.ExportFEN(), fen)
}

func TestExportPGN(t *testing.T) {
	g := newTestGame(t, "")
	g.cfg.PGN.White, g.cfg.PGN.Black = "Ada", "Grace"
	playAll(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	got := g.ExportPGN()
	testutil.AssertContains(t, got, `[White "Ada"]`)
	testutil.AssertContains(t, got, `[Result "0-1"]`)
	testutil.AssertContains(t, got, "1. f2f3 e7e5 2. g2g4 Qd8h4 0-1")
	if strings.Contains(got, "[FEN") {
		t.Errorf("unexpected FEN tag for a game from the initial position:\n%s", got)
	}
}

func TestExportJSON(t *testing.T) {
	g := newTestGame(t, "")
	playAll(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	var buf bytes.Buffer
	testutil.AssertNoError(t, g.ExportJSON(&buf))

	var decoded pgn.JSONGame
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	testutil.AssertEqual(t, decoded.Result, "0-1")
	testutil.AssertEqual(t, decoded.PlyCount, 4)
	testutil.AssertEqual(t, decoded.FinalFEN, g.ExportFEN())
	testutil.AssertEqual(t, decoded.Moves[3].Text, "Qd8h4")
}

func TestPGN_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
	}{
		{
			name:  "captures and castling",
			moves: []string{"e2e4", "d7d5", "e4d5", "g8f6", "g1f3", "f6d5", "f1c4", "c8e6", "e1g1", "b8c6", "d2d4", "d8d7", "b1c3", "e8c8"},
		},
		{
			name:  "en passant",
			moves: []string{"e2e4", "a7a6", "e4e5", "d7d5", "e5d6", "c7d6"},
		},
		{
			name:  "promotions",
			fen:   "2n1k3/PP6/8/8/8/8/6pp/4K3 w - - 0 1",
			moves: []string{"a7a8q", "g2g1n", "b7b8r", "h2h1b"},
		},
		{
			name:  "black moves first",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 5 20",
			moves: []string{"e8g8", "e1c1", "a8a1", "c1b2"},
		},
		{
			name:  "ambiguous knights",
			fen:   "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1",
			moves: []string{"b1d2", "e8d7", "d2b3", "d7e6", "f3d2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newTestGame(t, tt.fen)
			playAll(t, src, tt.moves...)

			dst := newTestGame(t, "")
			text := src.ExportPGN()
			testutil.AssertNoError(t, dst.ImportPGN(text), "ImportPGN of\n%s", text)
			testutil.AssertEqual(t, dst.ExportFEN(), src.ExportFEN())
			testutil.AssertEqual(t, dst.UndoCount(), src.UndoCount())
			testutil.AssertEqual(t, dst.ExportPGN(), text)
		})
	}
}

func TestPGN_RoundTripKeepsPromotionChoice(t *testing.T) {
	src := newTestGame(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	playAll(t, src, "a7a8n")
	dst := newTestGame(t, "")
	testutil.AssertNoError(t, dst.ImportPGN(src.ExportPGN()))
	p, _ := dst.PieceAt(testutil.Sq(t, "a8"))
	testutil.AssertEqual(t, p, chess.W(chess.Knight))
}
