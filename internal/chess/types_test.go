package chess

import (
	"testing"
)

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
	if White.PawnDirection() != 1 || Black.PawnDirection() != -1 {
		t.Error("PawnDirection() wrong")
	}
}

func TestPieceFENLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(Pawn), 'P'},
		{B(Pawn), 'p'},
		{W(Knight), 'N'},
		{B(Bishop), 'b'},
		{W(Rook), 'R'},
		{B(Queen), 'q'},
		{W(King), 'K'},
		{NoPiece, 0},
	}
	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.FENLetter(); got != tt.want {
				t.Errorf("FENLetter() = %q; want %q", got, tt.want)
			}
			if tt.want == 0 {
				return
			}
			back, ok := PieceFromFENLetter(tt.want)
			if !ok || back != tt.piece {
				t.Errorf("PieceFromFENLetter(%q) = %v, %v; want %v", tt.want, back, ok, tt.piece)
			}
		})
	}

	if _, ok := PieceFromFENLetter('x'); ok {
		t.Error("PieceFromFENLetter('x') accepted an unknown letter")
	}
}

func TestNewPieceEmptyIsCanonical(t *testing.T) {
	if NewPiece(White, Empty) != NoPiece {
		t.Error("NewPiece(White, Empty) is not NoPiece")
	}
}

func TestGameStateResult(t *testing.T) {
	tests := []struct {
		state    GameState
		want     string
		gameOver bool
	}{
		{InProgress, "*", false},
		{CheckmateWhiteWins, "1-0", true},
		{CheckmateBlackWins, "0-1", true},
		{Stalemate, "1/2-1/2", true},
		{DrawByInsufficientMaterial, "1/2-1/2", true},
		{DrawByFiftyMoveRule, "1/2-1/2", true},
		{DrawByThreefoldRepetition, "1/2-1/2", true},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.Result(); got != tt.want {
				t.Errorf("Result() = %q; want %q", got, tt.want)
			}
			if got := tt.state.IsGameOver(); got != tt.gameOver {
				t.Errorf("IsGameOver() = %v; want %v", got, tt.gameOver)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"a1", Sq(0, 0), false},
		{"h8", Sq(7, 7), false},
		{"e4", Sq(4, 3), false},
		{"i1", Position{}, true},
		{"a9", Position{}, true},
		{"a", Position{}, true},
		{"e44", Position{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePosition(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePosition(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePosition(%q) = %+v; want %+v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.in {
				t.Errorf("String() = %q; want %q", got.String(), tt.in)
			}
		})
	}
}

func TestNewPositionBounds(t *testing.T) {
	if _, err := NewPosition(0, 7); err != nil {
		t.Errorf("NewPosition(0, 7) error = %v", err)
	}
	for _, c := range [][2]int{{-1, 0}, {8, 0}, {0, -1}, {0, 8}} {
		if _, err := NewPosition(c[0], c[1]); err == nil {
			t.Errorf("NewPosition(%d, %d) accepted an off-board square", c[0], c[1])
		}
	}
	if Sq(4, 3).Index() != 28 {
		t.Errorf("Index() = %d; want 28", Sq(4, 3).Index())
	}
	if PositionFromIndex(63) != Sq(7, 7) {
		t.Error("PositionFromIndex(63) is not h8")
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{AllCastling, "KQkq"},
		{NoCastling, "-"},
		{WhiteKingside | BlackQueenside, "Kq"},
		{BlackKingside, "k"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.rights.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
			back, err := ParseCastlingRights(tt.want)
			if err != nil || back != tt.rights {
				t.Errorf("ParseCastlingRights(%q) = %v, %v", tt.want, back, err)
			}
		})
	}

	for _, bad := range []string{"", "KK", "KQx", "-K"} {
		if _, err := ParseCastlingRights(bad); err == nil {
			t.Errorf("ParseCastlingRights(%q) accepted bad input", bad)
		}
	}
}

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		name      string
		move      Move
		algebraic string
		uci       string
	}{
		{
			name:      "pawn push",
			move:      Move{From: MustParsePosition("e2"), To: MustParsePosition("e4"), Piece: W(Pawn)},
			algebraic: "e2e4",
			uci:       "e2e4",
		},
		{
			name:      "knight",
			move:      Move{From: MustParsePosition("g1"), To: MustParsePosition("f3"), Piece: W(Knight)},
			algebraic: "Ng1f3",
			uci:       "g1f3",
		},
		{
			name:      "pawn capture",
			move:      Move{From: MustParsePosition("e4"), To: MustParsePosition("d5"), Piece: W(Pawn), Captured: B(Pawn)},
			algebraic: "e4xd5",
			uci:       "e4d5",
		},
		{
			name:      "en passant",
			move:      Move{From: MustParsePosition("e5"), To: MustParsePosition("d6"), Piece: W(Pawn), Captured: B(Pawn), IsEnPassant: true},
			algebraic: "e5xd6",
			uci:       "e5d6",
		},
		{
			name:      "promotion",
			move:      Move{From: MustParsePosition("a7"), To: MustParsePosition("a8"), Piece: W(Pawn), Promotion: Knight},
			algebraic: "a7a8=N",
			uci:       "a7a8n",
		},
		{
			name:      "kingside castle",
			move:      Move{From: MustParsePosition("e8"), To: MustParsePosition("g8"), Piece: B(King), IsCastling: true},
			algebraic: "O-O",
			uci:       "e8g8",
		},
		{
			name:      "queenside castle",
			move:      Move{From: MustParsePosition("e1"), To: MustParsePosition("c1"), Piece: W(King), IsCastling: true},
			algebraic: "O-O-O",
			uci:       "e1c1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.Algebraic(); got != tt.algebraic {
				t.Errorf("Algebraic() = %q; want %q", got, tt.algebraic)
			}
			if got := tt.move.UCI(); got != tt.uci {
				t.Errorf("UCI() = %q; want %q", got, tt.uci)
			}
		})
	}
}

func TestParseUCI(t *testing.T) {
	from, to, promo, ok := ParseUCI("e7e8q")
	if !ok || from.String() != "e7" || to.String() != "e8" || promo != Queen {
		t.Errorf("ParseUCI(e7e8q) = %v %v %v %v", from, to, promo, ok)
	}
	for _, bad := range []string{"", "e2", "e2e9", "e7e8k", "z2e4"} {
		if _, _, _, ok := ParseUCI(bad); ok {
			t.Errorf("ParseUCI(%q) accepted bad input", bad)
		}
	}
}
