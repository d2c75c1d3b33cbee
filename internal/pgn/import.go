package pgn

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/errors"
)

var (
	tagPairRegex   = regexp.MustCompile(`\[\s*(\w+)\s+"((?:[^"\\]|\\.)*)"\s*\]`)
	tagRegex       = regexp.MustCompile(`\[[^\]]*\]`)
	commentRegex   = regexp.MustCompile(`\{[^}]*\}`)
	variationRegex = regexp.MustCompile(`\([^)]*\)`)
	moveRegex      = regexp.MustCompile(`[KQRBN]?[a-h]?[1-8]?x?[a-h][1-8](?:=[QRBN])?|O-O(?:-O)?`)
)

// Tokenize extracts the header tags and the move tokens from PGN text.
// Comments and single-level variations are discarded. Anything that does
// not look like a move (numbers, results, annotations) is ignored.
func Tokenize(text string) (map[string]string, []string) {
	tags := make(map[string]string)
	for _, m := range tagPairRegex.FindAllStringSubmatch(text, -1) {
		tags[m[1]] = unescapeTagValue(m[2])
	}
	text = tagRegex.ReplaceAllString(text, " ")
	text = commentRegex.ReplaceAllString(text, " ")
	text = variationRegex.ReplaceAllString(text, " ")
	return tags, moveRegex.FindAllString(text, -1)
}

// CastleSide identifies the side of a castling token.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// Token is a parsed move token. FromFile and FromRank are -1 unless the
// token names them.
type Token struct {
	Text      string
	Castle    CastleSide
	Piece     chess.PieceType
	To        chess.Position
	Promotion chess.PieceType
	FromFile  int
	FromRank  int
}

// ParseToken decodes a single move token such as "Nbd7", "exd5", "e2e4",
// "a8=Q" or "O-O-O". Check and annotation suffixes are ignored.
func ParseToken(text string) (Token, error) {
	tok := Token{Text: text, FromFile: -1, FromRank: -1}
	clean := strings.TrimRight(text, "+#!?")

	switch clean {
	case "O-O":
		tok.Castle, tok.Piece = Kingside, chess.King
		return tok, nil
	case "O-O-O":
		tok.Castle, tok.Piece = Queenside, chess.King
		return tok, nil
	}

	if i := strings.IndexByte(clean, '='); i >= 0 {
		if i+2 != len(clean) || !strings.ContainsRune("QRBN", rune(clean[i+1])) {
			return tok, badToken(text)
		}
		tok.Promotion = chess.PieceTypeFromLetter(clean[i+1])
		clean = clean[:i]
	}

	tok.Piece = chess.Pawn
	if clean != "" && strings.ContainsRune("KQRBN", rune(clean[0])) {
		tok.Piece = chess.PieceTypeFromLetter(clean[0])
		clean = clean[1:]
	}
	if len(clean) < 2 {
		return tok, badToken(text)
	}

	to, err := chess.ParsePosition(clean[len(clean)-2:])
	if err != nil {
		return tok, badToken(text)
	}
	tok.To = to

	for _, c := range clean[:len(clean)-2] {
		switch {
		case c >= 'a' && c <= 'h':
			tok.FromFile = int(c - 'a')
		case c >= '1' && c <= '8':
			tok.FromRank = int(c - '1')
		case c == 'x':
		default:
			return tok, badToken(text)
		}
	}
	if tok.Promotion != chess.Empty && tok.Piece != chess.Pawn {
		return tok, badToken(text)
	}
	return tok, nil
}

func badToken(text string) error {
	return &errors.ParseError{Err: errors.ErrInvalidPGN, Field: "move", Expected: "SAN or long algebraic move", Got: text}
}

// Resolve picks the legal move named by tok. Candidates must match the
// destination and piece type, and the promotion piece when one is given.
// Origin hints are only consulted when more than one candidate remains.
func Resolve(tok Token, legal []chess.Move) (chess.Move, bool) {
	var candidates []chess.Move
	for _, m := range legal {
		if matches(tok, m) {
			candidates = append(candidates, m)
		}
	}

	switch len(candidates) {
	case 0:
		return chess.Move{}, false
	case 1:
		return candidates[0], true
	}

	for _, m := range candidates {
		if tok.FromFile >= 0 && m.From.File != tok.FromFile {
			continue
		}
		if tok.FromRank >= 0 && m.From.Rank != tok.FromRank {
			continue
		}
		return m, true
	}
	return chess.Move{}, false
}

func matches(tok Token, m chess.Move) bool {
	if tok.Castle != NoCastle {
		return m.IsCastling && m.IsKingside() == (tok.Castle == Kingside)
	}
	if m.IsCastling || m.To != tok.To || m.Piece.Type != tok.Piece {
		return false
	}
	if m.IsPromotion() {
		want := tok.Promotion
		if want == chess.Empty {
			want = chess.Queen
		}
		return m.Promotion == want
	}
	return true
}

// String describes the token for error messages.
func (t Token) String() string {
	if t.Castle != NoCastle {
		return t.Text
	}
	return fmt.Sprintf("%s (%s to %s)", t.Text, t.Piece, t.To)
}
