package pgn

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/engine"
)

// Record is a played game as seen by the exporter.
type Record struct {
	// Start is the position before the first move.
	Start  *chess.Board
	Moves  []chess.Move
	Result string
}

func (r Record) result() string {
	if r.Result == "" {
		return "*"
	}
	return r.Result
}

// Tag is a single header pair.
type Tag struct {
	Name  string
	Value string
}

// Tags returns the header pairs for rec: the seven tag roster filled from
// cfg, then SetUp and FEN when the game did not begin from the standard
// initial position.
func Tags(cfg *config.PGNConfig, rec Record) []Tag {
	if cfg == nil {
		cfg = config.NewPGNConfig()
	}
	tags := []Tag{
		{chess.EventTag, cfg.Event},
		{chess.SiteTag, cfg.Site},
		{chess.DateTag, cfg.Date},
		{chess.RoundTag, cfg.Round},
		{chess.WhiteTag, cfg.White},
		{chess.BlackTag, cfg.Black},
		{chess.ResultTag, rec.result()},
	}
	if rec.Start != nil {
		if fen := engine.FormatFEN(rec.Start); fen != engine.InitialFEN {
			tags = append(tags, Tag{chess.SetupTag, "1"}, Tag{chess.FENTag, fen})
		}
	}
	return tags
}

// Write outputs rec as PGN: tags, a blank line, then wrapped movetext
// ending with the result.
func Write(w io.Writer, cfg *config.PGNConfig, rec Record) error {
	if cfg == nil {
		cfg = config.NewPGNConfig()
	}
	ow := NewOutputWriter(w, cfg.MaxLineLength)

	for _, tag := range Tags(cfg, rec) {
		ow.WriteLine(fmt.Sprintf("[%s \"%s\"]", tag.Name, escapeTagValue(tag.Value)))
	}
	ow.NewLine()

	moveNum, isWhite := 1, true
	if rec.Start != nil {
		moveNum, isWhite = rec.Start.MoveNumber, rec.Start.ToMove == chess.White
	}
	for i, move := range rec.Moves {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(move.Algebraic())
		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	ow.Write(rec.result())
	ow.NewLine()

	return ow.Err()
}

// Format returns rec as a PGN string.
func Format(cfg *config.PGNConfig, rec Record) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = Write(&sb, cfg, rec)
	return sb.String()
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// unescapeTagValue reverses escapeTagValue.
func unescapeTagValue(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
