package netplay

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/errors"
	"github.com/lgbarn/chessgame-go/internal/game"
)

// RejectPrefix starts the Control payload sent back for a move that could
// not be applied.
const RejectPrefix = "reject "

// Session keeps a local game in step with a remote one. Local moves are
// sent as GameMove messages; remote moves and positions are applied as
// they arrive. Each side only moves the pieces of its own colour.
type Session struct {
	peer  *Peer
	cfg   *config.Config
	local chess.Colour

	mu   sync.Mutex // guards game
	game *game.Game

	// OnMessage, if set, receives every message after it has been handled,
	// with the error from applying it.
	OnMessage func(Message, error)
}

// NewSession binds peer and g, with this side playing local. cfg may be nil.
func NewSession(peer *Peer, g *game.Game, local chess.Colour, cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Session{peer: peer, game: g, local: local, cfg: cfg}
}

// DefaultColour is the colour a peer plays unless told otherwise: White on
// the listening side, Black on the dialling side.
func DefaultColour(p *Peer) chess.Colour {
	if p.Info().IsServer {
		return chess.White
	}
	return chess.Black
}

// Colour returns the colour this side plays.
func (s *Session) Colour() chess.Colour {
	return s.local
}

// PlayMove plays a move locally and sends it to the peer. If sending fails
// the move is taken back. Moves are only accepted on the local side's turn.
func (s *Session) PlayMove(from, to chess.Position, promotion chess.PieceType) (chess.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if turn := s.game.ActiveColour(); turn != s.local {
		return chess.Move{}, errNotYourTurn(turn)
	}
	m, err := s.game.MakeMove(from, to, promotion)
	if err != nil {
		return chess.Move{}, err
	}
	if err := s.peer.Send(NewMessage(GameMove, m.UCI())); err != nil {
		// The move was just played, so there is always one to take back.
		_ = s.game.UndoLastMove()
		return chess.Move{}, err
	}
	return m, nil
}

// SyncState sends the current position to the peer.
func (s *Session) SyncState() error {
	s.mu.Lock()
	fen := s.game.ExportFEN()
	s.mu.Unlock()
	return s.peer.Send(NewMessage(GameState, fen))
}

// FEN returns the current position of the local game.
func (s *Session) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ExportFEN()
}

// Do runs fn with exclusive access to the game.
func (s *Session) Do(fn func(*game.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Run applies incoming messages until ctx is done or the connection ends.
// It returns ctx's error in the first case and nil in the second.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-s.peer.Messages():
			if !ok {
				return nil
			}
			err := s.handle(m)
			if s.OnMessage != nil {
				s.OnMessage(m, err)
			}
		}
	}
}

func (s *Session) handle(m Message) error {
	switch m.Type {
	case GameMove:
		s.mu.Lock()
		var err error
		if turn := s.game.ActiveColour(); turn == s.local {
			err = errNotYourTurn(turn)
		} else {
			_, err = s.game.MakeUCIMove(m.Payload)
		}
		s.mu.Unlock()
		if err != nil {
			s.cfg.Logf(1, "netplay: rejecting remote move: %v", err)
			if sendErr := s.peer.Send(NewMessage(Control, RejectPrefix+m.Payload)); sendErr != nil {
				s.cfg.Logf(1, "netplay: %v", sendErr)
			}
		}
		return err
	case GameState:
		s.mu.Lock()
		err := s.game.ImportFEN(m.Payload)
		s.mu.Unlock()
		if err != nil {
			s.cfg.Logf(1, "netplay: ignoring remote position: %v", err)
		}
		return err
	case Control:
		if strings.HasPrefix(m.Payload, RejectPrefix) {
			s.cfg.Logf(1, "netplay: peer rejected %s", strings.TrimPrefix(m.Payload, RejectPrefix))
		}
	default:
		s.cfg.Logf(2, "netplay: %s message: %s", m.Type, m.Payload)
	}
	return nil
}

func errNotYourTurn(turn chess.Colour) error {
	return fmt.Errorf("%s to move: %w", turn, errors.ErrIllegalMove)
}
