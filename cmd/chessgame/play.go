package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lgbarn/chessgame-go/internal/chess"
	"github.com/lgbarn/chessgame-go/internal/config"
	chesserrors "github.com/lgbarn/chessgame-go/internal/errors"
	"github.com/lgbarn/chessgame-go/internal/netplay"
	"github.com/lgbarn/chessgame-go/internal/registry"
)

// runNetplay waits for or connects to an opponent, then relays the moves
// read from in until in ends or the connection drops. The listening side
// plays White and sends its starting position first; the dialling side
// plays Black.
func runNetplay(ctx context.Context, cfg *config.Config, in io.Reader) error {
	if *pgnFile == "-" {
		return fmt.Errorf("-pgn - cannot be combined with -listen or -connect: %w", chesserrors.ErrInvalidConfig)
	}
	games := registry.New(cfg)
	g := games.Create()
	defer games.Delete(g.ID())

	if err := loadGame(g, in); err != nil {
		return err
	}

	peer, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer peer.Close()

	session := netplay.NewSession(peer, g, netplay.DefaultColour(peer), cfg)
	cfg.Logf(1, "playing %s", session.Colour())
	var out sync.Mutex
	printFEN := func() {
		out.Lock()
		defer out.Unlock()
		fmt.Fprintln(cfg.OutputFile, session.FEN())
	}
	session.OnMessage = func(m netplay.Message, err error) {
		if err == nil && (m.Type == netplay.GameMove || m.Type == netplay.GameState) {
			printFEN()
		}
	}
	if peer.Info().IsServer {
		if err := session.SyncState(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		from, to, promotion, ok := chess.ParseUCI(text)
		if !ok {
			cfg.Logf(0, "not a move: %q", text)
			continue
		}
		if _, err := session.PlayMove(from, to, promotion); err != nil {
			cfg.Logf(0, "%v", err)
			if errors.Is(err, chesserrors.ErrNotConnected) {
				break
			}
			continue
		}
		printFEN()
	}

	peer.Close()
	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return scanner.Err()
}

func connect(ctx context.Context, cfg *config.Config) (*netplay.Peer, error) {
	opts := []netplay.Option{
		netplay.WithConfig(cfg),
		netplay.WithStateFunc(func(s netplay.ConnectionState, info netplay.ConnectionInfo) {
			cfg.Logf(1, "%s %s:%d", s, info.Address, info.Port)
		}),
	}
	if *connectAddr != "" {
		return netplay.Dial(ctx, *connectAddr, opts...)
	}
	ln, err := netplay.Listen(ctx, *listenAddr, opts...)
	if err != nil {
		return nil, err
	}
	return ln.Accept(ctx)
}
