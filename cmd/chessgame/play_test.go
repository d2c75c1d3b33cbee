package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	chesserrors "github.com/lgbarn/chessgame-go/internal/errors"
	"github.com/lgbarn/chessgame-go/internal/netplay"
)

func TestRunNetplay_Connect(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	cfg := testConfig(&out)
	ln, err := netplay.Listen(ctx, "127.0.0.1:0", netplay.WithConfig(cfg))
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	accepted := make(chan *netplay.Peer, 1)
	go func() {
		p, err := ln.Accept(ctx)
		if err != nil {
			t.Errorf("Accept() error = %v", err)
		}
		accepted <- p
	}()

	// The dialling side plays Black.
	withFlags(t, "connect", ln.Addr().String(),
		"fen", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err := runNetplay(ctx, cfg, strings.NewReader("e7e5\nnonsense\n\nd2d4\n")); err != nil {
		t.Fatalf("runNetplay() error = %v", err)
	}

	opponent := <-accepted
	if opponent == nil {
		t.FailNow()
	}
	defer opponent.Close()

	var got []netplay.Message
	for m := range opponent.Messages() {
		got = append(got, m)
	}
	if len(got) != 1 || got[0].Type != netplay.GameMove || got[0].Payload != "e7e5" {
		t.Errorf("opponent received %v; want one move e7e5", got)
	}

	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2\n"
	if out.String() != want {
		t.Errorf("output = %q; want %q", out.String(), want)
	}
}

func TestRunNetplay_RejectsPGNFromStdin(t *testing.T) {
	var out bytes.Buffer
	withFlags(t, "connect", "127.0.0.1:1", "pgn", "-")
	err := runNetplay(context.Background(), testConfig(&out), strings.NewReader("1. e4 e5"))
	if !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("runNetplay() error = %v; want ErrInvalidConfig", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q; want nothing", out.String())
	}
}
