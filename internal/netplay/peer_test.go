package netplay

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/errors"
	"github.com/lgbarn/chessgame-go/internal/testutil"
)

func quietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	return cfg
}

func receive(t *testing.T, p *Peer) Message {
	t.Helper()
	select {
	case m, ok := <-p.Messages():
		if !ok {
			t.Fatal("connection closed while waiting for a message")
		}
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a message")
	}
	return Message{}
}

func waitClosed(t *testing.T, p *Peer) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-p.Messages():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for the connection to close")
		}
	}
}

func TestListenDial(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var mu sync.Mutex
	var serverStates []ConnectionState
	ln, err := Listen(ctx, "127.0.0.1:0", WithConfig(quietConfig()), WithStateFunc(func(s ConnectionState, _ ConnectionInfo) {
		mu.Lock()
		serverStates = append(serverStates, s)
		mu.Unlock()
	}))
	testutil.AssertNoError(t, err)

	accepted := make(chan *Peer, 1)
	go func() {
		p, err := ln.Accept(ctx)
		if err != nil {
			t.Errorf("Accept() error = %v", err)
		}
		accepted <- p
	}()

	client, err := Dial(ctx, ln.Addr().String(), WithConfig(quietConfig()))
	testutil.AssertNoError(t, err)
	server := <-accepted
	if server == nil {
		t.FailNow()
	}

	testutil.AssertEqual(t, client.State(), Connected)
	testutil.AssertEqual(t, server.State(), Connected)
	testutil.AssertFalse(t, client.Info().IsServer)
	testutil.AssertTrue(t, server.Info().IsServer)
	testutil.AssertEqual(t, client.Info().Address, "127.0.0.1")
	testutil.AssertEqual(t, client.Info().Port, ln.Addr().(*net.TCPAddr).Port)

	testutil.AssertNoError(t, client.Send(NewMessage(Text, "hello")))
	testutil.AssertEqual(t, receive(t, server).Payload, "hello")
	testutil.AssertNoError(t, server.Send(NewMessage(GameMove, "e2e4")))
	got := receive(t, client)
	testutil.AssertEqual(t, got.Type, GameMove)
	testutil.AssertEqual(t, got.Payload, "e2e4")

	testutil.AssertNoError(t, client.Close())
	waitClosed(t, server)
	testutil.AssertEqual(t, client.State(), Disconnected)
	testutil.AssertEqual(t, server.State(), Disconnected)
	testutil.AssertErrorIs(t, client.Send(NewMessage(Text, "late")), errors.ErrNotConnected)
	testutil.AssertErrorIs(t, server.Send(NewMessage(Text, "late")), errors.ErrNotConnected)

	mu.Lock()
	defer mu.Unlock()
	testutil.AssertEqual(t, serverStates, []ConnectionState{Listening, Connected, Disconnected})
}

func TestAccept_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ln, err := Listen(ctx, "127.0.0.1:0", WithConfig(quietConfig()))
	testutil.AssertNoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err = ln.Accept(ctx)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestDial_Refused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	testutil.AssertNoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	var last ConnectionState
	_, err = Dial(context.Background(), addr, WithConfig(quietConfig()), WithStateFunc(func(s ConnectionState, _ ConnectionInfo) {
		last = s
	}))
	testutil.AssertTrue(t, err != nil, "Dial to a closed port should fail")
	testutil.AssertEqual(t, last, Error)
}

func TestPeer_Pipe(t *testing.T) {
	a, b := net.Pipe()
	pa := NewPeer(a, true, WithConfig(quietConfig()))
	pb := NewPeer(b, false, WithConfig(quietConfig()))

	testutil.AssertNoError(t, pa.Send(Message{Type: Control, Payload: "hello"}))
	m := receive(t, pb)
	testutil.AssertEqual(t, m.Type, Control)
	testutil.AssertFalse(t, m.Timestamp.IsZero(), "Send should stamp the message")

	testutil.AssertNoError(t, pb.Close())
	testutil.AssertNoError(t, pb.Close())
	waitClosed(t, pa)
	testutil.AssertEqual(t, pa.State(), Disconnected)
}
