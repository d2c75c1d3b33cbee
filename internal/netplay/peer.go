package netplay

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"

	"github.com/lgbarn/chessgame-go/internal/config"
	"github.com/lgbarn/chessgame-go/internal/errors"
)

// ConnectionState is the lifecycle of a peer.
type ConnectionState int

const (
	Idle ConnectionState = iota
	Listening
	Connecting
	Connected
	Disconnected
	Error
)

var stateNames = [...]string{"idle", "listening", "connecting", "connected", "disconnected", "error"}

func (s ConnectionState) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// ConnectionInfo describes the remote end of a connection, or the local
// address while listening.
type ConnectionInfo struct {
	Address  string
	Port     int
	IsServer bool
}

// StateFunc is called on every state change.
type StateFunc func(ConnectionState, ConnectionInfo)

// Option configures a Listener or Peer.
type Option func(*options)

type options struct {
	cfg        *config.Config
	onState    StateFunc
	bufferSize int
}

// WithConfig sets the configuration used for logging.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithStateFunc registers a callback for state changes.
func WithStateFunc(fn StateFunc) Option {
	return func(o *options) {
		o.onState = fn
	}
}

// WithBufferSize sets how many received messages are queued.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.bufferSize = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{cfg: config.NewConfig(), bufferSize: 16}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) notify(state ConnectionState, info ConnectionInfo) {
	o.cfg.Logf(2, "netplay: %s %s:%d", state, info.Address, info.Port)
	if o.onState != nil {
		o.onState(state, info)
	}
}

// Listener waits for exactly one incoming peer.
type Listener struct {
	ln   net.Listener
	opts options
}

// Listen binds addr, e.g. ":7777" or "127.0.0.1:0".
func Listen(ctx context.Context, addr string, opts ...Option) (*Listener, error) {
	o := newOptions(opts)
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		o.notify(Error, ConnectionInfo{IsServer: true})
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	info := addrInfo(ln.Addr(), true)
	o.notify(Listening, info)
	return &Listener{ln: ln, opts: o}, nil
}

// Addr returns the bound address.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Accept waits for one peer and stops listening. It returns early with
// ctx's error when ctx is done.
func (l *Listener) Accept(ctx context.Context) (*Peer, error) {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			l.ln.Close()
		case <-stop:
		}
	}()

	conn, err := l.ln.Accept()
	l.ln.Close()
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		l.opts.notify(Error, addrInfo(l.ln.Addr(), true))
		return nil, fmt.Errorf("accept: %w", err)
	}
	return newPeer(conn, true, l.opts), nil
}

// Close stops listening without accepting.
func (l *Listener) Close() error {
	return l.ln.Close()
}

// Dial connects to a listening peer.
func Dial(ctx context.Context, addr string, opts ...Option) (*Peer, error) {
	o := newOptions(opts)
	o.notify(Connecting, ConnectionInfo{Address: addr})
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		o.notify(Error, ConnectionInfo{Address: addr})
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return newPeer(conn, false, o), nil
}

// NewPeer wraps an established connection.
func NewPeer(conn net.Conn, isServer bool, opts ...Option) *Peer {
	return newPeer(conn, isServer, newOptions(opts))
}

// Peer is one end of a connection. Messages are received in the
// background and delivered on Messages until the connection ends.
type Peer struct {
	conn net.Conn
	opts options

	mu    sync.Mutex
	state ConnectionState
	info  ConnectionInfo

	writeMu   sync.Mutex
	messages  chan Message
	done      chan struct{}
	closeOnce sync.Once
}

func newPeer(conn net.Conn, isServer bool, o options) *Peer {
	p := &Peer{
		conn:     conn,
		opts:     o,
		messages: make(chan Message, o.bufferSize),
		done:     make(chan struct{}),
	}
	p.setState(Connected, addrInfo(conn.RemoteAddr(), isServer))
	go p.readLoop()
	return p
}

func addrInfo(addr net.Addr, isServer bool) ConnectionInfo {
	info := ConnectionInfo{Address: addr.String(), IsServer: isServer}
	if host, port, err := net.SplitHostPort(addr.String()); err == nil {
		info.Address = host
		info.Port, _ = strconv.Atoi(port)
	}
	return info
}

func (p *Peer) setState(state ConnectionState, info ConnectionInfo) {
	p.mu.Lock()
	p.state, p.info = state, info
	p.mu.Unlock()
	p.opts.notify(state, info)
}

// State returns the current connection state.
func (p *Peer) State() ConnectionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Info returns the remote end of the connection.
func (p *Peer) Info() ConnectionInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.info
}

// Messages returns the received messages. The channel is closed when the
// connection ends.
func (p *Peer) Messages() <-chan Message {
	return p.messages
}

// Send writes m to the peer. It fails with ErrNotConnected once the
// connection has ended.
func (p *Peer) Send(m Message) error {
	if p.State() != Connected {
		return errors.ErrNotConnected
	}
	if m.Timestamp.IsZero() {
		m = NewMessage(m.Type, m.Payload)
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	if err := WriteMessage(p.conn, m); err != nil {
		p.opts.cfg.Logf(1, "netplay: send %s failed: %v", m.Type, err)
		return errors.Wrapf(err, "send %s", m.Type)
	}
	return nil
}

// Close ends the connection.
func (p *Peer) Close() error {
	var err error
	p.closeOnce.Do(func() {
		close(p.done)
		err = p.conn.Close()
		p.setState(Disconnected, p.Info())
	})
	return err
}

func (p *Peer) readLoop() {
	defer close(p.messages)
	for {
		m, err := ReadMessage(p.conn)
		if err != nil {
			select {
			case <-p.done:
				// Closed locally
			default:
				if err != io.EOF {
					p.opts.cfg.Logf(1, "netplay: connection lost: %v", err)
				}
				p.closeOnce.Do(func() {
					close(p.done)
					p.conn.Close()
					state := Disconnected
					if err != io.EOF {
						state = Error
					}
					p.setState(state, p.Info())
				})
			}
			return
		}
		select {
		case p.messages <- m:
		case <-p.done:
			return
		}
	}
}
