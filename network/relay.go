package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultPort is the TCP port used when none is configured.
const DefaultPort = 5050

const writeTimeout = 5 * time.Second

var (
	ErrAlreadyStarted = errors.New("network: relay already started")
	ErrNotStarted     = errors.New("network: relay not started")
)

// DefaultAddr returns the address of the default port on host.
func DefaultAddr(host string) string {
	return net.JoinHostPort(host, strconv.Itoa(DefaultPort))
}

// Role is the part a Relay plays in a session.
type Role uint8

const (
	RoleNone Role = iota
	RoleHost
	RolePeer
)

func (r Role) String() string {
	switch r {
	case RoleHost:
		return "host"
	case RolePeer:
		return "peer"
	default:
		return "none"
	}
}

type Option func(*Relay)

// WithLogger sets the logger for connection failures. The default is
// log.Default().
func WithLogger(l *log.Logger) Option {
	return func(r *Relay) { r.logger = l }
}

type conn struct {
	nc  net.Conn
	wmu sync.Mutex
}

func (c *conn) write(frame []byte) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	if err := c.nc.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	_, err := c.nc.Write(frame)
	return err
}

// Relay connects a host and its peers. The host forwards every message it
// receives to all other peers and keeps a copy; peers exchange messages
// with the host only. Received messages wait in a queue until Messages is
// called, so the frame loop can consume them without blocking.
type Relay struct {
	logger *log.Logger

	mu       sync.Mutex
	role     Role
	listener net.Listener
	conns    map[*conn]struct{}
	inbox    []Message

	cancel context.CancelFunc
	group  *errgroup.Group
}

// New creates an idle relay.
func New(opts ...Option) *Relay {
	r := &Relay{logger: log.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StartHost listens on addr and accepts peers until Close is called or ctx
// is done.
func (r *Relay) StartHost(ctx context.Context, addr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.role != RoleNone {
		return fmt.Errorf("start host on %s: %w (running as %v)", addr, ErrAlreadyStarted, r.role)
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("start host: %w", err)
	}

	r.begin(ctx, RoleHost)
	r.listener = ln
	r.group.Go(func() error { return r.acceptLoop(ln) })
	return nil
}

// StartPeer connects to the host at addr.
func (r *Relay) StartPeer(ctx context.Context, addr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.role != RoleNone {
		return fmt.Errorf("start peer for %s: %w (running as %v)", addr, ErrAlreadyStarted, r.role)
	}

	var d net.Dialer
	nc, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("start peer: %w", err)
	}

	r.begin(ctx, RolePeer)
	c := &conn{nc: nc}
	r.conns[c] = struct{}{}
	r.group.Go(func() error { return r.receiveLoop(c) })
	return nil
}

// begin must be called with r.mu held.
func (r *Relay) begin(ctx context.Context, role Role) {
	ctx, cancel := context.WithCancel(ctx)
	r.role = role
	r.conns = make(map[*conn]struct{})
	r.cancel = cancel
	r.group = &errgroup.Group{}
	r.group.Go(func() error {
		<-ctx.Done()
		r.shutdown()
		return nil
	})
}

// shutdown closes the listener and every connection, which ends the
// accept and receive loops.
func (r *Relay) shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listener != nil {
		r.listener.Close()
		r.listener = nil
	}
	for c := range r.conns {
		// Fails a write in progress at once instead of after writeTimeout.
		c.nc.SetDeadline(time.Now())
		c.nc.Close()
	}
}

func (r *Relay) acceptLoop(ln net.Listener) error {
	for {
		nc, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			r.logger.Printf("network: accept: %v", err)
			return err
		}

		c := &conn{nc: nc}
		r.mu.Lock()
		if r.listener == nil {
			// Shut down between Accept and here.
			r.mu.Unlock()
			nc.Close()
			return nil
		}
		r.conns[c] = struct{}{}
		r.mu.Unlock()

		r.group.Go(func() error { return r.receiveLoop(c) })
	}
}

// receiveLoop reads frames from c until it fails. A failing connection is
// dropped without affecting the others.
func (r *Relay) receiveLoop(c *conn) error {
	defer r.drop(c)
	for {
		frame, err := readFrame(c.nc)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				r.logger.Printf("network: receive from %v: %v", c.nc.RemoteAddr(), err)
			}
			return nil
		}
		m, err := decodeFrame(frame)
		if err != nil {
			r.logger.Printf("network: receive from %v: %v", c.nc.RemoteAddr(), err)
			return nil
		}

		r.mu.Lock()
		r.inbox = append(r.inbox, m)
		var others []*conn
		if r.role == RoleHost {
			others = r.others(c)
		}
		r.mu.Unlock()

		r.broadcast(others, frame)
	}
}

func (r *Relay) drop(c *conn) {
	r.mu.Lock()
	delete(r.conns, c)
	r.mu.Unlock()
	c.nc.Close()
}

// others returns every connection except skip. r.mu must be held.
func (r *Relay) others(skip *conn) []*conn {
	out := make([]*conn, 0, len(r.conns))
	for c := range r.conns {
		if c != skip {
			out = append(out, c)
		}
	}
	return out
}

func (r *Relay) broadcast(conns []*conn, frame []byte) {
	for _, c := range conns {
		if err := c.write(frame); err != nil {
			r.logger.Printf("network: send to %v: %v", c.nc.RemoteAddr(), err)
		}
	}
}

// Send delivers a message: from the host to every peer, from a peer to the
// host. Delivery failures are logged, not returned.
func (r *Relay) Send(key string, data any) error {
	frame, err := encodeFrame(Message{Key: key, Data: data})
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.role == RoleNone {
		r.mu.Unlock()
		return fmt.Errorf("send %q: %w", key, ErrNotStarted)
	}
	conns := r.others(nil)
	r.mu.Unlock()

	r.broadcast(conns, frame)
	return nil
}

// Messages returns the messages received since the previous call, oldest
// first.
func (r *Relay) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.inbox
	r.inbox = nil
	return out
}

func (r *Relay) Role() Role {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.role
}

// Peers returns the number of open connections: connected peers for a
// host, 1 or 0 for a peer.
func (r *Relay) Peers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// Addr returns the listening address of a host or the host address of a
// peer, or nil.
func (r *Relay) Addr() net.Addr {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listener != nil {
		return r.listener.Addr()
	}
	for c := range r.conns {
		return c.nc.RemoteAddr()
	}
	return nil
}

// Close stops the relay and waits for its goroutines. Writes in progress
// are abandoned, so Close does not wait for slow peers. The relay can be
// started again afterwards. Queued messages are kept.
func (r *Relay) Close() error {
	r.mu.Lock()
	if r.role == RoleNone {
		r.mu.Unlock()
		return nil
	}
	cancel, group := r.cancel, r.group
	r.mu.Unlock()

	cancel()
	err := group.Wait()

	r.mu.Lock()
	r.role = RoleNone
	r.conns = nil
	r.cancel = nil
	r.group = nil
	r.mu.Unlock()
	return err
}
