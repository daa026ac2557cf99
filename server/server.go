package server

import (
	"context"
	"errors"
	"net"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Server accepts raw TCP connections and speaks the GET-only HTTP/1.1
// subset. The number of simultaneously executing sessions is bounded by the
// admission gate; accepted connections beyond that wait for a slot.
type Server struct {
	cfg  *Config
	gate *Gate

	listener net.Listener
	ctx      context.Context
	cancel   context.CancelFunc

	acceptors *errgroup.Group
	sessions  sync.WaitGroup
	active    atomic.Int64
}

func New(cfg *Config) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Server{
		cfg:  cfg,
		gate: NewGate(cfg.MaxConnections),
	}
}

// Listen binds the configured address. It must be called before Serve.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

// Addr returns the bound listen address, useful when Port was 0.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve runs parallel acceptor loops over the shared listener and blocks
// until Shutdown closes it.
func (s *Server) Serve() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.acceptors, _ = errgroup.WithContext(s.ctx)

	for i := 0; i < runtime.GOMAXPROCS(0); i++ {
		s.acceptors.Go(s.acceptLoop)
	}
	return s.acceptors.Wait()
}

func (s *Server) acceptLoop() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || s.ctx.Err() != nil {
				return nil
			}
			return err
		}

		s.sessions.Add(1)
		go s.runSession(conn)
	}
}

// runSession gates the connection through admission and guarantees the slot
// is returned on every exit path.
func (s *Server) runSession(conn net.Conn) {
	defer s.sessions.Done()

	if err := s.gate.Acquire(s.ctx); err != nil {
		conn.Close()
		return
	}
	defer s.gate.Release()

	s.active.Add(1)
	defer s.active.Add(-1)

	s.handleConn(conn)
}

// ActiveSessions reports how many admitted sessions are currently running.
func (s *Server) ActiveSessions() int64 {
	return s.active.Load()
}

// Shutdown stops accepting, abandons connections still waiting for
// admission, and waits for running sessions until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.listener != nil {
		s.listener.Close()
	}

	done := make(chan struct{})
	go func() {
		s.sessions.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
