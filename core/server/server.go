package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
)

// Server runs an http.Server with graceful shutdown. Safe for concurrent use.
type Server struct {
	cfg Config
	tls *tls.Config
	log *slog.Logger

	mu  sync.Mutex
	srv *http.Server
	ln  net.Listener
}

// New creates a Server on addr with the default timeouts.
func New(addr string, opts ...Option) *Server {
	cfg := DefaultConfig()
	cfg.Addr = addr
	return newServer(cfg, opts)
}

func newServer(cfg Config, opts []Option) *Server {
	s := &Server{cfg: cfg, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Addr reports the bound address while running, so ":0" resolves to the
// real port, and the configured address otherwise.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.cfg.Addr
}

// Start binds the listener and serves handler. Bind failures return at
// once wrapped in ErrListen. When ctx ends Start returns ctx.Err() and
// leaves the server running; Stop drains it.
func (s *Server) Start(ctx context.Context, handler http.Handler) error {
	srv, ln, err := s.listen(ctx, handler)
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "server listening",
		slog.String("addr", ln.Addr().String()),
		slog.Bool("tls", s.tls != nil),
	)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		s.reset()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) listen(ctx context.Context, handler http.Handler) (*http.Server, net.Listener, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return nil, nil, ErrServerAlreadyRunning
	}

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrListen, s.cfg.Addr, err)
	}
	if s.tls != nil {
		ln = tls.NewListener(ln, s.tls)
	}

	base := context.WithoutCancel(ctx)
	s.ln = ln
	s.srv = &http.Server{
		Handler:        handler,
		ReadTimeout:    s.cfg.ReadTimeout,
		WriteTimeout:   s.cfg.WriteTimeout,
		IdleTimeout:    s.cfg.IdleTimeout,
		MaxHeaderBytes: s.cfg.MaxHeaderBytes,
		BaseContext:    func(net.Listener) context.Context { return base },
	}
	return s.srv, ln, nil
}

func (s *Server) reset() {
	s.mu.Lock()
	s.srv, s.ln = nil, nil
	s.mu.Unlock()
}

// Stop shuts the server down, waiting up to the shutdown timeout for
// in-flight requests. It is a no-op when the server is not running.
func (s *Server) Stop() error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.log.Info("shutting down server", slog.Duration("timeout", s.cfg.ShutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	s.reset()
	if err != nil {
		s.log.Error("server shutdown failed", slog.Any("error", err))
		return err
	}

	s.log.Info("server stopped")
	return nil
}

// Run returns a function for errgroup.Group.Go that serves until ctx ends
// and then shuts down gracefully. Cancellation is not reported as an error.
func (s *Server) Run(ctx context.Context, handler http.Handler) func() error {
	return func() error {
		err := s.Start(ctx, handler)
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return s.Stop()
		}
		return err
	}
}

// Run serves handler on addr with default settings until ctx is canceled.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	return New(addr).Run(ctx, handler)()
}
