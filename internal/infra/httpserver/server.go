package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/sabania/framesrv/internal/domain"
)

// Server binds a TCP listener and serves a handler on it until its context ends.
type Server struct {
	addr    string
	headers domain.HeaderSet
	handler http.Handler
	logger  *slog.Logger

	mu sync.Mutex
	ln net.Listener
}

// Option allows configuring a Server.
type Option func(*Server)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAddr overrides the listen address taken from the config.
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// New builds a Server for cfg. It does not bind until Listen is called.
func New(cfg domain.Config, h http.Handler, opts ...Option) *Server {
	s := &Server{
		addr:    cfg.Addr(),
		headers: cfg.Headers,
		handler: h,
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Listen binds the TCP address. A port already in use surfaces here.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return nil
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return &domain.OpError{Op: "listen", Kind: domain.KindBind, Addr: s.addr, Err: err}
	}
	s.ln = newStampListener(ln, s.headers)
	s.logger.Info("server.listening", "addr", ln.Addr().String())
	return nil
}

// Addr reports the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// Serve handles connections until ctx is cancelled, then shuts down.
// Listen is called first if the server is not bound yet.
func (s *Server) Serve(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	srv := &http.Server{Handler: s.handler}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		s.logger.Error("server.failed", "addr", ln.Addr().String(), "err", err)
		return &domain.OpError{Op: "serve", Kind: domain.KindServe, Addr: ln.Addr().String(), Err: err}
	case <-ctx.Done():
	}

	err := srv.Shutdown(context.Background())
	<-errCh
	s.logger.Info("server.stopped", "addr", ln.Addr().String())
	if err != nil {
		return &domain.OpError{Op: "shutdown", Kind: domain.KindServe, Addr: ln.Addr().String(), Err: err}
	}
	return nil
}

// ListenAndServe binds then serves until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}
