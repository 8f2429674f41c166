package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/bag-pricing-service/config"
)

const (
	// DefaultShutdownTimeout bounds the drain of in-flight requests.
	DefaultShutdownTimeout = 10 * time.Second
	// writeGrace is added to the request timeout so the timeout response
	// itself can still be written.
	writeGrace     = 5 * time.Second
	readTimeout    = 15 * time.Second
	idleTimeout    = 60 * time.Second
	maxHeaderBytes = 1 << 20
)

// Server wraps http.Server with signal handling and graceful shutdown.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	listening       chan net.Addr
}

// NewServer creates a server for handler using the HTTP settings in cfg.
func NewServer(handler http.Handler, cfg config.ServerConfig) *Server {
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: readTimeout,
			WriteTimeout:      requestTimeout + writeGrace,
			IdleTimeout:       idleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
		},
		shutdownTimeout: shutdownTimeout,
		listening:       make(chan net.Addr, 1),
	}
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case sig := <-quit:
			log.Info().Str("signal", sig.String()).Msg("Received signal, initiating graceful shutdown")
			cancel()
		case <-ctx.Done():
		}
	}()

	return s.Serve(ctx)
}

// Serve listens on the configured address until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("Server starting")
	s.listening <- ln.Addr()

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}
	return s.Shutdown()
}

// Addr blocks until the listener is bound and returns its address.
func (s *Server) Addr() net.Addr {
	addr := <-s.listening
	s.listening <- addr
	return addr
}

// Shutdown drains in-flight requests within the shutdown timeout.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	log.Info().Msg("Server stopped gracefully")
	return nil
}
