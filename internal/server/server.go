// Package server runs the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

var (
	ErrListen   = errors.New("failed to listen")
	ErrServe    = errors.New("server error")
	ErrShutdown = errors.New("server shutdown failed")
)

// New creates an http.Server for addr with production timeouts.
func New(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run binds srv.Addr and serves until ctx is done, then shuts down.
// A bind failure is returned immediately, before anything is served.
func Run(ctx context.Context, srv *http.Server) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("%w on %s: %w", ErrListen, srv.Addr, err)
	}

	return Serve(ctx, srv, ln)
}

// Serve is Run with a caller-provided listener. It takes ownership of ln.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	serverErr := make(chan error, 1)

	go func() {
		slog.Info("starting server", "server_addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("%w: %w", ErrServe, err)
	case <-ctx.Done():
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%w: %w", ErrShutdown, err)
	}

	slog.Info("server stopped")
	return nil
}
