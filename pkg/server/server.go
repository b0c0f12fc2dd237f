/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/catalog"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/quota"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/resolver"
)

// Deps are the read-only snapshots and engine the server serves from.
type Deps struct {
	Catalog  *catalog.Catalog
	Ledger   *quota.Ledger
	Resolver *resolver.Resolver
}

// Server represents the HTTP server
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	mu          sync.RWMutex
	ready       bool

	catalog  *catalog.Catalog
	ledger   *quota.Ledger
	resolver *resolver.Resolver
}

// NewServer creates a new server instance
func NewServer(config *Config, deps Deps) (*Server, error) {
	if config == nil {
		config = NewConfig()
	}
	if deps.Catalog == nil {
		return nil, errors.New(errors.ErrCodeConfiguration, "server requires a catalog")
	}
	if deps.Resolver == nil {
		deps.Resolver = resolver.Default()
	}

	s := &Server{
		config:      config,
		rateLimiter: rate.NewLimiter(config.RateLimit, config.RateLimitBurst),
		catalog:     deps.Catalog,
		ledger:      deps.Ledger,
		resolver:    deps.Resolver,
	}

	// Setup HTTP server
	mux := s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Address, config.Port),
		Handler:      mux,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return s, nil
}

// SetReady marks the server as ready to serve traffic
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Handler exposes the configured routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.SetReady(true)

	slog.Info("starting server",
		"addr", s.httpServer.Addr,
		"region", s.catalog.Region(),
		"skus", s.catalog.Len())

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run starts the server with graceful shutdown handling
func Run(config *Config, deps Deps) error {
	server, err := NewServer(config, deps)
	if err != nil {
		return err
	}

	slog.Info("server config",
		slog.String("address", server.httpServer.Addr),
		slog.Int("port", server.config.Port),
		slog.Any("rateLimit", server.config.RateLimit),
		slog.Int("rateLimitBurst", server.config.RateLimitBurst),
		slog.Duration("readTimeout", server.config.ReadTimeout),
		slog.Duration("writeTimeout", server.config.WriteTimeout),
		slog.Duration("idleTimeout", server.config.IdleTimeout),
		slog.Duration("shutdownTimeout", server.config.ShutdownTimeout),
	)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Use errgroup for concurrent operations
	g, gctx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		return server.Start(gctx)
	})

	// Wait for completion or error
	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
