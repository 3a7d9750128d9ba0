// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlukashe/go-photo-keeper/internal/config"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server is the lifecycle contract for the dev API transport.
//
// RunServer blocks until a stop signal arrives and the listener has drained.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(routes http.Handler, cfg config.DevServer, logger *logger.Logger) Server {
	return &server{
		httpServer: &http.Server{
			Addr:    cfg.Address,
			Handler: routes,
		},
		logger: logger,
	}
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("launching HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Err(err).Str("func", "RunServer").Msg("HTTP server stopped")
		return
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shut down gracefully")
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Err(err).Str("func", "Shutdown").Msg("HTTP server shutdown")
	}
}
