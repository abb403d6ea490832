// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/the-todo-way/internal/config"
	"github.com/MKhiriev/the-todo-way/internal/handler"
	"github.com/MKhiriev/the-todo-way/internal/logger"
)

type server struct {
	httpServer   *httpServer
	lambdaServer *lambdaServer
	logger       *logger.Logger
}

// NewServer picks the transport for cfg: a Lambda runtime when the
// environment is deployed, an HTTP listener otherwise.
func NewServer(handlers *handler.Handlers, cfg *config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Str("environment", cfg.App.Environment).Msg("creating new server...")
	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	router := handlers.HTTP.Init()
	servers := &server{logger: logger}

	lambdaHandler, err := NewLambdaHandler(cfg.App, cfg.Server, router)
	if err != nil {
		return nil, err
	}

	if lambdaHandler != nil {
		servers.lambdaServer = newLambdaServer(lambdaHandler, logger)
	} else {
		servers.httpServer = newHTTPServer(router, cfg.Server, logger)
	}

	return servers, nil
}

func (s *server) RunServer() {
	if s.lambdaServer != nil {
		s.lambdaServer.RunServer()
		return
	}

	s.run()
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.lambdaServer != nil {
		s.lambdaServer.Shutdown()
	}
}

func (s *server) run() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case err := <-serveErr:
		// the listener never came up or died on its own
		if err != nil {
			s.logger.Err(err).Msg("HTTP server stopped")
		}
		return
	case <-ctx.Done():
	}

	s.Shutdown()
	<-serveErr
	s.logger.Info().Msg("server Shutdown gracefully")
}
