// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/handler"
	"github.com/MKhiriev/go-contacts/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	transports []transport
	logger     *logger.Logger
}

// NewServer creates a transport server for every handler in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg))
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) Run(ctx context.Context) error {
	listeners := make([]net.Listener, 0, len(s.transports))
	for _, t := range s.transports {
		l, err := net.Listen("tcp", t.address())
		if err != nil {
			for _, opened := range listeners {
				_ = opened.Close()
			}
			return fmt.Errorf("error listening %s on %q: %w", t.name(), t.address(), err)
		}
		listeners = append(listeners, l)
	}

	errs := make(chan error, len(s.transports))
	for i, t := range s.transports {
		s.logger.Info().Str("address", listeners[i].Addr().String()).Msgf("launching %s server", t.name())
		go func() {
			if err := t.serve(listeners[i]); err != nil {
				errs <- fmt.Errorf("%s server stopped: %w", t.name(), err)
				return
			}
			errs <- nil
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown requested")
	case runErr = <-errs:
		s.logger.Err(runErr).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, t := range s.transports {
		if err := t.shutdown(shutdownCtx); err != nil {
			s.logger.Err(err).Msgf("error shutting down %s server", t.name())
			runErr = errors.Join(runErr, err)
		}
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return runErr
}
