// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-contacts/internal/config"
	myGRPC "github.com/MKhiriev/go-contacts/internal/handler/grpc"
)

type grpcServer struct {
	server *grpc.Server
	addr   string
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server) *grpcServer {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.LoggingInterceptor))
	handler.Register(srv)

	return &grpcServer{
		server: srv,
		addr:   cfg.GRPCAddress,
	}
}

func (g *grpcServer) name() string {
	return "gRPC"
}

func (g *grpcServer) address() string {
	return g.addr
}

func (g *grpcServer) serve(l net.Listener) error {
	return g.server.Serve(l)
}

// shutdown waits for in-flight calls and falls back to a hard stop when ctx
// expires first.
func (g *grpcServer) shutdown(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
