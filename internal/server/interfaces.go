// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
)

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// Run serves requests until ctx is done or a transport stops with an
	// error, then shuts every transport down.
	Run(ctx context.Context) error
}

// transport is a single protocol server bound to one address.
type transport interface {
	name() string
	address() string

	// serve blocks until the transport is shut down. A graceful stop
	// returns nil.
	serve(l net.Listener) error
	shutdown(ctx context.Context) error
}
