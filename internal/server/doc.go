// Package server runs the transport servers of the contact book.
//
// It listens on every configured address, serves until the run context is
// cancelled or a transport fails, then shuts all transports down gracefully.
package server
