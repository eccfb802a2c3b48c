// Package server runs the HTTP server of the gateway.
//
// It owns startup, signal handling, and graceful shutdown bounded by the
// configured timeout.
package server
