// Package http implements the HTML transport layer of the gateway.
//
// It exposes route wiring, form handlers, server-rendered pages and the
// middleware chain. Tracing, access logging, security headers, metrics and
// the session guard run here before requests reach the service layer.
package http
