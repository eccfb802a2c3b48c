package server

// Server defines the lifecycle contract of the gateway's server.
type Server interface {
	// RunServer serves requests until a stop signal arrives or the listener
	// fails. It returns nil after a graceful shutdown.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
