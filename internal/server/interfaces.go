package server

// Server is the lifecycle contract the cmd binaries drive: RunServer blocks
// until a stop signal arrives and the listeners have drained, while Shutdown
// lets callers stop serving early.
type Server interface {
	// RunServer serves requests until shutdown and only then returns.
	RunServer()

	// Shutdown drains in-flight requests and closes the listeners.
	Shutdown()
}
