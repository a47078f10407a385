// Package server wires and runs the application's HTTP server.
//
// It provides lifecycle orchestration: startup, POSIX signal handling, and
// graceful shutdown with connection draining.
package server
