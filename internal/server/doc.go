// Package server runs the HTTP validation service.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
