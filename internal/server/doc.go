// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, OS signal handling, and graceful
// shutdown. Request routing and middleware live in the handler package; this
// package only hosts the resulting handler.
package server
