package server

import "errors"

var (
	// ErrSessionClosed is returned when dispatching to or pushing on a
	// session that has already shut down.
	ErrSessionClosed = errors.New("server: session closed")

	// ErrQueueFull is returned when a session's dispatch queue is at
	// capacity. The caller decides whether to drop or retry.
	ErrQueueFull = errors.New("server: dispatch queue full")
)
