package irc

import "errors"

// The Writer errors below are returned synchronously to the caller of a
// Writer operation (§7); they never affect the reader loop or activity
// monitor.
var (
	// ErrAlreadyClosed is returned by close() when the writer is
	// already Closed.
	ErrAlreadyClosed = errors.New("irc: writer already closed")
	// ErrAlreadyDisconnected is returned by disconnect() when the
	// writer is already Disconnected.
	ErrAlreadyDisconnected = errors.New("irc: writer already disconnected")
	// ErrClosed is returned by raw() (and the convenience helpers built
	// on it) when the writer is Closed.
	ErrClosed = errors.New("irc: writer is closed")
	// ErrDisconnected is returned by raw() when the writer is
	// Disconnected, i.e. between a dropped socket and a successful
	// reconnect.
	ErrDisconnected = errors.New("irc: writer is disconnected")
)

// errPingTimeout is the internal sentinel the activity monitor logs
// against when it forces a disconnect for lack of a PONG.
var errPingTimeout = errors.New("irc: ping timeout")
