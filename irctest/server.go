// Package irctest provides a mock IRC server for exercising
// github.com/go-irc/ircore's Connect against a real dialable address —
// needed because the reconnect sub-loop in connect.go redials the
// original address, which an in-memory pipe can't satisfy.
package irctest

import (
	"bufio"
	"net"
	"sync"
)

// Server is a minimal IRC server backed by a real net.Listener. It
// accepts connections in the background and hands each one to the test
// via the Accepted channel; tests read/write raw lines directly on the
// returned net.Conn.
type Server struct {
	ln net.Listener

	mu      sync.Mutex
	current net.Conn

	// Accepted receives every newly accepted connection, in order. It
	// is buffered so the accept loop never blocks waiting for a test to
	// drain it.
	Accepted chan net.Conn
}

// NewServer starts listening on an ephemeral localhost port and begins
// accepting connections in the background.
func NewServer() (*Server, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	s := &Server{
		ln:       ln,
		Accepted: make(chan net.Conn, 16),
	}
	go s.acceptLoop()
	return s, nil
}

// Addr returns the host:port a client should dial to reach this server.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.current = conn
		s.mu.Unlock()
		s.Accepted <- conn
	}
}

// Current returns the most recently accepted connection, or nil if none
// has been accepted yet.
func (s *Server) Current() net.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// DropCurrent closes the most recently accepted connection, simulating
// a server-initiated disconnect. The listener stays open, so a
// reconnecting client will be accepted again on Server.Accepted.
func (s *Server) DropCurrent() error {
	conn := s.Current()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

// Stop closes the listener, so any further dial to Addr() fails with
// connection refused — used to simulate policy exhaustion (S8), where
// reconnect attempts after the first drop must fail outright.
func (s *Server) Stop() error {
	return s.ln.Close()
}

// WriteLine writes s to conn, CRLF-terminated, the way a real server
// would send a line to the client.
func WriteLine(conn net.Conn, s string) error {
	_, err := conn.Write([]byte(s + "\r\n"))
	return err
}

// NewLineReader wraps conn for reading lines the client writes to it.
// Callers should keep the returned *bufio.Reader around across calls —
// constructing a fresh one per read risks losing bytes already buffered
// ahead of the line just consumed.
func NewLineReader(conn net.Conn) *bufio.Reader {
	return bufio.NewReader(conn)
}
