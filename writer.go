package irc

import (
	"io"
	"sync"
)

type writerState int

const (
	wsConnected writerState = iota
	wsDisconnected
	wsClosed
)

// Writer is a thread-safe, cloneable handle onto the outbound half of a
// connection and its lifecycle state (§4.3). The zero value is not
// usable; obtain a Writer from Connect.
//
// A Writer's (state, socket) pair lives behind a single mutex held for
// the duration of each write/close/disconnect, per §5's discipline: no
// lock is held across I/O on a different resource, and nothing nests
// inside it.
type Writer struct {
	mu    sync.Mutex
	state writerState
	conn  io.ReadWriteCloser
	log   Logger

	done     chan struct{}
	doneOnce sync.Once
}

func newWriter(conn io.ReadWriteCloser, log Logger) *Writer {
	if log == nil {
		log = NopLogger
	}
	return &Writer{state: wsConnected, conn: conn, log: log, done: make(chan struct{})}
}

// Done returns a channel closed exactly once, when this Writer reaches
// the terminal Closed state. The reader loop selects on it to unblock
// an event send if whoever would drain the consumer side has gone away
// along with the connection (Go channels, unlike Rust's mpsc, give no
// direct signal when a receiver is dropped, so close() is the practical
// stand-in).
func (w *Writer) Done() <-chan struct{} {
	return w.done
}

// Clone returns w. A Writer is already a shared, reference-counted
// handle (a pointer guarded by its own mutex), so cloning it is simply
// sharing the pointer across goroutines — there is nothing to copy.
func (w *Writer) Clone() *Writer {
	return w
}

// raw attempts to write b verbatim to the socket. On write error, it
// transitions Connected -> Disconnected atomically and returns
// ErrDisconnected. If already Disconnected or Closed, it returns the
// matching error without touching the socket.
func (w *Writer) raw(b []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case wsClosed:
		return ErrClosed
	case wsDisconnected:
		return ErrDisconnected
	}

	if _, err := w.conn.Write(b); err != nil {
		w.state = wsDisconnected
		w.log.Warn("irc: write failed, marking writer disconnected", F("error", err))
		return ErrDisconnected
	}
	return nil
}

// Raw writes s to the socket verbatim, appending nothing. Most callers
// want a convenience helper instead; Raw exists for commands this
// package doesn't name (see RawCmd).
func (w *Writer) Raw(s string) error {
	return w.raw([]byte(s))
}

// send renders cmd and writes it CRLF-terminated (§13's resolved
// terminator decision).
func (w *Writer) send(cmd Command) error {
	return w.raw([]byte(cmd.Render() + "\r\n"))
}

// disconnect force-drops the socket and transitions to Disconnected,
// allowing the reader loop's reconnection path to engage. It is an
// error to disconnect a Writer that is already Disconnected or Closed.
func (w *Writer) disconnect() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case wsClosed:
		return ErrAlreadyClosed
	case wsDisconnected:
		return ErrAlreadyDisconnected
	}
	w.state = wsDisconnected
	return w.conn.Close()
}

// close force-drops the socket and transitions to Closed. Closed is
// terminal (§3: "the writer state never transitions out of Closed") —
// calling close again returns ErrAlreadyClosed rather than re-closing
// the socket.
func (w *Writer) close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == wsClosed {
		return ErrAlreadyClosed
	}
	w.state = wsClosed
	w.doneOnce.Do(func() { close(w.done) })
	return w.conn.Close()
}

// Close is the exported form of close, matching the Connect API
// surface described in §6.2.
func (w *Writer) Close() error {
	return w.close()
}

// Disconnect is the exported form of disconnect.
func (w *Writer) Disconnect() error {
	return w.disconnect()
}

// IsClosed reports whether the writer has reached the terminal Closed
// state.
func (w *Writer) IsClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state == wsClosed
}

// markDisconnected transitions Connected -> Disconnected without
// touching the socket, used by the reader loop when its read fails
// (the socket is already dead; there is nothing left to close cleanly
// beyond what the read error already told us).
func (w *Writer) markDisconnected() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == wsConnected {
		w.state = wsDisconnected
	}
}

// installConn atomically swaps in a freshly dialed socket and marks the
// writer Connected again. It is used exclusively by the reader loop's
// reconnection path (§4.4) and is a no-op error if the writer has since
// been explicitly closed out from under the reconnect attempt.
func (w *Writer) installConn(conn io.ReadWriteCloser) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == wsClosed {
		_ = conn.Close()
		return ErrClosed
	}
	w.conn = conn
	w.state = wsConnected
	return nil
}

// Nick sends a NICK command.
func (w *Writer) Nick(nick string) error { return w.send(NickCmd{Nick: nick}) }

// User sends a USER command.
func (w *Writer) User(user, realname string) error {
	return w.send(UserCmd{User: user, Realname: realname})
}

// Pass sends a PASS command.
func (w *Writer) Pass(password string) error { return w.send(PassCmd{Password: password}) }

// Join sends a JOIN command. key may be empty.
func (w *Writer) Join(channel, key string) error {
	return w.send(JoinCmd{Channel: channel, Key: key})
}

// Part sends a PART command. msg may be empty.
func (w *Writer) Part(channel, msg string) error {
	return w.send(PartCmd{Channel: channel, Message: msg})
}

// Privmsg sends a PRIVMSG command.
func (w *Writer) Privmsg(target, text string) error {
	return w.send(PrivmsgCmd{Target: target, Text: text})
}

// Notice sends a NOTICE command.
func (w *Writer) Notice(target, text string) error {
	return w.send(NoticeCmd{Target: target, Text: text})
}

// Ping sends a PING command.
func (w *Writer) Ping(server string) error {
	return w.send(PingCmd{Server1: server})
}

// Pong sends a PONG command.
func (w *Writer) Pong(server string) error {
	return w.send(PongCmd{Server1: server})
}

// Quit sends a QUIT command. msg may be empty.
func (w *Writer) Quit(msg string) error {
	return w.send(QuitCmd{Message: msg})
}
