package irc

import (
	"bufio"
	"io"
	"net"
	"time"

	"github.com/hashicorp/go-multierror"
)

// DialFunc dials address and returns a stream of CRLF-delimited IRC
// lines. The default, used when Connect is called without one, dials
// address as plain TCP; callers that need TLS, WebSockets, or a test
// double supply their own (mirroring the teacher's DialFn field).
type DialFunc func(address string) (io.ReadWriteCloser, error)

func defaultDial(address string) (io.ReadWriteCloser, error) {
	return net.Dial("tcp", address)
}

// Connect dials address and returns a Writer for sending commands and
// an EventReader for consuming the connection's event stream (§6.2).
// On success, a dedicated reader task (§4.4) is already running; it
// owns the inbound half of the stream until a terminal Closed event is
// emitted, applying settings across any dropped sockets. Connect
// returns an error only if the initial dial fails.
func Connect(address string, settings ReconnectionSettings) (*Writer, EventReader, error) {
	return ConnectWith(address, settings, defaultDial, NopLogger)
}

// ConnectWith is Connect with an overridable DialFunc and Logger, used
// by tests and by hosts that need a non-TCP transport.
func ConnectWith(address string, settings ReconnectionSettings, dial DialFunc, log Logger) (*Writer, EventReader, error) {
	if dial == nil {
		dial = defaultDial
	}
	if log == nil {
		log = NopLogger
	}

	conn, err := dial(address)
	if err != nil {
		return nil, nil, err
	}

	w := newWriter(conn, log)
	events := make(chan Event)

	r := &reader{
		address:  address,
		settings: settings,
		dial:     dial,
		log:      log,
		writer:   w,
		events:   events,
		br:       bufio.NewReader(conn),
	}
	go r.run()

	return w, events, nil
}

// reader is the C4 reader loop: the only task that reads the socket,
// and the only task that drives the reconnection state machine.
type reader struct {
	address  string
	settings ReconnectionSettings
	dial     DialFunc
	log      Logger

	writer *Writer
	events chan Event
	br     *bufio.Reader
}

// emit pushes e to the consumer, blocking until it's received. It
// reports false if the writer was closed before the send could
// complete — the stand-in this package uses for "consumer gone" (§4.4
// step 4), since Go channels don't otherwise signal an abandoned
// receiver the way Rust's mpsc does.
//
// emit must not be used for a terminal Closed event: a manual
// Writer.Close is exactly what fires writer.Done(), so racing the send
// against that same channel would make the Closed event that explains
// the close a coin flip. Terminal events go through deliver instead.
func (r *reader) emit(e Event) bool {
	select {
	case r.events <- e:
		return true
	case <-r.writer.Done():
		return false
	}
}

// deliver sends a terminal Closed event to the consumer with a plain
// blocking send, guaranteeing it is not discarded by a race against
// writer.Done() — the writer being Closed is often the very reason
// this event is being sent (§5, §7).
func (r *reader) deliver(e Event) {
	r.events <- e
}

func (r *reader) run() {
	defer close(r.events)
	defer r.writer.close()

	for {
		line, err := r.br.ReadString('\n')
		if err != nil {
			if !r.handleReadError() {
				return
			}
			continue
		}
		if line == "" {
			continue
		}
		m, perr := Parse(line)
		if perr != nil {
			if !r.emit(parseErrorEvent(perr)) {
				return
			}
			continue
		}
		if !r.emit(messageEvent(m)) {
			return
		}
	}
}

// handleReadError runs step 2 of §4.4's algorithm contract: it decides
// whether the reader should keep running (true, with a fresh socket
// installed) or exit (false, after emitting a terminal Closed event).
func (r *reader) handleReadError() (keepGoing bool) {
	if r.writer.IsClosed() {
		r.deliver(closedEvent(ManuallyClosed))
		return false
	}

	r.writer.markDisconnected()
	r.emit(disconnectedEvent())

	if !r.settings.Reconnect {
		r.deliver(closedEvent(DoNotReconnect))
		return false
	}

	time.Sleep(r.settings.DelayAfterDisconnect)
	return r.reconnectLoop()
}

// reconnectLoop runs the reconnect sub-loop of §4.4 step 2: it retries
// dialing r.address until it succeeds, the policy is exhausted, or
// installing the fresh socket into the writer fails because the writer
// was closed out from under it.
func (r *reader) reconnectLoop() (keepGoing bool) {
	var failures *multierror.Error

	for attempt := 1; ; attempt++ {
		if r.settings.exhausted(attempt) {
			r.deliver(closedEventWithErr(MaxAttemptsReached, failures.ErrorOrNil()))
			return false
		}
		r.emit(reconnectingEvent())

		conn, err := r.dial(r.address)
		if err != nil {
			r.log.Debug("irc: reconnect attempt failed", F("attempt", attempt), F("error", err))
			failures = multierror.Append(failures, err)
			r.emit(reconnectionErrorEvent(err))
			time.Sleep(r.settings.DelayBetweenAttempts)
			continue
		}

		if err := r.writer.installConn(conn); err != nil {
			// Writer was closed while we were dialing: treat this the
			// same as a manual close, since nobody can observe the new
			// socket anyway.
			r.deliver(closedEvent(ManuallyClosed))
			return false
		}

		r.br = bufio.NewReader(conn)
		r.emit(reconnectedEvent())
		return true
	}
}
