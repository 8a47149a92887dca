package irc_test

import (
	"testing"
	"time"

	irc "github.com/go-irc/ircore"
	"github.com/go-irc/ircore/irctest"
)

func drainEventKind(t *testing.T, events irc.EventReader, want irc.EventKind, timeout time.Duration) irc.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		if !ok {
			t.Fatalf("event stream closed waiting for %v", want)
		}
		if e.Kind != want {
			t.Fatalf("got event %v, want %v", e.Kind, want)
		}
		return e
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event %v", want)
	}
	return irc.Event{}
}

// TestReconnectSequence is S7: a server that accepts, then drops, then
// accepts again must produce ... Message ... Disconnected, Reconnecting,
// Reconnected, Message ... in that order.
func TestReconnectSequence(t *testing.T) {
	srv, err := irctest.NewServer()
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	defer srv.Stop()

	settings := irc.ReconnectionSettings{
		Reconnect:            true,
		MaxAttempts:          2,
		DelayBetweenAttempts: 0,
		DelayAfterDisconnect: 0,
	}

	_, events, err := irc.Connect(srv.Addr(), settings)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	conn1 := <-srv.Accepted
	if err := irctest.WriteLine(conn1, ":irc.example.org NOTICE * :hello"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	drainEventKind(t, events, irc.EventMessage, 2*time.Second)

	if err := srv.DropCurrent(); err != nil {
		t.Fatalf("DropCurrent: %v", err)
	}

	drainEventKind(t, events, irc.EventDisconnected, 2*time.Second)
	drainEventKind(t, events, irc.EventReconnecting, 2*time.Second)
	drainEventKind(t, events, irc.EventReconnected, 2*time.Second)

	conn2 := <-srv.Accepted
	if err := irctest.WriteLine(conn2, ":irc.example.org NOTICE * :hello again"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	drainEventKind(t, events, irc.EventMessage, 2*time.Second)
}

// TestPolicyExhaustion is S8: a server that accepts then drops and
// rejects further attempts must produce Disconnected, Reconnecting,
// ReconnectionError, Closed(MaxAttemptsReached), and no further events.
func TestPolicyExhaustion(t *testing.T) {
	srv, err := irctest.NewServer()
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	settings := irc.ReconnectionSettings{
		Reconnect:            true,
		MaxAttempts:          1,
		DelayBetweenAttempts: 0,
		DelayAfterDisconnect: 0,
	}

	_, events, err := irc.Connect(srv.Addr(), settings)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	<-srv.Accepted
	if err := srv.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := srv.DropCurrent(); err != nil {
		t.Fatalf("DropCurrent: %v", err)
	}

	drainEventKind(t, events, irc.EventDisconnected, 2*time.Second)
	drainEventKind(t, events, irc.EventReconnecting, 2*time.Second)
	drainEventKind(t, events, irc.EventReconnectionError, 2*time.Second)
	closed := drainEventKind(t, events, irc.EventClosed, 2*time.Second)
	if closed.Reason != irc.MaxAttemptsReached {
		t.Errorf("Closed reason = %v, want MaxAttemptsReached", closed.Reason)
	}

	select {
	case e, ok := <-events:
		if ok {
			t.Fatalf("unexpected event after Closed: %v", e.Kind)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("event channel should have closed after Closed(MaxAttemptsReached)")
	}
}

// TestDoNotReconnect checks that a drop under DoNotReconnectSettings
// produces Disconnected followed by Closed(DoNotReconnect), with no
// reconnect attempt in between.
func TestDoNotReconnect(t *testing.T) {
	srv, err := irctest.NewServer()
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	defer srv.Stop()

	_, events, err := irc.Connect(srv.Addr(), irc.DoNotReconnectSettings())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	<-srv.Accepted
	if err := srv.DropCurrent(); err != nil {
		t.Fatalf("DropCurrent: %v", err)
	}

	drainEventKind(t, events, irc.EventDisconnected, 2*time.Second)
	closed := drainEventKind(t, events, irc.EventClosed, 2*time.Second)
	if closed.Reason != irc.DoNotReconnect {
		t.Errorf("Closed reason = %v, want DoNotReconnect", closed.Reason)
	}
}

// TestManualClose checks that Writer.Close terminates the stream with
// Closed(ManuallyClosed).
func TestManualClose(t *testing.T) {
	srv, err := irctest.NewServer()
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	defer srv.Stop()

	w, events, err := irc.Connect(srv.Addr(), irc.DefaultReconnectionSettings())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	<-srv.Accepted

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	closed := drainEventKind(t, events, irc.EventClosed, 2*time.Second)
	if closed.Reason != irc.ManuallyClosed {
		t.Errorf("Closed reason = %v, want ManuallyClosed", closed.Reason)
	}
}
