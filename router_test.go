package irc_test

import (
	"testing"

	irc "github.com/go-irc/ircore"
)

func mustParse(t *testing.T, line string) *irc.Message {
	t.Helper()
	m, err := irc.Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", line, err)
	}
	return m
}

func TestRouterOnConnect(t *testing.T) {
	var r irc.Router
	var called bool
	r.OnConnect(func(w *irc.Writer, e irc.Event) { called = true })

	r.HandleEvent(nil, irc.Event{Kind: irc.EventMessage, Message: mustParse(t, ":irc.example.org 001 nick :Welcome")})
	if !called {
		t.Errorf("OnConnect handler was not called for RPL_WELCOME")
	}

	called = false
	r.HandleEvent(nil, irc.Event{Kind: irc.EventMessage, Message: mustParse(t, "PING")})
	if called {
		t.Errorf("OnConnect handler fired for an unrelated message")
	}
}

func TestRouterOnText(t *testing.T) {
	var r irc.Router
	var gotTarget string
	r.OnText("!ping", func(w *irc.Writer, e irc.Event) {
		target, _ := e.Message.Target()
		gotTarget = target
	})

	r.HandleEvent(nil, irc.Event{Kind: irc.EventMessage, Message: mustParse(t, ":bob!bob@bob.com PRIVMSG #c :!ping")})
	if gotTarget != "#c" {
		t.Errorf("gotTarget = %q, want %q", gotTarget, "#c")
	}

	gotTarget = ""
	r.HandleEvent(nil, irc.Event{Kind: irc.EventMessage, Message: mustParse(t, ":bob!bob@bob.com PRIVMSG #c :not a match")})
	if gotTarget != "" {
		t.Errorf("handler fired for non-matching text: gotTarget = %q", gotTarget)
	}
}

func TestRouterOnKind(t *testing.T) {
	var r irc.Router
	var n int
	r.On(irc.EventDisconnected, func(w *irc.Writer, e irc.Event) { n++ })

	r.HandleEvent(nil, irc.Event{Kind: irc.EventDisconnected})
	r.HandleEvent(nil, irc.Event{Kind: irc.EventReconnected})
	r.HandleEvent(nil, irc.Event{Kind: irc.EventDisconnected})

	if n != 2 {
		t.Errorf("handler ran %d times, want 2", n)
	}
}

func TestRouterMiddlewareRunsOnEveryEvent(t *testing.T) {
	var r irc.Router
	var seen []irc.EventKind
	r.Use(func(next irc.Handler) irc.Handler {
		return irc.HandlerFunc(func(w *irc.Writer, e irc.Event) {
			seen = append(seen, e.Kind)
			next.HandleEvent(w, e)
		})
	})
	r.On(irc.EventReconnected, func(w *irc.Writer, e irc.Event) {})

	r.HandleEvent(nil, irc.Event{Kind: irc.EventDisconnected})
	r.HandleEvent(nil, irc.Event{Kind: irc.EventReconnected})

	if len(seen) != 2 {
		t.Fatalf("middleware saw %d events, want 2", len(seen))
	}
}
