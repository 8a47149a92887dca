/*
Package irc provides a resilient IRC connection core: a long-lived,
supervised TCP session that parses inbound lines, dispatches them as a
typed Event stream, survives transient network failures through a
configurable reconnection policy, and keeps an independent activity
monitor that injects PING heartbeats and declares a connection dead
when no activity returns.

# API

Connect dials a server and returns a Writer and an EventReader:

	w, events, err := irc.Connect("irc.example.org:6667", irc.DefaultReconnectionSettings())
	if err != nil {
		log.Fatal(err)
	}
	w.Nick("bot")
	w.User("bot", "example bot")

	for e := range events {
		switch e.Kind {
		case irc.EventMessage:
			fmt.Println(e.Message.Code, e.Message.Args, e.Message.Trailing)
		case irc.EventDisconnected:
			fmt.Println("disconnected, reconnect loop engaging")
		case irc.EventClosed:
			fmt.Println("connection closed:", e.Reason)
			return
		}
	}

Router is an optional convenience for dispatching that stream by Code
or EventKind instead of a bare switch:

	var r irc.Router
	r.OnConnect(func(w *irc.Writer, e irc.Event) { w.Join("#example", "") })
	r.OnText("!ping", func(w *irc.Writer, e irc.Event) {
		target, _ := e.Message.Target()
		w.Privmsg(target, "pong")
	})
	for e := range events {
		r.HandleEvent(w, e)
	}

ActivityMonitor watches the same Event stream and keeps the connection
alive on its own schedule:

	mon := irc.NewActivityMonitor(w, irc.DefaultMonitorSettings(), nil)
	for e := range events {
		mon.Feed(e)
		r.HandleEvent(w, e)
	}

# Configuration

Hosts that already keep their configuration in viper can load
ReconnectionSettings and MonitorSettings straight out of it instead of
hand-assembling the structs:

	v := viper.New()
	irc.RegisterSettingsDefaults(v)
	v.SetConfigFile("bot.yaml")
	v.ReadInConfig()

	w, events, err := irc.Connect(addr, irc.LoadReconnectionSettings(v))

# Parsing and rendering

Parse and the Command implementations in command.go are pure and don't
touch a socket; they're usable standalone for testing or for tooling
that only needs to read or produce IRC-formatted lines.

# Scope

This package is the connection core only: CTCP, DCC, SASL, TLS,
channel/user bookkeeping, and flood control are out of scope. Hosts
that need them build on top of the Event stream and Writer this package
exposes.
*/
package irc
