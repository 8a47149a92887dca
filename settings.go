package irc

import "time"

// ReconnectionSettings governs whether and how the reader loop (C4)
// reestablishes a dropped connection (§3).
//
// The zero value never reconnects: it is identical to
// DoNotReconnectSettings(). Use DefaultReconnectionSettings() for the
// standard reconnect policy.
type ReconnectionSettings struct {
	// Reconnect, when false, makes the reader loop terminate with
	// Closed(DoNotReconnect) on the first dropped socket.
	Reconnect bool

	// MaxAttempts bounds the reconnect sub-loop. Zero means unbounded.
	MaxAttempts int

	// DelayBetweenAttempts is how long the reconnect sub-loop sleeps
	// between a failed dial and the next attempt.
	DelayBetweenAttempts time.Duration

	// DelayAfterDisconnect is how long the reader loop sleeps after
	// emitting Disconnected and before entering the reconnect sub-loop.
	DelayAfterDisconnect time.Duration
}

// DefaultReconnectionSettings returns the spec's documented defaults:
// up to 10 attempts, 5s between attempts, 60s after a disconnect before
// the first attempt.
func DefaultReconnectionSettings() ReconnectionSettings {
	return ReconnectionSettings{
		Reconnect:            true,
		MaxAttempts:          10,
		DelayBetweenAttempts: 5 * time.Second,
		DelayAfterDisconnect: 60 * time.Second,
	}
}

// DoNotReconnectSettings returns settings under which the reader loop
// exits with Closed(DoNotReconnect) on the first dropped socket.
func DoNotReconnectSettings() ReconnectionSettings {
	return ReconnectionSettings{Reconnect: false}
}

// exhausted reports whether attempt (1-indexed) exceeds MaxAttempts.
// MaxAttempts == 0 means unbounded, so exhausted is always false then.
func (s ReconnectionSettings) exhausted(attempt int) bool {
	return s.MaxAttempts > 0 && attempt > s.MaxAttempts
}

// MonitorSettings configures the activity monitor (C5): how long a
// connection may go without any inbound activity before a PING is
// sent, and how long it may go without any activity after that PING
// before the connection is judged dead.
type MonitorSettings struct {
	ActivityTimeout time.Duration
	PingTimeout     time.Duration
}

// DefaultMonitorSettings returns the spec's documented defaults: 60s
// activity timeout, 15s ping timeout.
func DefaultMonitorSettings() MonitorSettings {
	return MonitorSettings{
		ActivityTimeout: 60 * time.Second,
		PingTimeout:     15 * time.Second,
	}
}
