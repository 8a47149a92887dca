package irc

import (
	"sync"
	"time"
)

// monitorStatus is the activity monitor's per-connection state machine
// (§3, §4.5), grounded directly on the original activity_monitor.rs:
// the monitor alternates between waiting for activity and waiting for a
// PONG to a PING it already sent.
type monitorStatus int

const (
	monLive monitorStatus = iota
	monPinged
)

// ActivityMonitor is an independent task that watches a connection's
// Event stream via Feed and forces a disconnect on apparent stalls
// (§4.5). It owns its own status cell and an optional server-name cell,
// each behind their own short-lived mutex, and never reads the socket
// itself — it only sends PINGs through the Writer and calls its
// disconnect().
type ActivityMonitor struct {
	settings MonitorSettings
	writer   *Writer
	log      Logger

	mu       sync.Mutex
	status   monitorStatus
	quit     bool
	connLost bool // Disconnected: idle until Reconnected
	lastTS   time.Time

	serverMu sync.Mutex
	server   string
}

// NewActivityMonitor starts the monitor's 1-second background checker
// and returns a handle. writer is used to send PINGs and to force a
// disconnect when a PONG never arrives.
func NewActivityMonitor(writer *Writer, settings MonitorSettings, log Logger) *ActivityMonitor {
	if log == nil {
		log = NopLogger
	}
	m := &ActivityMonitor{
		settings: settings,
		writer:   writer,
		log:      log,
		status:   monLive,
		lastTS:   time.Now(),
	}
	go m.run()
	return m
}

// Feed gives the monitor an event observed on the connection's Event
// stream (§4.5's feed entry point).
func (m *ActivityMonitor) Feed(e Event) {
	switch e.Kind {
	case EventClosed:
		m.mu.Lock()
		m.quit = true
		m.mu.Unlock()
	case EventDisconnected:
		m.mu.Lock()
		m.connLost = true
		m.mu.Unlock()
		m.serverMu.Lock()
		m.server = ""
		m.serverMu.Unlock()
	case EventReconnected:
		m.mu.Lock()
		m.connLost = false
		m.status = monLive
		m.lastTS = time.Now()
		m.mu.Unlock()
	case EventMessage:
		m.mu.Lock()
		m.status = monLive
		m.lastTS = time.Now()
		m.mu.Unlock()
		if e.Message != nil && e.Message.Prefix.IsServer() {
			m.serverMu.Lock()
			if m.server == "" {
				m.server = e.Message.Prefix.Host
			}
			m.serverMu.Unlock()
		}
	}
}

// Close stops the monitor's background checker. The connection itself
// is unaffected — this only releases the monitor's own goroutine,
// mirroring the original's Drop implementation.
func (m *ActivityMonitor) Close() {
	m.mu.Lock()
	m.quit = true
	m.mu.Unlock()
}

func (m *ActivityMonitor) run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		if m.tick() {
			return
		}
	}
}

// tick inspects the monitor's state once and reports whether the
// background checker should exit.
func (m *ActivityMonitor) tick() (done bool) {
	m.mu.Lock()
	quit := m.quit
	connLost := m.connLost
	status := m.status
	lastTS := m.lastTS
	m.mu.Unlock()

	if quit {
		return true
	}
	if connLost {
		return false
	}

	now := time.Now()
	switch status {
	case monLive:
		if now.Sub(lastTS) <= m.settings.ActivityTimeout {
			return false
		}
		m.serverMu.Lock()
		server := m.server
		m.serverMu.Unlock()
		if server == "" {
			// Should never happen in practice: the server name is set
			// from the first server-prefixed message after connect.
			// Skip this tick rather than crash (§13).
			return false
		}
		m.mu.Lock()
		m.status = monPinged
		m.lastTS = now
		m.mu.Unlock()
		if err := m.writer.Ping(server); err != nil {
			m.log.Warn("irc: monitor ping failed", F("error", err))
		}
	case monPinged:
		if now.Sub(lastTS) <= m.settings.PingTimeout {
			return false
		}
		m.log.Warn("irc: ping timeout, forcing disconnect", F("error", errPingTimeout))
		if err := m.writer.disconnect(); err != nil {
			m.log.Debug("irc: monitor disconnect no-op", F("error", err))
		}
	}
	return false
}
