package irc

import "github.com/sirupsen/logrus"

// Field is a single structured log attribute, following the field-based
// entry shape used throughout nabbar-golib/logger rather than printf
// style formatting.
type Field struct {
	Key   string
	Value any
}

// F is a convenience constructor for Field, used at call sites the way
// logrus.Fields entries are built inline.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger is the small structured-logging surface the connection core
// depends on. Debug/Info/Warn/Error each accept a message and any
// number of Fields describing the event. Hosts that don't want log
// output can leave it at its zero value, NopLogger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// NopLogger discards everything. It is the default Logger used when a
// caller does not supply one, so the core never forces a logging
// dependency on silent callers.
var NopLogger Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}

// LogrusLogger adapts a *logrus.Logger to Logger, mirroring
// nabbar-golib/logger's choice of logrus as its default backend.
type LogrusLogger struct {
	L *logrus.Logger
}

// NewLogrusLogger returns a LogrusLogger wrapping l. If l is nil,
// logrus.StandardLogger() is used.
func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusLogger{L: l}
}

func (g *LogrusLogger) entry(fields ...Field) *logrus.Entry {
	f := make(logrus.Fields, len(fields))
	for _, fd := range fields {
		f[fd.Key] = fd.Value
	}
	return g.L.WithFields(f)
}

func (g *LogrusLogger) Debug(msg string, fields ...Field) { g.entry(fields...).Debug(msg) }
func (g *LogrusLogger) Info(msg string, fields ...Field)  { g.entry(fields...).Info(msg) }
func (g *LogrusLogger) Warn(msg string, fields ...Field)  { g.entry(fields...).Warn(msg) }
func (g *LogrusLogger) Error(msg string, fields ...Field) { g.entry(fields...).Error(msg) }
