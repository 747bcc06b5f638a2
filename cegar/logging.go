package cegar

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Verbosity is one of the four logging levels of spec §6's Logger
// interface.
type Verbosity int

const (
	Silent Verbosity = iota
	Normal
	Verbose
	Debug
)

// Logger is a leveled logger gated by a Verbosity, wrapping a logrus
// entry. Each formatting call checks the level before delegating to
// logrus, matching the "no per-call formatting when disabled" rule of
// spec §9.
type Logger struct {
	verbosity Verbosity
	entry     *logrus.Entry
}

// NewLogger returns a Logger that writes through base at the given
// verbosity. If base's own level would filter out the logrus levels that
// verbosity maps to (Debug for Verbose, Trace for Debug), base's level is
// lowered accordingly.
func NewLogger(verbosity Verbosity, base *logrus.Logger) *Logger {
	switch {
	case verbosity >= Debug && !base.IsLevelEnabled(logrus.TraceLevel):
		base.SetLevel(logrus.TraceLevel)
	case verbosity >= Verbose && !base.IsLevelEnabled(logrus.DebugLevel):
		base.SetLevel(logrus.DebugLevel)
	}
	return &Logger{verbosity: verbosity, entry: logrus.NewEntry(base)}
}

// NewNopLogger returns a Logger that discards everything; useful for
// tests and callers that don't want CEGAR's internal logging.
func NewNopLogger() *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	return NewLogger(Silent, base)
}

// WithField returns a copy of l whose log lines additionally carry the
// given field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{verbosity: l.verbosity, entry: l.entry.WithField(key, value)}
}

func (l *Logger) Normalf(format string, args ...interface{}) {
	if l.verbosity >= Normal {
		l.entry.Infof(format, args...)
	}
}

func (l *Logger) Verbosef(format string, args ...interface{}) {
	if l.verbosity >= Verbose {
		l.entry.Debugf(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.verbosity >= Debug {
		l.entry.Tracef(format, args...)
	}
}
