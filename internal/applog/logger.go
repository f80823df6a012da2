// Package applog provides the structured logger the CLI uses for
// operational messages, backed by logrus the way liftbridge's
// server/logger/logger.go wraps it.
package applog

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Logger is the narrow logging surface the rest of this codebase depends
// on, so tests can inject a discard or buffered logger without pulling
// in logrus directly.
type Logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Errorf(string, ...interface{})
	Fatalf(string, ...interface{})
	Writer() io.Writer
	SetWriter(io.Writer)
}

type logger struct {
	*log.Logger
}

// New returns a Logger at the given level, formatted the way liftbridge
// formats its own: full timestamps, no fancy colorization dependency on
// the terminal.
func New(level log.Level) Logger {
	l := log.New()
	l.SetLevel(level)
	l.Formatter = &log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}
	return &logger{l}
}

func (l *logger) Writer() io.Writer     { return l.Out }
func (l *logger) SetWriter(w io.Writer) { l.Out = w }

// Discard returns a Logger that drops everything, for tests that need a
// Logger but not its output.
func Discard() Logger {
	l := New(log.ErrorLevel)
	l.SetWriter(io.Discard)
	return l
}
