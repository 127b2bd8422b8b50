// Package logrus adapts sirupsen/logrus to the sysx.Logger interface.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/sysx"
)

// LogrusLogger forwards records to a logrus entry. sysx.Fields converts
// directly to logrus.Fields, both being map[string]any.
type LogrusLogger struct{ E *logrus.Entry }

// New wraps the standard entry of l.
func New(l *logrus.Logger) LogrusLogger { return LogrusLogger{E: logrus.NewEntry(l)} }

var _ sysx.Logger = LogrusLogger{}

func (l LogrusLogger) Debug(msg string, f sysx.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}

func (l LogrusLogger) Info(msg string, f sysx.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}

func (l LogrusLogger) Warn(msg string, f sysx.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}

func (l LogrusLogger) Error(msg string, f sysx.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
