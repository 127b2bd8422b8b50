// Package zap adapts go.uber.org/zap to the sysx.Logger interface.
package zap

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/sysx"
)

// ZapLogger forwards records to a structured zap logger. Field values are
// attached with zap.Any so they keep their concrete types in the encoded
// output.
type ZapLogger struct{ L *zap.Logger }

// New wraps l. Wrapping zap.NewNop() yields a silent logger.
func New(l *zap.Logger) ZapLogger { return ZapLogger{L: l} }

var _ sysx.Logger = ZapLogger{}

func (z ZapLogger) Debug(msg string, f sysx.Fields) { z.L.Debug(msg, fields(f)...) }
func (z ZapLogger) Info(msg string, f sysx.Fields)  { z.L.Info(msg, fields(f)...) }
func (z ZapLogger) Warn(msg string, f sysx.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z ZapLogger) Error(msg string, f sysx.Fields) { z.L.Error(msg, fields(f)...) }

// fields converts f to zap's field slice, nil when empty so zap skips the
// allocation on bare messages.
func fields(f sysx.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
