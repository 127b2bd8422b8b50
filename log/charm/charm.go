// Package charm adapts charmbracelet/log to the sysx.Logger interface.
// This is the colored console logger: levels are styled out of the box, so
// it is the closest match for terminal-facing tools.
package charm

import (
	"github.com/charmbracelet/log"

	"github.com/unkn0wn-root/sysx"
)

type Logger struct{ L *log.Logger }

var _ sysx.Logger = Logger{}

func (c Logger) Debug(msg string, f sysx.Fields) { c.L.Debug(msg, kv(f)...) }
func (c Logger) Info(msg string, f sysx.Fields)  { c.L.Info(msg, kv(f)...) }
func (c Logger) Warn(msg string, f sysx.Fields)  { c.L.Warn(msg, kv(f)...) }
func (c Logger) Error(msg string, f sysx.Fields) { c.L.Error(msg, kv(f)...) }

func kv(f sysx.Fields) []any {
	if len(f) == 0 {
		return nil
	}
	out := make([]any, 0, 2*len(f))
	for k, v := range f {
		out = append(out, k, v)
	}
	return out
}
