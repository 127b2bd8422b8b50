package marshal

import "fmt"

// Limit wraps another marshaler to enforce a maximum allowed payload size at
// Unmarshal time. Marshal is forwarded to Inner unchanged. If MaxUnmarshal
// <= 0, size limiting is disabled.
//
// Typical use: protect against oversized payloads read back from a shared
// store.
type Limit[V any] struct {
	// Inner is the underlying marshaler being wrapped. It must be set.
	Inner Marshaler[V]
	// MaxUnmarshal is the maximum permitted length (in bytes) of the
	// incoming payload. Longer payloads fail without invoking Inner.
	MaxUnmarshal int
}

func (m Limit[V]) Marshal(v V) ([]byte, error) { return m.Inner.Marshal(v) }

func (m Limit[V]) Unmarshal(b []byte) (V, error) {
	if m.MaxUnmarshal > 0 && len(b) > m.MaxUnmarshal {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), m.MaxUnmarshal)
	}
	return m.Inner.Unmarshal(b)
}
