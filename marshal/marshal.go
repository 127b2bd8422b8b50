// Package marshal provides pluggable value <-> []byte serializers used for
// environment snapshots and other stored payloads.
package marshal

// Marshaler serializes values of type V for storage.
type Marshaler[V any] interface {
	Marshal(V) ([]byte, error)
	Unmarshal([]byte) (V, error)
}
