package marshal

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a Marshaler backed by vmihailenco/msgpack/v5. The zero value is
// ready to use. More compact than JSON; mind the `msgpack:"..."` struct tags
// if field naming matters.
type Msgpack[V any] struct{}

func (Msgpack[V]) Marshal(v V) ([]byte, error) { return msgpack.Marshal(v) }
func (Msgpack[V]) Unmarshal(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
