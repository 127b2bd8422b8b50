package marshal

import "encoding/json"

// JSON is a Marshaler backed by encoding/json. The zero value is ready to
// use. It is the default for environment snapshots: payloads stay
// human-readable, which helps when inspecting a store by hand.
type JSON[V any] struct{}

func (JSON[V]) Marshal(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Unmarshal(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
