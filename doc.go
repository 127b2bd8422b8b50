// Package sysx is a collection of small, independent system helpers. The
// root package provides an explicit environment-variable cache; sibling
// packages cover the rest:
//
//   - codec: binary/hex digit-string codec (encode, decode, clean, validate).
//   - marshal: pluggable value <-> []byte serializers (JSON, Msgpack, CBOR).
//   - store: byte stores for env snapshots (memory, BigCache, Ristretto, Redis).
//   - log/...: adapters wiring the Logger interface to zap, logrus, slog, charm.
//   - shell: shell command execution with captured output.
//   - fsx: file handles bound to normalized absolute paths.
//   - netx, timex, randx, typesx, asciiart: IP validation, sleep parsing,
//     random values, type-name helpers, image-to-ASCII rendering.
//
// The environment cache replaces ambient process-global state with an object
// the caller owns:
//
//	env, _ := sysx.New(sysx.Options{Namespace: "app"})
//	_ = env.Set("MODE", "dev")
//	v, ok := env.Get("MODE")
//	_ = env.Snapshot(ctx) // persist the cached view through the configured store
package sysx
