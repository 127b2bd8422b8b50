package sysx

import (
	"context"
	"time"

	m "github.com/unkn0wn-root/sysx/marshal"
	st "github.com/unkn0wn-root/sysx/store"
)

// Env is an explicit environment-variable cache. It mirrors the process
// environment into an object the caller owns, so tests and libraries are not
// coupled to ambient global state. Reads consult the OS environment first and
// fall back to the cached view; writes update both (unless NoSync is set).
type Env interface {
	// Get returns the value for key, consulting the OS environment first
	// and the cached view second.
	Get(key string) (string, bool)

	// Set stores key=value in the cache and, unless NoSync, the OS env.
	Set(key, value string) error

	// Unset removes key from the cache and, unless NoSync, the OS env.
	Unset(key string) error

	// All returns a copy of the cached view.
	All() map[string]string

	// Refresh re-seeds the cached view from the current OS environment.
	Refresh()

	// Snapshot persists the cached view through the configured marshaler
	// and store under "env:<namespace>".
	Snapshot(ctx context.Context) error

	// Restore replaces the cached view with the last stored snapshot.
	// Returns *NotFoundError when no snapshot exists.
	Restore(ctx context.Context) error

	// Close releases the underlying store.
	Close(ctx context.Context) error
}

// Options tune the environment cache. Only Namespace is required; others
// have sensible defaults.
type Options struct {
	// Required
	Namespace string // snapshot key namespace, e.g. "app", "worker"

	Store       st.Store                       // nil => in-process store.Memory
	Marshaler   m.Marshaler[map[string]string] // nil => marshal.JSON
	Logger      Logger                         // nil => NopLogger
	SnapshotTTL time.Duration                  // 0 => no expiry
	NoSync      bool                           // default false => writes mirror to OS env
	SeedEmpty   bool                           // default false => start empty instead of os.Environ()
}

func New(opts Options) (Env, error) {
	return newEnv(opts)
}
