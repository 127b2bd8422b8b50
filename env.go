package sysx

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/unkn0wn-root/sysx/internal/snapfmt"
	m "github.com/unkn0wn-root/sysx/marshal"
	st "github.com/unkn0wn-root/sysx/store"
)

type env struct {
	ns        string
	store     st.Store
	marshaler m.Marshaler[map[string]string]
	log       Logger
	ttl       time.Duration
	mirror    bool

	mu   sync.RWMutex
	vars map[string]string
}

func newEnv(opts Options) (*env, error) {
	if opts.Namespace == "" {
		return nil, fmt.Errorf("sysx: namespace is required")
	}

	e := &env{
		ns:     opts.Namespace,
		ttl:    opts.SnapshotTTL,
		mirror: !opts.NoSync,
	}

	// defaults
	if opts.Logger != nil {
		e.log = opts.Logger
	} else {
		e.log = NopLogger{}
	}
	if opts.Store != nil {
		e.store = opts.Store
	} else {
		e.store = st.NewMemory()
	}
	if opts.Marshaler != nil {
		e.marshaler = opts.Marshaler
	} else {
		e.marshaler = m.JSON[map[string]string]{}
	}

	if opts.SeedEmpty {
		e.vars = make(map[string]string)
	} else {
		e.vars = environMap()
	}
	return e, nil
}

// environMap converts os.Environ() entries into a map. Entries without '='
// cannot occur per POSIX but are skipped defensively.
func environMap() map[string]string {
	environ := os.Environ()
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}

func (e *env) snapshotKey() string { return "env:" + e.ns }

func (e *env) Get(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	e.mu.RLock()
	v, ok := e.vars[key]
	e.mu.RUnlock()
	return v, ok
}

func (e *env) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("sysx: empty env key")
	}
	if e.mirror {
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	e.mu.Lock()
	e.vars[key] = value
	e.mu.Unlock()
	return nil
}

func (e *env) Unset(key string) error {
	if e.mirror {
		if err := os.Unsetenv(key); err != nil {
			return err
		}
	}
	e.mu.Lock()
	delete(e.vars, key)
	e.mu.Unlock()
	return nil
}

func (e *env) All() map[string]string {
	e.mu.RLock()
	out := make(map[string]string, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	e.mu.RUnlock()
	return out
}

func (e *env) Refresh() {
	fresh := environMap()
	e.mu.Lock()
	e.vars = fresh
	e.mu.Unlock()
}

func (e *env) Snapshot(ctx context.Context) error {
	k := e.snapshotKey()
	payload, err := e.marshaler.Marshal(e.All())
	if err != nil {
		return &SnapshotError{Key: k, MarshalErr: err}
	}
	framed := snapfmt.Encode(payload)
	if err := e.store.Save(ctx, k, framed, e.ttl); err != nil {
		return &SnapshotError{Key: k, StoreErr: err}
	}
	e.log.Debug("env snapshot saved", Fields{"key": k, "bytes": len(framed)})
	return nil
}

func (e *env) Restore(ctx context.Context) error {
	k := e.snapshotKey()
	framed, ok, err := e.store.Load(ctx, k)
	if err != nil {
		return &SnapshotError{Key: k, StoreErr: err}
	}
	if !ok {
		return &NotFoundError{Key: k}
	}
	payload, err := snapfmt.Decode(framed)
	if err != nil {
		// foreign or truncated entry under our key; drop it
		delErr := e.store.Delete(ctx, k)
		e.log.Warn("env snapshot frame corrupt, deleted", Fields{"key": k, "err": err})
		return &SnapshotError{Key: k, MarshalErr: err, StoreErr: delErr}
	}
	vars, err := e.marshaler.Unmarshal(payload)
	if err != nil {
		// stale or corrupt snapshot; drop it
		delErr := e.store.Delete(ctx, k)
		e.log.Warn("env snapshot corrupt, deleted", Fields{"key": k, "err": err})
		return &SnapshotError{Key: k, MarshalErr: err, StoreErr: delErr}
	}
	if vars == nil {
		vars = make(map[string]string)
	}
	e.mu.Lock()
	e.vars = vars
	e.mu.Unlock()
	e.log.Debug("env snapshot restored", Fields{"key": k, "count": len(vars)})
	return nil
}

func (e *env) Close(ctx context.Context) error {
	if e.store != nil {
		return e.store.Close(ctx)
	}
	return nil
}
