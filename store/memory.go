package store

import (
	"context"
	"sync"
	"time"
)

type memEntry struct {
	value []byte
	exp   time.Time // zero => no expiry
}

// Memory is the default in-process Store: a mutex-guarded map with lazy
// per-entry expiry. Values are copied on Save and Load so callers cannot
// alias internal state.
type Memory struct {
	mu sync.RWMutex
	m  map[string]memEntry
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{m: make(map[string]memEntry)}
}

func (s *Memory) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		s.mu.Lock()
		// re-check under the write lock; another Save may have renewed it
		if cur, ok := s.m[key]; ok && !cur.exp.IsZero() && time.Now().After(cur.exp) {
			delete(s.m, key)
		}
		s.mu.Unlock()
		return nil, false, nil
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

func (s *Memory) Save(_ context.Context, key string, value []byte, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.mu.Lock()
	s.m[key] = memEntry{value: cp, exp: exp}
	s.mu.Unlock()
	return nil
}

func (s *Memory) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

func (s *Memory) Close(_ context.Context) error {
	s.mu.Lock()
	s.m = make(map[string]memEntry)
	s.mu.Unlock()
	return nil
}
