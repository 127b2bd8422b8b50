// Package store defines the byte-store abstraction used for environment
// snapshots.
//
// Implementations MUST be byte-for-byte transparent: Load must return exactly
// the same []byte that was previously passed to Save for a key (no
// prepended/appended metadata, no re-encoding, no mutation). If a store
// performs internal transforms (e.g. compression), they MUST be fully
// reversed before returning.
package store

import (
	"context"
	"time"
)

// Store is a minimal byte store with optional TTLs. Implementations must be
// safe for concurrent use.
type Store interface {
	// Load returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save stores value with the given TTL. A non-positive TTL means
	// "no expiry" (backends without per-entry TTL may apply their global
	// policy instead).
	Save(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key (best-effort).
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
