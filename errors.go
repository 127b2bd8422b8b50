package sysx

import (
	"fmt"
)

// SnapshotError reports a failed snapshot or restore, keeping the marshal
// and store failures separate so callers can tell a serialization bug from a
// backend outage.
type SnapshotError struct {
	Key        string
	MarshalErr error
	StoreErr   error
}

func (e *SnapshotError) Error() string {
	switch {
	case e.MarshalErr != nil && e.StoreErr != nil:
		return fmt.Sprintf("snapshot %q failed: marshal and store failed: marshal=%v; store=%v",
			e.Key, e.MarshalErr, e.StoreErr)
	case e.MarshalErr != nil:
		return fmt.Sprintf("snapshot %q: marshal failed: %v", e.Key, e.MarshalErr)
	case e.StoreErr != nil:
		return fmt.Sprintf("snapshot %q: store failed: %v", e.Key, e.StoreErr)
	default:
		return fmt.Sprintf("snapshot %q: unknown error", e.Key)
	}
}

func (e *SnapshotError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.MarshalErr != nil {
		errs = append(errs, e.MarshalErr)
	}
	if e.StoreErr != nil {
		errs = append(errs, e.StoreErr)
	}
	return errs
}

// NotFoundError reports a snapshot key with no stored payload on Restore.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("snapshot %q: not found", e.Key)
}
