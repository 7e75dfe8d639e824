package journal

import (
	"errors"
	"fmt"
)

// ErrNotAuthorized is returned when a privileged operation is attempted
// without a present identity. The HTTP surface maps it to 403.
var ErrNotAuthorized = errors.New("authorization required")

// PersistenceError wraps a store failure on a write. The entry was not
// committed; the HTTP surface maps it to 500. No retries are attempted.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("entry %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
