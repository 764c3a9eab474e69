package client

import (
	"errors"
	"fmt"
)

// ErrUnauthorized means the server no longer accepts the session. The
// CLI treats it uniformly as "log in again", never as a data error.
var ErrUnauthorized = errors.New("not authenticated")

// ErrNotFound maps the server's 404 for point lookups.
var ErrNotFound = errors.New("entry not found")

// TransportError wraps a network or server failure on a mutating call.
// Local state is left at its last-known-good value when one occurs.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// PartialImportError reports an import where some rows were created and
// others failed. Failures are aggregated, not itemized per row.
type PartialImportError struct {
	Created int
	Failed  int
}

func (e *PartialImportError) Error() string {
	return fmt.Sprintf("import incomplete: %d created, %d failed", e.Created, e.Failed)
}
