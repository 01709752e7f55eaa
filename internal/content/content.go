// Package content maps the application's entity types onto the remote
// document store's CRUD primitives, one service file per entity.
//
// Error policy: list reads fail open (log and return an empty slice) so the
// public pages degrade to "no items" on a transient outage; single-document
// reads distinguish ErrNotFound from an unreachable store; writes fail closed
// with a WriteError so callers can react.
package content

import (
	"fmt"

	"github.com/mohsinali45213/folio/internal/appwrite"
	"github.com/mohsinali45213/folio/internal/config"
)

// ErrNotFound reports that the requested document does not exist.
var ErrNotFound = appwrite.ErrNotFound

// WriteError wraps a failed create, update, or delete. The service never
// retries; the caller decides.
type WriteError struct {
	Op         string
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func writeErr(op, collection string, err error) error {
	return &WriteError{Op: op, Collection: collection, Err: err}
}

// Services bundles the per-entity services over one document store handle.
// No caching happens here; that is the aggregate store's job.
type Services struct {
	client *appwrite.Client
	db     string
	cols   config.Collections
}

func New(client *appwrite.Client, db string, cols config.Collections) *Services {
	return &Services{client: client, db: db, cols: cols}
}
