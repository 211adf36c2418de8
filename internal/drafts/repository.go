package drafts

import (
	"context"
	"errors"
)

// DefaultBlobKey names the persisted blob across all backends: the file name
// stem, the Redis key and the Postgres row key.
const DefaultBlobKey = "paperdesk:drafts"

// ErrNotFound is returned by a Repository when no blob has been persisted
// yet. The service treats it as an empty store, not a failure.
var ErrNotFound = errors.New("draft store blob not found")

// Repository persists the whole draft store as a single serialized blob.
// There are no partial reads or delta writes; every Save replaces the
// previous blob in one operation.
type Repository interface {
	Load(ctx context.Context) (Store, error)
	Save(ctx context.Context, store Store) error
}
