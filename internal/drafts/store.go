// Package drafts is the keyed draft persistence layer: an append-only map of
// document type to saved snapshots, persisted as one whole blob per write.
package drafts

import (
	"time"

	"github.com/google/uuid"

	"github.com/paperdesk/paperdesk/internal/document"
)

// SchemaVersion tags the serialized blob so future layout changes can be
// detected instead of silently misread.
const SchemaVersion = 1

// Store maps each document type to its ordered draft history. Store is a
// value type: Append returns a new Store and never mutates the receiver.
type Store struct {
	Version int                                `json:"version"`
	ByType  map[document.Type][]document.Draft `json:"drafts"`
}

// NewStore returns an empty store with one empty list per document type.
func NewStore() Store {
	byType := make(map[document.Type][]document.Draft, len(document.Types))
	for _, t := range document.Types {
		byType[t] = []document.Draft{}
	}
	return Store{Version: SchemaVersion, ByType: byType}
}

// Append returns a new store with doc recorded as the latest draft for t.
// The snapshot is deep-copied so later edits to the working document cannot
// reach into the stored history.
func (s Store) Append(t document.Type, doc document.Document, savedAt time.Time) Store {
	out := s.clone()
	out.ByType[t] = append(out.ByType[t], document.Draft{
		ID:       uuid.NewString(),
		Document: doc.Clone(),
		SavedAt:  savedAt,
	})
	return out
}

// MostRecent returns the last draft appended for t. The second return value
// is false when no draft of that type has ever been saved; callers surface
// that as a notice, not an error.
func (s Store) MostRecent(t document.Type) (document.Draft, bool) {
	list := s.ByType[t]
	if len(list) == 0 {
		return document.Draft{}, false
	}
	return list[len(list)-1], true
}

// Len reports how many drafts are stored for t.
func (s Store) Len(t document.Type) int {
	return len(s.ByType[t])
}

func (s Store) clone() Store {
	out := Store{Version: s.Version, ByType: make(map[document.Type][]document.Draft, len(s.ByType))}
	if out.Version == 0 {
		out.Version = SchemaVersion
	}
	for t, list := range s.ByType {
		copied := make([]document.Draft, len(list))
		copy(copied, list)
		out.ByType[t] = copied
	}
	for _, t := range document.Types {
		if _, ok := out.ByType[t]; !ok {
			out.ByType[t] = []document.Draft{}
		}
	}
	return out
}
