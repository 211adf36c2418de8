// Package editor holds the working document and the transitions between
// fresh and loaded-from-draft states.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/paperdesk/paperdesk/internal/document"
	"github.com/paperdesk/paperdesk/internal/drafts"
)

var (
	// ErrNoDrafts signals a load attempt with no stored drafts for the
	// current type. Notice-grade: no state changes.
	ErrNoDrafts = errors.New("no drafts found")

	// ErrUnknownType rejects a document-type change to a value outside the
	// catalog.
	ErrUnknownType = errors.New("unknown document type")
)

// Session is the single logical editor. It owns the working Document and
// applies every operation as a whole-snapshot transition. The model is
// single-editor, but the HTTP host serves requests concurrently, so the
// session serializes access with a mutex; this is also what gives logo
// uploads their apply-to-latest semantics: the edit lands on the snapshot
// current at apply time, not one captured when the upload began.
type Session struct {
	mu              sync.Mutex
	logger          *slog.Logger
	drafts          *drafts.Service
	doc             document.Document
	loadedFromDraft bool
}

// NewSession starts a fresh invoice session.
func NewSession(logger *slog.Logger, draftsService *drafts.Service) *Session {
	return &Session{
		logger: logger,
		drafts: draftsService,
		doc:    document.Default(document.TypeInvoice),
	}
}

// Snapshot returns a copy of the working document and whether it came from a
// draft.
func (s *Session) Snapshot() (document.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone(), s.loadedFromDraft
}

// Apply runs one edit against the current snapshot and returns the result.
func (s *Session) Apply(e document.Edit) document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = document.Apply(s.doc, e)
	return s.doc.Clone()
}

// ChangeType discards the working document, unsaved edits included, and
// replaces it with the fresh template for the new type. No merge, no
// confirmation; the form starts over.
func (s *Session) ChangeType(t document.Type) (document.Document, error) {
	if !t.Valid() {
		return document.Document{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = document.Default(t)
	s.loadedFromDraft = false
	return s.doc.Clone(), nil
}

// SaveDraft appends the working document to the draft store under its own
// type. The document itself is untouched; the session is marked as holding
// draft-backed state. A persistence failure is passed through as the
// notice-grade drafts.ErrNotDurable with the in-memory draft still recorded.
func (s *Session) SaveDraft(ctx context.Context) (document.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.drafts.Append(ctx, s.doc.DocumentType, s.doc)
	if err != nil && !errors.Is(err, drafts.ErrNotDurable) {
		return draft, err
	}
	// A non-durable save still recorded the draft in memory.
	s.loadedFromDraft = true
	return draft, err
}

// LoadDraft replaces the working document with the most recently appended
// draft for the current type. With no drafts stored it returns ErrNoDrafts
// and leaves the session unchanged.
func (s *Session) LoadDraft(ctx context.Context) (document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts.MostRecent(s.doc.DocumentType)
	if !ok {
		return document.Document{}, fmt.Errorf("%w for type %q", ErrNoDrafts, s.doc.DocumentType)
	}
	s.doc = draft.Document.Clone()
	s.loadedFromDraft = true
	s.logger.Info("draft loaded",
		slog.String("draft_id", draft.ID),
		slog.String("document_type", string(s.doc.DocumentType)))
	return s.doc.Clone(), nil
}

// Reset replaces the working document with the fresh template for the
// current type and drops the loaded-from-draft marker.
func (s *Session) Reset() document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = document.Default(s.doc.DocumentType)
	s.loadedFromDraft = false
	return s.doc.Clone()
}
