package drafts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/paperdesk/paperdesk/internal/document"
)

// ErrNotDurable reports that a draft was recorded in memory but could not be
// persisted. Notice-grade: the caller tells the user and carries on.
var ErrNotDurable = errors.New("draft store write failed")

// Service owns the process-wide draft store. It loads the blob once at
// startup and re-persists the whole store on every append. Persistence
// failures degrade instead of propagating: a missing or corrupt blob reads
// as an empty store, and a failed write leaves the in-memory state intact.
type Service struct {
	mu     sync.Mutex
	repo   Repository
	logger *slog.Logger
	store  Store
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		store:  NewStore(),
		now:    time.Now,
	}
}

// Init loads the persisted blob. Corrupt or missing data is reported and
// replaced with an empty store; Init never fails the caller.
func (s *Service) Init(ctx context.Context) {
	store, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("draft store unreadable, starting empty", slog.Any("error", err))
		}
		return
	}
	if store.Version > SchemaVersion {
		s.logger.Warn("draft store schema newer than supported, starting empty",
			slog.Int("version", store.Version))
		return
	}
	s.mu.Lock()
	s.store = store.clone()
	s.mu.Unlock()
}

// Append records doc as the newest draft for t and persists the whole store.
// On write failure the draft stays in memory and ErrNotDurable is returned
// alongside the draft so the caller can surface a notice.
func (s *Service) Append(ctx context.Context, t document.Type, doc document.Document) (document.Draft, error) {
	s.mu.Lock()
	s.store = s.store.Append(t, doc, s.now())
	draft, _ := s.store.MostRecent(t)
	snapshot := s.store
	s.mu.Unlock()

	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.logger.Warn("persist draft store", slog.Any("error", err))
		return draft, fmt.Errorf("%w: %v", ErrNotDurable, err)
	}
	return draft, nil
}

// MostRecent returns the latest draft for t, if any.
func (s *Service) MostRecent(t document.Type) (document.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.MostRecent(t)
}

// Counts reports how many drafts each document type holds.
func (s *Service) Counts() map[document.Type]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[document.Type]int, len(document.Types))
	for _, t := range document.Types {
		out[t] = s.store.Len(t)
	}
	return out
}
