package memory

import (
	"context"
	"errors"
	"sync"

	"split-wallet-engine/internal/core/domain"
)

// ErrIndexUnavailable is returned while the store is marked down.
var ErrIndexUnavailable = errors.New("index store unavailable")

// IndexStore implements ports.SplitIndexStore. Writes with a version older
// than the stored one are ignored, like the Redis store.
type IndexStore struct {
	mu       sync.RWMutex
	entries  map[string]domain.SplitIndexEntry
	failures int
}

func NewIndexStore() *IndexStore {
	return &IndexStore{entries: make(map[string]domain.SplitIndexEntry)}
}

// FailNext makes the next n Put calls fail. Used to simulate an outage.
func (s *IndexStore) FailNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = n
}

func (s *IndexStore) Put(ctx context.Context, e *domain.SplitIndexEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures > 0 {
		s.failures--
		return ErrIndexUnavailable
	}
	if cur, ok := s.entries[e.BillID]; ok && e.Version < cur.Version {
		return nil
	}
	s.entries[e.BillID] = copyEntry(e)
	return nil
}

func (s *IndexStore) Get(ctx context.Context, billID string) (*domain.SplitIndexEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[billID]
	if !ok {
		return nil, nil
	}
	out := copyEntry(&e)
	return &out, nil
}

func (s *IndexStore) Delete(ctx context.Context, billID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, billID)
	return nil
}

func copyEntry(e *domain.SplitIndexEntry) domain.SplitIndexEntry {
	out := *e
	out.Participants = append([]domain.ParticipantSummary(nil), e.Participants...)
	return out
}
