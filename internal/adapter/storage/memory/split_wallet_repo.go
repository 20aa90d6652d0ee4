// Package memory provides in-process implementations of the storage ports.
// They back the "memory" storage driver and the service-level tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"

	"github.com/google/uuid"
)

// SplitWalletRepo implements ports.SplitWalletRepository. Stored wallets are
// private copies; callers never share memory with the store.
type SplitWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.SplitWallet
	bills   map[string]uuid.UUID
}

func NewSplitWalletRepo() *SplitWalletRepo {
	return &SplitWalletRepo{
		wallets: make(map[uuid.UUID]*domain.SplitWallet),
		bills:   make(map[string]uuid.UUID),
	}
}

func (r *SplitWalletRepo) Create(ctx context.Context, w *domain.SplitWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.ID]; ok {
		return ports.ErrAlreadyExists
	}
	if _, ok := r.bills[w.BillID]; ok {
		return ports.ErrAlreadyExists
	}
	r.wallets[w.ID] = w.Clone()
	r.bills[w.BillID] = w.ID
	return nil
}

func (r *SplitWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SplitWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	return w.Clone(), nil
}

func (r *SplitWalletRepo) GetByBillID(ctx context.Context, billID string) (*domain.SplitWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.bills[billID]
	if !ok {
		return nil, nil
	}
	return r.wallets[id].Clone(), nil
}

func (r *SplitWalletRepo) ListByCreator(ctx context.Context, creatorID string, page, pageSize int) ([]domain.SplitWallet, int64, error) {
	match := func(w *domain.SplitWallet) bool { return w.CreatorID == creatorID }
	return r.list(match, page, pageSize), r.count(match), nil
}

func (r *SplitWalletRepo) ListByStatus(ctx context.Context, status domain.WalletStatus, page, pageSize int) ([]domain.SplitWallet, int64, error) {
	match := func(w *domain.SplitWallet) bool { return w.Status == status }
	return r.list(match, page, pageSize), r.count(match), nil
}

func (r *SplitWalletRepo) count(match func(*domain.SplitWallet) bool) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, w := range r.wallets {
		if match(w) {
			n++
		}
	}
	return n
}

// list mirrors the SQL ordering: newest first, then paged.
func (r *SplitWalletRepo) list(match func(*domain.SplitWallet) bool, page, pageSize int) []domain.SplitWallet {
	r.mu.RLock()
	matched := make([]domain.SplitWallet, 0)
	for _, w := range r.wallets {
		if match(w) {
			matched = append(matched, *w.Clone())
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID.String() < matched[j].ID.String()
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []domain.SplitWallet{}
	}
	end := offset + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end]
}

func (r *SplitWalletRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.wallets[id]
	return ok, nil
}

// Mutate holds the write lock for the whole read-modify-write, which gives
// the same serialization as a row lock.
func (r *SplitWalletRepo) Mutate(ctx context.Context, id uuid.UUID, fn ports.MutateFunc) (*domain.SplitWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	next, err := fn(current.Clone())
	if err != nil {
		return nil, err
	}
	r.wallets[id] = next.Clone()
	return next, nil
}
