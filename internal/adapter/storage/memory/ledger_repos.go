package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"

	"github.com/google/uuid"
)

// --- Split transactions ---

type SplitTransactionRepo struct {
	mu  sync.RWMutex
	txs []domain.SplitTransaction
}

func NewSplitTransactionRepo() *SplitTransactionRepo {
	return &SplitTransactionRepo{}
}

func (r *SplitTransactionRepo) Create(ctx context.Context, t *domain.SplitTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.txs {
		if existing.Signature == t.Signature {
			return ports.ErrAlreadyExists
		}
	}
	r.txs = append(r.txs, *t)
	return nil
}

func (r *SplitTransactionRepo) GetBySignature(ctx context.Context, signature string) (*domain.SplitTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.txs {
		if t.Signature == signature {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

func (r *SplitTransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.SplitTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SplitTransaction, 0)
	for _, t := range r.txs {
		if t.SplitWalletID == walletID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *SplitTransactionRepo) UpdateStatus(ctx context.Context, signature string, status domain.TransferStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.txs {
		if r.txs[i].Signature != signature {
			continue
		}
		r.txs[i].Status = status
		if status == domain.TransferStatusConfirmed {
			now := time.Now().UTC()
			r.txs[i].ConfirmedAt = &now
		}
		return nil
	}
	return fmt.Errorf("split transaction not found")
}

// --- Roulette audit ---

type RouletteAuditRepo struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]domain.DegenRouletteAuditEntry
}

func NewRouletteAuditRepo() *RouletteAuditRepo {
	return &RouletteAuditRepo{entries: make(map[uuid.UUID]domain.DegenRouletteAuditEntry)}
}

func (r *RouletteAuditRepo) CreateIfAbsent(ctx context.Context, e *domain.DegenRouletteAuditEntry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[e.SplitWalletID]; ok {
		return false, nil
	}
	r.entries[e.SplitWalletID] = *e
	return true, nil
}

func (r *RouletteAuditRepo) Get(ctx context.Context, walletID uuid.UUID) (*domain.DegenRouletteAuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[walletID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// --- Key shares ---

type shareKey struct {
	walletID uuid.UUID
	ownerID  string
}

type KeyShareRepo struct {
	mu     sync.RWMutex
	shares map[shareKey]domain.KeyShare
}

func NewKeyShareRepo() *KeyShareRepo {
	return &KeyShareRepo{shares: make(map[shareKey]domain.KeyShare)}
}

func (r *KeyShareRepo) Put(ctx context.Context, s *domain.KeyShare) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shares[shareKey{s.SplitWalletID, s.OwnerID}] = *s
	return nil
}

func (r *KeyShareRepo) Get(ctx context.Context, walletID uuid.UUID, ownerID string) (*domain.KeyShare, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.shares[shareKey{walletID, ownerID}]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *KeyShareRepo) ListOwners(ctx context.Context, walletID uuid.UUID) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	owners := make([]string, 0)
	for k := range r.shares {
		if k.walletID == walletID {
			owners = append(owners, k.ownerID)
		}
	}
	sort.Strings(owners)
	return owners, nil
}

func (r *KeyShareRepo) Delete(ctx context.Context, walletID uuid.UUID, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shares, shareKey{walletID, ownerID})
	return nil
}

func (r *KeyShareRepo) DeleteAll(ctx context.Context, walletID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k := range r.shares {
		if k.walletID == walletID {
			delete(r.shares, k)
			n++
		}
	}
	return n, nil
}

// --- Repair debts ---

type RepairDebtRepo struct {
	mu    sync.RWMutex
	debts map[uuid.UUID]domain.SyncRepairDebt
}

func NewRepairDebtRepo() *RepairDebtRepo {
	return &RepairDebtRepo{debts: make(map[uuid.UUID]domain.SyncRepairDebt)}
}

func (r *RepairDebtRepo) Record(ctx context.Context, d *domain.SyncRepairDebt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.debts[d.SplitWalletID]
	if !ok {
		rec := *d
		rec.Attempts = 1
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = d.UpdatedAt
		}
		r.debts[d.SplitWalletID] = rec
		return nil
	}
	existing.Operation = d.Operation
	existing.LastError = d.LastError
	existing.Attempts++
	existing.UpdatedAt = d.UpdatedAt
	r.debts[d.SplitWalletID] = existing
	return nil
}

func (r *RepairDebtRepo) List(ctx context.Context, limit int) ([]domain.SyncRepairDebt, error) {
	r.mu.RLock()
	out := make([]domain.SyncRepairDebt, 0, len(r.debts))
	for _, d := range r.debts {
		out = append(out, d)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *RepairDebtRepo) Resolve(ctx context.Context, walletID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.debts, walletID)
	return nil
}

// --- Audit ---

type AuditRepo struct {
	mu   sync.RWMutex
	logs []domain.AuditLog
}

func NewAuditRepo() *AuditRepo {
	return &AuditRepo{}
}

func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

// Logs returns a snapshot of recorded audit entries.
func (r *AuditRepo) Logs() []domain.AuditLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.AuditLog(nil), r.logs...)
}
