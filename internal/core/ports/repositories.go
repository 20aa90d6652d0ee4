package ports

import (
	"context"
	"errors"

	"split-wallet-engine/internal/core/domain"

	"github.com/google/uuid"
)

// ErrAlreadyExists is returned by Create methods on a unique-key conflict.
var ErrAlreadyExists = errors.New("record already exists")

// MutateFunc receives a private copy of the current wallet and returns the
// proposed next state. Returning an error aborts the write.
type MutateFunc func(current *domain.SplitWallet) (*domain.SplitWallet, error)

// SplitWalletRepository is the authoritative document store for wallets.
// Get methods return (nil, nil) when the wallet does not exist.
type SplitWalletRepository interface {
	Create(ctx context.Context, wallet *domain.SplitWallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SplitWallet, error)
	GetByBillID(ctx context.Context, billID string) (*domain.SplitWallet, error)
	ListByCreator(ctx context.Context, creatorID string, page, pageSize int) ([]domain.SplitWallet, int64, error)
	ListByStatus(ctx context.Context, status domain.WalletStatus, page, pageSize int) ([]domain.SplitWallet, int64, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// Mutate performs an atomic read-modify-write of a single wallet. The
	// wallet stays locked against other writers until fn returns and the
	// result is stored. Returns (nil, nil) without calling fn if the wallet
	// does not exist.
	Mutate(ctx context.Context, id uuid.UUID, fn MutateFunc) (*domain.SplitWallet, error)
}

// SplitTransactionRepository is the ledger of transfers touching a wallet.
type SplitTransactionRepository interface {
	Create(ctx context.Context, txn *domain.SplitTransaction) error
	GetBySignature(ctx context.Context, signature string) (*domain.SplitTransaction, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.SplitTransaction, error)
	UpdateStatus(ctx context.Context, signature string, status domain.TransferStatus) error
}

// RouletteAuditRepository persists roulette results, at most one per wallet.
type RouletteAuditRepository interface {
	// CreateIfAbsent stores entry unless one exists already. It reports
	// whether entry was inserted.
	CreateIfAbsent(ctx context.Context, entry *domain.DegenRouletteAuditEntry) (bool, error)
	Get(ctx context.Context, walletID uuid.UUID) (*domain.DegenRouletteAuditEntry, error)
}

// KeyShareRepository stores encrypted custody key shares.
type KeyShareRepository interface {
	Put(ctx context.Context, share *domain.KeyShare) error
	Get(ctx context.Context, walletID uuid.UUID, ownerID string) (*domain.KeyShare, error)
	ListOwners(ctx context.Context, walletID uuid.UUID) ([]string, error)
	Delete(ctx context.Context, walletID uuid.UUID, ownerID string) error
	DeleteAll(ctx context.Context, walletID uuid.UUID) (int64, error)
}

// RepairDebtRepository tracks wallets whose index is known to be stale.
type RepairDebtRepository interface {
	// Record inserts a debt or bumps the attempt count of an existing one.
	Record(ctx context.Context, debt *domain.SyncRepairDebt) error
	List(ctx context.Context, limit int) ([]domain.SyncRepairDebt, error)
	Resolve(ctx context.Context, walletID uuid.UUID) error
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// SplitIndexStore is the denormalized, bill-keyed projection of wallets.
// Get returns (nil, nil) when no entry exists.
type SplitIndexStore interface {
	Put(ctx context.Context, entry *domain.SplitIndexEntry) error
	Get(ctx context.Context, billID string) (*domain.SplitIndexEntry, error)
	Delete(ctx context.Context, billID string) error
}
