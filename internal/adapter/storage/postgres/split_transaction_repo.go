package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"split-wallet-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SplitTransactionRepo implements ports.SplitTransactionRepository.
// Amounts are stored as their canonical decimal string.
type SplitTransactionRepo struct {
	pool Pool
}

// NewSplitTransactionRepo creates a new SplitTransactionRepo.
func NewSplitTransactionRepo(pool Pool) *SplitTransactionRepo {
	return &SplitTransactionRepo{pool: pool}
}

const splitTxColumns = `id, split_wallet_id, participant_id, kind, amount, signature, status, destination, created_at, confirmed_at`

// Create inserts a ledger row.
func (r *SplitTransactionRepo) Create(ctx context.Context, t *domain.SplitTransaction) error {
	query := `INSERT INTO split_transactions (` + splitTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.SplitWalletID, t.ParticipantID, string(t.Kind), t.Amount.String(),
		t.Signature, string(t.Status), t.Destination, t.CreatedAt, t.ConfirmedAt,
	)
	if err != nil {
		return fmt.Errorf("insert split transaction: %w", err)
	}
	return nil
}

// GetBySignature fetches the ledger row for an on-chain signature.
func (r *SplitTransactionRepo) GetBySignature(ctx context.Context, signature string) (*domain.SplitTransaction, error) {
	query := `SELECT ` + splitTxColumns + ` FROM split_transactions WHERE signature = $1`

	t, err := scanSplitTransaction(r.pool.QueryRow(ctx, query, signature))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get split transaction: %w", err)
	}
	return t, nil
}

// ListByWallet returns every ledger row of a wallet in creation order.
func (r *SplitTransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.SplitTransaction, error) {
	query := `SELECT ` + splitTxColumns + ` FROM split_transactions WHERE split_wallet_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list split transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.SplitTransaction
	for rows.Next() {
		t, err := scanSplitTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan split transaction row: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate split transaction rows: %w", err)
	}
	return txns, nil
}

// UpdateStatus records the chain outcome of a transfer.
func (r *SplitTransactionRepo) UpdateStatus(ctx context.Context, signature string, status domain.TransferStatus) error {
	var confirmedAt *time.Time
	if status == domain.TransferStatusConfirmed {
		now := time.Now().UTC()
		confirmedAt = &now
	}

	query := `UPDATE split_transactions SET status = $1, confirmed_at = $2 WHERE signature = $3`
	tag, err := r.pool.Exec(ctx, query, string(status), confirmedAt, signature)
	if err != nil {
		return fmt.Errorf("update split transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("split transaction not found: %s", signature)
	}
	return nil
}

func scanSplitTransaction(row pgx.Row) (*domain.SplitTransaction, error) {
	t := &domain.SplitTransaction{}
	var kind, status, amount string
	err := row.Scan(
		&t.ID, &t.SplitWalletID, &t.ParticipantID, &kind, &amount,
		&t.Signature, &status, &t.Destination, &t.CreatedAt, &t.ConfirmedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Kind = domain.TransferKind(kind)
	t.Status = domain.TransferStatus(status)
	if t.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	return t, nil
}
