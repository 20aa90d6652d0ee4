package postgres

import (
	"context"
	"fmt"

	"split-wallet-engine/internal/core/domain"

	"github.com/google/uuid"
)

// RepairDebtRepo implements ports.RepairDebtRepository.
type RepairDebtRepo struct {
	pool Pool
}

// NewRepairDebtRepo creates a new RepairDebtRepo.
func NewRepairDebtRepo(pool Pool) *RepairDebtRepo {
	return &RepairDebtRepo{pool: pool}
}

// Record inserts a repair debt or bumps the attempt counter of an open one.
func (r *RepairDebtRepo) Record(ctx context.Context, d *domain.SyncRepairDebt) error {
	query := `INSERT INTO sync_repair_debts (split_wallet_id, operation, last_error, attempts, created_at, updated_at)
		VALUES ($1, $2, $3, 1, $4, $4)
		ON CONFLICT (split_wallet_id) DO UPDATE SET
			operation = EXCLUDED.operation,
			last_error = EXCLUDED.last_error,
			attempts = sync_repair_debts.attempts + 1,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.pool.Exec(ctx, query, d.SplitWalletID, d.Operation, d.LastError, d.UpdatedAt); err != nil {
		return fmt.Errorf("record repair debt: %w", err)
	}
	return nil
}

// List returns the oldest open debts first.
func (r *RepairDebtRepo) List(ctx context.Context, limit int) ([]domain.SyncRepairDebt, error) {
	query := `SELECT split_wallet_id, operation, last_error, attempts, created_at, updated_at
		FROM sync_repair_debts ORDER BY updated_at LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list repair debts: %w", err)
	}
	defer rows.Close()

	var debts []domain.SyncRepairDebt
	for rows.Next() {
		var d domain.SyncRepairDebt
		if err := rows.Scan(&d.SplitWalletID, &d.Operation, &d.LastError, &d.Attempts, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan repair debt: %w", err)
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate repair debts: %w", err)
	}
	return debts, nil
}

// Resolve closes the debt of a wallet. Resolving twice is a no-op.
func (r *RepairDebtRepo) Resolve(ctx context.Context, walletID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM sync_repair_debts WHERE split_wallet_id = $1`, walletID); err != nil {
		return fmt.Errorf("resolve repair debt: %w", err)
	}
	return nil
}
