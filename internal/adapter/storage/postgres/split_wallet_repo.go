package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SplitWalletRepo implements ports.SplitWalletRepository. The wallet is kept
// as a single JSONB document; bill_id, creator_id and status are copied into
// columns for lookups.
type SplitWalletRepo struct {
	pool Pool
}

// NewSplitWalletRepo creates a new SplitWalletRepo.
func NewSplitWalletRepo(pool Pool) *SplitWalletRepo {
	return &SplitWalletRepo{pool: pool}
}

// Create inserts a new wallet document. A second wallet for the same bill
// returns ports.ErrAlreadyExists.
func (r *SplitWalletRepo) Create(ctx context.Context, w *domain.SplitWallet) error {
	doc, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal split wallet: %w", err)
	}

	query := `INSERT INTO split_wallets (id, bill_id, creator_id, status, version, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.pool.Exec(ctx, query,
		w.ID, w.BillID, w.CreatorID, string(w.Status), w.Version, doc, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrAlreadyExists
		}
		return fmt.Errorf("insert split wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by its UUID.
func (r *SplitWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SplitWallet, error) {
	return scanWallet(r.pool.QueryRow(ctx, `SELECT doc FROM split_wallets WHERE id = $1`, id))
}

// GetByBillID fetches the wallet provisioned for a bill.
func (r *SplitWalletRepo) GetByBillID(ctx context.Context, billID string) (*domain.SplitWallet, error) {
	return scanWallet(r.pool.QueryRow(ctx, `SELECT doc FROM split_wallets WHERE bill_id = $1`, billID))
}

// ListByCreator returns a page of wallets created by creatorID, newest first.
func (r *SplitWalletRepo) ListByCreator(ctx context.Context, creatorID string, page, pageSize int) ([]domain.SplitWallet, int64, error) {
	return r.list(ctx, "creator_id", creatorID, page, pageSize)
}

// ListByStatus returns a page of wallets in the given status, newest first.
func (r *SplitWalletRepo) ListByStatus(ctx context.Context, status domain.WalletStatus, page, pageSize int) ([]domain.SplitWallet, int64, error) {
	return r.list(ctx, "status", string(status), page, pageSize)
}

func (r *SplitWalletRepo) list(ctx context.Context, column, value string, page, pageSize int) ([]domain.SplitWallet, int64, error) {
	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM split_wallets WHERE %s = $1", column)
	if err := r.pool.QueryRow(ctx, countQuery, value).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count split wallets: %w", err)
	}

	offset := (page - 1) * pageSize
	dataQuery := fmt.Sprintf(`SELECT doc FROM split_wallets WHERE %s = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, column)

	rows, err := r.pool.Query(ctx, dataQuery, value, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list split wallets: %w", err)
	}
	defer rows.Close()

	wallets := make([]domain.SplitWallet, 0, pageSize)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, 0, fmt.Errorf("scan split wallet row: %w", err)
		}
		var w domain.SplitWallet
		if err := json.Unmarshal(doc, &w); err != nil {
			return nil, 0, fmt.Errorf("decode split wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate split wallet rows: %w", err)
	}
	return wallets, total, nil
}

// Exists reports whether a wallet with the given id exists.
func (r *SplitWalletRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM split_wallets WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check split wallet exists: %w", err)
	}
	return exists, nil
}

// Mutate locks the wallet row with SELECT ... FOR UPDATE, applies fn and
// writes the result back in the same transaction.
func (r *SplitWalletRepo) Mutate(ctx context.Context, id uuid.UUID, fn ports.MutateFunc) (*domain.SplitWallet, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	current, err := scanWallet(tx.QueryRow(ctx, `SELECT doc FROM split_wallets WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	next, err := fn(current)
	if err != nil {
		return nil, err
	}

	doc, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("marshal split wallet: %w", err)
	}

	query := `UPDATE split_wallets SET status = $1, version = $2, doc = $3, updated_at = $4 WHERE id = $5`
	tag, err := tx.Exec(ctx, query, string(next.Status), next.Version, doc, next.UpdatedAt, id)
	if err != nil {
		return nil, fmt.Errorf("update split wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("split wallet not found: %s", id)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return next, nil
}

func scanWallet(row pgx.Row) (*domain.SplitWallet, error) {
	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan split wallet: %w", err)
	}
	w := &domain.SplitWallet{}
	if err := json.Unmarshal(doc, w); err != nil {
		return nil, fmt.Errorf("decode split wallet: %w", err)
	}
	return w, nil
}
