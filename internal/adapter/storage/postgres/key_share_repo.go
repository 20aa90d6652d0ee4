package postgres

import (
	"context"
	"errors"
	"fmt"

	"split-wallet-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// KeyShareRepo implements ports.KeyShareRepository.
type KeyShareRepo struct {
	pool Pool
}

// NewKeyShareRepo creates a new KeyShareRepo.
func NewKeyShareRepo(pool Pool) *KeyShareRepo {
	return &KeyShareRepo{pool: pool}
}

// Put stores or replaces an owner's key share.
func (r *KeyShareRepo) Put(ctx context.Context, s *domain.KeyShare) error {
	query := `INSERT INTO custody_key_shares (split_wallet_id, owner_id, encrypted_key, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (split_wallet_id, owner_id) DO UPDATE SET encrypted_key = EXCLUDED.encrypted_key`

	if _, err := r.pool.Exec(ctx, query, s.SplitWalletID, s.OwnerID, s.EncryptedKey, s.CreatedAt); err != nil {
		return fmt.Errorf("upsert key share: %w", err)
	}
	return nil
}

// Get fetches one owner's share.
func (r *KeyShareRepo) Get(ctx context.Context, walletID uuid.UUID, ownerID string) (*domain.KeyShare, error) {
	query := `SELECT split_wallet_id, owner_id, encrypted_key, created_at
		FROM custody_key_shares WHERE split_wallet_id = $1 AND owner_id = $2`

	s := &domain.KeyShare{}
	err := r.pool.QueryRow(ctx, query, walletID, ownerID).Scan(&s.SplitWalletID, &s.OwnerID, &s.EncryptedKey, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get key share: %w", err)
	}
	return s, nil
}

// ListOwners returns the ids holding a share of the wallet key.
func (r *KeyShareRepo) ListOwners(ctx context.Context, walletID uuid.UUID) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT owner_id FROM custody_key_shares WHERE split_wallet_id = $1 ORDER BY owner_id`, walletID)
	if err != nil {
		return nil, fmt.Errorf("list key share owners: %w", err)
	}
	defer rows.Close()

	var owners []string
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, fmt.Errorf("scan key share owner: %w", err)
		}
		owners = append(owners, owner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate key share owners: %w", err)
	}
	return owners, nil
}

// Delete removes one owner's share. Missing shares are not an error.
func (r *KeyShareRepo) Delete(ctx context.Context, walletID uuid.UUID, ownerID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM custody_key_shares WHERE split_wallet_id = $1 AND owner_id = $2`, walletID, ownerID); err != nil {
		return fmt.Errorf("delete key share: %w", err)
	}
	return nil
}

// DeleteAll erases every share of the wallet key.
func (r *KeyShareRepo) DeleteAll(ctx context.Context, walletID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM custody_key_shares WHERE split_wallet_id = $1`, walletID)
	if err != nil {
		return 0, fmt.Errorf("delete key shares: %w", err)
	}
	return tag.RowsAffected(), nil
}
