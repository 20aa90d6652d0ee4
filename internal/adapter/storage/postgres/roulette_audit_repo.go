package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"split-wallet-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RouletteAuditRepo implements ports.RouletteAuditRepository. The primary key
// on split_wallet_id guarantees a single entry per wallet.
type RouletteAuditRepo struct {
	pool Pool
}

// NewRouletteAuditRepo creates a new RouletteAuditRepo.
func NewRouletteAuditRepo(pool Pool) *RouletteAuditRepo {
	return &RouletteAuditRepo{pool: pool}
}

// CreateIfAbsent inserts the entry unless the wallet already has one.
func (r *RouletteAuditRepo) CreateIfAbsent(ctx context.Context, e *domain.DegenRouletteAuditEntry) (bool, error) {
	entryJSON, err := json.Marshal(e)
	if err != nil {
		return false, fmt.Errorf("marshal roulette entry: %w", err)
	}

	query := `INSERT INTO roulette_audit_entries (split_wallet_id, selected_participant_id, randomness_digest, entry_json, executed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (split_wallet_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, e.SplitWalletID, e.SelectedParticipantID, e.RandomnessDigest, entryJSON, e.ExecutedAt)
	if err != nil {
		return false, fmt.Errorf("insert roulette entry: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Get fetches the roulette entry of a wallet.
func (r *RouletteAuditRepo) Get(ctx context.Context, walletID uuid.UUID) (*domain.DegenRouletteAuditEntry, error) {
	query := `SELECT entry_json FROM roulette_audit_entries WHERE split_wallet_id = $1`

	var entryJSON []byte
	err := r.pool.QueryRow(ctx, query, walletID).Scan(&entryJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get roulette entry: %w", err)
	}

	e := &domain.DegenRouletteAuditEntry{}
	if err := json.Unmarshal(entryJSON, e); err != nil {
		return nil, fmt.Errorf("decode roulette entry: %w", err)
	}
	return e, nil
}
