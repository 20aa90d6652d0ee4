package postgres

import (
	"context"
	"fmt"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
)

// SplitAuditRepo appends split lifecycle actions and denied requests to
// split_audit_logs. Rows are never updated.
type SplitAuditRepo struct {
	pool Pool
}

// NewAuditRepository creates a PostgreSQL-backed AuditRepository.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &SplitAuditRepo{pool: pool}
}

func (r *SplitAuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	details := entry.Details
	if details == "" {
		details = "{}"
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO split_audit_logs (id, actor_id, action, resource_type, resource_id, details, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.ActorID, string(entry.Action), entry.ResourceType,
		entry.ResourceID, details, entry.IPAddress, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log %s on %s %s: %w", entry.Action, entry.ResourceType, entry.ResourceID, err)
	}
	return nil
}
