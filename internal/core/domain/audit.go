package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionCreateSplit AuditAction = "CREATE_SPLIT"
	AuditActionUpdateSplit AuditAction = "UPDATE_SPLIT"
	AuditActionPayment     AuditAction = "PAYMENT"
	AuditActionReconcile   AuditAction = "RECONCILE"
	AuditActionRoulette    AuditAction = "ROULETTE"
	AuditActionPayout      AuditAction = "PAYOUT"
	AuditActionCancel      AuditAction = "CANCEL"
	AuditActionComplete    AuditAction = "COMPLETE"
	AuditActionBurn        AuditAction = "BURN"
	AuditActionRepair      AuditAction = "REPAIR"
	AuditActionDenied      AuditAction = "ACCESS_DENIED"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      string      `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
