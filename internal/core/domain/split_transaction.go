package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferKind is the purpose of an on-chain transfer touching a split wallet.
type TransferKind string

const (
	TransferKindContribution TransferKind = "contribution"
	TransferKindPayout       TransferKind = "payout"
	TransferKindRefund       TransferKind = "refund"
)

// TransferStatus mirrors the chain confirmation state of a transfer.
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusConfirmed TransferStatus = "confirmed"
	TransferStatusFailed    TransferStatus = "failed"
)

// IsTerminal reports whether the status will not change anymore.
func (s TransferStatus) IsTerminal() bool {
	return s == TransferStatusConfirmed || s == TransferStatusFailed
}

// SplitTransaction is a ledger row for one transfer into or out of a wallet.
type SplitTransaction struct {
	ID            uuid.UUID       `json:"id"`
	SplitWalletID uuid.UUID       `json:"split_wallet_id"`
	ParticipantID string          `json:"participant_id,omitempty"`
	Kind          TransferKind    `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Signature     string          `json:"signature"`
	Status        TransferStatus  `json:"status"`
	Destination   string          `json:"destination,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	ConfirmedAt   *time.Time      `json:"confirmed_at,omitempty"`
}

// DestinationKind tells where a degen payout is routed.
type DestinationKind string

const (
	DestinationWallet DestinationKind = "wallet"
	DestinationCard   DestinationKind = "card"
)

// Destination is the receiving end of a degen loser payment. Card
// destinations are the on-chain deposit address of a linked card.
type Destination struct {
	Kind    DestinationKind `json:"kind"`
	Address string          `json:"address"`
}
