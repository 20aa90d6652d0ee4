package domain

import (
	"time"

	"github.com/google/uuid"
)

// KeyShare is one owner's encrypted copy of a wallet's signing key.
type KeyShare struct {
	SplitWalletID uuid.UUID `json:"split_wallet_id"`
	OwnerID       string    `json:"owner_id"`
	EncryptedKey  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// Keypair is a freshly generated custodial account. PrivateKey is hex and
// must only ever be handed to the custody service.
type Keypair struct {
	Address    string
	PrivateKey string
}

// SyncRepairDebt records a wallet whose index propagation failed after retry.
type SyncRepairDebt struct {
	SplitWalletID uuid.UUID `json:"split_wallet_id"`
	Operation     string    `json:"operation"`
	LastError     string    `json:"last_error"`
	Attempts      int       `json:"attempts"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
