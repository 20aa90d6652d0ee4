package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SplitType distinguishes fair splits from winner/loser degen splits.
type SplitType string

const (
	SplitTypeFair  SplitType = "fair"
	SplitTypeDegen SplitType = "degen"
)

// WalletStatus represents the lifecycle state of a split wallet.
type WalletStatus string

const (
	WalletStatusPending   WalletStatus = "pending"
	WalletStatusLocked    WalletStatus = "locked"
	WalletStatusCompleted WalletStatus = "completed"
	WalletStatusCancelled WalletStatus = "cancelled"
)

// IsValid reports whether s is a known wallet status.
func (s WalletStatus) IsValid() bool {
	switch s {
	case WalletStatusPending, WalletStatusLocked, WalletStatusCompleted, WalletStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further mutation is permitted.
func (s WalletStatus) IsTerminal() bool {
	return s == WalletStatusCompleted || s == WalletStatusCancelled
}

// ParticipantStatus represents a participant's progress toward their obligation.
type ParticipantStatus string

const (
	ParticipantStatusPending ParticipantStatus = "pending"
	ParticipantStatusLocked  ParticipantStatus = "locked"
	ParticipantStatusPaid    ParticipantStatus = "paid"
)

// IsValid reports whether s is a known participant status.
func (s ParticipantStatus) IsValid() bool {
	return s.rank() >= 0
}

func (s ParticipantStatus) rank() int {
	switch s {
	case ParticipantStatusPending:
		return 0
	case ParticipantStatusLocked:
		return 1
	case ParticipantStatusPaid:
		return 2
	}
	return -1
}

// SplitWalletParticipant is one participant's obligation within a split wallet.
type SplitWalletParticipant struct {
	UserID               string            `json:"user_id"`
	Name                 string            `json:"name"`
	WalletAddress        string            `json:"wallet_address"`
	AmountOwed           decimal.Decimal   `json:"amount_owed"`
	AmountPaid           decimal.Decimal   `json:"amount_paid"`
	Weight               int64             `json:"weight,omitempty"`
	Status               ParticipantStatus `json:"status"`
	TransactionSignature *string           `json:"transaction_signature,omitempty"`
	PendingAmount        decimal.Decimal   `json:"pending_amount"`
	SignatureConfirmed   bool              `json:"signature_confirmed"`
	PayoutSignature      *string           `json:"payout_signature,omitempty"`
	LockedAt             *time.Time        `json:"locked_at,omitempty"`
	PaidAt               *time.Time        `json:"paid_at,omitempty"`
}

// Remaining returns what the participant still owes.
func (p *SplitWalletParticipant) Remaining() decimal.Decimal {
	return p.AmountOwed.Sub(p.AmountPaid)
}

// IsFullyPaid reports whether the obligation has been met.
func (p *SplitWalletParticipant) IsFullyPaid() bool {
	return p.AmountPaid.Equal(p.AmountOwed)
}

// HasUnconfirmedTransfer reports whether the last contribution still awaits
// on-chain confirmation.
func (p *SplitWalletParticipant) HasUnconfirmedTransfer() bool {
	return p.TransactionSignature != nil && !p.SignatureConfirmed
}

// SplitWallet is the custodial escrow record for a single bill.
type SplitWallet struct {
	ID              uuid.UUID                `json:"id"`
	BillID          string                   `json:"bill_id"`
	CreatorID       string                   `json:"creator_id"`
	SplitType       SplitType                `json:"split_type"`
	Status          WalletStatus             `json:"status"`
	TotalAmount     decimal.Decimal          `json:"total_amount"`
	Currency        string                   `json:"currency"`
	Participants    []SplitWalletParticipant `json:"participants"`
	WalletAddress   string                   `json:"wallet_address"`
	PaidTotal       decimal.Decimal          `json:"paid_total"`
	PayoutSignature *string                  `json:"payout_signature,omitempty"`
	Version         int64                    `json:"version"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
	CompletedAt     *time.Time               `json:"completed_at,omitempty"`
}

// IsTerminal reports whether the wallet is completed or cancelled.
func (w *SplitWallet) IsTerminal() bool {
	return w.Status.IsTerminal()
}

// IsDegen reports whether the wallet uses the winner/loser model.
func (w *SplitWallet) IsDegen() bool {
	return w.SplitType == SplitTypeDegen
}

// Participant returns a pointer into the participant list, or nil.
func (w *SplitWallet) Participant(userID string) *SplitWalletParticipant {
	for i := range w.Participants {
		if w.Participants[i].UserID == userID {
			return &w.Participants[i]
		}
	}
	return nil
}

// HasParticipant reports whether userID takes part in the split.
func (w *SplitWallet) HasParticipant(userID string) bool {
	return w.Participant(userID) != nil
}

// ParticipantIDs returns participant ids in list order.
func (w *SplitWallet) ParticipantIDs() []string {
	ids := make([]string, len(w.Participants))
	for i, p := range w.Participants {
		ids[i] = p.UserID
	}
	return ids
}

// ComputePaidTotal sums AmountPaid over all participants.
func (w *SplitWallet) ComputePaidTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range w.Participants {
		total = total.Add(p.AmountPaid)
	}
	return total
}

// CountByStatus returns how many participants are in the given status.
func (w *SplitWallet) CountByStatus(status ParticipantStatus) int {
	n := 0
	for _, p := range w.Participants {
		if p.Status == status {
			n++
		}
	}
	return n
}

// HasContributions reports whether any participant has paid anything.
func (w *SplitWallet) HasContributions() bool {
	for _, p := range w.Participants {
		if p.AmountPaid.IsPositive() || p.TransactionSignature != nil {
			return true
		}
	}
	return false
}

// AllPaid reports whether every participant reached the paid status.
func (w *SplitWallet) AllPaid() bool {
	return len(w.Participants) > 0 && w.CountByStatus(ParticipantStatusPaid) == len(w.Participants)
}

// AllLockedInFull reports whether every participant has locked their full,
// confirmed share. This is the roulette precondition for degen wallets.
func (w *SplitWallet) AllLockedInFull() bool {
	if len(w.Participants) == 0 {
		return false
	}
	for _, p := range w.Participants {
		if p.Status != ParticipantStatusLocked || !p.IsFullyPaid() || p.HasUnconfirmedTransfer() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so a proposed state can be edited without
// touching the committed one.
func (w *SplitWallet) Clone() *SplitWallet {
	c := *w
	c.Participants = make([]SplitWalletParticipant, len(w.Participants))
	for i, p := range w.Participants {
		c.Participants[i] = p.clone()
	}
	c.PayoutSignature = cloneString(w.PayoutSignature)
	c.CompletedAt = cloneTime(w.CompletedAt)
	return &c
}

func (p SplitWalletParticipant) clone() SplitWalletParticipant {
	p.TransactionSignature = cloneString(p.TransactionSignature)
	p.PayoutSignature = cloneString(p.PayoutSignature)
	p.LockedAt = cloneTime(p.LockedAt)
	p.PaidAt = cloneTime(p.PaidAt)
	return p
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// CompletionSummary describes collection progress for a wallet.
type CompletionSummary struct {
	SplitWalletID     uuid.UUID       `json:"split_wallet_id"`
	Status            WalletStatus    `json:"status"`
	PaidCount         int             `json:"paid_count"`
	LockedCount       int             `json:"locked_count"`
	ParticipantCount  int             `json:"participant_count"`
	PaidTotal         decimal.Decimal `json:"paid_total"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	ParticipantRatio  float64         `json:"participant_ratio"`
	AmountRatio       float64         `json:"amount_ratio"`
	EligibleForPayout bool            `json:"eligible_for_payout"`
}

// Summarize computes the completion summary from the participant list.
func (w *SplitWallet) Summarize() CompletionSummary {
	paidTotal := w.ComputePaidTotal()
	s := CompletionSummary{
		SplitWalletID:    w.ID,
		Status:           w.Status,
		PaidCount:        w.CountByStatus(ParticipantStatusPaid),
		LockedCount:      w.CountByStatus(ParticipantStatusLocked),
		ParticipantCount: len(w.Participants),
		PaidTotal:        paidTotal,
		TotalAmount:      w.TotalAmount,
	}
	if s.ParticipantCount > 0 {
		s.ParticipantRatio = float64(s.PaidCount) / float64(s.ParticipantCount)
	}
	if w.TotalAmount.IsPositive() {
		s.AmountRatio = paidTotal.Div(w.TotalAmount).InexactFloat64()
	}
	s.EligibleForPayout = !w.IsTerminal() && w.SplitType == SplitTypeFair && w.AllPaid()
	return s
}
