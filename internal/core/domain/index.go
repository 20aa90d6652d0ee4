package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParticipantSummary is the slice of participant state kept in the index.
type ParticipantSummary struct {
	UserID     string            `json:"user_id"`
	Status     ParticipantStatus `json:"status"`
	AmountOwed decimal.Decimal   `json:"amount_owed"`
	AmountPaid decimal.Decimal   `json:"amount_paid"`
}

// SplitIndexEntry is the denormalized, bill-keyed projection of a wallet.
type SplitIndexEntry struct {
	BillID           string               `json:"bill_id"`
	SplitWalletID    uuid.UUID            `json:"split_wallet_id"`
	CreatorID        string               `json:"creator_id"`
	SplitType        SplitType            `json:"split_type"`
	Status           WalletStatus         `json:"status"`
	TotalAmount      decimal.Decimal      `json:"total_amount"`
	Currency         string               `json:"currency"`
	PaidTotal        decimal.Decimal      `json:"paid_total"`
	ParticipantCount int                  `json:"participant_count"`
	PaidCount        int                  `json:"paid_count"`
	LockedCount      int                  `json:"locked_count"`
	Participants     []ParticipantSummary `json:"participants"`
	Version          int64                `json:"version"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// NewIndexEntry projects a wallet onto its index entry.
func NewIndexEntry(w *SplitWallet) *SplitIndexEntry {
	e := &SplitIndexEntry{
		BillID:           w.BillID,
		SplitWalletID:    w.ID,
		CreatorID:        w.CreatorID,
		SplitType:        w.SplitType,
		Status:           w.Status,
		TotalAmount:      w.TotalAmount,
		Currency:         w.Currency,
		PaidTotal:        w.ComputePaidTotal(),
		ParticipantCount: len(w.Participants),
		PaidCount:        w.CountByStatus(ParticipantStatusPaid),
		LockedCount:      w.CountByStatus(ParticipantStatusLocked),
		Participants:     make([]ParticipantSummary, len(w.Participants)),
		Version:          w.Version,
		UpdatedAt:        w.UpdatedAt,
	}
	for i, p := range w.Participants {
		e.Participants[i] = ParticipantSummary{
			UserID:     p.UserID,
			Status:     p.Status,
			AmountOwed: p.AmountOwed,
			AmountPaid: p.AmountPaid,
		}
	}
	return e
}

// DriftedFields lists the fields where the index disagrees with want.
// UpdatedAt is ignored.
func (e *SplitIndexEntry) DriftedFields(want *SplitIndexEntry) []string {
	var fields []string
	if e.SplitWalletID != want.SplitWalletID {
		fields = append(fields, "split_wallet_id")
	}
	if e.Status != want.Status {
		fields = append(fields, "status")
	}
	if !e.TotalAmount.Equal(want.TotalAmount) {
		fields = append(fields, "total_amount")
	}
	if e.Currency != want.Currency {
		fields = append(fields, "currency")
	}
	if !e.PaidTotal.Equal(want.PaidTotal) {
		fields = append(fields, "paid_total")
	}
	if e.ParticipantCount != want.ParticipantCount || e.PaidCount != want.PaidCount || e.LockedCount != want.LockedCount {
		fields = append(fields, "participant_counts")
	}
	if e.Version != want.Version {
		fields = append(fields, "version")
	}
	return fields
}
