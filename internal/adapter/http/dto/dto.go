package dto

import (
	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"

	"github.com/shopspring/decimal"
)

// ParticipantRequest describes one member of a split.
type ParticipantRequest struct {
	UserID        string           `json:"user_id" binding:"required,max=100,safe_id"`
	Name          string           `json:"name" binding:"max=100"`
	WalletAddress string           `json:"wallet_address" binding:"required,eth_addr"`
	AmountOwed    *decimal.Decimal `json:"amount_owed,omitempty" binding:"omitempty,amount"`
	Weight        int64            `json:"weight,omitempty" binding:"gte=0"`
}

// CreateSplitRequest is the request body for split wallet creation.
type CreateSplitRequest struct {
	BillID       string               `json:"bill_id" binding:"required,max=100,safe_id"`
	TotalAmount  decimal.Decimal      `json:"total_amount" binding:"amount"`
	Currency     string               `json:"currency" binding:"required,min=2,max=10,alphanum"`
	Participants []ParticipantRequest `json:"participants" binding:"required,min=1,max=50,dive"`
}

// CreateDegenRequest is the request body for degen split creation.
type CreateDegenRequest struct {
	CreateSplitRequest
	Weighted bool `json:"weighted"`
}

// UpdateSplitRequest changes the terms of a pending split. At least one
// field must be set.
type UpdateSplitRequest struct {
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty" binding:"omitempty,amount"`
	Currency    *string          `json:"currency,omitempty" binding:"omitempty,min=2,max=10,alphanum"`
}

// ReplaceParticipantsRequest is the request body for participant replacement.
type ReplaceParticipantsRequest struct {
	Participants []ParticipantRequest `json:"participants" binding:"required,min=1,max=50,dive"`
}

// PaymentRequest reports a contribution by the authenticated participant.
type PaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"amount"`
	Signature *string         `json:"signature,omitempty" binding:"omitempty,max=128,safe_id"`
}

// ExtractRequest is the request body for fair split extraction.
type ExtractRequest struct {
	Recipient string `json:"recipient" binding:"required,eth_addr"`
}

// WinnerPayoutRequest names the degen winner to refund.
type WinnerPayoutRequest struct {
	WinnerID string `json:"winner_id" binding:"required,max=100,safe_id"`
}

// LoserPaymentRequest routes the degen loser payment.
type LoserPaymentRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=wallet card"`
	Address string `json:"address" binding:"required,eth_addr"`
}

// SplitListResponse wraps a paginated split list.
type SplitListResponse struct {
	Items      []domain.SplitWallet `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// ToParticipantInputs converts request participants to service input.
func ToParticipantInputs(in []ParticipantRequest) []ports.ParticipantInput {
	out := make([]ports.ParticipantInput, len(in))
	for i, p := range in {
		out[i] = ports.ParticipantInput{
			UserID:        p.UserID,
			Name:          p.Name,
			WalletAddress: p.WalletAddress,
			Weight:        p.Weight,
		}
		if p.AmountOwed != nil {
			out[i].AmountOwed = *p.AmountOwed
		}
	}
	return out
}

// ToCreateWalletRequest converts the body into service input for creatorID.
func (r CreateSplitRequest) ToCreateWalletRequest(creatorID string) ports.CreateWalletRequest {
	return ports.CreateWalletRequest{
		BillID:       r.BillID,
		CreatorID:    creatorID,
		TotalAmount:  r.TotalAmount,
		Currency:     r.Currency,
		Participants: ToParticipantInputs(r.Participants),
	}
}
