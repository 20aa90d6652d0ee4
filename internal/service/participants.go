package service

import (
	"strings"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"

	"github.com/shopspring/decimal"
)

// buildParticipants validates participant input and assigns obligations.
// Either every input carries an amount or none does; in the latter case the
// total is split equally, or in proportion to the weights when weighted is
// set, with leftover micro-units going to the first participants.
func buildParticipants(
	total decimal.Decimal,
	splitType domain.SplitType,
	weighted bool,
	inputs []ports.ParticipantInput,
	addrs ports.AddressValidator,
) ([]domain.SplitWalletParticipant, error) {
	if len(inputs) == 0 {
		return nil, apperror.Validation("at least one participant is required")
	}
	if splitType == domain.SplitTypeDegen && len(inputs) < 2 {
		return nil, apperror.Validation("a degen split needs at least two participants")
	}

	seen := make(map[string]struct{}, len(inputs))
	explicit := 0
	for _, in := range inputs {
		id := strings.TrimSpace(in.UserID)
		if id == "" {
			return nil, apperror.Validation("participant user id is required")
		}
		if _, dup := seen[id]; dup {
			return nil, apperror.Validation("duplicate participant: " + id)
		}
		seen[id] = struct{}{}

		if !addrs.IsValidAddress(in.WalletAddress) {
			return nil, apperror.Validation("invalid wallet address for participant " + id)
		}
		if !in.AmountOwed.IsZero() {
			if !domain.IsValidAmount(in.AmountOwed) {
				return nil, apperror.ErrInvalidAmount()
			}
			explicit++
		}
		if weighted && in.Weight <= 0 {
			return nil, apperror.Validation("weighted splits need a positive weight for every participant")
		}
	}

	var owed []decimal.Decimal
	switch explicit {
	case 0:
		if weighted {
			weights := make([]int64, len(inputs))
			for i, in := range inputs {
				weights[i] = in.Weight
			}
			split, err := domain.SplitWeighted(total, weights)
			if err != nil {
				return nil, mapDomainError(err)
			}
			owed = split
		} else {
			owed = domain.SplitEqually(total, len(inputs))
		}
		if err := requirePositiveShares(owed); err != nil {
			return nil, err
		}
	case len(inputs):
		owed = make([]decimal.Decimal, len(inputs))
		for i, in := range inputs {
			owed[i] = in.AmountOwed
		}
		if splitType == domain.SplitTypeFair && !domain.SumAmounts(owed...).Equal(total) {
			return nil, apperror.Validation("participant amounts must add up to the total amount")
		}
	default:
		return nil, apperror.Validation("either every participant has an amount or none does")
	}

	out := make([]domain.SplitWalletParticipant, len(inputs))
	for i, in := range inputs {
		p := domain.SplitWalletParticipant{
			UserID:        strings.TrimSpace(in.UserID),
			Name:          strings.TrimSpace(in.Name),
			WalletAddress: in.WalletAddress,
			AmountOwed:    owed[i],
			AmountPaid:    decimal.Zero,
			PendingAmount: decimal.Zero,
			Status:        domain.ParticipantStatusPending,
		}
		if weighted {
			p.Weight = in.Weight
		}
		out[i] = p
	}
	return out, nil
}

// rouletteWeights returns nil for uniform wallets.
func rouletteWeights(w *domain.SplitWallet) []int64 {
	weights := make([]int64, len(w.Participants))
	for i, p := range w.Participants {
		if p.Weight <= 0 {
			return nil
		}
		weights[i] = p.Weight
	}
	return weights
}

// resplit computes obligations for a new total the same way the current ones
// were derived. Explicitly assigned amounts cannot be re-derived and are
// rejected; the creator replaces the participants instead.
func resplit(w *domain.SplitWallet, total decimal.Decimal) ([]decimal.Decimal, error) {
	if weights := rouletteWeights(w); weights != nil {
		current, err := domain.SplitWeighted(w.TotalAmount, weights)
		if err == nil && obligationsMatch(w, current) {
			next, err := domain.SplitWeighted(total, weights)
			if err != nil {
				return nil, mapDomainError(err)
			}
			return next, requirePositiveShares(next)
		}
	}
	if obligationsMatch(w, domain.SplitEqually(w.TotalAmount, len(w.Participants))) {
		next := domain.SplitEqually(total, len(w.Participants))
		return next, requirePositiveShares(next)
	}
	return nil, apperror.Validation("participant amounts were set explicitly; replace the participants to change the total")
}

func obligationsMatch(w *domain.SplitWallet, shares []decimal.Decimal) bool {
	if len(shares) != len(w.Participants) {
		return false
	}
	for i, p := range w.Participants {
		if !p.AmountOwed.Equal(shares[i]) {
			return false
		}
	}
	return true
}

func requirePositiveShares(shares []decimal.Decimal) error {
	for _, amt := range shares {
		if !amt.IsPositive() {
			return apperror.Validation("total amount is too small to split between all participants")
		}
	}
	return nil
}
