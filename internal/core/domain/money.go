package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places carried by amounts. It matches
// the settlement token's decimals so every amount maps to whole base units.
const AmountScale int32 = 6

// MicroUnit is the smallest representable amount (10^-6).
var MicroUnit = decimal.New(1, -AmountScale)

// ErrInvalidWeights is returned when weighted obligations cannot be computed.
var ErrInvalidWeights = errors.New("weights must be positive and match the participant count")

// IsValidAmount reports whether d is strictly positive and carries at most
// AmountScale decimal places.
func IsValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && HasValidScale(d)
}

// HasValidScale reports whether d carries at most AmountScale decimal places.
func HasValidScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}

// SumAmounts adds up a list of amounts.
func SumAmounts(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// SplitEqually divides total into n shares that sum to total exactly.
// Shares are floored to AmountScale and the leftover micro-units go to the
// first shares, one each.
func SplitEqually(total decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}
	weights := make([]int64, n)
	for i := range weights {
		weights[i] = 1
	}
	shares, _ := SplitWeighted(total, weights)
	return shares
}

// SplitWeighted divides total proportionally to weights, with the same
// floor-and-distribute rounding as SplitEqually.
func SplitWeighted(total decimal.Decimal, weights []int64) ([]decimal.Decimal, error) {
	if len(weights) == 0 {
		return nil, ErrInvalidWeights
	}
	var weightSum int64
	for _, w := range weights {
		if w <= 0 {
			return nil, ErrInvalidWeights
		}
		weightSum += w
	}

	units := total.Shift(AmountScale).Truncate(0)
	sum := decimal.NewFromInt(weightSum)
	shares := make([]decimal.Decimal, len(weights))
	allocated := decimal.Zero
	for i, w := range weights {
		share := units.Mul(decimal.NewFromInt(w)).Div(sum).Truncate(0)
		shares[i] = share
		allocated = allocated.Add(share)
	}

	leftover := units.Sub(allocated).IntPart()
	for i := 0; leftover > 0; i = (i + 1) % len(shares) {
		shares[i] = shares[i].Add(decimal.NewFromInt(1))
		leftover--
	}

	for i := range shares {
		shares[i] = shares[i].Shift(-AmountScale)
	}
	return shares, nil
}
