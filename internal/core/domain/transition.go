package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTerminalWallet     = errors.New("wallet is in a terminal state")
	ErrOverpaid           = errors.New("amount paid exceeds amount owed")
	ErrObligationMismatch = errors.New("participant obligations do not sum to the total amount")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrInvalidState       = errors.New("invalid wallet state")
)

// TransitionOptions relaxes transition checks for specific callers.
type TransitionOptions struct {
	// AllowRevert permits locked -> pending and a decreasing AmountPaid.
	// Only reconciliation of a dropped transfer sets it.
	AllowRevert bool
}

var walletTransitions = map[WalletStatus][]WalletStatus{
	WalletStatusPending: {WalletStatusLocked, WalletStatusCancelled},
	WalletStatusLocked:  {WalletStatusCompleted, WalletStatusCancelled},
}

// ValidateWalletTransition checks a wallet status change. Staying in the
// same non-terminal status is always allowed.
func ValidateWalletTransition(from, to WalletStatus) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: unknown wallet status %q", ErrInvalidState, to)
	}
	if from.IsTerminal() {
		return ErrTerminalWallet
	}
	if from == to {
		return nil
	}
	for _, allowed := range walletTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: wallet %s -> %s", ErrIllegalTransition, from, to)
}

// ValidateParticipantTransition checks that a participant only moves forward
// along pending -> locked -> paid. Jumping from pending straight to paid is
// accepted when the record shows it passed through locked in the same write.
func ValidateParticipantTransition(prev, next *SplitWalletParticipant, opts TransitionOptions) error {
	from, to := prev.rank(), next.Status.rank()
	if to < 0 {
		return fmt.Errorf("%w: unknown participant status %q", ErrInvalidState, next.Status)
	}
	switch {
	case to < from:
		if opts.AllowRevert && prev.Status == ParticipantStatusLocked && next.Status == ParticipantStatusPending {
			break
		}
		return fmt.Errorf("%w: participant %s %s -> %s", ErrIllegalTransition, next.UserID, prev.Status, next.Status)
	case to-from > 1 && next.LockedAt == nil:
		return fmt.Errorf("%w: participant %s %s -> %s", ErrIllegalTransition, next.UserID, prev.Status, next.Status)
	}

	if next.AmountPaid.LessThan(prev.AmountPaid) && !opts.AllowRevert {
		return fmt.Errorf("%w: amount paid for %s cannot decrease", ErrIllegalTransition, next.UserID)
	}
	return nil
}

func (p *SplitWalletParticipant) rank() int {
	return p.Status.rank()
}

// Validate checks the invariants every committed wallet state must satisfy.
func (w *SplitWallet) Validate() error {
	if !w.Status.IsValid() {
		return fmt.Errorf("%w: unknown wallet status %q", ErrInvalidState, w.Status)
	}
	if w.SplitType != SplitTypeFair && w.SplitType != SplitTypeDegen {
		return fmt.Errorf("%w: unknown split type %q", ErrInvalidState, w.SplitType)
	}
	if !IsValidAmount(w.TotalAmount) {
		return fmt.Errorf("%w: total amount must be positive with at most %d decimals", ErrInvalidState, AmountScale)
	}
	if len(w.Participants) == 0 {
		return fmt.Errorf("%w: wallet has no participants", ErrInvalidState)
	}

	seen := make(map[string]struct{}, len(w.Participants))
	owed := SumAmounts()
	for i := range w.Participants {
		p := &w.Participants[i]
		if _, dup := seen[p.UserID]; dup {
			return fmt.Errorf("%w: duplicate participant %s", ErrInvalidState, p.UserID)
		}
		seen[p.UserID] = struct{}{}

		if err := p.validate(); err != nil {
			return err
		}
		owed = owed.Add(p.AmountOwed)
	}

	if w.SplitType == SplitTypeFair && !owed.Equal(w.TotalAmount) {
		return fmt.Errorf("%w: owed %s, total %s", ErrObligationMismatch, owed, w.TotalAmount)
	}
	return nil
}

func (p *SplitWalletParticipant) validate() error {
	if p.UserID == "" {
		return fmt.Errorf("%w: participant without user id", ErrInvalidState)
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("%w: unknown participant status %q", ErrInvalidState, p.Status)
	}
	if !IsValidAmount(p.AmountOwed) {
		return fmt.Errorf("%w: amount owed for %s must be positive", ErrInvalidState, p.UserID)
	}
	if p.AmountPaid.IsNegative() || !HasValidScale(p.AmountPaid) {
		return fmt.Errorf("%w: amount paid for %s is malformed", ErrInvalidState, p.UserID)
	}
	if p.AmountPaid.GreaterThan(p.AmountOwed) {
		return fmt.Errorf("%w: participant %s paid %s of %s", ErrOverpaid, p.UserID, p.AmountPaid, p.AmountOwed)
	}
	if p.PendingAmount.IsNegative() || p.PendingAmount.GreaterThan(p.AmountPaid) {
		return fmt.Errorf("%w: pending amount for %s out of range", ErrInvalidState, p.UserID)
	}

	switch p.Status {
	case ParticipantStatusPending:
		if !p.AmountPaid.IsZero() {
			return fmt.Errorf("%w: pending participant %s holds funds", ErrInvalidState, p.UserID)
		}
	case ParticipantStatusLocked:
		if !p.AmountPaid.IsPositive() {
			return fmt.Errorf("%w: locked participant %s holds no funds", ErrInvalidState, p.UserID)
		}
	case ParticipantStatusPaid:
		if !p.IsFullyPaid() {
			return fmt.Errorf("%w: paid participant %s has not met the obligation", ErrInvalidState, p.UserID)
		}
	}
	return nil
}

// ValidateTransition checks that next is a legal successor of prev.
func ValidateTransition(prev, next *SplitWallet, opts TransitionOptions) error {
	if prev.IsTerminal() {
		return ErrTerminalWallet
	}
	if prev.ID != next.ID || prev.BillID != next.BillID || prev.CreatorID != next.CreatorID ||
		prev.SplitType != next.SplitType || prev.WalletAddress != next.WalletAddress {
		return fmt.Errorf("%w: identity fields are immutable", ErrInvalidState)
	}
	if err := ValidateWalletTransition(prev.Status, next.Status); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	composition := false
	for i := range next.Participants {
		np := &next.Participants[i]
		pp := prev.Participant(np.UserID)
		if pp == nil {
			composition = true
			if np.Status != ParticipantStatusPending {
				return fmt.Errorf("%w: new participant %s must start pending", ErrIllegalTransition, np.UserID)
			}
			continue
		}
		if err := ValidateParticipantTransition(pp, np, opts); err != nil {
			return err
		}
	}
	for i := range prev.Participants {
		pp := &prev.Participants[i]
		if next.HasParticipant(pp.UserID) {
			continue
		}
		composition = true
		if pp.AmountPaid.IsPositive() || pp.TransactionSignature != nil {
			return fmt.Errorf("%w: participant %s has contributed and cannot be removed", ErrInvalidState, pp.UserID)
		}
	}
	if composition && prev.Status != WalletStatusPending {
		return fmt.Errorf("%w: participants are frozen once the wallet is locked", ErrIllegalTransition)
	}
	return nil
}
