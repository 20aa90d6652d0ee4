package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"
	"split-wallet-engine/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Operation names used in logs, metrics and repair debts.
const (
	OpCreate       = "create"
	OpStatus       = "update_status"
	OpPayment      = "update_payment"
	OpRevert       = "revert_payment"
	OpParticipants = "update_participants"
	OpData         = "update_data"
	OpRepair       = "repair"
)

// AtomicUpdaterImpl implements ports.AtomicUpdater. Every wallet write goes
// through here: validate against the latest stored state, write the
// authoritative document, then propagate to the index store.
type AtomicUpdaterImpl struct {
	repo       ports.SplitWalletRepository
	index      ports.SplitIndexStore
	debts      ports.RepairDebtRepository
	metrics    ports.Metrics
	retryDelay time.Duration
	log        zerolog.Logger

	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// NewAtomicUpdater creates a new AtomicUpdaterImpl.
func NewAtomicUpdater(
	repo ports.SplitWalletRepository,
	index ports.SplitIndexStore,
	debts ports.RepairDebtRepository,
	metrics ports.Metrics,
	retryDelay time.Duration,
	log zerolog.Logger,
) *AtomicUpdaterImpl {
	return &AtomicUpdaterImpl{
		repo:       repo,
		index:      index,
		debts:      debts,
		metrics:    metrics,
		retryDelay: retryDelay,
		log:        log,
		sleep:      sleepContext,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// guard rejects changes an operation is not allowed to make.
type guard func(prev, next *domain.SplitWallet) error

// UpdateWalletStatus moves the wallet to status after applying mutate.
func (u *AtomicUpdaterImpl) UpdateWalletStatus(ctx context.Context, id uuid.UUID, status domain.WalletStatus, mutate func(w *domain.SplitWallet) error) (*ports.UpdateResult, error) {
	apply := func(w *domain.SplitWallet) error {
		if mutate != nil {
			if err := mutate(w); err != nil {
				return err
			}
		}
		w.Status = status
		if status == domain.WalletStatusCompleted && w.CompletedAt == nil {
			now := u.now()
			w.CompletedAt = &now
		}
		return nil
	}
	return u.update(ctx, id, OpStatus, domain.TransitionOptions{}, apply, sameComposition)
}

// UpdateParticipantPayment records contribution progress. Participants may
// only move forward and the wallet may only go pending -> locked.
func (u *AtomicUpdaterImpl) UpdateParticipantPayment(ctx context.Context, id uuid.UUID, mutate func(w *domain.SplitWallet) error) (*ports.UpdateResult, error) {
	return u.update(ctx, id, OpPayment, domain.TransitionOptions{}, mutate, paymentOnly)
}

// RevertParticipantPayment is the reconciliation-only path that may move a
// participant back to pending and lower AmountPaid after a failed transfer.
func (u *AtomicUpdaterImpl) RevertParticipantPayment(ctx context.Context, id uuid.UUID, mutate func(w *domain.SplitWallet) error) (*ports.UpdateResult, error) {
	return u.update(ctx, id, OpRevert, domain.TransitionOptions{AllowRevert: true}, mutate, paymentOnly)
}

// UpdateWalletParticipants changes the participant set. The transition
// rules only allow this while the wallet is pending.
func (u *AtomicUpdaterImpl) UpdateWalletParticipants(ctx context.Context, id uuid.UUID, mutate func(w *domain.SplitWallet) error) (*ports.UpdateResult, error) {
	return u.update(ctx, id, OpParticipants, domain.TransitionOptions{}, mutate, sameStatus)
}

// UpdateWalletData changes wallet metadata such as amount and currency.
func (u *AtomicUpdaterImpl) UpdateWalletData(ctx context.Context, id uuid.UUID, mutate func(w *domain.SplitWallet) error) (*ports.UpdateResult, error) {
	return u.update(ctx, id, OpData, domain.TransitionOptions{}, mutate, sameStatus)
}

func (u *AtomicUpdaterImpl) update(ctx context.Context, id uuid.UUID, op string, opts domain.TransitionOptions, mutate func(w *domain.SplitWallet) error, check guard) (*ports.UpdateResult, error) {
	next, err := u.repo.Mutate(ctx, id, func(current *domain.SplitWallet) (*domain.SplitWallet, error) {
		if current.IsTerminal() {
			return nil, apperror.ErrTerminalWallet()
		}
		prev := current.Clone()
		if err := mutate(current); err != nil {
			return nil, mapDomainError(err)
		}
		if err := check(prev, current); err != nil {
			return nil, err
		}
		current.PaidTotal = current.ComputePaidTotal()
		if err := domain.ValidateTransition(prev, current, opts); err != nil {
			return nil, mapDomainError(err)
		}
		current.Version = prev.Version + 1
		current.UpdatedAt = u.now()
		return current, nil
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, storeError(op, err)
	}
	if next == nil {
		return nil, apperror.ErrNotFound("Split wallet")
	}

	synced := u.Propagate(ctx, next, op)

	u.log.Debug().
		Str("split_wallet_id", id.String()).
		Str("operation", op).
		Int64("version", next.Version).
		Bool("index_synced", synced).
		Msg("Split wallet updated")

	return &ports.UpdateResult{Success: true, Wallet: next, IndexSynced: synced}, nil
}

// Propagate writes the wallet's index entry, retrying once after the
// configured delay. A second failure leaves the authoritative write in
// place, raises a consistency error and records a repair debt.
func (u *AtomicUpdaterImpl) Propagate(ctx context.Context, wallet *domain.SplitWallet, op string) bool {
	entry := domain.NewIndexEntry(wallet)

	err := u.index.Put(ctx, entry)
	if err == nil {
		return true
	}
	u.metrics.IndexPropagationFailed(op)
	u.log.Warn().Err(err).
		Str("split_wallet_id", wallet.ID.String()).
		Str("operation", op).
		Dur("retry_in", u.retryDelay).
		Msg("Index propagation failed, retrying")

	if serr := u.sleep(ctx, u.retryDelay); serr != nil {
		err = fmt.Errorf("retry aborted: %w (last error: %v)", serr, err)
	} else if err = u.index.Put(ctx, entry); err == nil {
		return true
	} else {
		u.metrics.IndexPropagationFailed(op)
	}

	consistencyErr := apperror.ErrConsistency(err)
	logger.Critical(u.log).Err(consistencyErr).
		Str("error_kind", string(apperror.KindConsistency)).
		Str("split_wallet_id", wallet.ID.String()).
		Str("bill_id", wallet.BillID).
		Str("operation", op).
		Int64("version", wallet.Version).
		Msg("Index store out of sync after retry")
	u.metrics.ConsistencyError(op)

	now := u.now()
	debt := &domain.SyncRepairDebt{
		SplitWalletID: wallet.ID,
		Operation:     op,
		LastError:     err.Error(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if derr := u.debts.Record(context.WithoutCancel(ctx), debt); derr != nil {
		u.log.Error().Err(derr).Str("split_wallet_id", wallet.ID.String()).Msg("Failed to record repair debt")
	}
	return false
}

// Resync rewrites the index entry from the authoritative wallet and clears
// any repair debt. Unlike Propagate it reports failure to the caller.
func (u *AtomicUpdaterImpl) Resync(ctx context.Context, id uuid.UUID) (*domain.SplitWallet, error) {
	wallet, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get split wallet", err)
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Split wallet")
	}
	if err := u.index.Put(ctx, domain.NewIndexEntry(wallet)); err != nil {
		u.metrics.IndexPropagationFailed(OpRepair)
		return nil, apperror.ErrConsistency(err)
	}
	if err := u.debts.Resolve(ctx, id); err != nil {
		u.log.Warn().Err(err).Str("split_wallet_id", id.String()).Msg("Failed to resolve repair debt")
	}
	return wallet, nil
}

func sameComposition(prev, next *domain.SplitWallet) error {
	if len(prev.Participants) != len(next.Participants) {
		return apperror.ErrInvalidTransition("participants cannot change in this operation")
	}
	for i := range prev.Participants {
		if !next.HasParticipant(prev.Participants[i].UserID) {
			return apperror.ErrInvalidTransition("participants cannot change in this operation")
		}
	}
	return nil
}

func paymentOnly(prev, next *domain.SplitWallet) error {
	if err := sameComposition(prev, next); err != nil {
		return err
	}
	if !prev.TotalAmount.Equal(next.TotalAmount) || prev.Currency != next.Currency {
		return apperror.ErrInvalidTransition("wallet data cannot change in a payment update")
	}
	if next.Status != prev.Status && !(prev.Status == domain.WalletStatusPending && next.Status == domain.WalletStatusLocked) {
		return apperror.ErrInvalidTransition("payment updates may only lock a pending wallet")
	}
	return nil
}

func sameStatus(prev, next *domain.SplitWallet) error {
	if prev.Status != next.Status {
		return apperror.ErrInvalidTransition("status changes go through UpdateWalletStatus")
	}
	return nil
}
