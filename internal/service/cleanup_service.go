package service

import (
	"context"
	"fmt"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CleanupServiceImpl implements ports.CleanupService.
type CleanupServiceImpl struct {
	repo    ports.SplitWalletRepository
	updater ports.AtomicUpdater
	custody ports.CustodyService
	audit   ports.AuditService
	payouts *payoutExecutor
	log     zerolog.Logger
}

// NewCleanupService creates a new CleanupServiceImpl.
func NewCleanupService(
	repo ports.SplitWalletRepository,
	txs ports.SplitTransactionRepository,
	updater ports.AtomicUpdater,
	custody ports.CustodyService,
	chain ports.BlockchainClient,
	audit ports.AuditService,
	metrics ports.Metrics,
	retry RetryPolicy,
	log zerolog.Logger,
) *CleanupServiceImpl {
	return &CleanupServiceImpl{
		repo:    repo,
		updater: updater,
		custody: custody,
		audit:   audit,
		payouts: &payoutExecutor{
			custody: custody,
			chain:   chain,
			txs:     txs,
			metrics: metrics,
			retry:   retry,
			log:     log,
			now:     func() time.Time { return time.Now().UTC() },
		},
		log: log,
	}
}

// CancelSplitWallet refunds every confirmed contribution and cancels the
// wallet. Refunds are recorded one by one, so a failed cancel can be
// retried without paying anyone twice.
func (s *CleanupServiceImpl) CancelSplitWallet(ctx context.Context, id uuid.UUID, requesterID string) (*domain.SplitWallet, error) {
	w, err := s.creatorWallet(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	if w.IsTerminal() {
		return nil, apperror.ErrTerminalWallet()
	}
	w, err = s.cancel(ctx, w, requesterID)
	if err != nil {
		return nil, err
	}
	s.audit.Log(ctx, walletAudit(requesterID, domain.AuditActionCancel, id, ""))
	return w, nil
}

func (s *CleanupServiceImpl) cancel(ctx context.Context, w *domain.SplitWallet, requesterID string) (*domain.SplitWallet, error) {
	for _, p := range w.Participants {
		if p.HasUnconfirmedTransfer() {
			return nil, apperror.ErrInvalidTransition("reconcile pending transfers before cancelling")
		}
	}

	refunded := 0
	for _, p := range w.Participants {
		if p.PayoutSignature != nil || !p.AmountPaid.IsPositive() {
			continue
		}
		sig, err := s.payouts.transfer(ctx, w, requesterID, outgoing{
			Kind:          domain.TransferKindRefund,
			ParticipantID: p.UserID,
			Destination:   p.WalletAddress,
			Amount:        p.AmountPaid,
		})
		if err != nil {
			return nil, err
		}
		userID := p.UserID
		if _, err := s.updater.UpdateParticipantPayment(ctx, w.ID, func(w *domain.SplitWallet) error {
			w.Participant(userID).PayoutSignature = &sig
			return nil
		}); err != nil {
			s.log.Error().Err(err).Str("split_wallet_id", w.ID.String()).Str("signature", sig).
				Msg("Refund submitted but not recorded")
			return nil, err
		}
		refunded++
	}

	res, err := s.updater.UpdateWalletStatus(ctx, w.ID, domain.WalletStatusCancelled, nil)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("split_wallet_id", w.ID.String()).Int("refunds", refunded).Msg("Split wallet cancelled")
	return res.Wallet, nil
}

// CompleteSplitWallet marks a fully paid wallet completed.
func (s *CleanupServiceImpl) CompleteSplitWallet(ctx context.Context, id uuid.UUID, requesterID string) (*domain.SplitWallet, error) {
	if _, err := s.creatorWallet(ctx, id, requesterID); err != nil {
		return nil, err
	}
	res, err := s.updater.UpdateWalletStatus(ctx, id, domain.WalletStatusCompleted, func(w *domain.SplitWallet) error {
		if !w.AllPaid() {
			return apperror.ErrInvalidTransition("every participant must pay before the split can complete")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit.Log(ctx, walletAudit(requesterID, domain.AuditActionComplete, id, ""))
	s.log.Info().Str("split_wallet_id", id.String()).Msg("Split wallet completed")
	return res.Wallet, nil
}

// BurnSplitWalletAndCleanup closes the wallet for good and erases every
// custody key. An open wallet is completed when fully paid and cancelled
// with refunds otherwise.
func (s *CleanupServiceImpl) BurnSplitWalletAndCleanup(ctx context.Context, id uuid.UUID, requesterID string) (*domain.SplitWallet, error) {
	w, err := s.creatorWallet(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if !w.IsTerminal() {
		if w.Status == domain.WalletStatusLocked && w.AllPaid() {
			res, err := s.updater.UpdateWalletStatus(ctx, id, domain.WalletStatusCompleted, nil)
			if err != nil {
				return nil, err
			}
			w = res.Wallet
		} else {
			w, err = s.cancel(ctx, w, requesterID)
			if err != nil {
				return nil, err
			}
		}
	}

	if err := s.custody.DeleteKeys(ctx, id); err != nil {
		return nil, err
	}
	s.audit.Log(ctx, walletAudit(requesterID, domain.AuditActionBurn, id, fmt.Sprintf(`{"status":"%s"}`, w.Status)))
	s.log.Info().Str("split_wallet_id", id.String()).Str("status", string(w.Status)).Msg("Split wallet burned")
	return w, nil
}

func (s *CleanupServiceImpl) creatorWallet(ctx context.Context, id uuid.UUID, requesterID string) (*domain.SplitWallet, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get split wallet", err)
	}
	if w == nil {
		return nil, apperror.ErrNotFound("Split wallet")
	}
	if w.CreatorID != requesterID {
		return nil, apperror.ErrUnauthorized("Only the creator can close this split wallet")
	}
	return w, nil
}
