package service

import (
	"context"
	"strings"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"
	"split-wallet-engine/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ManagementServiceImpl implements ports.ManagementService.
type ManagementServiceImpl struct {
	repo    ports.SplitWalletRepository
	index   ports.SplitIndexStore
	updater ports.AtomicUpdater
	custody ports.CustodyService
	addrs   ports.AddressValidator
	audit   ports.AuditService
	log     zerolog.Logger
}

// NewManagementService creates a new ManagementServiceImpl.
func NewManagementService(
	repo ports.SplitWalletRepository,
	index ports.SplitIndexStore,
	updater ports.AtomicUpdater,
	custody ports.CustodyService,
	addrs ports.AddressValidator,
	audit ports.AuditService,
	log zerolog.Logger,
) *ManagementServiceImpl {
	return &ManagementServiceImpl{
		repo:    repo,
		index:   index,
		updater: updater,
		custody: custody,
		addrs:   addrs,
		audit:   audit,
		log:     log,
	}
}

// editable checks that requester may still change the wallet's terms.
func editable(w *domain.SplitWallet, requesterID string) error {
	if w.CreatorID != requesterID {
		return apperror.ErrUnauthorized("Only the creator can modify this split wallet")
	}
	if w.Status != domain.WalletStatusPending || w.HasContributions() {
		return apperror.ErrWalletLocked()
	}
	return nil
}

// UpdateWalletAmount changes the total and re-splits it equally or by weight,
// matching how the current obligations were derived.
func (s *ManagementServiceImpl) UpdateWalletAmount(ctx context.Context, id uuid.UUID, requesterID string, amount decimal.Decimal) (*domain.SplitWallet, error) {
	if !domain.IsValidAmount(amount) {
		return nil, apperror.ErrInvalidAmount()
	}
	res, err := s.updater.UpdateWalletData(ctx, id, func(w *domain.SplitWallet) error {
		if err := editable(w, requesterID); err != nil {
			return err
		}
		shares, err := resplit(w, amount)
		if err != nil {
			return err
		}
		for i := range w.Participants {
			w.Participants[i].AmountOwed = shares[i]
		}
		w.TotalAmount = amount
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logUpdate(ctx, requesterID, res.Wallet, "amount")
	return res.Wallet, nil
}

func (s *ManagementServiceImpl) UpdateWalletCurrency(ctx context.Context, id uuid.UUID, requesterID string, currency string) (*domain.SplitWallet, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return nil, apperror.Validation("currency is required")
	}
	res, err := s.updater.UpdateWalletData(ctx, id, func(w *domain.SplitWallet) error {
		if err := editable(w, requesterID); err != nil {
			return err
		}
		w.Currency = currency
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logUpdate(ctx, requesterID, res.Wallet, "currency")
	return res.Wallet, nil
}

// LockWallet freezes the participant set before any contribution arrives.
func (s *ManagementServiceImpl) LockWallet(ctx context.Context, id uuid.UUID, requesterID string) (*domain.SplitWallet, error) {
	res, err := s.updater.UpdateWalletStatus(ctx, id, domain.WalletStatusLocked, func(w *domain.SplitWallet) error {
		if w.CreatorID != requesterID {
			return apperror.ErrUnauthorized("Only the creator can lock this split wallet")
		}
		if w.Status != domain.WalletStatusPending {
			return apperror.ErrInvalidTransition("only a pending split wallet can be locked")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logUpdate(ctx, requesterID, res.Wallet, "lock")
	return res.Wallet, nil
}

// ReplaceParticipants swaps the participant set of a pending wallet. Degen
// wallets also bring their custody shares in line with it.
func (s *ManagementServiceImpl) ReplaceParticipants(ctx context.Context, id uuid.UUID, requesterID string, participants []ports.ParticipantInput) (*domain.SplitWallet, error) {
	res, err := s.updater.UpdateWalletParticipants(ctx, id, func(w *domain.SplitWallet) error {
		if err := editable(w, requesterID); err != nil {
			return err
		}
		weighted := w.IsDegen() && rouletteWeights(w) != nil
		next, err := buildParticipants(w.TotalAmount, w.SplitType, weighted, participants, s.addrs)
		if err != nil {
			return err
		}
		w.Participants = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.Wallet.IsDegen() {
		if err := s.custody.SyncParticipantShares(ctx, id, requesterID, res.Wallet.ParticipantIDs()); err != nil {
			s.log.Error().Err(err).Str("split_wallet_id", id.String()).Msg("Participants replaced but key shares not synchronized")
			return nil, err
		}
	}
	s.logUpdate(ctx, requesterID, res.Wallet, "participants")
	return res.Wallet, nil
}

// RepairDataConsistency checks the stored wallet and its index entry,
// rewriting derived fields and the index when they drift.
func (s *ManagementServiceImpl) RepairDataConsistency(ctx context.Context, id uuid.UUID) (*ports.RepairReport, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get split wallet", err)
	}
	if w == nil {
		return nil, apperror.ErrNotFound("Split wallet")
	}
	if err := w.Validate(); err != nil {
		logger.Critical(s.log).Err(err).
			Str("error_kind", string(apperror.KindConsistency)).
			Str("split_wallet_id", id.String()).
			Msg("Stored split wallet violates invariants")
		return nil, apperror.InternalError(err)
	}

	report := &ports.RepairReport{SplitWalletID: id, IndexSynced: true}

	if !w.PaidTotal.Equal(w.ComputePaidTotal()) {
		report.Drifted = true
		report.Fields = append(report.Fields, "wallet.paid_total")
		if !w.IsTerminal() {
			res, err := s.updater.UpdateWalletData(ctx, id, func(*domain.SplitWallet) error { return nil })
			if err != nil {
				return nil, err
			}
			report.IndexSynced = res.IndexSynced
			s.logRepair(ctx, report)
			return report, nil
		}
		w.PaidTotal = w.ComputePaidTotal()
	}

	fields, err := s.indexDrift(ctx, w)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		report.Drifted = true
		report.Fields = append(report.Fields, fields...)
		report.IndexSynced = s.updater.Propagate(ctx, w, OpRepair)
	}
	s.logRepair(ctx, report)
	return report, nil
}

// RepairSynchronization rewrites the index entry from the wallet.
func (s *ManagementServiceImpl) RepairSynchronization(ctx context.Context, id uuid.UUID, creatorID string) (*ports.RepairReport, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get split wallet", err)
	}
	if w == nil {
		return nil, apperror.ErrNotFound("Split wallet")
	}
	if w.CreatorID != creatorID {
		return nil, apperror.ErrUnauthorized("Only the creator can repair this split wallet")
	}

	fields, err := s.indexDrift(ctx, w)
	if err != nil {
		return nil, err
	}
	if _, err := s.updater.Resync(ctx, id); err != nil {
		return nil, err
	}
	report := &ports.RepairReport{
		SplitWalletID: id,
		Drifted:       len(fields) > 0,
		Fields:        fields,
		IndexSynced:   true,
	}
	s.logRepair(ctx, report)
	return report, nil
}

func (s *ManagementServiceImpl) indexDrift(ctx context.Context, w *domain.SplitWallet) ([]string, error) {
	got, err := s.index.Get(ctx, w.BillID)
	if err != nil {
		return nil, apperror.ErrTransient(err)
	}
	if got == nil {
		return []string{"index_entry"}, nil
	}
	return got.DriftedFields(domain.NewIndexEntry(w)), nil
}

func (s *ManagementServiceImpl) logUpdate(ctx context.Context, actorID string, w *domain.SplitWallet, what string) {
	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      actorID,
		Action:       domain.AuditActionUpdateSplit,
		ResourceType: "split_wallet",
		ResourceID:   w.ID.String(),
		Details:      `{"field":"` + what + `"}`,
		CreatedAt:    time.Now().UTC(),
	})
	s.log.Info().Str("split_wallet_id", w.ID.String()).Str("change", what).Int64("version", w.Version).Msg("Split wallet updated")
}

func (s *ManagementServiceImpl) logRepair(ctx context.Context, r *ports.RepairReport) {
	if !r.Drifted {
		return
	}
	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionRepair,
		ResourceType: "split_wallet",
		ResourceID:   r.SplitWalletID.String(),
		Details:      `{"fields":"` + strings.Join(r.Fields, ",") + `"}`,
		CreatedAt:    time.Now().UTC(),
	})
	s.log.Warn().
		Str("split_wallet_id", r.SplitWalletID.String()).
		Strs("fields", r.Fields).
		Bool("index_synced", r.IndexSynced).
		Msg("Split wallet drift repaired")
}
