package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// PaymentProcessorImpl implements ports.PaymentProcessor.
type PaymentProcessorImpl struct {
	repo     ports.SplitWalletRepository
	txs      ports.SplitTransactionRepository
	roulette ports.RouletteAuditRepository
	updater  ports.AtomicUpdater
	chain    ports.BlockchainClient
	addrs    ports.AddressValidator
	audit    ports.AuditService
	metrics  ports.Metrics
	payouts  *payoutExecutor
	retry    RetryPolicy
	log      zerolog.Logger
	now      func() time.Time
}

// NewPaymentProcessor creates a new PaymentProcessorImpl.
func NewPaymentProcessor(
	repo ports.SplitWalletRepository,
	txs ports.SplitTransactionRepository,
	roulette ports.RouletteAuditRepository,
	updater ports.AtomicUpdater,
	custody ports.CustodyService,
	chain ports.BlockchainClient,
	addrs ports.AddressValidator,
	audit ports.AuditService,
	metrics ports.Metrics,
	retry RetryPolicy,
	log zerolog.Logger,
) *PaymentProcessorImpl {
	now := func() time.Time { return time.Now().UTC() }
	return &PaymentProcessorImpl{
		repo:     repo,
		txs:      txs,
		roulette: roulette,
		updater:  updater,
		chain:    chain,
		addrs:    addrs,
		audit:    audit,
		metrics:  metrics,
		payouts: &payoutExecutor{
			custody: custody,
			chain:   chain,
			txs:     txs,
			metrics: metrics,
			retry:   retry,
			log:     log,
			now:     now,
		},
		retry: retry,
		log:   log,
		now:   now,
	}
}

// ProcessParticipantPayment records a contribution. With a signature the
// transfer's chain status decides whether it counts as confirmed; a failed
// transfer is rejected outright.
func (s *PaymentProcessorImpl) ProcessParticipantPayment(ctx context.Context, req ports.PaymentRequest) (*ports.UpdateResult, error) {
	res, err := s.processPayment(ctx, req)
	if err != nil {
		s.metrics.PaymentProcessed("rejected")
		return nil, err
	}
	p := res.Wallet.Participant(req.ParticipantID)
	outcome := string(p.Status)
	if p.HasUnconfirmedTransfer() {
		outcome = "unconfirmed"
	}
	s.metrics.PaymentProcessed(outcome)
	return res, nil
}

func (s *PaymentProcessorImpl) processPayment(ctx context.Context, req ports.PaymentRequest) (*ports.UpdateResult, error) {
	if !domain.IsValidAmount(req.Amount) {
		return nil, apperror.ErrInvalidAmount()
	}
	if strings.TrimSpace(req.ParticipantID) == "" {
		return nil, apperror.Validation("participant id is required")
	}

	confirmed := true
	var signature string
	if req.Signature != nil {
		signature = strings.TrimSpace(*req.Signature)
		if signature == "" {
			return nil, apperror.Validation("transaction signature must not be empty")
		}
		existing, err := s.txs.GetBySignature(ctx, signature)
		if err != nil {
			return nil, storeError("get split transaction", err)
		}
		if existing != nil {
			return nil, apperror.Validation("transaction signature has already been recorded")
		}

		status, err := withRetry(ctx, s.retry, s.metrics, s.log, "confirmation_status", func() (ports.ConfirmationStatus, error) {
			return s.chain.GetConfirmationStatus(ctx, signature)
		})
		if err != nil {
			return nil, err
		}
		switch status {
		case ports.ConfirmationFailed:
			return nil, apperror.Validation("transaction failed on chain")
		case ports.ConfirmationPending:
			confirmed = false
		}
	}

	res, err := s.updater.UpdateParticipantPayment(ctx, req.WalletID, func(w *domain.SplitWallet) error {
		p := w.Participant(req.ParticipantID)
		if p == nil {
			return apperror.ErrNotFound("Participant")
		}
		if p.Status == domain.ParticipantStatusPaid {
			return apperror.ErrAlreadyPaid()
		}
		if p.HasUnconfirmedTransfer() {
			return apperror.ErrInvalidTransition("previous transfer is still awaiting confirmation")
		}
		paid := p.AmountPaid.Add(req.Amount)
		if paid.GreaterThan(p.AmountOwed) {
			return apperror.ErrOverpayment()
		}

		now := s.now()
		p.AmountPaid = paid
		p.PendingAmount = decimal.Zero
		p.SignatureConfirmed = confirmed
		if req.Signature != nil {
			sig := signature
			p.TransactionSignature = &sig
			if !confirmed {
				p.PendingAmount = req.Amount
			}
		}
		if p.LockedAt == nil {
			p.LockedAt = &now
		}
		p.Status = domain.ParticipantStatusLocked
		if !w.IsDegen() && confirmed && p.IsFullyPaid() {
			p.Status = domain.ParticipantStatusPaid
			p.PaidAt = &now
		}
		if w.Status == domain.WalletStatusPending {
			w.Status = domain.WalletStatusLocked
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.Signature != nil {
		status := domain.TransferStatusConfirmed
		if !confirmed {
			status = domain.TransferStatusPending
		}
		s.payouts.record(ctx, &domain.SplitTransaction{
			ID:            uuid.New(),
			SplitWalletID: req.WalletID,
			ParticipantID: req.ParticipantID,
			Kind:          domain.TransferKindContribution,
			Amount:        req.Amount,
			Signature:     signature,
			Status:        status,
			CreatedAt:     s.now(),
		})
	}

	s.audit.Log(ctx, walletAudit(req.ParticipantID, domain.AuditActionPayment, req.WalletID,
		fmt.Sprintf(`{"amount":"%s","confirmed":%t}`, req.Amount, confirmed)))
	s.log.Info().
		Str("split_wallet_id", req.WalletID.String()).
		Str("participant_id", req.ParticipantID).
		Str("amount", req.Amount.String()).
		Bool("confirmed", confirmed).
		Msg("Contribution recorded")

	return res, nil
}

// VerifyWalletBalance compares the custodial account's on-chain balance
// with what the wallet record says it should hold.
func (s *PaymentProcessorImpl) VerifyWalletBalance(ctx context.Context, id uuid.UUID) (*ports.BalanceReport, error) {
	w, err := s.getWallet(ctx, id)
	if err != nil {
		return nil, err
	}
	onChain, err := withRetry(ctx, s.retry, s.metrics, s.log, "get_balance", func() (decimal.Decimal, error) {
		return s.chain.GetBalance(ctx, w.WalletAddress)
	})
	if err != nil {
		return nil, err
	}

	recorded := custodialHoldings(w)
	report := &ports.BalanceReport{
		SplitWalletID: id,
		WalletAddress: w.WalletAddress,
		OnChain:       onChain,
		Recorded:      recorded,
		Difference:    onChain.Sub(recorded),
		Matches:       onChain.Equal(recorded),
	}
	if !report.Matches {
		s.log.Warn().
			Str("split_wallet_id", id.String()).
			Str("on_chain", onChain.String()).
			Str("recorded", recorded.String()).
			Msg("Split wallet balance does not match recorded contributions")
	}
	return report, nil
}

// ReconcilePendingTransactions settles unconfirmed contributions against
// the chain. Confirmed transfers are marked as such; dropped or failed
// ones have their amount taken back out of the participant's total.
func (s *PaymentProcessorImpl) ReconcilePendingTransactions(ctx context.Context, id uuid.UUID) (*ports.ReconcileReport, error) {
	w, err := s.getWallet(ctx, id)
	if err != nil {
		return nil, err
	}
	report := &ports.ReconcileReport{
		SplitWalletID: id,
		Confirmed:     []string{},
		StillPending:  []string{},
		Reverted:      []string{},
	}

	statuses := make(map[string]ports.ConfirmationStatus)
	for _, p := range w.Participants {
		if !p.HasUnconfirmedTransfer() {
			continue
		}
		sig := *p.TransactionSignature
		status, err := withRetry(ctx, s.retry, s.metrics, s.log, "confirmation_status", func() (ports.ConfirmationStatus, error) {
			return s.chain.GetConfirmationStatus(ctx, sig)
		})
		if err != nil {
			return nil, err
		}
		statuses[sig] = status
	}

	if len(statuses) > 0 && !w.IsTerminal() {
		if err := s.applyReconciliation(ctx, id, statuses, report); err != nil {
			return nil, err
		}
		for sig, status := range statuses {
			switch status {
			case ports.ConfirmationConfirmed:
				s.updateLedger(ctx, sig, domain.TransferStatusConfirmed)
			case ports.ConfirmationFailed:
				s.updateLedger(ctx, sig, domain.TransferStatusFailed)
			}
		}
	}

	s.reconcileOutgoing(ctx, id)

	if len(report.Confirmed)+len(report.Reverted) > 0 {
		s.audit.Log(ctx, walletAudit("", domain.AuditActionReconcile, id,
			fmt.Sprintf(`{"confirmed":%d,"reverted":%d}`, len(report.Confirmed), len(report.Reverted))))
	}
	return report, nil
}

func (s *PaymentProcessorImpl) applyReconciliation(ctx context.Context, id uuid.UUID, statuses map[string]ports.ConfirmationStatus, report *ports.ReconcileReport) error {
	var confirmed, pending, reverted []string
	mutate := func(w *domain.SplitWallet) error {
		confirmed, pending, reverted = nil, nil, nil
		now := s.now()
		for i := range w.Participants {
			p := &w.Participants[i]
			if !p.HasUnconfirmedTransfer() {
				continue
			}
			switch statuses[*p.TransactionSignature] {
			case ports.ConfirmationConfirmed:
				p.SignatureConfirmed = true
				p.PendingAmount = decimal.Zero
				if !w.IsDegen() && p.IsFullyPaid() {
					p.Status = domain.ParticipantStatusPaid
					p.PaidAt = &now
				}
				confirmed = append(confirmed, p.UserID)
			case ports.ConfirmationFailed:
				p.AmountPaid = p.AmountPaid.Sub(p.PendingAmount)
				p.PendingAmount = decimal.Zero
				p.TransactionSignature = nil
				p.SignatureConfirmed = false
				if p.AmountPaid.IsZero() {
					p.Status = domain.ParticipantStatusPending
					p.LockedAt = nil
				}
				reverted = append(reverted, p.UserID)
			default:
				pending = append(pending, p.UserID)
			}
		}
		return nil
	}

	hasFailure, settled := false, 0
	for _, st := range statuses {
		switch st {
		case ports.ConfirmationFailed:
			hasFailure = true
			settled++
		case ports.ConfirmationConfirmed:
			settled++
		}
	}
	if settled == 0 {
		w, err := s.getWallet(ctx, id)
		if err != nil {
			return err
		}
		for _, p := range w.Participants {
			if p.HasUnconfirmedTransfer() {
				report.StillPending = append(report.StillPending, p.UserID)
			}
		}
		return nil
	}

	var err error
	if hasFailure {
		_, err = s.updater.RevertParticipantPayment(ctx, id, mutate)
	} else {
		_, err = s.updater.UpdateParticipantPayment(ctx, id, mutate)
	}
	if err != nil {
		return err
	}

	report.Confirmed = append(report.Confirmed, confirmed...)
	report.StillPending = append(report.StillPending, pending...)
	report.Reverted = append(report.Reverted, reverted...)
	for _, uid := range reverted {
		s.log.Warn().Str("split_wallet_id", id.String()).Str("participant_id", uid).Msg("Dropped contribution reverted")
	}
	return nil
}

// reconcileOutgoing refreshes the ledger status of payouts and refunds.
func (s *PaymentProcessorImpl) reconcileOutgoing(ctx context.Context, id uuid.UUID) {
	txns, err := s.txs.ListByWallet(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("split_wallet_id", id.String()).Msg("Failed to list split transactions")
		return
	}
	for _, txn := range txns {
		if txn.Kind == domain.TransferKindContribution || txn.Status.IsTerminal() {
			continue
		}
		status, err := s.chain.GetConfirmationStatus(ctx, txn.Signature)
		if err != nil {
			s.log.Warn().Err(err).Str("signature", txn.Signature).Msg("Failed to refresh transfer status")
			continue
		}
		switch status {
		case ports.ConfirmationConfirmed:
			s.updateLedger(ctx, txn.Signature, domain.TransferStatusConfirmed)
		case ports.ConfirmationFailed:
			s.log.Error().Str("split_wallet_id", id.String()).Str("signature", txn.Signature).
				Str("kind", string(txn.Kind)).Msg("Outgoing transfer failed on chain")
			s.updateLedger(ctx, txn.Signature, domain.TransferStatusFailed)
		}
	}
}

func (s *PaymentProcessorImpl) updateLedger(ctx context.Context, sig string, status domain.TransferStatus) {
	if err := s.txs.UpdateStatus(ctx, sig, status); err != nil {
		s.log.Warn().Err(err).Str("signature", sig).Msg("Failed to update split transaction status")
	}
}

// ExtractFairSplitFunds pays the collected funds of a fully paid fair split
// to recipient and completes the wallet.
func (s *PaymentProcessorImpl) ExtractFairSplitFunds(ctx context.Context, id uuid.UUID, recipient string, creatorID string) (*domain.SplitWallet, error) {
	if !s.addrs.IsValidAddress(recipient) {
		return nil, apperror.Validation("invalid recipient address")
	}
	w, err := s.getWallet(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.CreatorID != creatorID {
		return nil, apperror.ErrUnauthorized("Only the creator can withdraw from this split wallet")
	}
	if w.IsDegen() {
		return nil, apperror.Validation("degen split wallets are settled through the roulette")
	}
	if w.IsTerminal() {
		return nil, apperror.ErrTerminalWallet()
	}
	if !w.AllPaid() {
		return nil, apperror.ErrInvalidTransition("every participant must pay before funds can be withdrawn")
	}

	balance, err := withRetry(ctx, s.retry, s.metrics, s.log, "get_balance", func() (decimal.Decimal, error) {
		return s.chain.GetBalance(ctx, w.WalletAddress)
	})
	if err != nil {
		return nil, err
	}
	if balance.LessThan(custodialHoldings(w)) {
		s.log.Error().
			Str("split_wallet_id", id.String()).
			Str("balance", balance.String()).
			Str("expected", custodialHoldings(w).String()).
			Msg("Custodial balance below recorded contributions")
		return nil, apperror.ErrInsufficientFunds()
	}

	sig, err := s.payouts.transfer(ctx, w, creatorID, outgoing{
		Kind:        domain.TransferKindPayout,
		Destination: recipient,
		Amount:      balance,
	})
	if err != nil {
		return nil, err
	}

	res, err := s.updater.UpdateWalletStatus(ctx, id, domain.WalletStatusCompleted, func(w *domain.SplitWallet) error {
		if w.PayoutSignature != nil {
			return apperror.ErrInvalidTransition("funds have already been withdrawn")
		}
		w.PayoutSignature = &sig
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("split_wallet_id", id.String()).Str("signature", sig).
			Msg("Payout submitted but wallet not completed")
		return nil, err
	}

	s.eraseKeys(ctx, id)
	s.audit.Log(ctx, walletAudit(creatorID, domain.AuditActionPayout, id,
		fmt.Sprintf(`{"amount":"%s","signature":"%s"}`, balance, sig)))
	s.log.Info().Str("split_wallet_id", id.String()).Str("amount", balance.String()).Msg("Fair split funds withdrawn")
	return res.Wallet, nil
}

// ProcessDegenWinnerPayout refunds a roulette winner's contribution.
func (s *PaymentProcessorImpl) ProcessDegenWinnerPayout(ctx context.Context, id uuid.UUID, winnerID string, requesterID string) (*domain.SplitWallet, error) {
	w, entry, err := s.settledDegen(ctx, id)
	if err != nil {
		return nil, err
	}
	if winnerID == entry.SelectedParticipantID {
		return nil, apperror.Validation("the selected participant is not a winner")
	}
	p := w.Participant(winnerID)
	if p == nil {
		return nil, apperror.ErrNotFound("Participant")
	}
	if p.PayoutSignature != nil {
		return nil, apperror.ErrInvalidTransition("winner has already been refunded")
	}
	if p.Status != domain.ParticipantStatusPaid {
		return nil, apperror.ErrRouletteNotReady("roulette settlement has not been applied")
	}

	sig, err := s.payouts.transfer(ctx, w, requesterID, outgoing{
		Kind:          domain.TransferKindRefund,
		ParticipantID: winnerID,
		Destination:   p.WalletAddress,
		Amount:        p.AmountPaid,
	})
	if err != nil {
		return nil, err
	}

	res, err := s.updater.UpdateParticipantPayment(ctx, id, func(w *domain.SplitWallet) error {
		p := w.Participant(winnerID)
		if p.PayoutSignature != nil {
			return apperror.ErrInvalidTransition("winner has already been refunded")
		}
		p.PayoutSignature = &sig
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("split_wallet_id", id.String()).Str("signature", sig).
			Msg("Winner refund submitted but not recorded")
		return nil, err
	}

	s.audit.Log(ctx, walletAudit(requesterID, domain.AuditActionPayout, id,
		fmt.Sprintf(`{"winner":"%s","amount":"%s","signature":"%s"}`, winnerID, p.AmountPaid, sig)))
	s.log.Info().Str("split_wallet_id", id.String()).Str("winner_id", winnerID).Msg("Degen winner refunded")
	return res.Wallet, nil
}

// ProcessDegenLoserPayment pays the bill from the loser's full contribution
// once every winner has been refunded, then completes the wallet. Only the
// roulette-selected participant may call it and choose the destination.
func (s *PaymentProcessorImpl) ProcessDegenLoserPayment(ctx context.Context, id uuid.UUID, requesterID string, dest domain.Destination) (*domain.SplitWallet, error) {
	if dest.Kind != domain.DestinationWallet && dest.Kind != domain.DestinationCard {
		return nil, apperror.Validation("destination kind must be wallet or card")
	}
	if !s.addrs.IsValidAddress(dest.Address) {
		return nil, apperror.Validation("invalid destination address")
	}
	w, entry, err := s.settledDegen(ctx, id)
	if err != nil {
		return nil, err
	}
	loserID := entry.SelectedParticipantID
	if requesterID != loserID {
		return nil, apperror.ErrUnauthorized("Only the selected participant can pay the bill")
	}
	loser := w.Participant(loserID)
	if loser == nil {
		return nil, apperror.ErrNotFound("Participant")
	}
	if !loser.AmountOwed.Equal(w.TotalAmount) {
		return nil, apperror.ErrRouletteNotReady("roulette settlement has not been applied")
	}
	if !loser.IsFullyPaid() || loser.HasUnconfirmedTransfer() {
		return nil, apperror.ErrRouletteNotReady("the loser has not covered the full amount yet")
	}
	for _, p := range w.Participants {
		if p.UserID != loserID && p.PayoutSignature == nil {
			return nil, apperror.ErrRouletteNotReady("every winner must be refunded first")
		}
	}

	sig, err := s.payouts.transfer(ctx, w, requesterID, outgoing{
		Kind:          domain.TransferKindPayout,
		ParticipantID: loserID,
		Destination:   dest.Address,
		Amount:        w.TotalAmount,
	})
	if err != nil {
		return nil, err
	}

	res, err := s.updater.UpdateWalletStatus(ctx, id, domain.WalletStatusCompleted, func(w *domain.SplitWallet) error {
		if w.PayoutSignature != nil {
			return apperror.ErrInvalidTransition("the bill has already been paid")
		}
		now := s.now()
		p := w.Participant(loserID)
		p.Status = domain.ParticipantStatusPaid
		p.PaidAt = &now
		w.PayoutSignature = &sig
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("split_wallet_id", id.String()).Str("signature", sig).
			Msg("Loser payment submitted but wallet not completed")
		return nil, err
	}

	s.eraseKeys(ctx, id)
	s.audit.Log(ctx, walletAudit(requesterID, domain.AuditActionPayout, id,
		fmt.Sprintf(`{"loser":"%s","destination_kind":"%s","signature":"%s"}`, loserID, dest.Kind, sig)))
	s.log.Info().Str("split_wallet_id", id.String()).Str("loser_id", loserID).Str("destination_kind", string(dest.Kind)).
		Msg("Degen loser payment sent")
	return res.Wallet, nil
}

// settledDegen loads a non-terminal degen wallet and its roulette entry.
func (s *PaymentProcessorImpl) settledDegen(ctx context.Context, id uuid.UUID) (*domain.SplitWallet, *domain.DegenRouletteAuditEntry, error) {
	w, err := s.getWallet(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !w.IsDegen() {
		return nil, nil, apperror.Validation("split wallet is not a degen split")
	}
	if w.IsTerminal() {
		return nil, nil, apperror.ErrTerminalWallet()
	}
	entry, err := s.roulette.Get(ctx, id)
	if err != nil {
		return nil, nil, storeError("get roulette entry", err)
	}
	if entry == nil {
		return nil, nil, apperror.ErrRouletteNotReady("roulette has not been executed")
	}
	return w, entry, nil
}

func (s *PaymentProcessorImpl) getWallet(ctx context.Context, id uuid.UUID) (*domain.SplitWallet, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get split wallet", err)
	}
	if w == nil {
		return nil, apperror.ErrNotFound("Split wallet")
	}
	return w, nil
}

func (s *PaymentProcessorImpl) eraseKeys(ctx context.Context, id uuid.UUID) {
	if err := s.payouts.custody.DeleteKeys(context.WithoutCancel(ctx), id); err != nil {
		s.log.Error().Err(err).Str("split_wallet_id", id.String()).Msg("Failed to erase custody keys")
	}
}
