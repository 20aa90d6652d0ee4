package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// rouletteCacheTTL bounds how long a result stays in the fast-path cache.
// The audit table remains the source of truth afterwards.
const rouletteCacheTTL = 24 * time.Hour

// RouletteServiceImpl implements ports.RouletteService.
type RouletteServiceImpl struct {
	repo     ports.SplitWalletRepository
	entries  ports.RouletteAuditRepository
	cache    ports.IdempotencyCache
	updater  ports.AtomicUpdater
	executor ports.RouletteExecutor
	metrics  ports.Metrics
	audit    ports.AuditService
	log      zerolog.Logger
}

// NewRouletteService creates a new RouletteServiceImpl.
func NewRouletteService(
	repo ports.SplitWalletRepository,
	entries ports.RouletteAuditRepository,
	cache ports.IdempotencyCache,
	updater ports.AtomicUpdater,
	executor ports.RouletteExecutor,
	metrics ports.Metrics,
	audit ports.AuditService,
	log zerolog.Logger,
) *RouletteServiceImpl {
	return &RouletteServiceImpl{
		repo:     repo,
		entries:  entries,
		cache:    cache,
		updater:  updater,
		executor: executor,
		metrics:  metrics,
		audit:    audit,
		log:      log,
	}
}

// ExecuteDegenRoulette draws the loser of a degen wallet. The draw happens
// at most once per wallet: repeated calls return the stored result.
func (s *RouletteServiceImpl) ExecuteDegenRoulette(ctx context.Context, walletID uuid.UUID, requestedBy string) (*domain.DegenRouletteAuditEntry, error) {
	w, err := s.repo.GetByID(ctx, walletID)
	if err != nil {
		return nil, storeError("get split wallet", err)
	}
	if w == nil {
		return nil, apperror.ErrNotFound("Split wallet")
	}
	if w.CreatorID != requestedBy && !w.HasParticipant(requestedBy) {
		return nil, apperror.ErrUnauthorized("Only members of the split can run the roulette")
	}
	if !w.IsDegen() {
		return nil, apperror.Validation("split wallet is not a degen split")
	}

	entry, err := s.lookup(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		if err := s.settle(ctx, w, entry); err != nil {
			return nil, err
		}
		return entry, nil
	}

	if w.IsTerminal() {
		return nil, apperror.ErrTerminalWallet()
	}
	if !w.AllLockedInFull() {
		return nil, apperror.ErrRouletteNotReady("every participant must lock their full, confirmed share first")
	}

	req := domain.RouletteDrawRequest{
		SplitWalletID: walletID,
		Participants:  w.ParticipantIDs(),
		Weights:       rouletteWeights(w),
		RequestedBy:   requestedBy,
	}
	draw, err := s.executor.Draw(ctx, req)
	if err != nil {
		return nil, err
	}
	entry = domain.NewRouletteAuditEntry(req, draw)

	inserted, err := s.entries.CreateIfAbsent(ctx, entry)
	if err != nil {
		return nil, storeError("create roulette entry", err)
	}
	if !inserted {
		// A concurrent caller won; its draw is the one that counts.
		entry, err = s.entries.Get(ctx, walletID)
		if err != nil {
			return nil, storeError("get roulette entry", err)
		}
		if entry == nil {
			return nil, apperror.InternalError(errors.New("roulette entry vanished after conflict"))
		}
	} else {
		s.metrics.RouletteExecuted(entry.ExecutionPath)
		s.audit.Log(ctx, walletAudit(requestedBy, domain.AuditActionRoulette, walletID,
			fmt.Sprintf(`{"loser":"%s","path":"%s","digest":"%s"}`, entry.SelectedParticipantID, entry.ExecutionPath, entry.RandomnessDigest)))
		s.log.Info().
			Str("split_wallet_id", walletID.String()).
			Str("loser_id", entry.SelectedParticipantID).
			Str("execution_path", string(entry.ExecutionPath)).
			Msg("Degen roulette executed")
	}

	s.remember(ctx, entry)
	if err := s.settle(ctx, w, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetRouletteResult returns the stored draw of a wallet.
func (s *RouletteServiceImpl) GetRouletteResult(ctx context.Context, walletID uuid.UUID) (*domain.DegenRouletteAuditEntry, error) {
	entry, err := s.lookup(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.ErrNotFound("Roulette result")
	}
	return entry, nil
}

// lookup checks the cache, then the audit table. A cache miss found in the
// table is written back to the cache.
func (s *RouletteServiceImpl) lookup(ctx context.Context, walletID uuid.UUID) (*domain.DegenRouletteAuditEntry, error) {
	key := domain.RouletteCacheKey(walletID)
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Roulette cache read failed")
	}
	if cached != nil {
		var entry domain.DegenRouletteAuditEntry
		if err := json.Unmarshal(cached, &entry); err == nil {
			return &entry, nil
		}
		s.log.Warn().Str("key", key).Msg("Discarding malformed roulette cache entry")
	}

	entry, err := s.entries.Get(ctx, walletID)
	if err != nil {
		return nil, storeError("get roulette entry", err)
	}
	if entry != nil {
		s.remember(ctx, entry)
	}
	return entry, nil
}

func (s *RouletteServiceImpl) remember(ctx context.Context, entry *domain.DegenRouletteAuditEntry) {
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	key := domain.RouletteCacheKey(entry.SplitWalletID)
	if err := s.cache.Set(ctx, key, data, rouletteCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Roulette cache write failed")
	}
}

// settle applies the draw to the wallet: winners are marked paid and the
// loser now owes the whole bill. It is a no-op once applied.
func (s *RouletteServiceImpl) settle(ctx context.Context, w *domain.SplitWallet, entry *domain.DegenRouletteAuditEntry) error {
	if w.IsTerminal() || isSettled(w, entry) {
		return nil
	}
	_, err := s.updater.UpdateParticipantPayment(ctx, w.ID, func(w *domain.SplitWallet) error {
		if isSettled(w, entry) {
			return nil
		}
		loser := w.Participant(entry.SelectedParticipantID)
		if loser == nil {
			return apperror.InternalError(fmt.Errorf("roulette loser %s is not a participant", entry.SelectedParticipantID))
		}
		now := time.Now().UTC()
		for i := range w.Participants {
			p := &w.Participants[i]
			if p.UserID == loser.UserID {
				continue
			}
			p.Status = domain.ParticipantStatusPaid
			if p.PaidAt == nil {
				p.PaidAt = &now
			}
		}
		loser.AmountOwed = w.TotalAmount
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("split_wallet_id", w.ID.String()).Msg("Failed to apply roulette settlement")
		return err
	}
	return nil
}

func isSettled(w *domain.SplitWallet, entry *domain.DegenRouletteAuditEntry) bool {
	for _, p := range w.Participants {
		if p.UserID == entry.SelectedParticipantID {
			if !p.AmountOwed.Equal(w.TotalAmount) {
				return false
			}
			continue
		}
		if p.Status != domain.ParticipantStatusPaid {
			return false
		}
	}
	return true
}
