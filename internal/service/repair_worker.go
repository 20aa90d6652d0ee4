package service

import (
	"context"
	"time"

	"split-wallet-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// RepairWorker periodically rewrites index entries recorded as stale by
// the atomic updater.
type RepairWorker struct {
	debts    ports.RepairDebtRepository
	updater  ports.AtomicUpdater
	interval time.Duration
	batch    int
	log      zerolog.Logger
}

// NewRepairWorker creates a new RepairWorker.
func NewRepairWorker(debts ports.RepairDebtRepository, updater ports.AtomicUpdater, interval time.Duration, batch int, log zerolog.Logger) *RepairWorker {
	if batch <= 0 {
		batch = 50
	}
	return &RepairWorker{
		debts:    debts,
		updater:  updater,
		interval: interval,
		batch:    batch,
		log:      log,
	}
}

// Run drains repair debts every interval until ctx is cancelled.
func (w *RepairWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info().Dur("interval", w.interval).Msg("Index repair worker started")
	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Index repair worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce processes one batch and returns how many debts were cleared.
func (w *RepairWorker) RunOnce(ctx context.Context) int {
	debts, err := w.debts.List(ctx, w.batch)
	if err != nil {
		w.log.Error().Err(err).Msg("Failed to list repair debts")
		return 0
	}

	cleared := 0
	for _, debt := range debts {
		if ctx.Err() != nil {
			break
		}
		if _, err := w.updater.Resync(ctx, debt.SplitWalletID); err != nil {
			w.log.Warn().Err(err).
				Str("split_wallet_id", debt.SplitWalletID.String()).
				Int("attempts", debt.Attempts).
				Msg("Index repair attempt failed")
			debt.LastError = err.Error()
			debt.UpdatedAt = time.Now().UTC()
			if rerr := w.debts.Record(ctx, &debt); rerr != nil {
				w.log.Error().Err(rerr).Str("split_wallet_id", debt.SplitWalletID.String()).Msg("Failed to update repair debt")
			}
			continue
		}
		cleared++
	}
	if cleared > 0 {
		w.log.Info().Int("cleared", cleared).Int("pending", len(debts)-cleared).Msg("Index repair batch done")
	}
	return cleared
}
