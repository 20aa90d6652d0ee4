package service

import (
	"context"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// outgoing describes one transfer out of a custodial wallet.
type outgoing struct {
	Kind          domain.TransferKind
	ParticipantID string
	Destination   string
	Amount        decimal.Decimal
}

// payoutExecutor signs transfers with a requester's key share and records
// them in the ledger.
type payoutExecutor struct {
	custody ports.CustodyService
	chain   ports.BlockchainClient
	txs     ports.SplitTransactionRepository
	metrics ports.Metrics
	retry   RetryPolicy
	log     zerolog.Logger
	now     func() time.Time
}

func (e *payoutExecutor) transfer(ctx context.Context, w *domain.SplitWallet, signerID string, out outgoing) (string, error) {
	key, err := e.custody.GetKey(ctx, w.ID, signerID)
	if err != nil {
		return "", err
	}

	sig, err := withRetry(ctx, e.retry, e.metrics, e.log, "submit_transfer", func() (string, error) {
		return e.chain.SubmitTransfer(ctx, ports.TransferRequest{
			PrivateKey:  key,
			Destination: out.Destination,
			Amount:      out.Amount,
		})
	})
	if err != nil {
		e.log.Error().Err(err).
			Str("split_wallet_id", w.ID.String()).
			Str("kind", string(out.Kind)).
			Str("amount", out.Amount.String()).
			Msg("Transfer out of split wallet failed")
		return "", err
	}

	e.record(ctx, &domain.SplitTransaction{
		ID:            uuid.New(),
		SplitWalletID: w.ID,
		ParticipantID: out.ParticipantID,
		Kind:          out.Kind,
		Amount:        out.Amount,
		Signature:     sig,
		Status:        domain.TransferStatusPending,
		Destination:   out.Destination,
		CreatedAt:     e.now(),
	})
	return sig, nil
}

// record writes a ledger row. The wallet document is authoritative, so a
// ledger failure is logged and not returned.
func (e *payoutExecutor) record(ctx context.Context, txn *domain.SplitTransaction) {
	if err := e.txs.Create(context.WithoutCancel(ctx), txn); err != nil {
		e.log.Error().Err(err).
			Str("split_wallet_id", txn.SplitWalletID.String()).
			Str("signature", txn.Signature).
			Msg("Failed to record split transaction")
	}
}

// custodialHoldings is what the wallet should hold on chain: confirmed
// contributions that were not refunded or paid out.
func custodialHoldings(w *domain.SplitWallet) decimal.Decimal {
	if w.PayoutSignature != nil {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, p := range w.Participants {
		if p.PayoutSignature != nil {
			continue
		}
		total = total.Add(p.AmountPaid.Sub(p.PendingAmount))
	}
	return total
}
