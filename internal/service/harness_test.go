package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"split-wallet-engine/internal/adapter/chain/evm"
	"split-wallet-engine/internal/adapter/chain/simulated"
	"split-wallet-engine/internal/adapter/metrics"
	"split-wallet-engine/internal/adapter/storage/memory"
	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// syncBuffer is a log sink safe for the audit goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testAddress(i int) string {
	return fmt.Sprintf("0x%040x", i+1)
}

// engine wires every service onto the in-memory stores and simulated chain.
type engine struct {
	repo     *memory.SplitWalletRepo
	index    *memory.IndexStore
	debts    *memory.RepairDebtRepo
	txs      *memory.SplitTransactionRepo
	entries  *memory.RouletteAuditRepo
	shares   *memory.KeyShareRepo
	cache    *memory.IdempotencyCache
	chain    *simulated.Chain
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	logs     *syncBuffer

	updater    *AtomicUpdaterImpl
	custody    *CustodyServiceImpl
	creation   *CreationServiceImpl
	management *ManagementServiceImpl
	query      ports.QueryService
	payments   *PaymentProcessorImpl
	roulette   *RouletteServiceImpl
	cleanup    *CleanupServiceImpl
}

func newEngine(t *testing.T) *engine {
	t.Helper()

	e := &engine{
		repo:     memory.NewSplitWalletRepo(),
		index:    memory.NewIndexStore(),
		debts:    memory.NewRepairDebtRepo(),
		txs:      memory.NewSplitTransactionRepo(),
		entries:  memory.NewRouletteAuditRepo(),
		shares:   memory.NewKeyShareRepo(),
		cache:    memory.NewIdempotencyCache(),
		chain:    simulated.New(),
		registry: prometheus.NewRegistry(),
		logs:     &syncBuffer{},
	}
	e.metrics = metrics.New(e.registry)
	log := zerolog.New(e.logs)

	enc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	retry := RetryPolicy{MaxRetries: 2, BaseDelay: time.Millisecond}
	addrs := evm.NewAddressValidator()
	audit := NewAuditService(memory.NewAuditRepo(), log)

	e.updater = NewAtomicUpdater(e.repo, e.index, e.debts, e.metrics, time.Millisecond, log)
	e.custody = NewCustodyService(e.shares, enc, log)
	e.creation = NewCreationService(e.repo, e.updater, e.custody, evm.NewKeyGenerator(), addrs, audit, log)
	e.management = NewManagementService(e.repo, e.index, e.updater, e.custody, addrs, audit, log)
	e.query = NewQueryService(e.repo, e.index)
	e.payments = NewPaymentProcessor(e.repo, e.txs, e.entries, e.updater, e.custody, e.chain, addrs, audit, e.metrics, retry, log)
	e.roulette = NewRouletteService(e.repo, e.entries, e.cache, e.updater,
		NewFallbackRouletteExecutor(nil, NewLocalRouletteExecutor(), log), e.metrics, audit, log)
	e.cleanup = NewCleanupService(e.repo, e.txs, e.updater, e.custody, e.chain, audit, e.metrics, retry, log)
	return e
}

func participants(ids ...string) []ports.ParticipantInput {
	out := make([]ports.ParticipantInput, len(ids))
	for i, id := range ids {
		out[i] = ports.ParticipantInput{
			UserID:        id,
			Name:          strings.ToUpper(id),
			WalletAddress: testAddress(i),
		}
	}
	return out
}

func (e *engine) createFair(t *testing.T, total string, ids ...string) *domain.SplitWallet {
	t.Helper()
	w, err := e.creation.CreateWallet(context.Background(), ports.CreateWalletRequest{
		BillID:       "bill-" + uuid.NewString(),
		CreatorID:    "creator",
		TotalAmount:  dec(total),
		Currency:     "usdc",
		Participants: participants(ids...),
	})
	require.NoError(t, err)
	return w
}

func (e *engine) createDegen(t *testing.T, total string, ids ...string) *domain.SplitWallet {
	t.Helper()
	w, err := e.creation.CreateDegenWallet(context.Background(), ports.CreateDegenWalletRequest{
		CreateWalletRequest: ports.CreateWalletRequest{
			BillID:       "bill-" + uuid.NewString(),
			CreatorID:    "creator",
			TotalAmount:  dec(total),
			Currency:     "USDC",
			Participants: participants(ids...),
		},
	})
	require.NoError(t, err)
	return w
}

// pay deposits amount into the wallet on chain and records the contribution.
func (e *engine) pay(t *testing.T, w *domain.SplitWallet, participantID, amount string) *ports.UpdateResult {
	t.Helper()
	sig := e.chain.Deposit(w.WalletAddress, dec(amount))
	res, err := e.payments.ProcessParticipantPayment(context.Background(), ports.PaymentRequest{
		WalletID:      w.ID,
		ParticipantID: participantID,
		Amount:        dec(amount),
		Signature:     &sig,
	})
	require.NoError(t, err)
	return res
}

func (e *engine) wallet(t *testing.T, id uuid.UUID) *domain.SplitWallet {
	t.Helper()
	w, err := e.query.GetWallet(context.Background(), id)
	require.NoError(t, err)
	return w
}

// assertInvariants checks what must hold for every committed wallet.
func (e *engine) assertInvariants(t *testing.T, id uuid.UUID) {
	t.Helper()
	w := e.wallet(t, id)
	require.NoError(t, w.Validate())
	require.True(t, w.PaidTotal.Equal(w.ComputePaidTotal()), "paid total %s != %s", w.PaidTotal, w.ComputePaidTotal())
	entry, err := e.index.Get(context.Background(), w.BillID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.Empty(t, entry.DriftedFields(domain.NewIndexEntry(w)))
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, apperror.CodeOf(err), "unexpected error: %v", err)
}
