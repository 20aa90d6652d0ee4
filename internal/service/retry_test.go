package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports/mocks"
	"split-wallet-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWithRetry(t *testing.T) {
	policy := RetryPolicy{MaxRetries: 3, BaseDelay: time.Millisecond}

	t.Run("transient errors are retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metrics := mocks.NewMockMetrics(ctrl)
		metrics.EXPECT().ChainRetry("get_balance").Times(2)

		calls := 0
		got, err := withRetry(context.Background(), policy, metrics, newTestLogger(), "get_balance", func() (int, error) {
			calls++
			if calls < 3 {
				return 0, apperror.ErrTransient(errors.New("rpc timeout"))
			}
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 3, calls)
	})

	t.Run("other errors fail at once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metrics := mocks.NewMockMetrics(ctrl)

		calls := 0
		_, err := withRetry(context.Background(), policy, metrics, newTestLogger(), "submit_transfer", func() (string, error) {
			calls++
			return "", apperror.ErrInsufficientFunds()
		})
		requireCode(t, err, "VAL_007")
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metrics := mocks.NewMockMetrics(ctrl)
		metrics.EXPECT().ChainRetry("confirmation_status").Times(3)

		calls := 0
		_, err := withRetry(context.Background(), policy, metrics, newTestLogger(), "confirmation_status", func() (string, error) {
			calls++
			return "", apperror.ErrTransient(errors.New("down"))
		})
		requireCode(t, err, "NET_001")
		assert.Equal(t, 4, calls)
	})
}

func TestRepairWorker_KeepsFailedDebts(t *testing.T) {
	ctrl := gomock.NewController(t)
	debts := mocks.NewMockRepairDebtRepository(ctrl)
	updater := mocks.NewMockAtomicUpdater(ctrl)

	ok, stuck := uuid.New(), uuid.New()
	debts.EXPECT().List(gomock.Any(), 50).Return([]domain.SyncRepairDebt{
		{SplitWalletID: ok, Operation: OpPayment, Attempts: 1},
		{SplitWalletID: stuck, Operation: OpData, Attempts: 4},
	}, nil)
	updater.EXPECT().Resync(gomock.Any(), ok).Return(&domain.SplitWallet{ID: ok}, nil)
	updater.EXPECT().Resync(gomock.Any(), stuck).Return(nil, apperror.ErrConsistency(errors.New("still down")))
	debts.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *domain.SyncRepairDebt) error {
		assert.Equal(t, stuck, d.SplitWalletID)
		assert.Contains(t, d.LastError, "still down")
		return nil
	})

	w := NewRepairWorker(debts, updater, time.Minute, 0, newTestLogger())
	assert.Equal(t, 1, w.RunOnce(context.Background()))
}

func TestRepairWorker_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	debts := mocks.NewMockRepairDebtRepository(ctrl)
	debts.EXPECT().List(gomock.Any(), 10).Return(nil, errors.New("db down"))

	w := NewRepairWorker(debts, mocks.NewMockAtomicUpdater(ctrl), time.Minute, 10, newTestLogger())
	assert.Equal(t, 0, w.RunOnce(context.Background()))
}

func TestRepairWorker_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	debts := mocks.NewMockRepairDebtRepository(ctrl)
	debts.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewRepairWorker(debts, mocks.NewMockAtomicUpdater(ctrl), time.Millisecond, 5, newTestLogger()).Run(ctx)
		close(done)
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
