package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWallet(billID, creator string, createdAt time.Time) *domain.SplitWallet {
	return &domain.SplitWallet{
		ID:          uuid.New(),
		BillID:      billID,
		CreatorID:   creator,
		SplitType:   domain.SplitTypeFair,
		Status:      domain.WalletStatusPending,
		TotalAmount: decimal.NewFromInt(10),
		Currency:    "USDC",
		Participants: []domain.SplitWalletParticipant{
			{UserID: "alice", AmountOwed: decimal.NewFromInt(10), Status: domain.ParticipantStatusPending},
		},
		Version:   1,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestSplitWalletRepo_CreateAndGet(t *testing.T) {
	repo := NewSplitWalletRepo()
	ctx := context.Background()
	w := newWallet("bill-1", "alice", time.Now())

	require.NoError(t, repo.Create(ctx, w))
	assert.ErrorIs(t, repo.Create(ctx, newWallet("bill-1", "bob", time.Now())), ports.ErrAlreadyExists)

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "bill-1", got.BillID)

	got.Participants[0].Name = "mutated"
	again, _ := repo.GetByID(ctx, w.ID)
	assert.Empty(t, again.Participants[0].Name, "stored wallet must not alias returned copies")

	byBill, err := repo.GetByBillID(ctx, "bill-1")
	require.NoError(t, err)
	assert.Equal(t, w.ID, byBill.ID)

	missing, err := repo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)

	ok, _ := repo.Exists(ctx, w.ID)
	assert.True(t, ok)
}

func TestSplitWalletRepo_ListPaging(t *testing.T) {
	repo := NewSplitWalletRepo()
	ctx := context.Background()
	base := time.Now()
	for i := 0; i < 5; i++ {
		w := newWallet(uuid.NewString(), "alice", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(ctx, w))
	}
	require.NoError(t, repo.Create(ctx, newWallet("other", "bob", base)))

	page1, total, err := repo.ListByCreator(ctx, "alice", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page1, 2)
	assert.True(t, page1[0].CreatedAt.After(page1[1].CreatedAt))

	page3, _, _ := repo.ListByCreator(ctx, "alice", 3, 2)
	assert.Len(t, page3, 1)

	page9, _, _ := repo.ListByCreator(ctx, "alice", 9, 2)
	assert.Empty(t, page9)

	pending, total, err := repo.ListByStatus(ctx, domain.WalletStatusPending, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Len(t, pending, 6)
}

func TestSplitWalletRepo_Mutate(t *testing.T) {
	repo := NewSplitWalletRepo()
	ctx := context.Background()
	w := newWallet("bill-m", "alice", time.Now())
	require.NoError(t, repo.Create(ctx, w))

	t.Run("missing wallet skips fn", func(t *testing.T) {
		called := false
		got, err := repo.Mutate(ctx, uuid.New(), func(cur *domain.SplitWallet) (*domain.SplitWallet, error) {
			called = true
			return cur, nil
		})
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.False(t, called)
	})

	t.Run("error aborts write", func(t *testing.T) {
		_, err := repo.Mutate(ctx, w.ID, func(cur *domain.SplitWallet) (*domain.SplitWallet, error) {
			cur.Currency = "EUR"
			return nil, errors.New("boom")
		})
		assert.Error(t, err)
		got, _ := repo.GetByID(ctx, w.ID)
		assert.Equal(t, "USDC", got.Currency)
	})

	t.Run("concurrent mutations serialize", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Mutate(ctx, w.ID, func(cur *domain.SplitWallet) (*domain.SplitWallet, error) {
					cur.Version++
					return cur, nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		got, _ := repo.GetByID(ctx, w.ID)
		assert.Equal(t, int64(51), got.Version)
	})
}

func TestIndexStore_VersionGuard(t *testing.T) {
	s := NewIndexStore()
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, s.Put(ctx, &domain.SplitIndexEntry{BillID: "b", SplitWalletID: id, Version: 3, Status: domain.WalletStatusLocked}))
	require.NoError(t, s.Put(ctx, &domain.SplitIndexEntry{BillID: "b", SplitWalletID: id, Version: 2, Status: domain.WalletStatusPending}))

	got, err := s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Version)
	assert.Equal(t, domain.WalletStatusLocked, got.Status)

	s.FailNext(1)
	assert.ErrorIs(t, s.Put(ctx, &domain.SplitIndexEntry{BillID: "b", Version: 4}), ErrIndexUnavailable)
	assert.NoError(t, s.Put(ctx, &domain.SplitIndexEntry{BillID: "b", Version: 4}))

	require.NoError(t, s.Delete(ctx, "b"))
	got, err = s.Get(ctx, "b")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSplitTransactionRepo(t *testing.T) {
	repo := NewSplitTransactionRepo()
	ctx := context.Background()
	walletID := uuid.New()

	txn := &domain.SplitTransaction{ID: uuid.New(), SplitWalletID: walletID, Signature: "0xabc", Status: domain.TransferStatusPending, Amount: decimal.NewFromInt(1)}
	require.NoError(t, repo.Create(ctx, txn))
	assert.ErrorIs(t, repo.Create(ctx, txn), ports.ErrAlreadyExists)

	require.NoError(t, repo.UpdateStatus(ctx, "0xabc", domain.TransferStatusConfirmed))
	got, err := repo.GetBySignature(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, domain.TransferStatusConfirmed, got.Status)
	assert.NotNil(t, got.ConfirmedAt)

	assert.Error(t, repo.UpdateStatus(ctx, "0xmissing", domain.TransferStatusFailed))

	list, _ := repo.ListByWallet(ctx, walletID)
	assert.Len(t, list, 1)
}

func TestRouletteAuditRepo_CreateIfAbsent(t *testing.T) {
	repo := NewRouletteAuditRepo()
	ctx := context.Background()
	id := uuid.New()

	inserted, err := repo.CreateIfAbsent(ctx, &domain.DegenRouletteAuditEntry{SplitWalletID: id, SelectedParticipantID: "alice"})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.CreateIfAbsent(ctx, &domain.DegenRouletteAuditEntry{SplitWalletID: id, SelectedParticipantID: "bob"})
	require.NoError(t, err)
	assert.False(t, inserted)

	got, _ := repo.Get(ctx, id)
	assert.Equal(t, "alice", got.SelectedParticipantID)
}

func TestKeyShareRepo(t *testing.T) {
	repo := NewKeyShareRepo()
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.Put(ctx, &domain.KeyShare{SplitWalletID: id, OwnerID: "bob", EncryptedKey: "x"}))
	require.NoError(t, repo.Put(ctx, &domain.KeyShare{SplitWalletID: id, OwnerID: "alice", EncryptedKey: "y"}))

	owners, _ := repo.ListOwners(ctx, id)
	assert.Equal(t, []string{"alice", "bob"}, owners)

	require.NoError(t, repo.Delete(ctx, id, "bob"))
	require.NoError(t, repo.Delete(ctx, id, "bob"))

	n, _ := repo.DeleteAll(ctx, id)
	assert.Equal(t, int64(1), n)
	got, _ := repo.Get(ctx, id, "alice")
	assert.Nil(t, got)
}

func TestRepairDebtRepo(t *testing.T) {
	repo := NewRepairDebtRepo()
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	now := time.Now()

	require.NoError(t, repo.Record(ctx, &domain.SyncRepairDebt{SplitWalletID: a, Operation: "payment", UpdatedAt: now}))
	require.NoError(t, repo.Record(ctx, &domain.SyncRepairDebt{SplitWalletID: b, Operation: "create", UpdatedAt: now.Add(time.Second)}))
	require.NoError(t, repo.Record(ctx, &domain.SyncRepairDebt{SplitWalletID: a, Operation: "status", UpdatedAt: now.Add(2 * time.Second)}))

	debts, _ := repo.List(ctx, 10)
	require.Len(t, debts, 2)
	assert.Equal(t, b, debts[0].SplitWalletID)
	assert.Equal(t, 2, debts[1].Attempts)
	assert.Equal(t, "status", debts[1].Operation)

	require.NoError(t, repo.Resolve(ctx, a))
	debts, _ = repo.List(ctx, 10)
	assert.Len(t, debts, 1)
}

func TestIdempotencyCacheAndNonceStore(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	cache := NewIdempotencyCache()
	cache.now = func() time.Time { return now }
	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, cache.Set(ctx, "k", []byte("other"), time.Minute))
	got, _ := cache.Get(ctx, "k")
	assert.Equal(t, []byte("v"), got)
	cache.now = func() time.Time { return now.Add(2 * time.Minute) }
	got, _ = cache.Get(ctx, "k")
	assert.Nil(t, got)

	nonces := NewNonceStore()
	nonces.now = func() time.Time { return now }
	ok, _ := nonces.CheckAndSet(ctx, "svc", "n1", time.Minute)
	assert.True(t, ok)
	ok, _ = nonces.CheckAndSet(ctx, "svc", "n1", time.Minute)
	assert.False(t, ok)
	ok, _ = nonces.CheckAndSet(ctx, "other", "n1", time.Minute)
	assert.True(t, ok)
}
