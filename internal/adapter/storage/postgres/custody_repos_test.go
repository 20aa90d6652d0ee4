package postgres

import (
	"context"
	"testing"
	"time"

	"split-wallet-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyShareRepo_PutAndGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyShareRepo(mock)
	share := &domain.KeyShare{
		SplitWalletID: uuid.New(),
		OwnerID:       "alice",
		EncryptedKey:  "ciphertext",
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO custody_key_shares .+ ON CONFLICT").
		WithArgs(share.SplitWalletID, "alice", "ciphertext", share.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT .+ FROM custody_key_shares").
		WithArgs(share.SplitWalletID, "alice").
		WillReturnRows(pgxmock.NewRows([]string{"split_wallet_id", "owner_id", "encrypted_key", "created_at"}).
			AddRow(share.SplitWalletID, "alice", "ciphertext", share.CreatedAt))

	require.NoError(t, repo.Put(context.Background(), share))
	got, err := repo.Get(context.Background(), share.SplitWalletID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "ciphertext", got.EncryptedKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyShareRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyShareRepo(mock)
	id := uuid.New()
	mock.ExpectQuery("SELECT .+ FROM custody_key_shares").
		WithArgs(id, "mallory").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.Get(context.Background(), id, "mallory")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestKeyShareRepo_ListOwners(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyShareRepo(mock)
	id := uuid.New()
	mock.ExpectQuery("SELECT owner_id FROM custody_key_shares").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"owner_id"}).AddRow("alice").AddRow("bob"))

	owners, err := repo.ListOwners(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, owners)
}

func TestKeyShareRepo_DeleteAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyShareRepo(mock)
	id := uuid.New()
	mock.ExpectExec("DELETE FROM custody_key_shares WHERE split_wallet_id").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec("DELETE FROM custody_key_shares WHERE split_wallet_id").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	n, err := repo.DeleteAll(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.DeleteAll(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestRepairDebtRepo_RecordListResolve(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepairDebtRepo(mock)
	now := time.Now().UTC()
	debt := &domain.SyncRepairDebt{
		SplitWalletID: uuid.New(),
		Operation:     "UpdateParticipantPayment",
		LastError:     "redis: connection refused",
		UpdatedAt:     now,
	}

	mock.ExpectExec("INSERT INTO sync_repair_debts .+ ON CONFLICT").
		WithArgs(debt.SplitWalletID, debt.Operation, debt.LastError, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT .+ FROM sync_repair_debts").
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{"split_wallet_id", "operation", "last_error", "attempts", "created_at", "updated_at"}).
			AddRow(debt.SplitWalletID, debt.Operation, debt.LastError, 2, now, now))
	mock.ExpectExec("DELETE FROM sync_repair_debts").
		WithArgs(debt.SplitWalletID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Record(context.Background(), debt))
	debts, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, 2, debts[0].Attempts)
	require.NoError(t, repo.Resolve(context.Background(), debt.SplitWalletID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	entry := &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      "alice",
		Action:       domain.AuditActionPayment,
		ResourceType: "split_wallet",
		ResourceID:   "w-1",
		IPAddress:    "10.0.0.1",
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO split_audit_logs").
		WithArgs(entry.ID, "alice", "PAYMENT", "split_wallet", "w-1", "{}", "10.0.0.1", entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), entry))

	entry.Details = `{"amount":"10"}`
	mock.ExpectExec("INSERT INTO split_audit_logs").
		WithArgs(entry.ID, "alice", "PAYMENT", "split_wallet", "w-1", `{"amount":"10"}`, "10.0.0.1", entry.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err = repo.Create(context.Background(), entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert audit log PAYMENT on split_wallet w-1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
