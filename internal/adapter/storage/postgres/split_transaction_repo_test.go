package postgres

import (
	"context"
	"testing"
	"time"

	"split-wallet-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitTxColumnList() []string {
	return []string{"id", "split_wallet_id", "participant_id", "kind", "amount", "signature",
		"status", "destination", "created_at", "confirmed_at"}
}

func TestSplitTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSplitTransactionRepo(mock)
	txn := &domain.SplitTransaction{
		ID:            uuid.New(),
		SplitWalletID: uuid.New(),
		ParticipantID: "bob",
		Kind:          domain.TransferKindContribution,
		Amount:        decimal.RequireFromString("10.5"),
		Signature:     "0xsig",
		Status:        domain.TransferStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO split_transactions").
		WithArgs(txn.ID, txn.SplitWalletID, "bob", "contribution", "10.5",
			"0xsig", "pending", "", txn.CreatedAt, txn.ConfirmedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), txn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSplitTransactionRepo_GetBySignature(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSplitTransactionRepo(mock)
	id, walletID := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM split_transactions WHERE signature").
		WithArgs("0xsig").
		WillReturnRows(pgxmock.NewRows(splitTxColumnList()).AddRow(
			id, walletID, "bob", "refund", "3.000001", "0xsig", "confirmed", "0xdest", now, &now,
		))

	txn, err := repo.GetBySignature(context.Background(), "0xsig")
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, domain.TransferKindRefund, txn.Kind)
	assert.Equal(t, domain.TransferStatusConfirmed, txn.Status)
	assert.True(t, decimal.RequireFromString("3.000001").Equal(txn.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSplitTransactionRepo_GetBySignature_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSplitTransactionRepo(mock)
	mock.ExpectQuery("SELECT .+ FROM split_transactions WHERE signature").
		WithArgs("0xnone").
		WillReturnError(pgx.ErrNoRows)

	txn, err := repo.GetBySignature(context.Background(), "0xnone")
	assert.NoError(t, err)
	assert.Nil(t, txn)
}

func TestSplitTransactionRepo_ListByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSplitTransactionRepo(mock)
	walletID := uuid.New()
	now := time.Now().UTC()
	var none *time.Time

	mock.ExpectQuery("SELECT .+ FROM split_transactions WHERE split_wallet_id").
		WithArgs(walletID).
		WillReturnRows(pgxmock.NewRows(splitTxColumnList()).
			AddRow(uuid.New(), walletID, "alice", "contribution", "10", "0x1", "confirmed", "", now, &now).
			AddRow(uuid.New(), walletID, "bob", "contribution", "5", "0x2", "pending", "", now, none))

	txns, err := repo.ListByWallet(context.Background(), walletID)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "bob", txns[1].ParticipantID)
	assert.Nil(t, txns[1].ConfirmedAt)
}

func TestSplitTransactionRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSplitTransactionRepo(mock)
	mock.ExpectExec("UPDATE split_transactions SET status").
		WithArgs("confirmed", pgxmock.AnyArg(), "0xsig").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "0xsig", domain.TransferStatusConfirmed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSplitTransactionRepo_UpdateStatus_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSplitTransactionRepo(mock)
	mock.ExpectExec("UPDATE split_transactions SET status").
		WithArgs("failed", pgxmock.AnyArg(), "0xgone").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateStatus(context.Background(), "0xgone", domain.TransferStatusFailed)
	assert.ErrorContains(t, err, "split transaction not found")
}
