package service

import (
	"context"
	"errors"
	"testing"

	"split-wallet-engine/internal/adapter/storage/memory"
	"split-wallet-engine/internal/core/ports/mocks"
	"split-wallet-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const custodyKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func newCustody(t *testing.T) (*CustodyServiceImpl, *memory.KeyShareRepo) {
	t.Helper()
	enc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)
	shares := memory.NewKeyShareRepo()
	return NewCustodyService(shares, enc, newTestLogger()), shares
}

func TestCustody_StoreAndGetKey(t *testing.T) {
	ctx := context.Background()
	svc, shares := newCustody(t)
	walletID := uuid.New()

	require.NoError(t, svc.StoreKey(ctx, walletID, "alice", custodyKey))

	stored, err := shares.Get(ctx, walletID, "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotContains(t, stored.EncryptedKey, custodyKey)

	key, err := svc.GetKey(ctx, walletID, "alice")
	require.NoError(t, err)
	assert.Equal(t, custodyKey, key)
}

func TestCustody_StoreKeyRejectsEmptyInput(t *testing.T) {
	svc, _ := newCustody(t)
	err := svc.StoreKey(context.Background(), uuid.New(), "", custodyKey)
	assert.Equal(t, "VAL_002", apperror.CodeOf(err))
}

func TestCustody_GetKeyWithoutShareIsUnauthorized(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCustody(t)
	walletID := uuid.New()
	require.NoError(t, svc.StoreKey(ctx, walletID, "alice", custodyKey))

	_, err := svc.GetKey(ctx, walletID, "mallory")
	assert.Equal(t, "SPL_403", apperror.CodeOf(err))
}

func TestCustody_ShareIsBoundToOwner(t *testing.T) {
	ctx := context.Background()
	svc, shares := newCustody(t)
	walletID := uuid.New()
	require.NoError(t, svc.StoreKey(ctx, walletID, "alice", custodyKey))

	// copy alice's ciphertext under bob's name
	stolen, err := shares.Get(ctx, walletID, "alice")
	require.NoError(t, err)
	stolen.OwnerID = "bob"
	require.NoError(t, shares.Put(ctx, stolen))

	_, err = svc.GetKey(ctx, walletID, "bob")
	assert.Equal(t, "SYS_003", apperror.CodeOf(err))
}

func TestCustody_SyncParticipantShares(t *testing.T) {
	ctx := context.Background()
	svc, shares := newCustody(t)
	walletID := uuid.New()
	require.NoError(t, svc.StoreKeyForParticipants(ctx, walletID, []string{"alice", "bob", "carol", "bob"}, custodyKey))

	owners, err := shares.ListOwners(ctx, walletID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, owners)

	require.NoError(t, svc.SyncParticipantShares(ctx, walletID, "alice", []string{"bob", "dave"}))

	owners, err = shares.ListOwners(ctx, walletID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "dave"}, owners)

	key, err := svc.GetKey(ctx, walletID, "dave")
	require.NoError(t, err)
	assert.Equal(t, custodyKey, key)
}

func TestCustody_SyncRequiresRequesterShare(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCustody(t)
	walletID := uuid.New()
	require.NoError(t, svc.StoreKey(ctx, walletID, "alice", custodyKey))

	err := svc.SyncParticipantShares(ctx, walletID, "mallory", []string{"mallory"})
	assert.Equal(t, "SPL_403", apperror.CodeOf(err))
}

func TestCustody_DeleteKeysIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, shares := newCustody(t)
	walletID := uuid.New()
	other := uuid.New()
	require.NoError(t, svc.StoreKeyForParticipants(ctx, walletID, []string{"alice", "bob"}, custodyKey))
	require.NoError(t, svc.StoreKey(ctx, other, "alice", custodyKey))

	require.NoError(t, svc.DeleteKeys(ctx, walletID))
	require.NoError(t, svc.DeleteKeys(ctx, walletID))

	owners, err := shares.ListOwners(ctx, walletID)
	require.NoError(t, err)
	assert.Empty(t, owners)

	_, err = svc.GetKey(ctx, other, "alice")
	assert.NoError(t, err)
}

func TestCustody_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	shares := mocks.NewMockKeyShareRepository(ctrl)
	enc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)
	svc := NewCustodyService(shares, enc, newTestLogger())

	shares.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	err = svc.StoreKey(context.Background(), uuid.New(), "alice", custodyKey)
	assert.Equal(t, "SYS_001", apperror.CodeOf(err))

	shares.EXPECT().DeleteAll(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))
	err = svc.DeleteKeys(context.Background(), uuid.New())
	assert.Equal(t, "SYS_001", apperror.CodeOf(err))
}
