package service

import (
	"context"
	"fmt"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CustodyServiceImpl implements ports.CustodyService. Each owner gets an
// independently encrypted copy of the wallet's signing key, bound to
// "walletID:ownerID" so a share cannot be replayed for another owner.
type CustodyServiceImpl struct {
	shares ports.KeyShareRepository
	enc    ports.EncryptionService
	log    zerolog.Logger
	now    func() time.Time
}

// NewCustodyService creates a new CustodyServiceImpl.
func NewCustodyService(shares ports.KeyShareRepository, enc ports.EncryptionService, log zerolog.Logger) *CustodyServiceImpl {
	return &CustodyServiceImpl{
		shares: shares,
		enc:    enc,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func shareAAD(walletID uuid.UUID, ownerID string) string {
	return walletID.String() + ":" + ownerID
}

func (s *CustodyServiceImpl) StoreKey(ctx context.Context, walletID uuid.UUID, ownerID string, privateKey string) error {
	if ownerID == "" || privateKey == "" {
		return apperror.Validation("owner and key are required")
	}
	sealed, err := s.enc.Encrypt(privateKey, shareAAD(walletID, ownerID))
	if err != nil {
		return apperror.ErrEncryptionFailure(err)
	}
	share := &domain.KeyShare{
		SplitWalletID: walletID,
		OwnerID:       ownerID,
		EncryptedKey:  sealed,
		CreatedAt:     s.now(),
	}
	if err := s.shares.Put(ctx, share); err != nil {
		return storeError("put key share", err)
	}
	return nil
}

// StoreKeyForParticipants stores one share per distinct owner.
func (s *CustodyServiceImpl) StoreKeyForParticipants(ctx context.Context, walletID uuid.UUID, ownerIDs []string, privateKey string) error {
	seen := make(map[string]struct{}, len(ownerIDs))
	for _, owner := range ownerIDs {
		if _, dup := seen[owner]; dup {
			continue
		}
		seen[owner] = struct{}{}
		if err := s.StoreKey(ctx, walletID, owner, privateKey); err != nil {
			return err
		}
	}
	s.log.Info().
		Str("split_wallet_id", walletID.String()).
		Int("shares", len(seen)).
		Msg("Custody key stored")
	return nil
}

// GetKey returns the plaintext key for a requester that holds a share.
func (s *CustodyServiceImpl) GetKey(ctx context.Context, walletID uuid.UUID, requesterID string) (string, error) {
	share, err := s.shares.Get(ctx, walletID, requesterID)
	if err != nil {
		return "", storeError("get key share", err)
	}
	if share == nil {
		return "", apperror.ErrUnauthorized("Requester holds no key share for this wallet")
	}
	key, err := s.enc.Decrypt(share.EncryptedKey, shareAAD(walletID, requesterID))
	if err != nil {
		return "", apperror.ErrEncryptionFailure(err)
	}
	return key, nil
}

// SyncParticipantShares makes the share set equal to participantIDs plus the
// requester, whose own share is used as the source key.
func (s *CustodyServiceImpl) SyncParticipantShares(ctx context.Context, walletID uuid.UUID, requesterID string, participantIDs []string) error {
	key, err := s.GetKey(ctx, walletID, requesterID)
	if err != nil {
		return err
	}

	want := map[string]struct{}{requesterID: {}}
	for _, id := range participantIDs {
		want[id] = struct{}{}
	}

	owners, err := s.shares.ListOwners(ctx, walletID)
	if err != nil {
		return storeError("list key owners", err)
	}
	have := make(map[string]struct{}, len(owners))
	for _, owner := range owners {
		have[owner] = struct{}{}
		if _, keep := want[owner]; keep {
			continue
		}
		if err := s.shares.Delete(ctx, walletID, owner); err != nil {
			return storeError("delete key share", err)
		}
	}

	added := 0
	for id := range want {
		if _, ok := have[id]; ok {
			continue
		}
		if err := s.StoreKey(ctx, walletID, id, key); err != nil {
			return err
		}
		added++
	}

	s.log.Info().
		Str("split_wallet_id", walletID.String()).
		Int("added", added).
		Int("total", len(want)).
		Msg("Custody shares synchronized")
	return nil
}

// DeleteKeys erases every share of the wallet. Deleting twice is a no-op.
func (s *CustodyServiceImpl) DeleteKeys(ctx context.Context, walletID uuid.UUID) error {
	n, err := s.shares.DeleteAll(ctx, walletID)
	if err != nil {
		return storeError("delete key shares", fmt.Errorf("wallet %s: %w", walletID, err))
	}
	s.log.Info().Str("split_wallet_id", walletID.String()).Int64("deleted", n).Msg("Custody keys erased")
	return nil
}
