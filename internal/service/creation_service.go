package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CreationServiceImpl implements ports.CreationService.
type CreationServiceImpl struct {
	repo    ports.SplitWalletRepository
	updater ports.AtomicUpdater
	custody ports.CustodyService
	keys    ports.KeyGenerator
	addrs   ports.AddressValidator
	audit   ports.AuditService
	log     zerolog.Logger
	now     func() time.Time
}

// NewCreationService creates a new CreationServiceImpl.
func NewCreationService(
	repo ports.SplitWalletRepository,
	updater ports.AtomicUpdater,
	custody ports.CustodyService,
	keys ports.KeyGenerator,
	addrs ports.AddressValidator,
	audit ports.AuditService,
	log zerolog.Logger,
) *CreationServiceImpl {
	return &CreationServiceImpl{
		repo:    repo,
		updater: updater,
		custody: custody,
		keys:    keys,
		addrs:   addrs,
		audit:   audit,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateWallet provisions a fair split wallet for a bill.
func (s *CreationServiceImpl) CreateWallet(ctx context.Context, req ports.CreateWalletRequest) (*domain.SplitWallet, error) {
	return s.create(ctx, req, domain.SplitTypeFair, false)
}

// CreateDegenWallet provisions a winner/loser split wallet.
func (s *CreationServiceImpl) CreateDegenWallet(ctx context.Context, req ports.CreateDegenWalletRequest) (*domain.SplitWallet, error) {
	return s.create(ctx, req.CreateWalletRequest, domain.SplitTypeDegen, req.Weighted)
}

func (s *CreationServiceImpl) create(ctx context.Context, req ports.CreateWalletRequest, splitType domain.SplitType, weighted bool) (*domain.SplitWallet, error) {
	billID := strings.TrimSpace(req.BillID)
	creatorID := strings.TrimSpace(req.CreatorID)
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if billID == "" || creatorID == "" {
		return nil, apperror.Validation("bill id and creator id are required")
	}
	if currency == "" {
		return nil, apperror.Validation("currency is required")
	}
	if !domain.IsValidAmount(req.TotalAmount) {
		return nil, apperror.ErrInvalidAmount()
	}

	participants, err := buildParticipants(req.TotalAmount, splitType, weighted, req.Participants, s.addrs)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByBillID(ctx, billID)
	if err != nil {
		return nil, storeError("get split wallet by bill", err)
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateWallet()
	}

	now := s.now()
	wallet := &domain.SplitWallet{
		ID:           uuid.New(),
		BillID:       billID,
		CreatorID:    creatorID,
		SplitType:    splitType,
		Status:       domain.WalletStatusPending,
		TotalAmount:  req.TotalAmount,
		Currency:     currency,
		Participants: participants,
		PaidTotal:    decimal.Zero,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	keypair, err := s.keys.Generate()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	wallet.WalletAddress = keypair.Address

	if err := wallet.Validate(); err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.storeKey(ctx, wallet, keypair.PrivateKey); err != nil {
		s.compensate(ctx, wallet.ID)
		return nil, err
	}

	if err := s.repo.Create(ctx, wallet); err != nil {
		s.compensate(ctx, wallet.ID)
		if errors.Is(err, ports.ErrAlreadyExists) {
			return nil, apperror.ErrDuplicateWallet()
		}
		return nil, storeError("create split wallet", err)
	}

	synced := s.updater.Propagate(ctx, wallet, OpCreate)

	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      creatorID,
		Action:       domain.AuditActionCreateSplit,
		ResourceType: "split_wallet",
		ResourceID:   wallet.ID.String(),
		CreatedAt:    now,
	})

	s.log.Info().
		Str("split_wallet_id", wallet.ID.String()).
		Str("bill_id", billID).
		Str("split_type", string(splitType)).
		Int("participants", len(participants)).
		Str("total_amount", req.TotalAmount.String()).
		Bool("index_synced", synced).
		Msg("Split wallet created")

	return wallet, nil
}

// storeKey gives the creator the only share of a fair wallet. Degen wallets
// replicate the key to every participant.
func (s *CreationServiceImpl) storeKey(ctx context.Context, w *domain.SplitWallet, privateKey string) error {
	if !w.IsDegen() {
		return s.custody.StoreKey(ctx, w.ID, w.CreatorID, privateKey)
	}
	owners := append([]string{w.CreatorID}, w.ParticipantIDs()...)
	return s.custody.StoreKeyForParticipants(ctx, w.ID, owners, privateKey)
}

// compensate removes key material of a wallet that was never stored.
func (s *CreationServiceImpl) compensate(ctx context.Context, walletID uuid.UUID) {
	if err := s.custody.DeleteKeys(context.WithoutCancel(ctx), walletID); err != nil {
		s.log.Error().Err(err).Str("split_wallet_id", walletID.String()).Msg("Failed to erase keys of aborted wallet")
	}
}
