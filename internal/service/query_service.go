package service

import (
	"context"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"

	"github.com/google/uuid"
)

const maxPageSize = 100

// queryService implements ports.QueryService. It only reads.
type queryService struct {
	repo  ports.SplitWalletRepository
	index ports.SplitIndexStore
}

// NewQueryService creates a new query service.
func NewQueryService(repo ports.SplitWalletRepository, index ports.SplitIndexStore) ports.QueryService {
	return &queryService{repo: repo, index: index}
}

func (s *queryService) GetWallet(ctx context.Context, id uuid.UUID) (*domain.SplitWallet, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if w == nil {
		return nil, apperror.ErrNotFound("Split wallet")
	}
	return w, nil
}

func (s *queryService) GetWalletByBillID(ctx context.Context, billID string) (*domain.SplitWallet, error) {
	if billID == "" {
		return nil, apperror.Validation("bill id is required")
	}
	w, err := s.repo.GetByBillID(ctx, billID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if w == nil {
		return nil, apperror.ErrNotFound("Split wallet")
	}
	return w, nil
}

func (s *queryService) ListByCreator(ctx context.Context, creatorID string, page, pageSize int) ([]domain.SplitWallet, int64, error) {
	if creatorID == "" {
		return nil, 0, apperror.Validation("creator id is required")
	}
	page, pageSize = normalizePage(page, pageSize)
	wallets, total, err := s.repo.ListByCreator(ctx, creatorID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return wallets, total, nil
}

func (s *queryService) ListByStatus(ctx context.Context, status domain.WalletStatus, page, pageSize int) ([]domain.SplitWallet, int64, error) {
	if !status.IsValid() {
		return nil, 0, apperror.Validation("invalid status: must be pending, locked, completed or cancelled")
	}
	page, pageSize = normalizePage(page, pageSize)
	wallets, total, err := s.repo.ListByStatus(ctx, status, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return wallets, total, nil
}

func (s *queryService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return false, apperror.InternalError(err)
	}
	return ok, nil
}

// GetCompletionSummary reports progress and payout eligibility.
func (s *queryService) GetCompletionSummary(ctx context.Context, id uuid.UUID) (*domain.CompletionSummary, error) {
	w, err := s.GetWallet(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := w.Summarize()
	return &summary, nil
}

// GetIndexEntry reads the bill-keyed projection. It may lag the wallet.
func (s *queryService) GetIndexEntry(ctx context.Context, billID string) (*domain.SplitIndexEntry, error) {
	e, err := s.index.Get(ctx, billID)
	if err != nil {
		return nil, apperror.ErrTransient(err)
	}
	if e == nil {
		return nil, apperror.ErrNotFound("Index entry")
	}
	return e, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
