package handler

import (
	"context"
	"strconv"

	"split-wallet-engine/internal/adapter/http/dto"
	"split-wallet-engine/internal/adapter/http/middleware"
	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"
	"split-wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SplitHandler serves the split wallet API.
type SplitHandler struct {
	creation   ports.CreationService
	query      ports.QueryService
	management ports.ManagementService
	payments   ports.PaymentProcessor
	roulette   ports.RouletteService
	cleanup    ports.CleanupService
}

// NewSplitHandler creates a new SplitHandler.
func NewSplitHandler(
	creation ports.CreationService,
	query ports.QueryService,
	management ports.ManagementService,
	payments ports.PaymentProcessor,
	roulette ports.RouletteService,
	cleanup ports.CleanupService,
) *SplitHandler {
	return &SplitHandler{
		creation:   creation,
		query:      query,
		management: management,
		payments:   payments,
		roulette:   roulette,
		cleanup:    cleanup,
	}
}

// caller returns the authenticated user or writes AUTH_001.
func caller(c *gin.Context) (string, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	return id, true
}

// splitID parses the :id path parameter or writes VAL_002.
func splitID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid split wallet id"))
		return uuid.Nil, false
	}
	return id, true
}

func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, dto.BindError(err))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

// member loads the wallet and checks that userID is its creator or one of
// its participants.
func (h *SplitHandler) member(c *gin.Context, id uuid.UUID, userID string) (*domain.SplitWallet, bool) {
	w, err := h.query.GetWallet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if w.CreatorID != userID && !w.HasParticipant(userID) {
		response.Error(c, apperror.ErrUnauthorized("Not a member of this split wallet"))
		return nil, false
	}
	return w, true
}

// Create handles POST /api/v1/splits.
func (h *SplitHandler) Create(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateSplitRequest
	if !bind(c, &req) {
		return
	}

	w, err := h.creation.CreateWallet(c.Request.Context(), req.ToCreateWalletRequest(userID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, w)
}

// CreateDegen handles POST /api/v1/splits/degen.
func (h *SplitHandler) CreateDegen(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateDegenRequest
	if !bind(c, &req) {
		return
	}

	w, err := h.creation.CreateDegenWallet(c.Request.Context(), ports.CreateDegenWalletRequest{
		CreateWalletRequest: req.ToCreateWalletRequest(userID),
		Weighted:            req.Weighted,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, w)
}

// Get handles GET /api/v1/splits/:id.
func (h *SplitHandler) Get(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	if w, ok := h.member(c, id, userID); ok {
		response.OK(c, w)
	}
}

// GetByBill handles GET /api/v1/splits/bill/:billId.
func (h *SplitHandler) GetByBill(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	w, err := h.query.GetWalletByBillID(c.Request.Context(), c.Param("billId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if w.CreatorID != userID && !w.HasParticipant(userID) {
		response.Error(c, apperror.ErrUnauthorized("Not a member of this split wallet"))
		return
	}
	response.OK(c, w)
}

// List handles GET /api/v1/splits, returning the caller's own splits.
func (h *SplitHandler) List(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	if creator := c.Query("creator"); creator != "" && creator != userID {
		response.Error(c, apperror.ErrUnauthorized("Only your own splits can be listed"))
		return
	}
	page, pageSize := pagination(c)

	items, total, err := h.query.ListByCreator(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, listResponse(items, total, page, pageSize))
}

// Summary handles GET /api/v1/splits/:id/summary.
func (h *SplitHandler) Summary(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	if _, ok := h.member(c, id, userID); !ok {
		return
	}
	summary, err := h.query.GetCompletionSummary(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// Update handles PATCH /api/v1/splits/:id.
func (h *SplitHandler) Update(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	var req dto.UpdateSplitRequest
	if !bind(c, &req) {
		return
	}
	if req.TotalAmount == nil && req.Currency == nil {
		response.Error(c, apperror.Validation("nothing to update"))
		return
	}

	var (
		w   *domain.SplitWallet
		err error
	)
	if req.TotalAmount != nil {
		if w, err = h.management.UpdateWalletAmount(c.Request.Context(), id, userID, *req.TotalAmount); err != nil {
			response.Error(c, err)
			return
		}
	}
	if req.Currency != nil {
		if w, err = h.management.UpdateWalletCurrency(c.Request.Context(), id, userID, *req.Currency); err != nil {
			response.Error(c, err)
			return
		}
	}
	response.OK(c, w)
}

// ReplaceParticipants handles PUT /api/v1/splits/:id/participants.
func (h *SplitHandler) ReplaceParticipants(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	var req dto.ReplaceParticipantsRequest
	if !bind(c, &req) {
		return
	}

	w, err := h.management.ReplaceParticipants(c.Request.Context(), id, userID, dto.ToParticipantInputs(req.Participants))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, w)
}

// Lock handles POST /api/v1/splits/:id/lock.
func (h *SplitHandler) Lock(c *gin.Context) {
	h.walletAction(c, h.management.LockWallet)
}

// Pay handles POST /api/v1/splits/:id/payments. The caller pays their own share.
func (h *SplitHandler) Pay(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.payments.ProcessParticipantPayment(c.Request.Context(), ports.PaymentRequest{
		WalletID:      id,
		ParticipantID: userID,
		Amount:        req.Amount,
		Signature:     req.Signature,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}

// Balance handles GET /api/v1/splits/:id/balance.
func (h *SplitHandler) Balance(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	if _, ok := h.member(c, id, userID); !ok {
		return
	}
	report, err := h.payments.VerifyWalletBalance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// Reconcile handles POST /api/v1/splits/:id/reconcile.
func (h *SplitHandler) Reconcile(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	if _, ok := h.member(c, id, userID); !ok {
		return
	}
	report, err := h.payments.ReconcilePendingTransactions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// Extract handles POST /api/v1/splits/:id/extract.
func (h *SplitHandler) Extract(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	var req dto.ExtractRequest
	if !bind(c, &req) {
		return
	}

	w, err := h.payments.ExtractFairSplitFunds(c.Request.Context(), id, req.Recipient, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, w)
}

// Roulette handles POST /api/v1/splits/:id/roulette.
func (h *SplitHandler) Roulette(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	entry, err := h.roulette.ExecuteDegenRoulette(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entry)
}

// RouletteResult handles GET /api/v1/splits/:id/roulette.
func (h *SplitHandler) RouletteResult(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	if _, ok := h.member(c, id, userID); !ok {
		return
	}
	entry, err := h.roulette.GetRouletteResult(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entry)
}

// WinnerPayout handles POST /api/v1/splits/:id/degen/winner-payout.
func (h *SplitHandler) WinnerPayout(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	var req dto.WinnerPayoutRequest
	if !bind(c, &req) {
		return
	}

	w, err := h.payments.ProcessDegenWinnerPayout(c.Request.Context(), id, req.WinnerID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, w)
}

// LoserPayment handles POST /api/v1/splits/:id/degen/loser-payment.
func (h *SplitHandler) LoserPayment(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	var req dto.LoserPaymentRequest
	if !bind(c, &req) {
		return
	}

	w, err := h.payments.ProcessDegenLoserPayment(c.Request.Context(), id, userID, domain.Destination{
		Kind:    domain.DestinationKind(req.Kind),
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, w)
}

// Cancel handles POST /api/v1/splits/:id/cancel.
func (h *SplitHandler) Cancel(c *gin.Context) {
	h.walletAction(c, h.cleanup.CancelSplitWallet)
}

// Complete handles POST /api/v1/splits/:id/complete.
func (h *SplitHandler) Complete(c *gin.Context) {
	h.walletAction(c, h.cleanup.CompleteSplitWallet)
}

// Burn handles POST /api/v1/splits/:id/burn.
func (h *SplitHandler) Burn(c *gin.Context) {
	h.walletAction(c, h.cleanup.BurnSplitWalletAndCleanup)
}

// RepairData handles POST /api/v1/splits/:id/repair/data.
func (h *SplitHandler) RepairData(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	w, ok := h.member(c, id, userID)
	if !ok {
		return
	}
	if w.CreatorID != userID {
		response.Error(c, apperror.ErrUnauthorized("Only the creator can repair this split wallet"))
		return
	}
	report, err := h.management.RepairDataConsistency(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// RepairSync handles POST /api/v1/splits/:id/repair/sync.
func (h *SplitHandler) RepairSync(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	report, err := h.management.RepairSynchronization(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// walletAction runs an id + requester operation that returns the wallet.
func (h *SplitHandler) walletAction(c *gin.Context, op func(ctx context.Context, id uuid.UUID, requesterID string) (*domain.SplitWallet, error)) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	id, ok := splitID(c)
	if !ok {
		return
	}
	w, err := op(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, w)
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func listResponse(items []domain.SplitWallet, total int64, page, pageSize int) dto.SplitListResponse {
	if items == nil {
		items = []domain.SplitWallet{}
	}
	return dto.SplitListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}
}
