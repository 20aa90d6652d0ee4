package handler

import (
	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"
	"split-wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InternalHandler serves service-to-service endpoints behind ServiceAuth.
type InternalHandler struct {
	executor ports.RouletteExecutor
	query    ports.QueryService
}

// NewInternalHandler creates a new InternalHandler.
func NewInternalHandler(executor ports.RouletteExecutor, query ports.QueryService) *InternalHandler {
	return &InternalHandler{executor: executor, query: query}
}

// Draw handles POST /internal/v1/roulette/draw. It answers remote roulette
// executors of other instances with a locally drawn result.
func (h *InternalHandler) Draw(c *gin.Context) {
	var req domain.RouletteDrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("malformed roulette request"))
		return
	}
	if req.SplitWalletID == uuid.Nil {
		response.Error(c, apperror.Validation("split_wallet_id is required"))
		return
	}
	if len(req.Weights) > 0 && len(req.Weights) != len(req.Participants) {
		response.Error(c, apperror.Validation("weights must match participants"))
		return
	}

	draw, err := h.executor.Draw(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, draw)
}

// ListByStatus handles GET /internal/v1/splits?status=.
func (h *InternalHandler) ListByStatus(c *gin.Context) {
	status := domain.WalletStatus(c.Query("status"))
	if !status.IsValid() {
		response.Error(c, apperror.Validation("unknown wallet status"))
		return
	}
	page, pageSize := pagination(c)

	items, total, err := h.query.ListByStatus(c.Request.Context(), status, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, listResponse(items, total, page, pageSize))
}
