package handler

import (
	"telco-billing/config"
	"telco-billing/internal/adapter/http/dto"
	"telco-billing/internal/core/ports"
	"telco-billing/pkg/apperror"
	"telco-billing/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler exposes read access to the wallet ledger.
type WalletHandler struct {
	ledger ports.WalletLedger
	pages  config.PaginationConfig
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger ports.WalletLedger, pages config.PaginationConfig) *WalletHandler {
	return &WalletHandler{ledger: ledger, pages: pages}
}

// GetBalance handles GET /api/v1/wallets/:accountId/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}

	balance, err := h.ledger.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, balance)
}

// ListTransactions handles GET /api/v1/wallets/:accountId/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}

	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	page, pageSize := h.pages.Normalize(q.Page, q.PageSize)

	items, total, err := h.ledger.ListTransactions(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewPage(items, total, page, pageSize))
}

// uuidParam parses a path parameter, writing a VAL_001 response on failure.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.ValidationFields(map[string]string{name: name + " must be a UUID"}))
		return uuid.Nil, false
	}
	return id, true
}
