package handler

import (
	"telco-billing/config"
	"telco-billing/internal/adapter/http/dto"
	"telco-billing/internal/core/ports"
	"telco-billing/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DIDHandler lists purchased numbers.
type DIDHandler struct {
	gateway ports.DIDGateway
	pages   config.PaginationConfig
}

// NewDIDHandler creates a new DIDHandler.
func NewDIDHandler(gateway ports.DIDGateway, pages config.PaginationConfig) *DIDHandler {
	return &DIDHandler{gateway: gateway, pages: pages}
}

// List handles GET /api/v1/dids?account_id=.
func (h *DIDHandler) List(c *gin.Context) {
	var q dto.AccountListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	page, pageSize := h.pages.Normalize(q.Page, q.PageSize)

	dids, total, err := h.gateway.ListDIDs(c.Request.Context(), uuid.MustParse(q.AccountID), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewPage(dids, total, page, pageSize))
}
