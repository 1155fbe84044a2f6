package handler

import (
	"telco-billing/internal/adapter/http/dto"
	"telco-billing/internal/adapter/http/middleware"
	"telco-billing/internal/core/ports"
	"telco-billing/pkg/response"

	"github.com/gin-gonic/gin"
)

// TFNHandler handles toll-free number search and purchase.
type TFNHandler struct {
	tfnSvc ports.TfnService
}

// NewTFNHandler creates a new TFNHandler.
func NewTFNHandler(tfnSvc ports.TfnService) *TFNHandler {
	return &TFNHandler{tfnSvc: tfnSvc}
}

// Search handles POST /api/v1/tfn/search.
func (h *TFNHandler) Search(c *gin.Context) {
	var req dto.SearchTFNRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	numbers, err := h.tfnSvc.SearchTFN(c.Request.Context(), ports.SearchTFNRequest{
		SearchType: req.SearchType,
		Quantity:   req.Quantity,
		NPA:        req.NPA,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, numbers)
}

// Purchase handles POST /api/v1/tfn/purchase.
// requestId makes retries safe. When the body omits it, Idempotency-Key and then
// X-Request-ID are used.
func (h *TFNHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseTFNRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	var hdr dto.PurchaseHeaders
	if err := c.ShouldBindHeader(&hdr); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = hdr.IdempotencyKey
	}
	if requestID == "" {
		requestID = c.GetHeader(middleware.HeaderRequestID)
	}

	result, err := h.tfnSvc.PurchaseTFN(c.Request.Context(), ports.PurchaseTFNRequest{
		RequestID:  requestID,
		VendorID:   req.VendorID,
		AccountID:  req.AccountID,
		Quantity:   req.Quantity,
		Rate:       req.Rate,
		Numbers:    req.Numbers,
		SearchType: req.SearchType,
		NPA:        req.NPA,
		Actor:      middleware.ActorFrom(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Order != nil {
		c.Set(middleware.CtxResourceID, result.Order.ID.String())
	}
	response.OK(c, result)
}
