package handler

import (
	"telco-billing/config"
	"telco-billing/internal/adapter/http/dto"
	"telco-billing/internal/adapter/http/middleware"
	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"
	"telco-billing/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CDRHandler ingests and reads call detail records.
type CDRHandler struct {
	cdrSvc ports.CDRService
	pages  config.PaginationConfig
}

// NewCDRHandler creates a new CDRHandler.
func NewCDRHandler(cdrSvc ports.CDRService, pages config.PaginationConfig) *CDRHandler {
	return &CDRHandler{cdrSvc: cdrSvc, pages: pages}
}

// Record handles POST /api/v1/cdrs.
func (h *CDRHandler) Record(c *gin.Context) {
	var req dto.RecordCDRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	cdr, err := h.cdrSvc.Record(c.Request.Context(), ports.RecordCDRRequest{
		AccountID:     req.AccountID,
		CallID:        req.CallID,
		Caller:        req.Caller,
		Callee:        req.Callee,
		Direction:     domain.CallDirection(req.Direction),
		Disposition:   req.Disposition,
		StartTime:     req.StartTime,
		AnswerTime:    req.AnswerTime,
		EndTime:       req.EndTime,
		RatePerMinute: req.RatePerMinute,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, cdr.ID.String())
	response.Created(c, cdr)
}

// Get handles GET /api/v1/cdrs/:id.
func (h *CDRHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	cdr, err := h.cdrSvc.GetCDR(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cdr)
}

// List handles GET /api/v1/cdrs?account_id=.
func (h *CDRHandler) List(c *gin.Context) {
	var q dto.AccountListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	page, pageSize := h.pages.Normalize(q.Page, q.PageSize)

	cdrs, total, err := h.cdrSvc.ListCDRs(c.Request.Context(), uuid.MustParse(q.AccountID), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewPage(cdrs, total, page, pageSize))
}
