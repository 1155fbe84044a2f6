package handler

import (
	"strings"

	"telco-billing/config"
	"telco-billing/internal/adapter/http/dto"
	"telco-billing/internal/adapter/http/middleware"
	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"
	"telco-billing/pkg/response"

	"github.com/gin-gonic/gin"
)

// VendorHandler manages the DID vendor directory.
type VendorHandler struct {
	vendorSvc ports.VendorService
	pages     config.PaginationConfig
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendorSvc ports.VendorService, pages config.PaginationConfig) *VendorHandler {
	return &VendorHandler{vendorSvc: vendorSvc, pages: pages}
}

// Create handles POST /api/v1/vendors.
// The token is stored encrypted and never returned.
func (h *VendorHandler) Create(c *gin.Context) {
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	vendor, err := h.vendorSvc.CreateVendor(c.Request.Context(), ports.CreateVendorRequest{
		Name:       dto.Sanitize(req.Name),
		Username:   strings.TrimSpace(req.Username),
		Token:      strings.TrimSpace(req.Token),
		AccountRef: req.AccountRef,
		Status:     domain.VendorStatus(req.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, vendor.ID.String())
	response.Created(c, vendor)
}

// List handles GET /api/v1/vendors.
func (h *VendorHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	page, pageSize := h.pages.Normalize(q.Page, q.PageSize)

	vendors, total, err := h.vendorSvc.ListVendors(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewPage(vendors, total, page, pageSize))
}

// Get handles GET /api/v1/vendors/:id.
func (h *VendorHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	vendor, err := h.vendorSvc.GetVendor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, vendor)
}

// UpdateStatus handles PATCH /api/v1/vendors/:id/status.
func (h *VendorHandler) UpdateStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateVendorStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}

	vendor, err := h.vendorSvc.SetVendorStatus(c.Request.Context(), id, domain.VendorStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, vendor)
}
