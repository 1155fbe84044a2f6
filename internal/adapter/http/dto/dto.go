package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SearchTFNRequest is the request body for a toll-free number search.
type SearchTFNRequest struct {
	SearchType string `json:"searchType" binding:"required,safe_id,max=32"`
	Quantity   int    `json:"quantity" binding:"required,gt=0,max=100"`
	NPA        int    `json:"npa" binding:"gte=0,max=999"`
}

// PurchaseTFNRequest is the request body for a toll-free number purchase.
type PurchaseTFNRequest struct {
	VendorID   uuid.UUID       `json:"vendorId" binding:"required"`
	AccountID  uuid.UUID       `json:"accountId" binding:"required"`
	Quantity   int             `json:"didQty" binding:"required,gt=0,max=100"`
	Rate       decimal.Decimal `json:"rate"`
	Numbers    []string        `json:"numbers,omitempty" binding:"omitempty,dive,e164ish"`
	SearchType string          `json:"searchType,omitempty" binding:"omitempty,safe_id,max=32"`
	NPA        int             `json:"npa,omitempty" binding:"gte=0,max=999"`
	RequestID  string          `json:"requestId,omitempty" binding:"omitempty,safe_id,max=100"`
}

// PurchaseHeaders holds the optional Idempotency-Key header, held to the same
// rule as the body requestId.
type PurchaseHeaders struct {
	IdempotencyKey string `header:"Idempotency-Key" binding:"omitempty,safe_id,max=100"`
}

// CreateVendorRequest is the request body for vendor registration.
type CreateVendorRequest struct {
	Name       string `json:"vendor_name" binding:"required,max=100"`
	Username   string `json:"username" binding:"required,max=100"`
	Token      string `json:"token" binding:"required,max=512"`
	AccountRef string `json:"account_ref" binding:"required,safe_id,max=100"`
	Status     string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

// UpdateVendorStatusRequest is the request body for enabling or disabling a vendor.
type UpdateVendorStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// RecordCDRRequest is the request body for CDR ingest.
type RecordCDRRequest struct {
	AccountID     uuid.UUID       `json:"account_id" binding:"required"`
	CallID        string          `json:"call_id" binding:"required,max=128"`
	Caller        string          `json:"caller" binding:"required,e164ish"`
	Callee        string          `json:"callee" binding:"required,e164ish"`
	Direction     string          `json:"direction" binding:"required,oneof=inbound outbound"`
	Disposition   string          `json:"disposition" binding:"required,max=32"`
	StartTime     time.Time       `json:"start_time" binding:"required"`
	AnswerTime    *time.Time      `json:"answer_time,omitempty"`
	EndTime       time.Time       `json:"end_time" binding:"required"`
	RatePerMinute decimal.Decimal `json:"rate_per_minute"`
}

// ListQuery holds the pagination query parameters shared by list endpoints.
type ListQuery struct {
	Page     int `form:"page" binding:"gte=0"`
	PageSize int `form:"page_size" binding:"gte=0"`
}

// AccountListQuery is a ListQuery scoped to one account.
type AccountListQuery struct {
	ListQuery
	AccountID string `form:"account_id" binding:"required,uuid"`
}
