package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string            `json:"error_code"`
	Message    string            `json:"message"`
	HTTPStatus int               `json:"-"`
	Fields     map[string]string `json:"errors,omitempty"` // Per-field validation messages
	Err        error             `json:"-"`                // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError by code, so errors.Is(err, apperror.ErrInsufficientBalance()) works.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a validation error. Input errors are surfaced as 403.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusForbidden)
}

// ValidationFields returns a validation error carrying per-field messages.
func ValidationFields(fields map[string]string) *AppError {
	e := Validation("Validation failed")
	e.Fields = fields
	return e
}

func ErrInvalidAmount() *AppError {
	return Validation("Amount must be greater than zero")
}

func ErrPayloadTooLarge() *AppError {
	return New("VAL_002", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- Lookups (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Wallet (WAL) ----

func ErrInsufficientBalance() *AppError {
	return New("WAL_001", "Insufficient balance in wallet", http.StatusForbidden)
}

func ErrAccountBalanceNotFound() *AppError {
	return New("WAL_002", "Account balance not found", http.StatusNotFound)
}

func ErrAlreadyRefunded() *AppError {
	return New("WAL_003", "Transaction has already been refunded", http.StatusConflict)
}

func ErrNotRefundable() *AppError {
	return Validation("Only debit transactions can be refunded")
}

// ---- DID vendors (VND) ----

func ErrVendorNotFound() *AppError {
	return New("VND_001", "DID vendor not found", http.StatusNotFound)
}

func ErrNoActiveVendor() *AppError {
	return New("VND_002", "No active DID vendor", http.StatusNotFound)
}

func ErrUnsupportedVendor(name string) *AppError {
	return New("VND_003", fmt.Sprintf("Vendor %q is not supported", name), http.StatusNotFound)
}

func ErrVendorMisconfigured(err error) *AppError {
	return Wrap("VND_004", "DID vendor is misconfigured", http.StatusForbidden, err)
}

func ErrVendorUnavailable(err error) *AppError {
	return Wrap("VND_005", "DID vendor is unavailable", http.StatusServiceUnavailable, err)
}

func ErrVendorDeclined(err error) *AppError {
	return Wrap("VND_006", "DID vendor declined the request", http.StatusBadGateway, err)
}

// ---- TFN orders (TFN) ----

func ErrInsufficientInventory(requested, available int) *AppError {
	return New("TFN_001",
		fmt.Sprintf("Vendor returned %d of %d requested numbers", available, requested),
		http.StatusConflict)
}

func ErrPurchaseFailedAfterDebit(err error) *AppError {
	return Wrap("TFN_002", "Number purchase failed after wallet debit", http.StatusBadGateway, err)
}

func ErrOrderAlreadyRefunded() *AppError {
	return New("TFN_003", "Order already failed and was refunded", http.StatusConflict)
}

func ErrRequestInProgress() *AppError {
	return New("TFN_004", "A purchase with this request id is already in progress", http.StatusConflict)
}

// ---- CDR (CDR) ----

func ErrDuplicateCDR() *AppError {
	return New("CDR_001", "Call detail record already exists", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
