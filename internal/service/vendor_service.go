package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"
	"telco-billing/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VendorServiceImpl implements ports.VendorService.
type VendorServiceImpl struct {
	vendorRepo ports.VendorRepository
	encSvc     ports.EncryptionService
	log        zerolog.Logger
}

// NewVendorService creates a new vendor directory service.
func NewVendorService(vendorRepo ports.VendorRepository, encSvc ports.EncryptionService, log zerolog.Logger) *VendorServiceImpl {
	return &VendorServiceImpl{
		vendorRepo: vendorRepo,
		encSvc:     encSvc,
		log:        log,
	}
}

// ActiveVendors returns every active vendor, oldest first, with tokens decrypted.
func (s *VendorServiceImpl) ActiveVendors(ctx context.Context) ([]domain.Vendor, error) {
	vendors, err := s.vendorRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list active vendors: %w", err))
	}
	for i := range vendors {
		s.decryptToken(&vendors[i])
	}
	return vendors, nil
}

// GetVendor returns one vendor with its token decrypted.
func (s *VendorServiceImpl) GetVendor(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get vendor: %w", err))
	}
	if vendor == nil {
		return nil, apperror.ErrVendorNotFound()
	}
	s.decryptToken(vendor)
	return vendor, nil
}

// CreateVendor registers a vendor. The API token is stored encrypted.
func (s *VendorServiceImpl) CreateVendor(ctx context.Context, req ports.CreateVendorRequest) (*domain.Vendor, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.ValidationFields(map[string]string{"vendor_name": "is required"})
	}
	status := req.Status
	if status == "" {
		status = domain.VendorStatusActive
	}
	if !domain.IsValidVendorStatus(string(status)) {
		return nil, apperror.ValidationFields(map[string]string{"status": "must be one of: active inactive"})
	}

	var tokenEnc string
	if req.Token != "" {
		enc, err := s.encSvc.Encrypt(req.Token)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt vendor token: %w", err))
		}
		tokenEnc = enc
	}

	now := time.Now().UTC()
	vendor := &domain.Vendor{
		ID:         uuid.New(),
		Name:       name,
		Username:   strings.TrimSpace(req.Username),
		TokenEnc:   tokenEnc,
		Token:      req.Token,
		AccountRef: strings.TrimSpace(req.AccountRef),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create vendor: %w", err))
	}

	s.log.Info().
		Str("vendor_id", vendor.ID.String()).
		Str("vendor_name", vendor.Name).
		Str("status", string(vendor.Status)).
		Msg("vendor created")

	return vendor, nil
}

// ListVendors returns a page of vendors. Tokens are not decrypted.
func (s *VendorServiceImpl) ListVendors(ctx context.Context, page, pageSize int) ([]domain.Vendor, int64, error) {
	vendors, total, err := s.vendorRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list vendors: %w", err))
	}
	return vendors, total, nil
}

// SetVendorStatus enables or disables a vendor.
func (s *VendorServiceImpl) SetVendorStatus(ctx context.Context, id uuid.UUID, status domain.VendorStatus) (*domain.Vendor, error) {
	if !domain.IsValidVendorStatus(string(status)) {
		return nil, apperror.ValidationFields(map[string]string{"status": "must be one of: active inactive"})
	}
	vendor, err := s.vendorRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update vendor status: %w", err))
	}
	if vendor == nil {
		return nil, apperror.ErrVendorNotFound()
	}

	s.log.Info().
		Str("vendor_id", id.String()).
		Str("status", string(status)).
		Msg("vendor status changed")

	return vendor, nil
}

// decryptToken fills vendor.Token. A token that cannot be decrypted is left
// empty so the vendor is reported as misconfigured when used.
func (s *VendorServiceImpl) decryptToken(vendor *domain.Vendor) {
	if vendor.TokenEnc == "" {
		return
	}
	token, err := s.encSvc.Decrypt(vendor.TokenEnc)
	if err != nil {
		s.log.Warn().Err(err).Str("vendor_id", vendor.ID.String()).Msg("failed to decrypt vendor token")
		return
	}
	vendor.Token = token
}
