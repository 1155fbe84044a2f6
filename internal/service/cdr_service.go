package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"
	"telco-billing/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CDRServiceImpl implements ports.CDRService.
type CDRServiceImpl struct {
	repo          ports.CDRRepository
	roundToMinute bool
	log           zerolog.Logger
}

// NewCDRService creates a new CDRServiceImpl.
func NewCDRService(repo ports.CDRRepository, roundToMinute bool, log zerolog.Logger) *CDRServiceImpl {
	return &CDRServiceImpl{repo: repo, roundToMinute: roundToMinute, log: log}
}

// Record rates and stores a call detail record.
func (s *CDRServiceImpl) Record(ctx context.Context, req ports.RecordCDRRequest) (*domain.CDR, error) {
	if err := validateCDR(req); err != nil {
		return nil, err
	}

	cdr := &domain.CDR{
		ID:            uuid.New(),
		AccountID:     req.AccountID,
		CallID:        strings.TrimSpace(req.CallID),
		Caller:        req.Caller,
		Callee:        req.Callee,
		Direction:     req.Direction,
		Disposition:   req.Disposition,
		StartTime:     req.StartTime.UTC(),
		EndTime:       req.EndTime.UTC(),
		Duration:      int(req.EndTime.Sub(req.StartTime) / time.Second),
		RatePerMinute: req.RatePerMinute,
		CreatedAt:     time.Now().UTC(),
	}
	if req.AnswerTime != nil {
		at := req.AnswerTime.UTC()
		cdr.AnswerTime = &at
	}
	cdr.ApplyRating(s.roundToMinute)

	if err := s.repo.Create(ctx, cdr); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, apperror.ErrDuplicateCDR()
		}
		return nil, apperror.InternalError(fmt.Errorf("create cdr: %w", err))
	}

	s.log.Debug().
		Str("call_id", cdr.CallID).
		Int("billable_seconds", cdr.BillableSeconds).
		Str("cost", cdr.Cost.String()).
		Msg("cdr recorded")

	return cdr, nil
}

func validateCDR(req ports.RecordCDRRequest) error {
	fields := map[string]string{}
	if req.AccountID == uuid.Nil {
		fields["account_id"] = "is required"
	}
	if strings.TrimSpace(req.CallID) == "" {
		fields["call_id"] = "is required"
	}
	if req.Direction != domain.CallDirectionInbound && req.Direction != domain.CallDirectionOutbound {
		fields["direction"] = "must be one of: inbound outbound"
	}
	if req.StartTime.IsZero() {
		fields["start_time"] = "is required"
	}
	if req.EndTime.Before(req.StartTime) {
		fields["end_time"] = "must not be before start_time"
	}
	if req.AnswerTime != nil && (req.AnswerTime.Before(req.StartTime) || req.AnswerTime.After(req.EndTime)) {
		fields["answer_time"] = "must be between start_time and end_time"
	}
	if req.RatePerMinute.IsNegative() {
		fields["rate_per_minute"] = "must not be negative"
	}
	if len(fields) > 0 {
		return apperror.ValidationFields(fields)
	}
	return nil
}

// GetCDR returns one record by id.
func (s *CDRServiceImpl) GetCDR(ctx context.Context, id uuid.UUID) (*domain.CDR, error) {
	cdr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get cdr: %w", err))
	}
	if cdr == nil {
		return nil, apperror.ErrNotFound("CDR")
	}
	return cdr, nil
}

// ListCDRs returns a page of the account's records, newest first.
func (s *CDRServiceImpl) ListCDRs(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.CDR, int64, error) {
	cdrs, total, err := s.repo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list cdrs: %w", err))
	}
	return cdrs, total, nil
}
