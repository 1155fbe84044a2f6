package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"telco-billing/config"
	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// alertRetryIntervals is the wait before each redelivery of an alert webhook.
var alertRetryIntervals = []time.Duration{
	5 * time.Second,
	30 * time.Second,
	2 * time.Minute,
}

// Alert webhook headers.
const (
	HeaderSignature          = "X-Signature"
	HeaderSignatureTimestamp = "X-Signature-Timestamp"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AlertServiceImpl implements ports.AlertService. Every alert is logged at
// error level; when a webhook URL is configured it is also POSTed, signed
// with HMAC-SHA256 over "<unix timestamp>.<body>".
type AlertServiceImpl struct {
	cfg        config.AlertConfig
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	retries    []time.Duration
	wg         sync.WaitGroup
	log        zerolog.Logger
}

// NewAlertService creates a new alert service.
func NewAlertService(cfg config.AlertConfig, sigSvc ports.SignatureService, httpClient HTTPClient, log zerolog.Logger) *AlertServiceImpl {
	return &AlertServiceImpl{
		cfg:        cfg,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		retries:    alertRetryIntervals,
		log:        log,
	}
}

// Raise records the alert and delivers it asynchronously.
func (s *AlertServiceImpl) Raise(ctx context.Context, alert domain.Alert) {
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}

	ev := s.log.Error().
		Str("alert_id", alert.ID.String()).
		Str("kind", alert.Kind).
		Str("severity", string(alert.Severity))
	for k, v := range alert.Fields {
		ev = ev.Str(k, v)
	}
	ev.Msg(alert.Message)

	if s.cfg.WebhookURL == "" {
		return
	}

	body, err := json.Marshal(alert)
	if err != nil {
		s.log.Error().Err(err).Str("alert_id", alert.ID.String()).Msg("alert: failed to marshal payload")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.deliverWithRetries(context.WithoutCancel(ctx), alert.ID.String(), body)
	}()
}

// Wait blocks until in-flight deliveries finish or ctx is done.
func (s *AlertServiceImpl) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AlertServiceImpl) deliverWithRetries(ctx context.Context, alertID string, body []byte) {
	for attempt := 0; attempt <= len(s.retries); attempt++ {
		if attempt > 0 {
			time.Sleep(s.retries[attempt-1])
		}

		status, err := s.deliver(ctx, body)
		if err != nil {
			s.log.Warn().Err(err).Str("alert_id", alertID).Int("attempt", attempt+1).Msg("alert: delivery failed")
			continue
		}
		if status >= 200 && status < 300 {
			s.log.Info().Str("alert_id", alertID).Int("attempt", attempt+1).Int("status", status).Msg("alert: delivered")
			return
		}
		s.log.Warn().Str("alert_id", alertID).Int("attempt", attempt+1).Int("status", status).Msg("alert: non-2xx response, retrying")
	}

	s.log.Error().Str("alert_id", alertID).Msg("alert: all retry attempts exhausted")
}

func (s *AlertServiceImpl) deliver(ctx context.Context, body []byte) (int, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderSignatureTimestamp, ts)
	req.Header.Set(HeaderSignature, s.sigSvc.Sign(s.cfg.Secret, ts+"."+string(body)))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}
