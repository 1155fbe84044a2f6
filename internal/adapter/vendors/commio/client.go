// Package commio integrates the Commio (thinQ) numbering REST API.
package commio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"telco-billing/config"
	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const maxResponseBytes = 1 << 20

// Client implements ports.VendorIntegration for Commio.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// NewClient creates a Commio client. timeout caps every HTTP exchange and
// cfg.RateLimit throttles outbound requests per second.
func NewClient(cfg config.CommioConfig, timeout time.Duration, log zerolog.Logger) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		limiter:    rate.NewLimiter(limit, burst),
		log:        log,
	}
}

// Name returns the registry key of this integration.
func (c *Client) Name() string {
	return domain.VendorNameCommio
}

type searchResponse struct {
	DIDs []struct {
		ID         int64  `json:"id"`
		Number     string `json:"number"`
		NPA        string `json:"npa"`
		NXX        string `json:"nxx"`
		RateCenter string `json:"ratecenter"`
		State      string `json:"state"`
	} `json:"dids"`
}

// Search lists available numbers. NPA 0 searches without an area code filter.
func (c *Client) Search(ctx context.Context, creds domain.VendorCredentials, q ports.SearchQuery) ([]domain.CandidateNumber, error) {
	params := url.Values{}
	params.Set("searchType", q.SearchType)
	params.Set("quantity", strconv.Itoa(q.Quantity))
	params.Set("contiguous", "false")
	if q.NPA > 0 {
		params.Set("searchBy", "npa")
		params.Set("npa", strconv.Itoa(q.NPA))
	}

	var resp searchResponse
	if err := c.do(ctx, creds, http.MethodGet, "/inbound/get-numbers", params, nil, &resp); err != nil {
		return nil, err
	}

	numbers := make([]domain.CandidateNumber, 0, len(resp.DIDs))
	for _, d := range resp.DIDs {
		numbers = append(numbers, domain.CandidateNumber{
			Number:     d.Number,
			VendorRef:  strconv.FormatInt(d.ID, 10),
			NPA:        d.NPA,
			NXX:        d.NXX,
			RateCenter: d.RateCenter,
			State:      d.State,
		})
	}
	return numbers, nil
}

type orderTN struct {
	DID string `json:"did"`
}

type orderCreateRequest struct {
	Order struct {
		Reference string    `json:"reference"`
		TNs       []orderTN `json:"tns"`
	} `json:"order"`
}

type orderResponse struct {
	ID     int64     `json:"id"`
	Status string    `json:"status"`
	TNs    []orderTN `json:"tns"`
}

// Purchase creates an origination order for the numbers and completes it.
// When req.VendorOrderID is set the create step is skipped. A failed complete
// returns a *ports.VendorError carrying the created order id.
func (c *Client) Purchase(ctx context.Context, creds domain.VendorCredentials, req ports.VendorPurchaseRequest) (*ports.VendorPurchaseResult, error) {
	account := url.PathEscape(creds.AccountRef)

	orderID := req.VendorOrderID
	if orderID == "" {
		var body orderCreateRequest
		body.Order.Reference = req.Reference
		for _, n := range req.Numbers {
			body.Order.TNs = append(body.Order.TNs, orderTN{DID: n})
		}

		var created orderResponse
		if err := c.do(ctx, creds, http.MethodPost, "/account/"+account+"/origination/order/create", nil, body, &created); err != nil {
			return nil, err
		}
		orderID = strconv.FormatInt(created.ID, 10)
	}

	var completed orderResponse
	path := "/account/" + account + "/origination/order/complete/" + url.PathEscape(orderID)
	if err := c.do(ctx, creds, http.MethodPost, path, nil, nil, &completed); err != nil {
		return nil, withVendorOrder(err, orderID)
	}

	numbers := make([]string, 0, len(completed.TNs))
	for _, tn := range completed.TNs {
		numbers = append(numbers, tn.DID)
	}

	c.log.Info().
		Str("reference", req.Reference).
		Str("vendor_order_id", orderID).
		Str("status", completed.Status).
		Int("count", len(numbers)).
		Msg("commio order completed")

	return &ports.VendorPurchaseResult{VendorOrderID: orderID, Numbers: numbers}, nil
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one authenticated JSON call and classifies failures as
// *ports.VendorError.
func (c *Client) do(ctx context.Context, creds domain.VendorCredentials, method, path string, query url.Values, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return c.vendorError(0, true, fmt.Errorf("rate limiter: %w", err))
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("commio: marshalling request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("commio: creating request: %w", err)
	}
	req.SetBasicAuth(creds.Username, creds.Token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.vendorError(0, true, fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.vendorError(resp.StatusCode, true, fmt.Errorf("reading response: %w", err))
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("commio request")

	if resp.StatusCode >= http.StatusBadRequest {
		temporary := resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
		return c.vendorError(resp.StatusCode, temporary, errors.New(errorMessage(respBody, resp.Status)))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return c.vendorError(resp.StatusCode, false, fmt.Errorf("decoding response: %w", err))
		}
	}
	return nil
}

// withVendorOrder tags a failed complete call with the order it was completing.
func withVendorOrder(err error, orderID string) error {
	var vErr *ports.VendorError
	if errors.As(err, &vErr) {
		vErr.VendorOrderID = orderID
		return vErr
	}
	return &ports.VendorError{Vendor: domain.VendorNameCommio, VendorOrderID: orderID, Err: err}
}

func (c *Client) vendorError(status int, temporary bool, err error) *ports.VendorError {
	return &ports.VendorError{
		Vendor:     domain.VendorNameCommio,
		StatusCode: status,
		Temporary:  temporary,
		Err:        err,
	}
}

func errorMessage(body []byte, fallback string) string {
	var e errorResponse
	if json.Unmarshal(body, &e) == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	return fallback
}
