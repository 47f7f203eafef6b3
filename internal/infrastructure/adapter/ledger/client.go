package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/external"
	applogger "github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/logger"
)

const (
	opTransfer      = "transfer"
	opAccountExists = "account_exists"

	apiKeyHeader         = "X-API-Key"
	requestIDHeader      = "X-Request-ID"
	idempotencyKeyHeader = "Idempotency-Key"

	// error bodies longer than this are cut before they reach the logs
	maxErrorBody = 512
)

// CallObserver receives the outcome of every ledger call
type CallObserver interface {
	ObserveLedgerCall(operation string, err error, elapsed time.Duration)
}

// Config holds the ledger endpoint settings
type Config struct {
	BaseURL string
	Timeout time.Duration
	APIKey  string
}

type transferBody struct {
	Contract string `json:"contract"`
	From     string `json:"from"`
	To       string `json:"to"`
	Quantity string `json:"quantity"`
	Memo     string `json:"memo"`
}

// Client talks to the external ledger over HTTP
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	observer     CallObserver
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Ensure Client implements the Ledger port
var _ external.Ledger = (*Client)(nil)

// NewClient creates a ledger client; observer may be nil
func NewClient(config Config, observer CallObserver, timeProvider coreport.TimeProvider, logger coreport.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(config.BaseURL, "/"),
		apiKey:       config.APIKey,
		httpClient:   &http.Client{Timeout: config.Timeout},
		observer:     observer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Transfer asks the ledger to move the quantity. Anything other than a 2xx answer is ErrLedgerUnavailable.
func (c *Client) Transfer(ctx context.Context, req external.TransferRequest) (err error) {
	start := c.timeProvider.Now()
	defer func() { c.observe(opTransfer, err, start) }()

	payload, err := json.Marshal(transferBody{
		Contract: req.Contract,
		From:     req.From,
		To:       req.To,
		Quantity: req.Quantity.String(),
		Memo:     req.Memo,
	})
	if err != nil {
		return fmt.Errorf("%w: encode transfer: %s", errs.ErrLedgerUnavailable, err.Error())
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/v1/transfers", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.IdempotencyKey != "" {
		httpReq.Header.Set(idempotencyKeyHeader, req.IdempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// the ledger may still have executed it; the idempotency key makes a retry safe
		c.logger.Error("Ledger transfer outcome unknown", map[string]any{
			"to":              req.To,
			"quantity":        req.Quantity.String(),
			"idempotency_key": req.IdempotencyKey,
			"error":           err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrLedgerUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body := readErrorBody(resp.Body)
		c.logger.Error("Ledger rejected transfer", map[string]any{
			"to":       req.To,
			"quantity": req.Quantity.String(),
			"status":   resp.StatusCode,
			"body":     body,
		})
		return fmt.Errorf("%w: transfer returned %d: %s", errs.ErrLedgerUnavailable, resp.StatusCode, body)
	}

	c.logger.Info("Ledger transfer executed", map[string]any{
		"contract": req.Contract,
		"from":     req.From,
		"to":       req.To,
		"quantity": req.Quantity.String(),
	})
	return nil
}

// AccountExists reports whether the ledger knows the account: 200 is true, 404 is false
func (c *Client) AccountExists(ctx context.Context, account string) (exists bool, err error) {
	start := c.timeProvider.Now()
	defer func() { c.observe(opAccountExists, err, start) }()

	httpReq, err := c.newRequest(ctx, http.MethodGet, "/v1/accounts/"+url.PathEscape(account), nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrLedgerUnavailable, err.Error())
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		body := readErrorBody(resp.Body)
		c.logger.Warn("Unexpected ledger account lookup status", map[string]any{
			"account": account,
			"status":  resp.StatusCode,
			"body":    body,
		})
		return false, fmt.Errorf("%w: account lookup returned %d", errs.ErrLedgerUnavailable, resp.StatusCode)
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %s", errs.ErrLedgerUnavailable, err.Error())
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	if requestID := applogger.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(requestIDHeader, requestID)
	}
	return req, nil
}

func (c *Client) observe(operation string, err error, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveLedgerCall(operation, err, c.timeProvider.Since(start))
}

func readErrorBody(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(data))
}
