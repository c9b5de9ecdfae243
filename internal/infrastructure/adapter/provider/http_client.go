package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	errs "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	provport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/provider"
)

// HTTPClient talks to the payment processor's gateway over a plain JSON
// API. The processor's real protocol lives behind the gateway; this
// adapter only carries the three calls the core needs.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  coreport.Logger
}

// NewHTTPClient creates a processor client against the configured gateway
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger coreport.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

var _ provport.PaymentProvider = (*HTTPClient)(nil)

type intentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	LocalRef string `json:"local_ref"`
}

type intentResponse struct {
	ExternalRef  string `json:"external_ref"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

type refundRequest struct {
	ExternalRef string `json:"external_ref"`
}

type refundResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type statusResponse struct {
	ExternalRef string `json:"external_ref"`
	Status      string `json:"status"`
}

// CreateIntent opens a pending charge, embedding the local id as
// provider-side metadata.
func (c *HTTPClient) CreateIntent(ctx context.Context, amount int64, currency string, localID string) (*provport.Intent, error) {
	var resp intentResponse
	err := c.post(ctx, "/intents", intentRequest{
		Amount:   amount,
		Currency: currency,
		LocalRef: localID,
	}, &resp)
	if err != nil {
		return nil, errs.NewUpstreamError("create_intent", localID, err)
	}
	return &provport.Intent{
		ExternalRef:  resp.ExternalRef,
		ClientSecret: resp.ClientSecret,
		Status:       resp.Status,
	}, nil
}

// CreateRefund requests a reversal of the charge
func (c *HTTPClient) CreateRefund(ctx context.Context, externalRef string) (*provport.Refund, error) {
	var resp refundResponse
	err := c.post(ctx, "/refunds", refundRequest{ExternalRef: externalRef}, &resp)
	if err != nil {
		return nil, errs.NewUpstreamError("create_refund", externalRef, err)
	}
	return &provport.Refund{ID: resp.ID, Status: resp.Status}, nil
}

// RetrieveStatus pulls the authoritative current status of the charge
func (c *HTTPClient) RetrieveStatus(ctx context.Context, externalRef string) (string, error) {
	var resp statusResponse
	err := c.get(ctx, "/intents/"+url.PathEscape(externalRef), &resp)
	if err != nil {
		return "", errs.NewUpstreamError("retrieve_status", externalRef, err)
	}
	return resp.Status, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Processor request rejected", map[string]any{
			"path":   req.URL.Path,
			"status": resp.StatusCode,
			"body":   string(snippet),
		})
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
