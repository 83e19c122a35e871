// Package submit forwards filing identifiers to the remote bulk-import
// endpoint in fixed-size batches. It is glue around the extraction engine,
// not part of it.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Filing identifies one disclosure PDF for remote processing
type Filing struct {
	FilingID string `json:"filingId"`
	PDFURL   string `json:"pdfUrl"`
	Name     string `json:"name"`
	Office   string `json:"office"`
}

// BatchRequest is the bulk-import request body
type BatchRequest struct {
	Filings []Filing `json:"filings"`
}

// BatchResponse reports what the endpoint accepted from one batch
type BatchResponse struct {
	Queued int      `json:"queued"`
	Total  int      `json:"total"`
	Errors []string `json:"errors,omitempty"`
}

// Client submits filing batches to the bulk-import endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Endpoint returns the configured endpoint URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SubmitBatch posts one batch of filings and decodes the response
func (c *Client) SubmitBatch(ctx context.Context, filings []Filing) (*BatchResponse, error) {
	if len(filings) == 0 {
		return &BatchResponse{}, nil
	}

	body, err := json.Marshal(BatchRequest{Filings: filings})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit batch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(msg))
	}

	var out BatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &out, nil
}
