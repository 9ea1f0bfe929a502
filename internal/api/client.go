package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RequestError is the single failure type of the client. Status is the HTTP
// status code when a response was received, 0 for transport-level failures.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// anonymizeRequest is the request body for the anonymize endpoint.
// document_id is omitted entirely when not provided.
type anonymizeRequest struct {
	Text       string `json:"text"`
	DocumentID string `json:"document_id,omitempty"`
}

// errorBody is the optional shape of a non-2xx response body.
type errorBody struct {
	Detail string `json:"detail"`
}

// Client performs requests against the anonymization service. Each call
// issues exactly one attempt: no retry, no backoff, no caching.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the service at baseURL. The timeout bounds
// the whole request including body read; anonymization can take a while per
// iteration, so callers should pass a generous value.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the service base URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Anonymize submits text for anonymization and returns the decoded result.
// The text is sent as-is; input validation is the caller's responsibility.
func (c *Client) Anonymize(ctx context.Context, text, documentID string) (*AnonymizeResult, error) {
	payload, err := json.Marshal(anonymizeRequest{Text: text, DocumentID: documentID})
	if err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("failed to encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/anonymize", bytes.NewReader(payload))
	if err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	body, status, reqErr := c.do(req)
	if reqErr != nil {
		return nil, reqErr
	}

	var result AnonymizeResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &RequestError{Status: status, Message: "invalid response from anonymization service"}
	}
	// A 2xx body of the wrong shape (for example a proxy's own error JSON)
	// decodes into zero values; iterations is never below 1 in a real result.
	if result.Iterations < 1 {
		return nil, &RequestError{Status: status, Message: "invalid response from anonymization service"}
	}

	return &result, nil
}

// Health probes the service health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("failed to create request: %v", err)}
	}

	body, status, reqErr := c.do(req)
	if reqErr != nil {
		return nil, reqErr
	}

	var health HealthStatus
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, &RequestError{Status: status, Message: "invalid response from anonymization service"}
	}

	return &health, nil
}

// do executes a single request and returns the body of a successful response.
// Non-2xx responses and transport failures are converted to RequestError.
func (c *Client) do(req *http.Request) ([]byte, int, *RequestError) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &RequestError{Status: resp.StatusCode, Message: fmt.Sprintf("failed to read response body: %v", err)}
	}

	if !IsSuccessStatus(resp.StatusCode) {
		return nil, resp.StatusCode, &RequestError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
	}

	return body, resp.StatusCode, nil
}

// errorMessage surfaces the service's detail field verbatim when present,
// falling back to a generic status message.
func errorMessage(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
		return eb.Detail
	}
	return fmt.Sprintf("API error: %d", status)
}

// IsSuccessStatus returns true if status code is 2xx
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}
