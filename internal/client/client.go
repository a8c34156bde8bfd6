// Package client wraps the ScanBack REST backend. The backend is an opaque
// collaborator: this wrapper owns request/response plumbing and error
// classification, nothing more.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/FahadIshaq/scanback/internal/model"
)

const defaultTimeout = 15 * time.Second

// APIError is a backend-reported failure with its HTTP status and message.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// Client talks to the ScanBack backend API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used in tests and for
// custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a backend client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("backend base URL is required")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// GetPublicQRCode fetches the public record for a tag code.
func (c *Client) GetPublicQRCode(ctx context.Context, code string) (*model.QRTagRecord, error) {
	var record model.QRTagRecord
	if err := c.do(ctx, http.MethodGet, "/qr/public/"+url.PathEscape(code), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// TrackScan reports a scan of an activated tag. Callers treat this as
// best-effort analytics; failures carry no user-visible consequence.
func (c *Client) TrackScan(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodPost, "/qr/"+url.PathEscape(code)+"/scan", struct{}{}, nil)
}

// activateResponse mirrors the backend's activation result shape.
type activateResponse struct {
	TempPassword string `json:"tempPassword,omitempty"`
	User         struct {
		Email string `json:"email"`
	} `json:"user"`
	IsNewUser bool `json:"isNewUser,omitempty"`
}

// ActivateQRCode submits the activation payload for a tag.
func (c *Client) ActivateQRCode(ctx context.Context, code string, payload model.ActivationPayload) (*model.ActivationResult, error) {
	var resp activateResponse
	if err := c.do(ctx, http.MethodPost, "/qr/"+url.PathEscape(code)+"/activate", payload, &resp); err != nil {
		return nil, err
	}
	return &model.ActivationResult{
		TempPassword: resp.TempPassword,
		UserEmail:    resp.User.Email,
		IsNewUser:    resp.IsNewUser,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeoutErr(err) {
			return fmt.Errorf("request timeout: %w", err)
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		// A non-JSON body still classifies by status below.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 400 || (len(raw) > 0 && !env.Success && env.Message != "") {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if len(env.Data) == 0 {
			return &APIError{Status: resp.StatusCode, Message: "empty response from backend"}
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func isTimeoutErr(err error) bool {
	var ne interface{ Timeout() bool }
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// IsTimeout classifies timeout-class failures: deadline errors from the HTTP
// layer or a backend message mentioning a timeout. These are the only
// failures a retry is offered for.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if isTimeoutErr(err) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout")
}

// IsInactive classifies "tag is inactive" failures: HTTP 403 or a message
// mentioning inactivity. The backend contract exposes no structured code, so
// the message match stays.
func IsInactive(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "inactive")
}

// Message extracts the backend-provided message from an error, if present.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
