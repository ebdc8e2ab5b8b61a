package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"
	appctx "github.com/usbtecnok/kaviar-admin-os/internal/pkg/context"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	nrpkg "github.com/usbtecnok/kaviar-admin-os/internal/pkg/newrelic"
)

// Config holds the API client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration // zero keeps the transport default
}

// Client talks JSON to the Kaviar REST API
type Client struct {
	baseURL    string
	httpClient *nethttp.Client
}

// NewClient creates a new Kaviar API client
func NewClient(config Config) *Client {
	return &Client{
		baseURL: config.BaseURL,
		httpClient: &nethttp.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the address every endpoint is appended to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes one call to the API
type Request struct {
	Method   string
	Endpoint string
	// Token is the bearer token; empty means an unauthenticated call
	Token string
	Body  interface{}
	// Fallback is the message used when an error response carries no detail
	Fallback string
}

// Do performs the request and decodes a 2xx JSON body into result (when non-nil).
// Transport failures surface as *UnreachableError and non-2xx responses as *APIError.
func (c *Client) Do(ctx context.Context, r Request, result interface{}) error {
	url := c.baseURL + r.Endpoint

	var reqBody io.Reader
	if r.Body != nil {
		jsonBody, err := json.Marshal(r.Body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, r.Method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
	if requestID := appctx.GetRequestID(ctx); requestID != "" {
		req.Header.Set(echo.HeaderXRequestID, requestID)
	}

	logger.Debug("Calling Kaviar API",
		logger.String("method", r.Method),
		logger.String("url", url),
		logger.Bool("authenticated", r.Token != ""))

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		logger.Warn("Kaviar API unreachable",
			logger.String("method", r.Method),
			logger.String("url", url),
			logger.Err(err))
		return &UnreachableError{Op: r.Method + " " + r.Endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UnreachableError{Op: r.Method + " " + r.Endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := NormalizeError(resp.StatusCode, body, r.Fallback)
		logger.Warn("Kaviar API rejected request",
			logger.String("method", r.Method),
			logger.String("url", url),
			logger.Int("status_code", resp.StatusCode),
			logger.String("detail", apiErr.Message))
		return apiErr
	}

	if result == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", r.Method, r.Endpoint, err)
	}
	return nil
}

// Ping reports whether the API host answers at all. Any HTTP status counts as
// reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UnreachableError{Op: "GET /", Err: err}
	}
	resp.Body.Close()
	return nil
}
