// Package restapi implements the outbound gateways against the remote
// storefront REST API. The server is authoritative for all order, review,
// and catalog state; this package only translates between wire JSON and
// domain aggregates.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// Client is a thin JSON client for the remote API. The bearer credential is
// taken from the request context on every call, so one client serves all
// actors concurrently.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a client rooted at baseURL, e.g. "http://localhost:5000/api".
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		logger:     logger.With("component", "restapi"),
	}
}

// envelope is the common response wrapper. Every payload key the endpoints
// use is declared here; only the one matching the call is populated.
type envelope struct {
	Success    bool          `json:"success"`
	Message    string        `json:"message"`
	Order      *orderDTO     `json:"order"`
	Orders     []orderDTO    `json:"orders"`
	Review     *reviewDTO    `json:"review"`
	Reviews    []reviewDTO   `json:"reviews"`
	Food       *foodDTO      `json:"food"`
	Foods      []foodDTO     `json:"foods"`
	Categories []categoryDTO `json:"categories"`
}

// do executes one API call and decodes the response envelope. A non-2xx
// status becomes a RemoteFailureError carrying the server's message; 404
// becomes an ObjectNotFoundError so callers can distinguish a missing
// resource from a broken backend.
func (c *Client) do(ctx context.Context, operation, method, path string, body any) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := ports.CredentialFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "remote call failed", "operation", operation, "error", err)
		return nil, errs.NewRemoteFailureErrorWithCause(operation, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewRemoteFailureErrorWithCause(operation, err)
	}

	var env envelope
	var decodeErr error
	if len(payload) > 0 {
		decodeErr = json.Unmarshal(payload, &env)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, errs.NewObjectNotFoundError("resource", path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "remote call rejected",
			"operation", operation, "status", resp.StatusCode, "message", env.Message)
		return nil, errs.NewRemoteFailureError(operation, resp.StatusCode, env.Message)
	}
	if decodeErr != nil {
		return nil, errs.NewRemoteFailureErrorWithCause(operation,
			fmt.Errorf("malformed response body: %w", decodeErr))
	}

	return &env, nil
}
