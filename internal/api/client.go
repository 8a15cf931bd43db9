// Package api is the HTTP client for the box-cricket booking service. It
// speaks JSON to a fixed base URL, attaches bearer tokens where an endpoint
// requires them, and normalizes list responses that may or may not be wrapped
// in a {"results": [...]} envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ritu748888/boxcourt/internal/models"
)

// BookingTab selects which booking list endpoint to hit.
type BookingTab string

const (
	TabUpcoming BookingTab = "upcoming"
	TabPast     BookingTab = "past"
)

// Client issues requests against the booking service. It performs no retries
// and enforces no timeout of its own beyond the configured http.Client; a
// cancelled request context stops the call and surfaces ErrNetwork.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// LoginResult is the body of a successful login.
type LoginResult struct {
	Status string       `json:"status"`
	User   *models.User `json:"user"`
	UserID int64        `json:"user_id"`
	Token  string       `json:"token,omitempty"`
}

// Login authenticates with email and password. The result's Token may be
// empty when the service does not issue one.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/users/login/", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if err != nil {
		return nil, err
	}
	var result LoginResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &result, nil
}

// Venues fetches all venues. No authentication is required.
func (c *Client) Venues(ctx context.Context) ([]models.Venue, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/venues/", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Venue](body)
}

// Bookings fetches the caller's bookings for the given tab.
func (c *Client) Bookings(ctx context.Context, tab BookingTab, token string) ([]models.Booking, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/bookings/%s/", tab), nil, token)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Booking](body)
}

// CancelBooking requests cancellation of the booking with the given id.
func (c *Client) CancelBooking(ctx context.Context, id int64, token string) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/bookings/%d/cancel/", id), nil, token)
	return err
}

// do sends one request and returns the raw 2xx body. Non-2xx responses become
// *Error; transport failures wrap ErrNetwork.
func (c *Client) do(ctx context.Context, method, path string, payload any, token string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			"request_id", requestID,
			"method", method,
			"path", path,
			"error", err,
		)
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrNetwork)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrNetwork)
	}

	c.logger.Debug("request completed",
		"request_id", requestID,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"latency", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Status: resp.StatusCode, Message: errorField(body)}
	}
	return body, nil
}

// errorField extracts the body's "error" field, if the body is JSON and has
// one. Anything else yields an empty message and callers fall back to a
// generic string.
func errorField(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}

// decodeList accepts either a bare JSON array or an object whose "results"
// field holds the array, and returns the items.
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	}

	var wrapped struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return wrapped.Results, nil
}
