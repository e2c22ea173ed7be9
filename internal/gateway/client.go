// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the gateway client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeBackend
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeConnection, Message: "backend is unreachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// BackendError is a non-2xx response from the backend, carrying the
// detail string from the error envelope when one was present.
type BackendError struct {
	StatusCode int
	Detail     string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "backend returned status " + strconv.Itoa(e.StatusCode)
}

// IsNetworkError reports whether err means the backend could not be
// reached at all, as opposed to the backend answering with an error.
func IsNetworkError(err error) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Type == ErrTypeConnection || ce.Type == ErrTypeTimeout
	}
	return false
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the gateway client.
type ClientConfig struct {
	// BaseURL is the backend API base URL (default: http://localhost:8000)
	BaseURL string

	// Timeout for chat and user-creation requests (default: 60s)
	Timeout time.Duration

	// HealthTimeout for health probes, kept short so a dead backend is
	// reported quickly (default: 5s)
	HealthTimeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:       "http://localhost:8000",
		Timeout:       60 * time.Second,
		HealthTimeout: 5 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the agent swarm backend.
//
// The Client is thread-safe for concurrent use.
//
// Example:
//
//	client := gateway.NewClient()
//	reply, err := client.SendMessage(ctx, "qual o status do meu pedido?", "client789")
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new gateway client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new gateway client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.HealthTimeout == 0 {
		config.HealthTimeout = 5 * time.Second
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the backend base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// CheckHealth probes the backend's health endpoint. It never returns an
// error: anything short of a 200 reporting status "healthy" collapses to
// HealthOffline.
func (c *Client) CheckHealth(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, c.config.HealthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/health", nil)
	if err != nil {
		return HealthOffline
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthOffline
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return HealthOffline
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return HealthOffline
	}
	if health.Status != "healthy" {
		return HealthOffline
	}
	return HealthOnline
}

// =============================================================================
// CHAT
// =============================================================================

// SendMessage submits one operator turn on behalf of the given simulated
// user and returns the backend's reply.
func (c *Client) SendMessage(ctx context.Context, text, userID string) (*AssistantReply, error) {
	body, err := json.Marshal(chatRequest{Message: text, UserID: userID})
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeBackendError(resp)
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	return &AssistantReply{
		Content:   result.Response,
		Agents:    result.AgentUsed,
		Sources:   result.Sources,
		DebugInfo: result.DebugInfo,
	}, nil
}

// =============================================================================
// USER PROVISIONING
// =============================================================================

// CreateUser registers a new simulated user with the backend. requestedID
// may be empty, in which case the backend assigns one.
func (c *Client) CreateUser(ctx context.Context, name, requestedID string) (*CreatedUser, error) {
	body, err := json.Marshal(createUserRequest{Name: name, UserID: requestedID})
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/users", bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, decodeBackendError(resp)
	}

	var result createUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	return &CreatedUser{ID: result.UserID, Name: result.Name}, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func wrapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return &ClientError{Type: ErrTypeConnection, Message: "backend is unreachable", Cause: err}
}

func decodeBackendError(resp *http.Response) error {
	be := &BackendError{StatusCode: resp.StatusCode}
	var envelope errorBody
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		be.Detail = envelope.Detail
	}
	return be
}
