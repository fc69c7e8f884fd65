package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"MilestoneTracker/middlewares"
	"MilestoneTracker/models"
	"MilestoneTracker/services"

	"go.uber.org/zap"
)

// APIClient is the shared HTTP plumbing for all repository implementations:
// base URL handling, JSON round-trips and the error-body mapping of the
// backend contract ({"error": "..."} on non-2xx).
type APIClient struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *zap.Logger
}

func NewAPIClient(baseURL string, session models.Session, timeout time.Duration, logger *zap.Logger) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: &middlewares.SessionTransport{Session: session},
		},
		Logger: logger,
	}
}

func (c *APIClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *APIClient) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *APIClient) do(req *http.Request, out interface{}) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Warn("request failed", zap.String("path", req.URL.Path), zap.Error(err))
		return &services.TransportError{Message: services.GenericNetworkError, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &services.TransportError{Message: services.GenericNetworkError, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Unparsable success body: treated as a transport error with a
		// generic message (no separate parse-error surface).
		return &services.TransportError{Message: services.GenericNetworkError, Err: err}
	}
	return nil
}

// decodeError maps a non-2xx response to a TransportError, preferring the
// server's message and falling back to a generic one.
func decodeError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &services.TransportError{Message: payload.Error}
	}
	return &services.TransportError{
		Message: services.GenericNetworkError,
		Err:     fmt.Errorf("unexpected status %d", status),
	}
}
