package videoprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с видеопровайдером
//
// The client is constructed once in main and injected into the services
// that need it; nothing in this package holds global state.
type Client struct {
	baseURL       string
	apiKey        string
	applicationID string
	httpClient    *http.Client
	log           Logger
}

// NewClient создает новый экземпляр клиента видеопровайдера
func NewClient(baseURL, apiKey, applicationID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		applicationID: applicationID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateSession acquires a new video session from the provider and
// returns its handle. The session is created in routed media mode.
func (c *Client) CreateSession(ctx context.Context) (string, error) {
	payload := map[string]string{
		"applicationId": c.applicationID,
		"mediaMode":     "routed",
	}

	var session Session
	if err := c.post(ctx, "/v1/sessions", payload, &session); err != nil {
		c.log.Error("CreateSession failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrSessionFailed, err)
	}

	if session.SessionID == "" {
		return "", fmt.Errorf("%w: empty session id", ErrInvalidResponse)
	}

	c.log.Info("Created video session %s", session.SessionID)
	return session.SessionID, nil
}

// GenerateToken issues a join token for an existing session.
func (c *Client) GenerateToken(ctx context.Context, req TokenRequest) (string, error) {
	path := fmt.Sprintf("/v1/sessions/%s/tokens", req.SessionID)

	var resp TokenResponse
	if err := c.post(ctx, path, req, &resp); err != nil {
		c.log.Error("GenerateToken failed for session %s: %v", req.SessionID, err)
		return "", err
	}

	if resp.Token == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidResponse)
	}

	return resp.Token, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrSessionNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: authentication rejected", ErrInvalidResponse)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
