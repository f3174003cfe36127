// Package gateway wraps outbound API calls in a timeout/cancellation envelope
// and surfaces failures as a small, uniform error set.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"
)

var (
	ErrTimeout = errors.New("request timed out")
	ErrNetwork = errors.New("network error")
)

// HTTPError carries a non-2xx status and the server-supplied message.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

const DefaultTimeout = 7 * time.Second

type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// New builds a gateway client for the given API base URL. The cookie jar
// keeps credentials flowing across calls for session continuity.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Jar: jar},
		timeout: timeout,
	}, nil
}

// Call performs one HTTP request against the API. The hard per-call timeout
// cancels the in-flight request on expiry. A non-2xx response becomes an
// *HTTPError with a best-effort parsed message; transport failures become
// ErrTimeout or ErrNetwork.
func (c *Client) Call(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s %s", ErrTimeout, method, endpoint)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			Status:  resp.StatusCode,
			Message: parseMessage(data),
		}
	}

	return data, nil
}

func parseMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return "request failed"
}
