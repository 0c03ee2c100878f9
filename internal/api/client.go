// Package api is the REST client for the practice-management backend. Each
// service file wraps one backend resource and maps failure statuses to the
// exact sentences shown to the clinician.
package api

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

	"github.com/google/uuid"

	"github.com/lcabreja/psiq/internal/logger"
)

// Client talks to the backend. The zero value is not usable; construct with
// New and attach a token after login with SetToken.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New returns a client for the given base URL. A trailing slash is added if
// missing so service paths can be appended directly.
func New(baseURL string) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken attaches the bearer token used on authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// BaseURL returns the backend base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// StatusError is a backend failure the calling service did not translate to
// a user-facing sentence. Detail carries the backend's own explanation when
// the response body had one.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.Code)
}

// get performs an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// send performs an authenticated request with a JSON body.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}
	return c.do(ctx, method, path, bytes.NewReader(payload), "application/json", out)
}

// postForm performs an unauthenticated form-encoded POST. The token endpoint
// is the only caller.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	logger.Debug("api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	logger.Debug("api response", "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode >= http.StatusBadRequest {
		return &StatusError{Code: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

// readDetail extracts the backend's {"detail": "..."} explanation, if any.
func readDetail(body io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}

// mapStatus translates a StatusError into the user-facing sentence for its
// code. Unmapped codes and transport errors pass through unchanged.
func mapStatus(err error, msgs map[int]string) error {
	var se *StatusError
	if errors.As(err, &se) {
		if msg, ok := msgs[se.Code]; ok {
			return errors.New(msg)
		}
	}
	return err
}

// mapDetail translates a StatusError whose meaning depends on the backend's
// detail string. Only the listed details for the given code are translated.
func mapDetail(err error, code int, details []string) error {
	var se *StatusError
	if errors.As(err, &se) && se.Code == code {
		for _, d := range details {
			if se.Detail == d {
				return errors.New(d)
			}
		}
	}
	return err
}
