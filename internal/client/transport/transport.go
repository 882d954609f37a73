// Package transport issues JSON requests against the paquetes API.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/atinyakov/paquetes/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Error: %s", e.Status)
}

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client sends JSON requests and decodes JSON responses.
type Client struct {
	httpClient Doer
	log        *zap.Logger
}

// New returns a Client using the given HTTP client. A nil logger disables logging.
func New(httpClient Doer, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{httpClient: httpClient, log: log}
}

// Do sends a request with an optional JSON body and decodes the response into out.
// out may be nil when the response body is not needed.
func (c *Client) Do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(models.RequestIDHeader, reqID)

	log := c.log.With(
		zap.String("method", method),
		zap.String("url", url),
		zap.String("request_id", reqID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		log.Debug("request rejected", zap.Int("status", resp.StatusCode))
		return &StatusError{
			Code:   resp.StatusCode,
			Status: statusText(resp),
			Body:   strings.TrimSpace(string(data)),
		}
	}
	log.Debug("request completed", zap.Int("status", resp.StatusCode))

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response: %w", err)
	}
	return nil
}

// FetchJSON performs Do and returns the decoded payload.
func FetchJSON[T any](ctx context.Context, c *Client, method, url string, body any) (T, error) {
	var out T
	if err := c.Do(ctx, method, url, body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// statusText returns the reason phrase, e.g. "Not Found".
func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprint(resp.StatusCode)))
}
