package trends

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

// APIError is a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trends api error %d: %s", e.StatusCode, e.Message)
}

var errMalformedResponse = errors.New("malformed trends response")

// loadCookies fetches the landing page once so the jar holds the session cookie
// the widget endpoints expect.
func (c *Client) loadCookies(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cookiesLoaded {
		return nil
	}

	query := url.Values{}
	query.Set("geo", c.country())
	if _, err := c.do(ctx, http.MethodGet, "/", query); err != nil {
		return fmt.Errorf("load cookies: %w", err)
	}
	c.cookiesLoaded = true
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")

	c.logger.Debug("trends request", zap.String("method", method), zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}
	return body, nil
}

// get performs a widget API call and decodes the JSON document that follows
// the anti-XSSI prefix.
func (c *Client) get(ctx context.Context, method, path string, query url.Values, result interface{}) error {
	if err := c.loadCookies(ctx); err != nil {
		return err
	}

	query.Set("hl", c.hl)
	query.Set("tz", strconv.Itoa(c.tz))

	body, err := c.do(ctx, method, path, query)
	if err != nil {
		return err
	}

	payload, err := trimXSSI(body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func trimXSSI(body []byte) ([]byte, error) {
	idx := bytes.IndexByte(body, '{')
	if idx < 0 {
		return nil, errMalformedResponse
	}
	return body[idx:], nil
}
