package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	return c.do(ctx, http.MethodGet, url, nil, headers)
}

func (c *clientImpl) PostJSON(ctx context.Context, url string, body any, headers map[string]string) (Response, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Response{}, fmt.Errorf("pkg.http: marshal body: %w", err)
		}
		payload = b
	}
	h := make(map[string]string, len(headers)+1)
	h["Content-Type"] = "application/json"
	for k, v := range headers {
		h[k] = v
	}
	return c.do(ctx, http.MethodPost, url, payload, h)
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func (c *clientImpl) backoff(attempt int) time.Duration {
	d := c.cfg.BaseBackoff << attempt
	if d <= 0 || d > MaxBackoff {
		return MaxBackoff
	}
	return d
}

// do rebuilds the request on every attempt so the body can be replayed.
// After the last attempt the final response is returned as is, even when it is a 5xx.
func (c *clientImpl) do(ctx context.Context, method, url string, payload []byte, headers map[string]string) (Response, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		resp, err := c.once(ctx, method, url, payload, headers)
		last := attempt >= c.cfg.MaxRetries
		switch {
		case err == nil && (!retryable(resp.StatusCode) || last):
			return resp, nil
		case err != nil && last:
			return Response{}, fmt.Errorf("pkg.http: %s %s failed after %d attempts: %w", method, url, attempt+1, err)
		}
		lastErr = err

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return Response{}, fmt.Errorf("%w (last error: %v)", ctx.Err(), lastErr)
			}
			return Response{}, ctx.Err()
		case <-time.After(c.backoff(attempt)):
		}
	}
}

func (c *clientImpl) once(ctx context.Context, method, url string, payload []byte, headers map[string]string) (Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return Response{}, fmt.Errorf("pkg.http: build request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("pkg.http: read body: %w", err)
	}
	return Response{StatusCode: resp.StatusCode, Body: b}, nil
}
