package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Client is the only way this service talks to the upstream core API. It
// attaches the caller's bearer token per request and maps every failure
// into the Kind taxonomy, so callers never see raw transport errors.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		log:     log,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// upstreamError is the union of error body shapes the core API produces:
// FastAPI's {"detail": ...} and the envelope {"error": {"message": ...}}.
type upstreamError struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Err     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u upstreamError) text() string {
	if u.Err.Message != "" {
		return u.Err.Message
	}
	if u.Message != "" {
		return u.Message
	}
	if len(u.Detail) > 0 {
		var s string
		if err := json.Unmarshal(u.Detail, &s); err == nil {
			return s
		}
		return string(u.Detail)
	}
	return ""
}

func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("gateway: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	c.log.Debug("upstream request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ue upstreamError
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		_ = json.Unmarshal(raw, &ue)
		return &Error{
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: ue.text(),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			Kind:    KindUnknown,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("decode %s %s: %v", method, path, err),
		}
	}
	return nil
}

// Health probes the upstream /health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, "", http.MethodGet, "/health", nil, nil, nil)
}
