package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryClient decorates an HTTPClient with exponential-backoff retries for
// network errors and 5xx responses. 4xx responses pass through untouched so
// the caller's error handling still sees them. The SDK never installs this
// decorator itself; callers opt in via WithClient on a service.
type RetryClient struct {
	inner           HTTPClient
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsed      time.Duration
}

// RetryOption configures a RetryClient.
type RetryOption func(*RetryClient)

// WithInitialInterval sets the first backoff delay.
func WithInitialInterval(d time.Duration) RetryOption {
	return func(c *RetryClient) { c.initialInterval = d }
}

// WithMaxInterval caps the backoff delay.
func WithMaxInterval(d time.Duration) RetryOption {
	return func(c *RetryClient) { c.maxInterval = d }
}

// WithMaxElapsedTime bounds the total time spent retrying.
func WithMaxElapsedTime(d time.Duration) RetryOption {
	return func(c *RetryClient) { c.maxElapsed = d }
}

// NewRetryClient wraps inner with retry behavior. A nil inner defaults to
// the standard adapter.
func NewRetryClient(inner HTTPClient, opts ...RetryOption) *RetryClient {
	if inner == nil {
		inner = NewHTTPClient(nil)
	}
	c := &RetryClient{
		inner:           inner,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     10 * time.Second,
		maxElapsed:      time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes the request, retrying network failures and 5xx responses.
// The request body is buffered once so each attempt replays it. If retries
// are exhausted on a 5xx, the last response is returned so downstream error
// normalization sees the remote error body.
func (c *RetryClient) Do(ctx context.Context, req *Request) (*Response, error) {
	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.initialInterval
	expBackoff.MaxInterval = c.maxInterval

	var lastResp *Response
	operation := func() (*Response, error) {
		attempt := *req
		if bodyBytes != nil {
			attempt.Body = bytes.NewReader(bodyBytes)
		}

		resp, err := c.inner.Do(ctx, &attempt)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 500 {
			lastResp = resp
			return nil, fmt.Errorf("server error: %d", resp.StatusCode)
		}
		return resp, nil
	}

	resp, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxElapsedTime(c.maxElapsed),
	)
	if err != nil {
		if lastResp != nil {
			return lastResp, nil
		}
		return nil, err
	}
	return resp, nil
}
