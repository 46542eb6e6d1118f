package httpx

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/threadsapi/threads-sdk-go/transport"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultHTTPClient performs a single attempt per request with no retry or
// timeout policy of its own. Logging is a nop unless a logger is injected.
type DefaultHTTPClient struct {
	client httpDoer
	logger *zap.Logger
}

func NewDefaultHTTPClient() *DefaultHTTPClient {
	return &DefaultHTTPClient{
		client: http.DefaultClient,
		logger: zap.NewNop(),
	}
}

// WithLogger enables request/response debug logging.
func (d *DefaultHTTPClient) WithLogger(logger *zap.Logger) *DefaultHTTPClient {
	d.logger = logger
	return d
}

func (d *DefaultHTTPClient) Do(ctx context.Context, r *transport.Request) (*transport.Response, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, r.FullURL, r.Body)
	if err != nil {
		return nil, err
	}

	if r.Headers != nil {
		for k, vs := range r.Headers {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}

	d.logger.Debug("http request",
		zap.String("method", r.Method),
		zap.String("url", r.FullURL))

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Debug("http request failed",
			zap.String("method", r.Method),
			zap.String("url", r.FullURL),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("http response",
		zap.String("method", r.Method),
		zap.String("url", r.FullURL),
		zap.Int("status", resp.StatusCode))

	return &transport.Response{
		Body:       body,
		Headers:    resp.Header,
		StatusCode: resp.StatusCode,
	}, nil
}
