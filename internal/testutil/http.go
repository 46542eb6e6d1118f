package testutil

import (
	"context"
	"io"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/threadsapi/threads-sdk-go/transport"
)

func ExtractQuery(t *testing.T, fullURL string) url.Values {
	t.Helper()
	parsed, err := url.Parse(fullURL)
	assert.NoError(t, err)
	return parsed.Query()
}

// ExtractForm reads a request's form-encoded body. Consumes the body.
func ExtractForm(t *testing.T, req *transport.Request) url.Values {
	t.Helper()
	if req.Body == nil {
		return url.Values{}
	}
	raw, err := io.ReadAll(req.Body)
	assert.NoError(t, err)
	form, err := url.ParseQuery(string(raw))
	assert.NoError(t, err)
	return form
}

type FakeHTTPClient struct {
	DoFunc func(ctx context.Context, req *transport.Request) (*transport.Response, error)
}

func (f *FakeHTTPClient) Do(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	return f.DoFunc(ctx, req)
}
