package rest

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/threadsapi/threads-sdk-go/internal/httpx"
	"github.com/threadsapi/threads-sdk-go/internal/signature"
	"github.com/threadsapi/threads-sdk-go/transport"
)

type requestBuilder struct {
	inner  *httpx.RequestBuilder
	params url.Values
	token  func() AccessToken
	config Config
}

func (c *Client) newRequestBuilder() *requestBuilder {
	return &requestBuilder{
		inner:  httpx.NewRequestBuilder(c.baseURL),
		params: make(url.Values),
		token:  c.AccessToken,
		config: c.config,
	}
}

func (b *requestBuilder) WithMethod(method string) *requestBuilder {
	b.inner = b.inner.WithMethod(method)
	return b
}

func (b *requestBuilder) WithPath(path string) *requestBuilder {
	b.inner = b.inner.WithPath(path)
	return b
}

func (b *requestBuilder) WithParams(params url.Values) *requestBuilder {
	b.params = params
	return b
}

// Build assembles the request. GET and DELETE send the parameters as the
// query string; other methods send the same mapping form-encoded in the
// body. The bearer header is attached whenever a token is held.
func (b *requestBuilder) Build() *transport.Request {
	token := b.token()

	params := b.params
	if params == nil {
		params = make(url.Values)
	}
	if b.config.AppSecretProof && token.Token != "" {
		params.Set("appsecret_proof", signature.HMACSHA256(token.Token, b.config.ClientSecret))
	}

	headers := make(http.Header)
	if token.Token != "" {
		headers.Set("Authorization", "Bearer "+token.Token)
	}

	switch b.inner.Method {
	case http.MethodGet, http.MethodDelete:
		b.inner.WithQuery(params)
	default:
		headers.Set("Content-Type", "application/x-www-form-urlencoded")
		b.inner.WithBody(strings.NewReader(params.Encode()))
	}

	b.inner.WithHeaders(headers)
	return b.inner.Build()
}
