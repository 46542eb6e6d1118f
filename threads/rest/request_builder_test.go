package rest

import (
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadsapi/threads-sdk-go/internal/signature"
	"github.com/threadsapi/threads-sdk-go/internal/testutil"
)

func TestRequestBuilder_GETSendsQuery(t *testing.T) {
	c := NewClient(testConfig())
	c.SetAccessToken(AccessToken{Token: "tok"})

	params := url.Values{}
	params.Set("fields", "id,text")
	params.Set("limit", "10")

	req := c.newRequestBuilder().
		WithMethod(http.MethodGet).
		WithPath("/123/threads").
		WithParams(params).
		Build()

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Contains(t, req.FullURL, defaultBaseURL+"/123/threads?")
	query := testutil.ExtractQuery(t, req.FullURL)
	assert.Equal(t, "id,text", query.Get("fields"))
	assert.Equal(t, "10", query.Get("limit"))
	assert.Nil(t, req.Body)
	assert.Equal(t, "Bearer tok", req.Headers.Get("Authorization"))
}

func TestRequestBuilder_POSTSendsFormBody(t *testing.T) {
	c := NewClient(testConfig())
	c.SetAccessToken(AccessToken{Token: "tok"})

	params := url.Values{}
	params.Set("media_type", "TEXT")
	params.Set("text", "Hello")

	req := c.newRequestBuilder().
		WithMethod(http.MethodPost).
		WithPath("/123/threads").
		WithParams(params).
		Build()

	assert.Equal(t, defaultBaseURL+"/123/threads", req.FullURL)
	assert.Equal(t, "application/x-www-form-urlencoded", req.Headers.Get("Content-Type"))

	require.NotNil(t, req.Body)
	raw, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	form, err := url.ParseQuery(string(raw))
	require.NoError(t, err)
	assert.Equal(t, "TEXT", form.Get("media_type"))
	assert.Equal(t, "Hello", form.Get("text"))
}

func TestRequestBuilder_NoTokenNoAuthHeader(t *testing.T) {
	c := NewClient(testConfig())

	req := c.newRequestBuilder().
		WithMethod(http.MethodGet).
		WithPath("/me").
		Build()

	assert.Empty(t, req.Headers.Get("Authorization"))
}

func TestRequestBuilder_AppSecretProof(t *testing.T) {
	cfg := testConfig()
	cfg.AppSecretProof = true
	c := NewClient(cfg)
	c.SetAccessToken(AccessToken{Token: "tok"})

	req := c.newRequestBuilder().
		WithMethod(http.MethodGet).
		WithPath("/me").
		Build()

	query := testutil.ExtractQuery(t, req.FullURL)
	assert.Equal(t, signature.HMACSHA256("tok", cfg.ClientSecret), query.Get("appsecret_proof"))
}

func TestRequestBuilder_NoProofWithoutToken(t *testing.T) {
	cfg := testConfig()
	cfg.AppSecretProof = true
	c := NewClient(cfg)

	req := c.newRequestBuilder().
		WithMethod(http.MethodGet).
		WithPath("/me").
		Build()

	query := testutil.ExtractQuery(t, req.FullURL)
	assert.Empty(t, query.Get("appsecret_proof"))
}
