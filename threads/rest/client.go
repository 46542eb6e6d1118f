package rest

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/threadsapi/threads-sdk-go/internal/httpx"
	"github.com/threadsapi/threads-sdk-go/internal/timeutil"
	"github.com/threadsapi/threads-sdk-go/sdkerr"
	"github.com/threadsapi/threads-sdk-go/transport"
)

const (
	subsys = "threads/rest"

	defaultBaseURL  = "https://graph.threads.net/v1.0"
	defaultAuthHost = "https://www.threads.net"

	authorizePath = "/oauth/authorize"

	// Long-lived tokens are refreshed once their remaining lifetime drops
	// below this window.
	refreshWindow = 7 * 24 * time.Hour
)

// Config holds the immutable application credentials. Set once at
// construction.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []Scope

	// AppSecretProof adds an appsecret_proof parameter
	// (HMAC-SHA256 of the access token keyed by the client secret)
	// to every authenticated request.
	AppSecretProof bool
}

// AccessToken is the bearer token returned by the token endpoints.
// ObtainedAt is stamped when the token is stored on a client; the token's
// absolute expiry is ObtainedAt + ExpiresIn seconds.
type AccessToken struct {
	Token     string `json:"access_token"`
	TokenType string `json:"token_type,omitempty"`
	ExpiresIn int64  `json:"expires_in,omitempty"`
	UserID    int64  `json:"user_id,omitempty"`

	ObtainedAt time.Time `json:"-"`
}

// ExpiresAt returns the token's absolute expiry instant.
func (t AccessToken) ExpiresAt() time.Time {
	return t.ObtainedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// Client binds the Threads Graph API. It holds the application credentials
// and a single mutable access token; setting a new token discards the old
// one. The token field is not synchronized: callers that refresh tokens
// concurrently with in-flight requests must serialize at their own layer.
type Client struct {
	config  Config
	client  transport.HTTPClient
	baseURL string
	token   AccessToken
	now     func() time.Time
}

// NewClient creates a Client from application credentials.
func NewClient(config Config) *Client {
	return &Client{
		config:  config,
		client:  httpx.NewDefaultHTTPClient(),
		baseURL: defaultBaseURL,
		now:     timeutil.Now,
	}
}

// WithClient sets the HTTP client used by services created from this Client.
func (c *Client) WithClient(client transport.HTTPClient) *Client {
	c.client = client
	return c
}

// SetAccessToken replaces the held token. ObtainedAt is stamped with the
// current time when the caller leaves it zero.
func (c *Client) SetAccessToken(token AccessToken) {
	if token.ObtainedAt.IsZero() {
		token.ObtainedAt = c.now()
	}
	c.token = token
}

// AccessToken returns the currently held token. The zero value means no
// token is held and requests go out unauthenticated.
func (c *Client) AccessToken() AccessToken {
	return c.token
}

// AuthorizationURL builds the URL the user is sent to for the
// authorization-code grant. Pure string construction; parameters appear in
// a fixed order: client_id, redirect_uri, scope, response_type, then state
// if supplied.
func (c *Client) AuthorizationURL(state string) string {
	scopes := make([]string, len(c.config.Scopes))
	for i, s := range c.config.Scopes {
		scopes[i] = string(s)
	}

	var b strings.Builder
	b.WriteString(defaultAuthHost)
	b.WriteString(authorizePath)
	b.WriteString("?client_id=")
	b.WriteString(url.QueryEscape(c.config.ClientID))
	b.WriteString("&redirect_uri=")
	b.WriteString(url.QueryEscape(c.config.RedirectURI))
	b.WriteString("&scope=")
	b.WriteString(url.QueryEscape(strings.Join(scopes, ",")))
	b.WriteString("&response_type=code")
	if state != "" {
		b.WriteString("&state=")
		b.WriteString(url.QueryEscape(state))
	}
	return b.String()
}

// RefreshTokenIfNeeded refreshes the held long-lived token when its
// remaining lifetime is below the 7-day window, replacing the held token.
// When the token is further out it returns the held token unchanged and
// makes no network call.
func (c *Client) RefreshTokenIfNeeded(ctx context.Context) (*AccessToken, error) {
	token := c.token
	if token.Token == "" {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("Client.RefreshTokenIfNeeded").
			WithKind(sdkerr.ErrConfiguration).
			WithMessage("no access token held")
	}

	if token.ExpiresAt().Sub(c.now()) > refreshWindow {
		return &token, nil
	}

	return c.NewRefreshTokenService().Do(ctx)
}
