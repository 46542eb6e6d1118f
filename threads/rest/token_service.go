package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/threadsapi/threads-sdk-go/sdkerr"
	"github.com/threadsapi/threads-sdk-go/transport"
)

const (
	grantAuthorizationCode = "authorization_code"
	grantExchangeToken     = "th_exchange_token"
	grantRefreshToken      = "th_refresh_token"
)

// ExchangeCodeService exchanges an authorization code for a short-lived
// access token. The token is stored on the client on success.
type ExchangeCodeService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	code       string
}

// NewExchangeCodeService creates a new ExchangeCodeService.
func (c *Client) NewExchangeCodeService() *ExchangeCodeService {
	return &ExchangeCodeService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *ExchangeCodeService) WithClient(client transport.HTTPClient) *ExchangeCodeService {
	s.client = client
	return s
}

// Code sets the authorization code obtained from the redirect.
func (s *ExchangeCodeService) Code(code string) *ExchangeCodeService {
	s.code = code
	return s
}

// Validate validates the service parameters.
func (s *ExchangeCodeService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("ExchangeCodeService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *ExchangeCodeService) Do(ctx context.Context) (*AccessToken, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodPost).
		WithPath("/oauth/access_token").
		WithParams(s.buildParams()).
		Build()

	op := "ExchangeCodeService.Do"
	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrRequestFailed).
			WithCause(err)
	}

	if err := checkResponseError(resp.StatusCode, resp.Body); err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrAPIError).
			WithCause(err)
	}

	token, err := decodeResponse[AccessToken](resp.Body, op)
	if err != nil {
		return nil, err
	}

	token.ObtainedAt = s.c.now()
	s.c.SetAccessToken(*token)
	return token, nil
}

func (s *ExchangeCodeService) validate() error {
	var errList []string
	if s.code == "" {
		errList = append(errList, "code is required")
	}
	if s.c.config.ClientID == "" {
		errList = append(errList, "client id is required")
	}
	if s.c.config.ClientSecret == "" {
		errList = append(errList, "client secret is required")
	}
	if s.c.config.RedirectURI == "" {
		errList = append(errList, "redirect uri is required")
	}
	if len(errList) > 0 {
		return errors.New(strings.Join(errList, "; "))
	}
	return nil
}

func (s *ExchangeCodeService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("client_id", s.c.config.ClientID)
	p.Set("client_secret", s.c.config.ClientSecret)
	p.Set("grant_type", grantAuthorizationCode)
	p.Set("redirect_uri", s.c.config.RedirectURI)
	p.Set("code", s.code)
	return p
}

// ExchangeLongLivedService trades the held short-lived token for a
// long-lived one. The result replaces the held token on success.
type ExchangeLongLivedService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	token      string
}

// NewExchangeLongLivedService creates a new ExchangeLongLivedService.
func (c *Client) NewExchangeLongLivedService() *ExchangeLongLivedService {
	return &ExchangeLongLivedService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *ExchangeLongLivedService) WithClient(client transport.HTTPClient) *ExchangeLongLivedService {
	s.client = client
	return s
}

// Token overrides the short-lived token to exchange. Defaults to the token
// held by the client.
func (s *ExchangeLongLivedService) Token(token string) *ExchangeLongLivedService {
	s.token = token
	return s
}

// Validate validates the service parameters.
func (s *ExchangeLongLivedService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("ExchangeLongLivedService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *ExchangeLongLivedService) Do(ctx context.Context) (*AccessToken, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/access_token").
		WithParams(s.buildParams()).
		Build()

	op := "ExchangeLongLivedService.Do"
	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrRequestFailed).
			WithCause(err)
	}

	if err := checkResponseError(resp.StatusCode, resp.Body); err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrAPIError).
			WithCause(err)
	}

	token, err := decodeResponse[AccessToken](resp.Body, op)
	if err != nil {
		return nil, err
	}

	token.ObtainedAt = s.c.now()
	s.c.SetAccessToken(*token)
	return token, nil
}

func (s *ExchangeLongLivedService) validate() error {
	var errList []string
	if s.exchangeToken() == "" {
		errList = append(errList, "a short-lived token is required")
	}
	if s.c.config.ClientSecret == "" {
		errList = append(errList, "client secret is required")
	}
	if len(errList) > 0 {
		return errors.New(strings.Join(errList, "; "))
	}
	return nil
}

func (s *ExchangeLongLivedService) exchangeToken() string {
	if s.token != "" {
		return s.token
	}
	return s.c.token.Token
}

func (s *ExchangeLongLivedService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("grant_type", grantExchangeToken)
	p.Set("client_secret", s.c.config.ClientSecret)
	p.Set("access_token", s.exchangeToken())
	return p
}

// RefreshTokenService refreshes the held long-lived token. The result
// replaces the held token on success.
type RefreshTokenService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	token      string
}

// NewRefreshTokenService creates a new RefreshTokenService.
func (c *Client) NewRefreshTokenService() *RefreshTokenService {
	return &RefreshTokenService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *RefreshTokenService) WithClient(client transport.HTTPClient) *RefreshTokenService {
	s.client = client
	return s
}

// Token overrides the long-lived token to refresh. Defaults to the token
// held by the client.
func (s *RefreshTokenService) Token(token string) *RefreshTokenService {
	s.token = token
	return s
}

// Validate validates the service parameters.
func (s *RefreshTokenService) Validate() error {
	if s.refreshToken() == "" {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("RefreshTokenService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage("a long-lived token is required")
	}
	return nil
}

// Do executes the service.
func (s *RefreshTokenService) Do(ctx context.Context) (*AccessToken, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/refresh_access_token").
		WithParams(s.buildParams()).
		Build()

	op := "RefreshTokenService.Do"
	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrRequestFailed).
			WithCause(err)
	}

	if err := checkResponseError(resp.StatusCode, resp.Body); err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrAPIError).
			WithCause(err)
	}

	token, err := decodeResponse[AccessToken](resp.Body, op)
	if err != nil {
		return nil, err
	}

	token.ObtainedAt = s.c.now()
	s.c.SetAccessToken(*token)
	return token, nil
}

func (s *RefreshTokenService) refreshToken() string {
	if s.token != "" {
		return s.token
	}
	return s.c.token.Token
}

func (s *RefreshTokenService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("grant_type", grantRefreshToken)
	p.Set("access_token", s.refreshToken())
	return p
}
