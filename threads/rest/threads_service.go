package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"

	"github.com/threadsapi/threads-sdk-go/sdkerr"
	"github.com/threadsapi/threads-sdk-go/transport"
)

// ListOptions is the optional pagination window on list endpoints.
// Zero fields are omitted from the request.
type ListOptions struct {
	Since string `url:"since,omitempty"`
	Until string `url:"until,omitempty"`
	Limit int    `url:"limit,omitempty"`
}

// UserThreadsService lists a user's posts. The caller supplies the exact
// field names to request; the data array comes back unmodified.
type UserThreadsService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	userID string
	fields []string
	opts   *ListOptions
}

// NewUserThreadsService creates a new UserThreadsService.
func (c *Client) NewUserThreadsService() *UserThreadsService {
	return &UserThreadsService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *UserThreadsService) WithClient(client transport.HTTPClient) *UserThreadsService {
	s.client = client
	return s
}

// UserID sets the user whose posts are listed.
func (s *UserThreadsService) UserID(id string) *UserThreadsService {
	s.userID = id
	return s
}

// Fields sets the field names to request, sent comma-joined.
func (s *UserThreadsService) Fields(fields ...string) *UserThreadsService {
	s.fields = fields
	return s
}

// Options sets the pagination window.
func (s *UserThreadsService) Options(opts ListOptions) *UserThreadsService {
	s.opts = &opts
	return s
}

// Validate validates the service parameters.
func (s *UserThreadsService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("UserThreadsService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *UserThreadsService) Do(ctx context.Context) (*ThreadList, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/" + s.userID + "/threads").
		WithParams(s.buildParams()).
		Build()

	op := "UserThreadsService.Do"
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

	return decodeResponse[ThreadList](resp.Body, op)
}

func (s *UserThreadsService) validate() error {
	var errList []string
	if s.userID == "" {
		errList = append(errList, "userID is required")
	}
	if len(s.fields) == 0 {
		errList = append(errList, "at least one field is required")
	}
	if len(errList) > 0 {
		return errors.New(strings.Join(errList, "; "))
	}
	return nil
}

func (s *UserThreadsService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("fields", strings.Join(s.fields, ","))
	if s.opts != nil {
		ov, _ := query.Values(*s.opts)
		for k, vs := range ov {
			for _, v := range vs {
				p.Set(k, v)
			}
		}
	}
	return p
}

// ThreadService fetches a single post's fields as a generic object.
type ThreadService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	mediaID string
	fields  []string
}

// NewThreadService creates a new ThreadService.
func (c *Client) NewThreadService() *ThreadService {
	return &ThreadService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *ThreadService) WithClient(client transport.HTTPClient) *ThreadService {
	s.client = client
	return s
}

// MediaID sets the post to fetch.
func (s *ThreadService) MediaID(id string) *ThreadService {
	s.mediaID = id
	return s
}

// Fields sets the field names to request, sent comma-joined.
func (s *ThreadService) Fields(fields ...string) *ThreadService {
	s.fields = fields
	return s
}

// Validate validates the service parameters.
func (s *ThreadService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("ThreadService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *ThreadService) Do(ctx context.Context) (*Object, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/" + s.mediaID).
		WithParams(s.buildParams()).
		Build()

	op := "ThreadService.Do"
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

	return decodeResponse[Object](resp.Body, op)
}

func (s *ThreadService) validate() error {
	var errList []string
	if s.mediaID == "" {
		errList = append(errList, "mediaID is required")
	}
	if len(s.fields) == 0 {
		errList = append(errList, "at least one field is required")
	}
	if len(errList) > 0 {
		return errors.New(strings.Join(errList, "; "))
	}
	return nil
}

func (s *ThreadService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("fields", strings.Join(s.fields, ","))
	return p
}
