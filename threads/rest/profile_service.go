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

// ProfileService fetches a profile's fields as a generic object.
type ProfileService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	userID string
	fields []string
}

// NewProfileService creates a new ProfileService.
func (c *Client) NewProfileService() *ProfileService {
	return &ProfileService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *ProfileService) WithClient(client transport.HTTPClient) *ProfileService {
	s.client = client
	return s
}

// UserID sets the profile to fetch.
func (s *ProfileService) UserID(id string) *ProfileService {
	s.userID = id
	return s
}

// Fields sets the field names to request, sent comma-joined.
func (s *ProfileService) Fields(fields ...string) *ProfileService {
	s.fields = fields
	return s
}

// Validate validates the service parameters.
func (s *ProfileService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("ProfileService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *ProfileService) Do(ctx context.Context) (*Object, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/" + s.userID).
		WithParams(s.buildParams()).
		Build()

	op := "ProfileService.Do"
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

func (s *ProfileService) validate() error {
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

func (s *ProfileService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("fields", strings.Join(s.fields, ","))
	return p
}
