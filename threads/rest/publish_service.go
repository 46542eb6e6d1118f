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

// Post is the identifier of a published post.
type Post struct {
	ID string `json:"id"`
}

// PublishService publishes a finished media container, yielding the final
// post id.
type PublishService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	userID     string
	creationID string
}

// NewPublishService creates a new PublishService.
func (c *Client) NewPublishService() *PublishService {
	return &PublishService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *PublishService) WithClient(client transport.HTTPClient) *PublishService {
	s.client = client
	return s
}

// UserID sets the id of the posting user.
func (s *PublishService) UserID(id string) *PublishService {
	s.userID = id
	return s
}

// CreationID sets the container id returned at creation time.
func (s *PublishService) CreationID(id string) *PublishService {
	s.creationID = id
	return s
}

// Validate validates the service parameters.
func (s *PublishService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("PublishService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *PublishService) Do(ctx context.Context) (*Post, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodPost).
		WithPath("/" + s.userID + "/threads_publish").
		WithParams(s.buildParams()).
		Build()

	op := "PublishService.Do"
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

	return decodeResponse[Post](resp.Body, op)
}

func (s *PublishService) validate() error {
	var errList []string
	if s.userID == "" {
		errList = append(errList, "userID is required")
	}
	if s.creationID == "" {
		errList = append(errList, "creationID is required")
	}
	if len(errList) > 0 {
		return errors.New(strings.Join(errList, "; "))
	}
	return nil
}

func (s *PublishService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("creation_id", s.creationID)
	return p
}
