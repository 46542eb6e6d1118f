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

// CreateCarouselService creates a carousel parent container from child
// creation ids. Children must already exist as carousel-item containers.
type CreateCarouselService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	userID   string
	children []string
	text     *string
}

// NewCreateCarouselService creates a new CreateCarouselService.
func (c *Client) NewCreateCarouselService() *CreateCarouselService {
	return &CreateCarouselService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *CreateCarouselService) WithClient(client transport.HTTPClient) *CreateCarouselService {
	s.client = client
	return s
}

// UserID sets the id of the posting user.
func (s *CreateCarouselService) UserID(id string) *CreateCarouselService {
	s.userID = id
	return s
}

// Children sets the ordered child creation ids.
func (s *CreateCarouselService) Children(ids ...string) *CreateCarouselService {
	s.children = ids
	return s
}

// Text sets the optional carousel caption.
func (s *CreateCarouselService) Text(text string) *CreateCarouselService {
	s.text = &text
	return s
}

// Validate validates the service parameters.
func (s *CreateCarouselService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("CreateCarouselService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *CreateCarouselService) Do(ctx context.Context) (*Container, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodPost).
		WithPath("/" + s.userID + "/threads").
		WithParams(s.buildParams()).
		Build()

	op := "CreateCarouselService.Do"
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

	return decodeResponse[Container](resp.Body, op)
}

func (s *CreateCarouselService) validate() error {
	var errList []string
	if s.userID == "" {
		errList = append(errList, "userID is required")
	}
	if len(s.children) < 2 {
		errList = append(errList, "a carousel requires at least 2 children")
	}
	if len(errList) > 0 {
		return errors.New(strings.Join(errList, "; "))
	}
	return nil
}

func (s *CreateCarouselService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("media_type", string(MediaTypeCarousel))
	p.Set("children", strings.Join(s.children, ","))
	if s.text != nil {
		p.Set("text", *s.text)
	}
	return p
}
