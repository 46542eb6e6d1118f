package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/threadsapi/threads-sdk-go/sdkerr"
	"github.com/threadsapi/threads-sdk-go/transport"
)

// RepliesService fetches the direct replies to a post. Replies come back
// newest-first unless Reverse(false) is set.
type RepliesService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	mediaID string
	fields  []string
	reverse *bool
}

// NewRepliesService creates a new RepliesService.
func (c *Client) NewRepliesService() *RepliesService {
	return &RepliesService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *RepliesService) WithClient(client transport.HTTPClient) *RepliesService {
	s.client = client
	return s
}

// MediaID sets the post whose replies are fetched.
func (s *RepliesService) MediaID(id string) *RepliesService {
	s.mediaID = id
	return s
}

// Fields sets the field names to request, sent comma-joined.
func (s *RepliesService) Fields(fields ...string) *RepliesService {
	s.fields = fields
	return s
}

// Reverse overrides the reply ordering. Defaults to true.
func (s *RepliesService) Reverse(v bool) *RepliesService {
	s.reverse = &v
	return s
}

// Validate validates the service parameters.
func (s *RepliesService) Validate() error {
	if err := validateMediaFields(s.mediaID, s.fields); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("RepliesService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *RepliesService) Do(ctx context.Context) (*ThreadList, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/" + s.mediaID + "/replies").
		WithParams(buildRepliesParams(s.fields, s.reverse)).
		Build()

	op := "RepliesService.Do"
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

// ConversationService fetches the full reply tree under a post, in the same
// shape as RepliesService.
type ConversationService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	mediaID string
	fields  []string
	reverse *bool
}

// NewConversationService creates a new ConversationService.
func (c *Client) NewConversationService() *ConversationService {
	return &ConversationService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *ConversationService) WithClient(client transport.HTTPClient) *ConversationService {
	s.client = client
	return s
}

// MediaID sets the root post of the conversation.
func (s *ConversationService) MediaID(id string) *ConversationService {
	s.mediaID = id
	return s
}

// Fields sets the field names to request, sent comma-joined.
func (s *ConversationService) Fields(fields ...string) *ConversationService {
	s.fields = fields
	return s
}

// Reverse overrides the reply ordering. Defaults to true.
func (s *ConversationService) Reverse(v bool) *ConversationService {
	s.reverse = &v
	return s
}

// Validate validates the service parameters.
func (s *ConversationService) Validate() error {
	if err := validateMediaFields(s.mediaID, s.fields); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("ConversationService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *ConversationService) Do(ctx context.Context) (*ThreadList, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/" + s.mediaID + "/conversation").
		WithParams(buildRepliesParams(s.fields, s.reverse)).
		Build()

	op := "ConversationService.Do"
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

func validateMediaFields(mediaID string, fields []string) error {
	var errList []string
	if mediaID == "" {
		errList = append(errList, "mediaID is required")
	}
	if len(fields) == 0 {
		errList = append(errList, "at least one field is required")
	}
	if len(errList) > 0 {
		return errors.New(strings.Join(errList, "; "))
	}
	return nil
}

func buildRepliesParams(fields []string, reverse *bool) url.Values {
	p := make(url.Values)
	p.Set("fields", strings.Join(fields, ","))
	reversed := true
	if reverse != nil {
		reversed = *reverse
	}
	p.Set("reverse", strconv.FormatBool(reversed))
	return p
}
