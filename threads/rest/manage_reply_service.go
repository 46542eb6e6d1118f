package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/threadsapi/threads-sdk-go/sdkerr"
	"github.com/threadsapi/threads-sdk-go/transport"
)

// ManageReplyResult carries the success flag of a moderation call.
type ManageReplyResult struct {
	Success bool `json:"success"`
}

// ManageReplyService hides or unhides a reply.
type ManageReplyService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	replyID string
	hide    bool
}

// NewManageReplyService creates a new ManageReplyService.
func (c *Client) NewManageReplyService() *ManageReplyService {
	return &ManageReplyService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *ManageReplyService) WithClient(client transport.HTTPClient) *ManageReplyService {
	s.client = client
	return s
}

// ReplyID sets the reply to moderate.
func (s *ManageReplyService) ReplyID(id string) *ManageReplyService {
	s.replyID = id
	return s
}

// Hide sets whether the reply is hidden (true) or unhidden (false).
func (s *ManageReplyService) Hide(v bool) *ManageReplyService {
	s.hide = v
	return s
}

// Validate validates the service parameters.
func (s *ManageReplyService) Validate() error {
	if s.replyID == "" {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("ManageReplyService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage("replyID is required")
	}
	return nil
}

// Do executes the service.
func (s *ManageReplyService) Do(ctx context.Context) (*ManageReplyResult, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodPost).
		WithPath("/" + s.replyID + "/manage_reply").
		WithParams(s.buildParams()).
		Build()

	op := "ManageReplyService.Do"
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

	return decodeResponse[ManageReplyResult](resp.Body, op)
}

func (s *ManageReplyService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("hide", strconv.FormatBool(s.hide))
	return p
}
