package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/threadsapi/threads-sdk-go/sdkerr"
	"github.com/threadsapi/threads-sdk-go/transport"
)

// ContainerState is the remote-side status of a pending container. When the
// container errored, ErrorMessage carries the remote reason.
type ContainerState struct {
	ID           string          `json:"id"`
	Status       ContainerStatus `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// ContainerStatusService polls a container's publishing status. The
// recommended cadence (at most once per minute, for up to five minutes) is a
// caller convention; nothing is enforced here.
type ContainerStatusService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	containerID string
}

// NewContainerStatusService creates a new ContainerStatusService.
func (c *Client) NewContainerStatusService() *ContainerStatusService {
	return &ContainerStatusService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *ContainerStatusService) WithClient(client transport.HTTPClient) *ContainerStatusService {
	s.client = client
	return s
}

// ContainerID sets the container to poll.
func (s *ContainerStatusService) ContainerID(id string) *ContainerStatusService {
	s.containerID = id
	return s
}

// Validate validates the service parameters.
func (s *ContainerStatusService) Validate() error {
	if s.containerID == "" {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("ContainerStatusService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage("containerID is required")
	}
	return nil
}

// Do executes the service.
func (s *ContainerStatusService) Do(ctx context.Context) (*ContainerState, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/" + s.containerID).
		WithParams(s.buildParams()).
		Build()

	op := "ContainerStatusService.Do"
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

	return decodeResponse[ContainerState](resp.Body, op)
}

func (s *ContainerStatusService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("fields", "id,status,error_message")
	return p
}
