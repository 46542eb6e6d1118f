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

// Container is the identifier of a server-side staged post awaiting
// publication (a creation id in publish calls).
type Container struct {
	ID string `json:"id"`
}

// CreateContainerService creates a single-item media container. Exactly one
// payload kind is attached depending on the media type: TEXT sends the text,
// IMAGE sends the image URL, VIDEO sends the video URL.
type CreateContainerService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	userID         string
	mediaType      MediaType
	text           *string
	imageURL       *string
	videoURL       *string
	replyToID      *string
	replyControl   *ReplyControl
	isCarouselItem bool
}

// NewCreateContainerService creates a new CreateContainerService.
func (c *Client) NewCreateContainerService() *CreateContainerService {
	return &CreateContainerService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *CreateContainerService) WithClient(client transport.HTTPClient) *CreateContainerService {
	s.client = client
	return s
}

// UserID sets the id of the posting user.
func (s *CreateContainerService) UserID(id string) *CreateContainerService {
	s.userID = id
	return s
}

// MediaType sets the kind of media the container carries.
func (s *CreateContainerService) MediaType(mt MediaType) *CreateContainerService {
	s.mediaType = mt
	return s
}

// Text sets the post text. Only sent for TEXT containers.
func (s *CreateContainerService) Text(text string) *CreateContainerService {
	s.text = &text
	return s
}

// ImageURL sets the image location. Only sent for IMAGE containers.
func (s *CreateContainerService) ImageURL(u string) *CreateContainerService {
	s.imageURL = &u
	return s
}

// VideoURL sets the video location. Only sent for VIDEO containers.
func (s *CreateContainerService) VideoURL(u string) *CreateContainerService {
	s.videoURL = &u
	return s
}

// ReplyToID makes the container a reply to an existing post.
func (s *CreateContainerService) ReplyToID(id string) *CreateContainerService {
	s.replyToID = &id
	return s
}

// ReplyControl restricts who may reply to the published post.
func (s *CreateContainerService) ReplyControl(rc ReplyControl) *CreateContainerService {
	s.replyControl = &rc
	return s
}

// IsCarouselItem flags the container as a carousel child item.
func (s *CreateContainerService) IsCarouselItem(v bool) *CreateContainerService {
	s.isCarouselItem = v
	return s
}

// Validate validates the service parameters.
func (s *CreateContainerService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("CreateContainerService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *CreateContainerService) Do(ctx context.Context) (*Container, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodPost).
		WithPath("/" + s.userID + "/threads").
		WithParams(s.buildParams()).
		Build()

	op := "CreateContainerService.Do"
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

func (s *CreateContainerService) validate() error {
	var errList []string

	if s.userID == "" {
		errList = append(errList, "userID is required")
	}
	if !s.mediaType.isValid() || s.mediaType == MediaTypeCarousel {
		errList = append(errList, "media type must be TEXT, IMAGE or VIDEO")
	}
	if s.mediaType == MediaTypeText && (s.text == nil || *s.text == "") {
		errList = append(errList, "text is required for TEXT containers")
	}
	if s.mediaType == MediaTypeImage && (s.imageURL == nil || *s.imageURL == "") {
		errList = append(errList, "imageURL is required for IMAGE containers")
	}
	if s.mediaType == MediaTypeVideo && (s.videoURL == nil || *s.videoURL == "") {
		errList = append(errList, "videoURL is required for VIDEO containers")
	}
	if s.replyControl != nil && !s.replyControl.isValid() {
		errList = append(errList, "reply control is invalid")
	}

	if len(errList) > 0 {
		return errors.New(strings.Join(errList, "; "))
	}
	return nil
}

func (s *CreateContainerService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("media_type", string(s.mediaType))

	// One payload kind per media type; extra fields a caller set are dropped.
	switch s.mediaType {
	case MediaTypeText:
		if s.text != nil {
			p.Set("text", *s.text)
		}
	case MediaTypeImage:
		if s.imageURL != nil {
			p.Set("image_url", *s.imageURL)
		}
	case MediaTypeVideo:
		if s.videoURL != nil {
			p.Set("video_url", *s.videoURL)
		}
	}

	if s.replyToID != nil {
		p.Set("reply_to_id", *s.replyToID)
	}
	if s.replyControl != nil {
		p.Set("reply_control", string(*s.replyControl))
	}
	if s.isCarouselItem {
		p.Set("is_carousel_item", strconv.FormatBool(s.isCarouselItem))
	}

	return p
}
