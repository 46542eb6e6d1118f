package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/shopspring/decimal"

	"github.com/threadsapi/threads-sdk-go/sdkerr"
	"github.com/threadsapi/threads-sdk-go/transport"
)

// MetricValue is one data point of an insights metric. Values are decimals
// so large counters survive decoding without float rounding.
type MetricValue struct {
	Value   decimal.Decimal `json:"value"`
	EndTime string          `json:"end_time,omitempty"`
}

// Metric is one named insights series.
type Metric struct {
	Name        string        `json:"name"`
	Period      string        `json:"period"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ID          string        `json:"id"`
	Values      []MetricValue `json:"values,omitempty"`
	TotalValue  *MetricValue  `json:"total_value,omitempty"`
}

// Insights is the metric list an insights endpoint returns.
type Insights struct {
	Data []Metric `json:"data"`
}

// InsightsOptions is the optional time window on user insights.
// Zero fields are omitted from the request.
type InsightsOptions struct {
	Since int64 `url:"since,omitempty"`
	Until int64 `url:"until,omitempty"`
}

// MediaInsightsService fetches named metrics for one post.
type MediaInsightsService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	mediaID string
	metrics []string
}

// NewMediaInsightsService creates a new MediaInsightsService.
func (c *Client) NewMediaInsightsService() *MediaInsightsService {
	return &MediaInsightsService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *MediaInsightsService) WithClient(client transport.HTTPClient) *MediaInsightsService {
	s.client = client
	return s
}

// MediaID sets the post whose metrics are fetched.
func (s *MediaInsightsService) MediaID(id string) *MediaInsightsService {
	s.mediaID = id
	return s
}

// Metrics sets the metric names, sent comma-joined.
func (s *MediaInsightsService) Metrics(metrics ...string) *MediaInsightsService {
	s.metrics = metrics
	return s
}

// Validate validates the service parameters.
func (s *MediaInsightsService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("MediaInsightsService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *MediaInsightsService) Do(ctx context.Context) (*Insights, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/" + s.mediaID + "/insights").
		WithParams(s.buildParams()).
		Build()

	op := "MediaInsightsService.Do"
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

	return decodeResponse[Insights](resp.Body, op)
}

func (s *MediaInsightsService) validate() error {
	var errList []string
	if s.mediaID == "" {
		errList = append(errList, "mediaID is required")
	}
	if len(s.metrics) == 0 {
		errList = append(errList, "at least one metric is required")
	}
	if len(errList) > 0 {
		return errors.New(strings.Join(errList, "; "))
	}
	return nil
}

func (s *MediaInsightsService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("metric", strings.Join(s.metrics, ","))
	return p
}

// UserInsightsService fetches named metrics for a user, optionally within a
// unix-timestamp window.
type UserInsightsService struct {
	c          *Client
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	userID  string
	metrics []string
	opts    *InsightsOptions
}

// NewUserInsightsService creates a new UserInsightsService.
func (c *Client) NewUserInsightsService() *UserInsightsService {
	return &UserInsightsService{
		c:          c,
		client:     c.client,
		reqBuilder: c.newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *UserInsightsService) WithClient(client transport.HTTPClient) *UserInsightsService {
	s.client = client
	return s
}

// UserID sets the user whose metrics are fetched.
func (s *UserInsightsService) UserID(id string) *UserInsightsService {
	s.userID = id
	return s
}

// Metrics sets the metric names, sent comma-joined.
func (s *UserInsightsService) Metrics(metrics ...string) *UserInsightsService {
	s.metrics = metrics
	return s
}

// Options sets the time window.
func (s *UserInsightsService) Options(opts InsightsOptions) *UserInsightsService {
	s.opts = &opts
	return s
}

// Validate validates the service parameters.
func (s *UserInsightsService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("UserInsightsService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *UserInsightsService) Do(ctx context.Context) (*Insights, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/" + s.userID + "/threads_insights").
		WithParams(s.buildParams()).
		Build()

	op := "UserInsightsService.Do"
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

	return decodeResponse[Insights](resp.Body, op)
}

func (s *UserInsightsService) validate() error {
	var errList []string
	if s.userID == "" {
		errList = append(errList, "userID is required")
	}
	if len(s.metrics) == 0 {
		errList = append(errList, "at least one metric is required")
	}
	if len(errList) > 0 {
		return errors.New(strings.Join(errList, "; "))
	}
	return nil
}

func (s *UserInsightsService) buildParams() url.Values {
	p := make(url.Values)
	p.Set("metric", strings.Join(s.metrics, ","))
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
