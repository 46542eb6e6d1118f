package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadsapi/threads-sdk-go/internal/testutil"
	"github.com/threadsapi/threads-sdk-go/transport"
)

func TestMediaInsightsService_Do_Success(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Contains(t, req.FullURL, "/17920000/insights?")

			query := testutil.ExtractQuery(t, req.FullURL)
			assert.Equal(t, "views,likes,replies", query.Get("metric"))

			return &transport.Response{
				StatusCode: 200,
				Body: []byte(`{
					"data": [
						{"name": "views", "period": "lifetime", "values": [{"value": 3217081203}], "title": "Views", "id": "17920000/insights/views/lifetime"},
						{"name": "likes", "period": "lifetime", "values": [{"value": 42}], "title": "Likes", "id": "17920000/insights/likes/lifetime"}
					]
				}`),
			}, nil
		},
	}

	c := NewClient(testConfig()).WithClient(fakeClient)
	c.SetAccessToken(AccessToken{Token: "tok"})

	insights, err := c.NewMediaInsightsService().
		MediaID("17920000").
		Metrics("views", "likes", "replies").
		Do(context.Background())

	assert.NoError(t, err)
	require.NotNil(t, insights)
	require.Len(t, insights.Data, 2)

	assert.Equal(t, "views", insights.Data[0].Name)
	require.Len(t, insights.Data[0].Values, 1)
	assert.Equal(t, "3217081203", insights.Data[0].Values[0].Value.String())
	assert.Equal(t, "42", insights.Data[1].Values[0].Value.String())
}

func TestUserInsightsService_buildParams(t *testing.T) {
	c := NewClient(testConfig())

	t.Run("with window", func(t *testing.T) {
		p := c.NewUserInsightsService().
			Metrics("views", "followers_count").
			Options(InsightsOptions{Since: 1712991600, Until: 1713078000}).
			buildParams()

		assert.Equal(t, "views,followers_count", p.Get("metric"))
		assert.Equal(t, "1712991600", p.Get("since"))
		assert.Equal(t, "1713078000", p.Get("until"))
	})

	t.Run("window omitted when zero", func(t *testing.T) {
		p := c.NewUserInsightsService().Metrics("views").buildParams()
		_, hasSince := p["since"]
		_, hasUntil := p["until"]
		assert.False(t, hasSince)
		assert.False(t, hasUntil)
	})
}

func TestUserInsightsService_Do_Success(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Contains(t, req.FullURL, "/17841400/threads_insights?")

			return &transport.Response{
				StatusCode: 200,
				Body: []byte(`{
					"data": [
						{"name": "followers_count", "period": "day", "total_value": {"value": 1234567}, "title": "Followers"}
					]
				}`),
			}, nil
		},
	}

	c := NewClient(testConfig()).WithClient(fakeClient)
	c.SetAccessToken(AccessToken{Token: "tok"})

	insights, err := c.NewUserInsightsService().
		UserID("17841400").
		Metrics("followers_count").
		Do(context.Background())

	assert.NoError(t, err)
	require.NotNil(t, insights)
	require.Len(t, insights.Data, 1)
	require.NotNil(t, insights.Data[0].TotalValue)
	assert.Equal(t, "1234567", insights.Data[0].TotalValue.Value.String())
}

func TestInsightsServices_validate(t *testing.T) {
	c := NewClient(testConfig())

	err := c.NewMediaInsightsService().validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mediaID is required")
	assert.Contains(t, err.Error(), "at least one metric is required")

	err = c.NewUserInsightsService().validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "userID is required")
}
