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

func TestUserThreadsService_buildParams(t *testing.T) {
	c := NewClient(testConfig())

	t.Run("fields and window", func(t *testing.T) {
		p := c.NewUserThreadsService().
			Fields("id", "text", "timestamp").
			Options(ListOptions{Since: "2024-01-01", Until: "2024-02-01", Limit: 25}).
			buildParams()

		assert.Equal(t, "id,text,timestamp", p.Get("fields"))
		assert.Equal(t, "2024-01-01", p.Get("since"))
		assert.Equal(t, "2024-02-01", p.Get("until"))
		assert.Equal(t, "25", p.Get("limit"))
	})

	t.Run("zero options omitted", func(t *testing.T) {
		p := c.NewUserThreadsService().
			Fields("id").
			Options(ListOptions{Limit: 10}).
			buildParams()

		assert.Equal(t, "10", p.Get("limit"))
		_, hasSince := p["since"]
		_, hasUntil := p["until"]
		assert.False(t, hasSince)
		assert.False(t, hasUntil)
	})

	t.Run("no options at all", func(t *testing.T) {
		p := c.NewUserThreadsService().Fields("id").buildParams()
		assert.Equal(t, "id", p.Get("fields"))
		assert.Len(t, p, 1)
	})
}

func TestUserThreadsService_Do_Success(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Contains(t, req.FullURL, "/17841400/threads?")

			query := testutil.ExtractQuery(t, req.FullURL)
			assert.Equal(t, "id,text", query.Get("fields"))
			assert.Equal(t, "10", query.Get("limit"))

			return &transport.Response{
				StatusCode: 200,
				Body: []byte(`{
					"data": [
						{"id": "1", "text": "first"},
						{"id": "2", "text": "second"}
					],
					"paging": {"cursors": {"before": "B", "after": "A"}}
				}`),
			}, nil
		},
	}

	c := NewClient(testConfig()).WithClient(fakeClient)
	c.SetAccessToken(AccessToken{Token: "tok"})

	list, err := c.NewUserThreadsService().
		UserID("17841400").
		Fields("id", "text").
		Options(ListOptions{Limit: 10}).
		Do(context.Background())

	assert.NoError(t, err)
	require.NotNil(t, list)
	require.Len(t, list.Data, 2)

	// data passes through unmodified
	assert.Equal(t, "first", list.Data[0]["text"])
	assert.Equal(t, "2", list.Data[1]["id"])

	require.NotNil(t, list.Paging)
	assert.Equal(t, "B", list.Paging.Cursors.Before)
	assert.Equal(t, "A", list.Paging.Cursors.After)
}

func TestUserThreadsService_validate(t *testing.T) {
	c := NewClient(testConfig())

	err := c.NewUserThreadsService().validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "userID is required")
	assert.Contains(t, err.Error(), "at least one field is required")
}

func TestThreadService_Do_Success(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Contains(t, req.FullURL, "/17920000000000000?")

			query := testutil.ExtractQuery(t, req.FullURL)
			assert.Equal(t, "id,text,permalink", query.Get("fields"))

			return &transport.Response{
				StatusCode: 200,
				Body:       []byte(`{"id":"17920000000000000","text":"hello","permalink":"https://www.threads.net/t/abc"}`),
			}, nil
		},
	}

	c := NewClient(testConfig()).WithClient(fakeClient)
	c.SetAccessToken(AccessToken{Token: "tok"})

	obj, err := c.NewThreadService().
		MediaID("17920000000000000").
		Fields("id", "text", "permalink").
		Do(context.Background())

	assert.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, "hello", (*obj)["text"])
	assert.Equal(t, "https://www.threads.net/t/abc", (*obj)["permalink"])
}
