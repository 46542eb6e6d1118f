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

func TestPublishService_validate(t *testing.T) {
	c := NewClient(testConfig())

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, c.NewPublishService().UserID("1").CreationID("2").validate())
	})

	t.Run("missing both", func(t *testing.T) {
		err := c.NewPublishService().validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "userID is required")
		assert.Contains(t, err.Error(), "creationID is required")
	})
}

func TestPublishService_Do_Success(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, defaultBaseURL+"/17841400/threads_publish", req.FullURL)

			form := testutil.ExtractForm(t, req)
			assert.Equal(t, "17851111111111111", form.Get("creation_id"))

			return &transport.Response{
				StatusCode: 200,
				Body:       []byte(`{"id":"17920000000000000"}`),
			}, nil
		},
	}

	c := NewClient(testConfig()).WithClient(fakeClient)
	c.SetAccessToken(AccessToken{Token: "tok"})

	post, err := c.NewPublishService().
		UserID("17841400").
		CreationID("17851111111111111").
		Do(context.Background())

	assert.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "17920000000000000", post.ID)
}
