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

func TestManageReplyService_Do(t *testing.T) {
	t.Run("hide", func(t *testing.T) {
		fakeClient := &testutil.FakeHTTPClient{
			DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
				assert.Equal(t, http.MethodPost, req.Method)
				assert.Equal(t, defaultBaseURL+"/17930000/manage_reply", req.FullURL)

				form := testutil.ExtractForm(t, req)
				assert.Equal(t, "true", form.Get("hide"))

				return &transport.Response{StatusCode: 200, Body: []byte(`{"success":true}`)}, nil
			},
		}

		c := NewClient(testConfig()).WithClient(fakeClient)
		c.SetAccessToken(AccessToken{Token: "tok"})

		result, err := c.NewManageReplyService().ReplyID("17930000").Hide(true).Do(context.Background())

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.Success)
	})

	t.Run("unhide", func(t *testing.T) {
		fakeClient := &testutil.FakeHTTPClient{
			DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
				form := testutil.ExtractForm(t, req)
				assert.Equal(t, "false", form.Get("hide"))
				return &transport.Response{StatusCode: 200, Body: []byte(`{"success":true}`)}, nil
			},
		}

		c := NewClient(testConfig()).WithClient(fakeClient)
		c.SetAccessToken(AccessToken{Token: "tok"})

		result, err := c.NewManageReplyService().ReplyID("17930000").Hide(false).Do(context.Background())

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.Success)
	})
}

func TestManageReplyService_Validate(t *testing.T) {
	err := NewClient(testConfig()).NewManageReplyService().Validate()
	assert.Error(t, err)
}
