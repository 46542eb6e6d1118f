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

func TestContainerStatusService_Do_Success(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Contains(t, req.FullURL, "/17851111111111111?")

			query := testutil.ExtractQuery(t, req.FullURL)
			assert.Equal(t, "id,status,error_message", query.Get("fields"))

			return &transport.Response{
				StatusCode: 200,
				Body:       []byte(`{"id":"17851111111111111","status":"FINISHED"}`),
			}, nil
		},
	}

	c := NewClient(testConfig()).WithClient(fakeClient)
	c.SetAccessToken(AccessToken{Token: "tok"})

	state, err := c.NewContainerStatusService().
		ContainerID("17851111111111111").
		Do(context.Background())

	assert.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, StatusFinished, state.Status)
	assert.Empty(t, state.ErrorMessage)
}

func TestContainerStatusService_Do_ErroredContainer(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			return &transport.Response{
				StatusCode: 200,
				Body:       []byte(`{"id":"178","status":"ERROR","error_message":"Media download failed"}`),
			}, nil
		},
	}

	c := NewClient(testConfig()).WithClient(fakeClient)
	c.SetAccessToken(AccessToken{Token: "tok"})

	state, err := c.NewContainerStatusService().ContainerID("178").Do(context.Background())

	assert.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, "Media download failed", state.ErrorMessage)
}

func TestContainerStatusService_Validate(t *testing.T) {
	err := NewClient(testConfig()).NewContainerStatusService().Validate()
	assert.Error(t, err)
}
