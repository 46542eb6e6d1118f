package rest

import (
	"encoding/json"
	"fmt"

	"github.com/threadsapi/threads-sdk-go/sdkerr"
	"github.com/threadsapi/threads-sdk-go/threads/errs"
)

// Object is a generic response payload. Read operations take caller-chosen
// field sets, so their shape is dynamic; no schema validation is performed.
type Object map[string]any

// Paging carries the cursors the service returns on list responses.
// The SDK does not paginate on its own.
type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
}

// ThreadList is a page of generic objects plus paging cursors, as returned
// by the threads, replies and conversation endpoints.
type ThreadList struct {
	Data   []Object `json:"data"`
	Paging *Paging  `json:"paging,omitempty"`
}

func checkResponseError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	if apiErr := errs.Parse(body); apiErr != nil {
		return apiErr
	}
	return fmt.Errorf("http status %d: %s", status, string(body))
}

func decodeResponse[T any](data []byte, op string) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrDecodeError).
			WithCause(err)
	}
	return &result, nil
}
