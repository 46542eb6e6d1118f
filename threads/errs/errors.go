package errs

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a Graph API error code.
type ErrorCode int

// --- Common & platform errors
const (
	ErrUnknown            = ErrorCode(1)
	ErrServiceError       = ErrorCode(2)
	ErrTooManyCalls       = ErrorCode(4)
	ErrPermissionDenied   = ErrorCode(10)
	ErrUserTooManyCalls   = ErrorCode(17)
	ErrPageRateLimit      = ErrorCode(32)
	ErrInvalidParameter   = ErrorCode(100)
	ErrAccessTokenError   = ErrorCode(102)
	ErrInvalidToken       = ErrorCode(190)
	ErrPermissionMissing  = ErrorCode(200)
	ErrApplicationLimit   = ErrorCode(341)
	ErrTemporarilyBlocked = ErrorCode(368)
	ErrDuplicatePost      = ErrorCode(506)
	ErrCustomRateLimit    = ErrorCode(613)
)

var errorCodes = map[int]string{
	1:   "An unknown error occurred",
	2:   "Service temporarily unavailable",
	4:   "Application request limit reached",
	10:  "Application does not have permission for this action",
	17:  "User request limit reached",
	32:  "Page request limit reached",
	100: "Invalid parameter",
	102: "Session key invalid or no longer valid",
	190: "Invalid OAuth 2.0 Access Token",
	200: "Permission error",
	341: "Application limit reached",
	368: "The action attempted has been deemed abusive or is otherwise disallowed",
	506: "Duplicate status message",
	613: "Calls to this api have exceeded the rate limit",
}

var authErrors = map[ErrorCode]struct{}{
	ErrAccessTokenError: {},
	ErrInvalidToken:     {},
}

var permissionErrors = map[ErrorCode]struct{}{
	ErrPermissionDenied:  {},
	ErrPermissionMissing: {},
}

var throttlingErrors = map[ErrorCode]struct{}{
	ErrTooManyCalls:     {},
	ErrUserTooManyCalls: {},
	ErrPageRateLimit:    {},
	ErrApplicationLimit: {},
	ErrCustomRateLimit:  {},
}

// IsAuthError returns true if the code indicates an expired or invalid token.
func (e ErrorCode) IsAuthError() bool {
	_, ok := authErrors[e]
	return ok
}

// IsPermissionError returns true if the code indicates a missing permission or scope.
func (e ErrorCode) IsPermissionError() bool {
	_, ok := permissionErrors[e]
	return ok
}

// IsThrottlingError returns true if the code indicates rate limiting.
func (e ErrorCode) IsThrottlingError() bool {
	_, ok := throttlingErrors[e]
	return ok
}

func (e ErrorCode) Error() string {
	if msg, ok := errorCodes[int(e)]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error code: %d", e)
}

// APIError is the structured error the remote service returns. Error()
// yields the remote message verbatim so callers see exactly what the
// service said.
type APIError struct {
	Message string
	Type    string
	Code    ErrorCode
	Subcode int
	TraceID string
}

func (e *APIError) Error() string {
	return e.Message
}

// Graph error bodies come in two shapes: the standard envelope
// {"error": {"message", "type", "code", ...}} and the flat
// {"error_message": "..."} used on container status objects.
type errEnvelope struct {
	Error *struct {
		Message      string `json:"message"`
		Type         string `json:"type"`
		Code         int    `json:"code"`
		ErrorSubcode int    `json:"error_subcode"`
		FBTraceID    string `json:"fbtrace_id"`
	} `json:"error"`
	ErrorMessage string `json:"error_message"`
}

// Parse extracts an APIError from a response body. Returns nil when the
// body carries no recognizable error structure.
func Parse(body []byte) *APIError {
	var env errEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	if env.Error != nil {
		return &APIError{
			Message: env.Error.Message,
			Type:    env.Error.Type,
			Code:    ErrorCode(env.Error.Code),
			Subcode: env.Error.ErrorSubcode,
			TraceID: env.Error.FBTraceID,
		}
	}
	if env.ErrorMessage != "" {
		return &APIError{Message: env.ErrorMessage}
	}
	return nil
}
