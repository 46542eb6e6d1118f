package rest

import (
	"encoding/json"
	"fmt"
)

// Scope represents a permission requested during the authorization flow.
type Scope string

const (
	ScopeBasic          Scope = "threads_basic"
	ScopeContentPublish Scope = "threads_content_publish"
	ScopeManageInsights Scope = "threads_manage_insights"
	ScopeManageReplies  Scope = "threads_manage_replies"
	ScopeReadReplies    Scope = "threads_read_replies"
)

// MediaType represents the kind of media a container carries.
type MediaType string

const (
	MediaTypeText     MediaType = "TEXT"
	MediaTypeImage    MediaType = "IMAGE"
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeCarousel MediaType = "CAROUSEL"
)

// ReplyControl represents who may reply to a published post.
type ReplyControl string

const (
	ReplyControlEveryone          ReplyControl = "everyone"
	ReplyControlAccountsYouFollow ReplyControl = "accounts_you_follow"
	ReplyControlMentionedOnly     ReplyControl = "mentioned_only"
)

// ContainerStatus represents the remote-side state of a media container.
// The client polls it but does not manage the transitions.
type ContainerStatus string

const (
	StatusInProgress ContainerStatus = "IN_PROGRESS"
	StatusFinished   ContainerStatus = "FINISHED"
	StatusError      ContainerStatus = "ERROR"
	StatusExpired    ContainerStatus = "EXPIRED"
	StatusPublished  ContainerStatus = "PUBLISHED"
)

func (m MediaType) isValid() bool {
	switch m {
	case MediaTypeText, MediaTypeImage, MediaTypeVideo, MediaTypeCarousel:
		return true
	default:
		return false
	}
}

func (r ReplyControl) isValid() bool {
	switch r {
	case ReplyControlEveryone, ReplyControlAccountsYouFollow, ReplyControlMentionedOnly:
		return true
	default:
		return false
	}
}

func (s ContainerStatus) isValid() bool {
	switch s {
	case StatusInProgress, StatusFinished, StatusError, StatusExpired, StatusPublished:
		return true
	default:
		return false
	}
}

func (m *MediaType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed := MediaType(s)
	if !parsed.isValid() {
		return fmt.Errorf("invalid media type: %s", s)
	}

	*m = parsed
	return nil
}

func (c *ContainerStatus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed := ContainerStatus(s)
	if !parsed.isValid() {
		return fmt.Errorf("invalid container status: %s", s)
	}

	*c = parsed
	return nil
}
