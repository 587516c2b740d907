package model

import "time"

// WebhookEventType represents the type of webhook event
type WebhookEventType string

const (
	EventTypeRelease WebhookEventType = "release"
	EventTypeUnknown WebhookEventType = "unknown"
)

// WebhookEvent represents a webhook event received by the listener
type WebhookEvent struct {
	ID         string           // Retrieved from X-GitHub-Delivery header
	Type       WebhookEventType // Retrieved from X-GitHub-Event header
	Action     string           // Event action (e.g., published)
	Repository string           // Repository full name
	Sender     string           // Sender login
	Release    *ReleaseInfo     // Set for release events
	ReceivedAt time.Time
	RawPayload []byte
}

// ReleaseInfo represents information extracted from a release event
type ReleaseInfo struct {
	Owner       string
	Repo        string
	Commitish   string
	TagName     string
	ReleaseName string
	PublishedAt time.Time
}

// IsSupportedEvent checks if the event is one that relhook sends
func (e *WebhookEvent) IsSupportedEvent() bool {
	return e.Type == EventTypeRelease && e.Action == ReleaseAction
}
