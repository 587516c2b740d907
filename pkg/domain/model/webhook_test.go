package model_test

import (
	"testing"

	"github.com/m-mizutani/relhook/pkg/domain/model"
)

func TestWebhookEvent_IsSupportedEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    *model.WebhookEvent
		expected bool
	}{
		{
			name: "Release published - supported",
			event: &model.WebhookEvent{
				Type:   model.EventTypeRelease,
				Action: "published",
			},
			expected: true,
		},
		{
			name: "Release released - not supported",
			event: &model.WebhookEvent{
				Type:   model.EventTypeRelease,
				Action: "released",
			},
			expected: false,
		},
		{
			name: "Release created - not supported",
			event: &model.WebhookEvent{
				Type:   model.EventTypeRelease,
				Action: "created",
			},
			expected: false,
		},
		{
			name: "Unknown event type",
			event: &model.WebhookEvent{
				Type:   model.EventTypeUnknown,
				Action: "published",
			},
			expected: false,
		},
		{
			name: "Different event type",
			event: &model.WebhookEvent{
				Type:   model.WebhookEventType("pull_request"),
				Action: "opened",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.event.IsSupportedEvent()
			if got != tt.expected {
				t.Errorf("IsSupportedEvent() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHookResponse_Rejected(t *testing.T) {
	for _, tt := range []struct {
		code int
		want bool
	}{
		{200, false},
		{302, false},
		{399, false},
		{400, true},
		{404, true},
		{500, true},
	} {
		resp := &model.HookResponse{StatusCode: tt.code}
		if got := resp.Rejected(); got != tt.want {
			t.Errorf("Rejected() for %d = %v, want %v", tt.code, got, tt.want)
		}
	}
}
