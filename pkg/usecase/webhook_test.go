package usecase_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relhook/pkg/domain/model"
	"github.com/m-mizutani/relhook/pkg/usecase"
)

func TestWebhookUseCase_ProcessEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   *model.WebhookEvent
		wantLog string
		wantErr bool
	}{
		{
			name: "Process supported Release event",
			event: &model.WebhookEvent{
				ID:         "test-delivery-1",
				Type:       model.EventTypeRelease,
				Action:     "published",
				Repository: "test/repo",
				Sender:     "testuser",
				Release: &model.ReleaseInfo{
					Owner:       "test",
					Repo:        "repo",
					Commitish:   "main",
					TagName:     "v1.2.3",
					ReleaseName: "Release v1.2.3",
				},
				ReceivedAt: time.Now(),
				RawPayload: []byte(`{"action":"published"}`),
			},
			wantLog: "Release published",
			wantErr: false,
		},
		{
			name: "Process unsupported event",
			event: &model.WebhookEvent{
				ID:         "test-delivery-2",
				Type:       model.EventTypeRelease,
				Action:     "deleted",
				Repository: "test/repo",
				Sender:     "testuser",
				ReceivedAt: time.Now(),
				RawPayload: []byte(`{"action":"deleted"}`),
			},
			wantLog: "Unsupported event received",
			wantErr: false, // Should not error, just log warning
		},
		{
			name: "Process unknown event type",
			event: &model.WebhookEvent{
				ID:         "test-delivery-3",
				Type:       model.EventTypeUnknown,
				Action:     "unknown",
				Repository: "test/repo",
				Sender:     "testuser",
				ReceivedAt: time.Now(),
				RawPayload: []byte(`{}`),
			},
			wantLog: "Unsupported event received",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			uc := usecase.NewWebhook(logger)

			err := uc.ProcessEvent(context.Background(), tt.event)
			if (err != nil) != tt.wantErr {
				t.Errorf("ProcessEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
			gt.String(t, buf.String()).Contains(tt.wantLog)
		})
	}
}
