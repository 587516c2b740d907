package interfaces

import (
	"context"

	"github.com/m-mizutani/relhook/pkg/domain/model"
)

// TriggerUseCase builds, signs and delivers a synthetic release event
type TriggerUseCase interface {
	// Send delivers one release event and returns the receiver's response.
	// HTTP error statuses are not errors at this layer.
	Send(ctx context.Context, input *model.TriggerInput) (*model.HookResponse, error)
}

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}
