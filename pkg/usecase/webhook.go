package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/relhook/pkg/domain/model"
)

type webhookUseCase struct {
	logger *slog.Logger
}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook(logger *slog.Logger) *webhookUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &webhookUseCase{logger: logger}
}

// ProcessEvent processes a webhook event
// Current implementation only logs the event
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	uc.logger.InfoContext(ctx, "Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
		"supported", event.IsSupportedEvent(),
	)

	if !event.IsSupportedEvent() {
		uc.logger.WarnContext(ctx, "Unsupported event received",
			"type", event.Type,
			"action", event.Action,
		)
		return nil
	}

	if rel := event.Release; rel != nil {
		uc.logger.InfoContext(ctx, "Release published",
			"owner", rel.Owner,
			"repo", rel.Repo,
			"tag_name", rel.TagName,
			"commitish", rel.Commitish,
			"release_name", rel.ReleaseName,
			"published_at", rel.PublishedAt,
		)
	}

	return nil
}
