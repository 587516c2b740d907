package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/relhook/pkg/domain/interfaces"
	"github.com/m-mizutani/relhook/pkg/domain/model"
	"github.com/m-mizutani/relhook/pkg/utils/signature"
)

type triggerUseCase struct {
	sender   interfaces.HookSender
	reporter interfaces.Reporter
	logger   *slog.Logger
	now      func() time.Time
}

// TriggerOption is a functional option for the trigger use case
type TriggerOption func(*triggerUseCase)

// WithLogger sets the logger used for diagnostic output
func WithLogger(logger *slog.Logger) TriggerOption {
	return func(uc *triggerUseCase) {
		uc.logger = logger
	}
}

// WithClock replaces time.Now for payload timestamps
func WithClock(now func() time.Time) TriggerOption {
	return func(uc *triggerUseCase) {
		uc.now = now
	}
}

// NewTrigger creates a new instance of TriggerUseCase
func NewTrigger(sender interfaces.HookSender, reporter interfaces.Reporter, opts ...TriggerOption) interfaces.TriggerUseCase {
	uc := &triggerUseCase{
		sender:   sender,
		reporter: reporter,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Send builds the release event, signs the serialized bytes and posts those
// same bytes to the target.
func (uc *triggerUseCase) Send(ctx context.Context, input *model.TriggerInput) (*model.HookResponse, error) {
	target, err := model.ParseTarget(input.URL)
	if err != nil {
		return nil, err
	}

	event := model.NewReleaseEvent(input.Release, uc.now())
	body, err := event.Marshal()
	if err != nil {
		return nil, err
	}
	sig := signature.SHA1(body, input.Secret)

	req := &model.HookRequest{
		Target:     target,
		Event:      model.EventTypeRelease,
		DeliveryID: uuid.NewString(),
		Signature:  sig,
		Body:       body,
	}

	uc.logger.Debug("Built release event",
		"delivery_id", req.DeliveryID,
		"repository", event.Repository.FullName,
		"tag_name", event.Release.TagName,
		"size_bytes", len(body),
	)

	uc.reporter.Sending(input.URL)
	uc.reporter.Signature(sig)

	start := time.Now()
	resp, err := uc.sender.Send(ctx, req)
	if err != nil {
		uc.reporter.Failure(err)
		return nil, err
	}

	uc.logger.Debug("Received response",
		"delivery_id", req.DeliveryID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	uc.reporter.Response(resp)

	return resp, nil
}
