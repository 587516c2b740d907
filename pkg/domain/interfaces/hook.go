package interfaces

import (
	"context"

	"github.com/m-mizutani/relhook/pkg/domain/model"
)

// HookSender performs a single webhook delivery
type HookSender interface {
	Send(ctx context.Context, req *model.HookRequest) (*model.HookResponse, error)
}

// Reporter prints delivery progress for the operator
type Reporter interface {
	Sending(url string)
	Signature(sig string)
	Response(resp *model.HookResponse)
	Failure(err error)
}
