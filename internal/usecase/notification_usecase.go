package usecase

import (
	"context"

	"apparel/internal/domain/entity"
)

// DispatchResult summarises what was delivered for one event.
type DispatchResult struct {
	MailSent    bool
	PushSuccess int
	PushFailure int
	Skipped     bool // Nothing was sent: opted out, unknown recipient or unknown event type.
}

// NotificationUsecase turns domain events into e-mails and mobile pushes.
type NotificationUsecase interface {
	Dispatch(ctx context.Context, event *entity.Event) (*DispatchResult, error)
}
