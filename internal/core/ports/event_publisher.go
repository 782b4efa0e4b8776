package ports

import (
	"context"

	"workforce/internal/core/domain/model/application"
)

// EventPublisher delivers domain events to the message bus.
//
// Publication is best-effort by contract: callers log failures and never
// propagate them into the operation's result.
type EventPublisher interface {
	// PublishApplicationSubmitted emits the application-submitted event.
	PublishApplicationSubmitted(ctx context.Context, event application.SubmittedEvent) error
}
