// Package eventbus publishes domain events over a watermill in-process
// channel. Delivery is fire-and-forget: callers treat a failed publish as a
// logged warning, never as an operation failure.
package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"workforce/internal/core/domain/model/application"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// TopicApplicationSubmitted carries application-submitted events.
const TopicApplicationSubmitted = "applications.submitted"

// applicationSubmittedPayload is the wire form of the event.
type applicationSubmittedPayload struct {
	ApplicationID string `json:"application_id"`
	ApplicantID   string `json:"applicant_id"`
	JobID         string `json:"job_id"`
	AppliedAt     string `json:"applied_at"`
}

// WatermillEventPublisher implements ports.EventPublisher on a gochannel
// pub/sub. The channel is in-process; interested consumers subscribe to the
// topic through Subscriber.
type WatermillEventPublisher struct {
	pubSub *gochannel.GoChannel
	logger *slog.Logger
}

// NewWatermillEventPublisher creates an in-process event publisher.
func NewWatermillEventPublisher(logger *slog.Logger) *WatermillEventPublisher {
	return &WatermillEventPublisher{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{},
			watermill.NewSlogLogger(logger),
		),
		logger: logger.With("component", "event_publisher"),
	}
}

// PublishApplicationSubmitted emits the application-submitted event as a
// JSON message.
func (p *WatermillEventPublisher) PublishApplicationSubmitted(ctx context.Context, event application.SubmittedEvent) error {
	payload, err := json.Marshal(applicationSubmittedPayload{
		ApplicationID: event.ApplicationID.String(),
		ApplicantID:   event.ApplicantID.String(),
		JobID:         event.JobID.String(),
		AppliedAt:     event.AppliedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	p.logger.DebugContext(ctx, "Publishing application-submitted event",
		"application_id", event.ApplicationID.String(),
		"job_id", event.JobID.String(),
	)

	return p.pubSub.Publish(TopicApplicationSubmitted, msg)
}

// Subscriber exposes the underlying subscriber side of the channel so
// in-process consumers can follow the topic.
func (p *WatermillEventPublisher) Subscriber() message.Subscriber {
	return p.pubSub
}

// Close shuts the channel down, releasing all subscribers.
func (p *WatermillEventPublisher) Close() error {
	return p.pubSub.Close()
}
