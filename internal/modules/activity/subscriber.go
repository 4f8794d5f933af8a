package activity

import (
	"context"
	"log/slog"

	"github.com/nfrund/statframes/internal/metrics"
	"github.com/nfrund/statframes/internal/modules/frames/events"
	"github.com/nfrund/statframes/internal/pubsub"
)

// Subscriber turns frames.rendered events into log lines and metrics.
type Subscriber struct {
	subscriber pubsub.Subscriber
	record     func(variant, state string)
}

// NewSubscriber creates a Subscriber reading from sub.
func NewSubscriber(sub pubsub.Subscriber) *Subscriber {
	return &Subscriber{
		subscriber: sub,
		record:     metrics.RecordFrame,
	}
}

// Start subscribes to frames.rendered until ctx is canceled.
func (s *Subscriber) Start(ctx context.Context) error {
	slog.Info("Starting activity subscriber")
	return pubsub.Subscribe(ctx, s.subscriber, events.TopicRendered, s.handleRendered)
}

func (s *Subscriber) handleRendered(ctx context.Context, ev events.Rendered, msg pubsub.Message) error {
	slog.Debug("Frame rendered",
		"variant", ev.Variant,
		"fid", ev.FID,
		"state", ev.State,
		"degraded", ev.Degraded,
		"request_id", msg.Metadata[pubsub.MetaRequestID],
	)
	s.record(ev.Variant, ev.State)
	return nil
}
