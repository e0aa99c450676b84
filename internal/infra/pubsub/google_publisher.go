package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"apparel/internal/domain/entity"
	"apparel/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes with the recipient's user ID as ordering
// key, so "placed", "paid" and "shipped" for one customer reach the worker in
// the order they happened. The subscription must have ordering enabled for
// that to hold end to end.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist rather
// than on the first order placed.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{client: client, publisher: publisher, logger: logger}, nil
}

// Publish blocks until the server acknowledged the message.
func (p *googlePubSubPublisher) Publish(ctx context.Context, event *entity.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	key := orderingKey(event)
	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  event.MessageAttributes(),
		OrderingKey: key,
	}).Get(ctx)
	if err != nil {
		// A failed publish pauses the key; later events for this user would
		// otherwise fail too.
		p.publisher.ResumePublish(key)

		return errors.Wrapf(err, "publish event %s", event.Type)
	}

	p.logger.DebugContext(ctx, "Event published",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}

func orderingKey(event *entity.Event) string {
	return event.UserID.String()
}
