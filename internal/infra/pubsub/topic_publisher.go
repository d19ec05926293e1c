package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// topicPublisher sends events to a Google Cloud Pub/Sub topic and waits for
// the server to acknowledge each one.
type topicPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

func newTopicPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (*topicPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", topic)
	}

	logger.Info("pubsub topic ready", slog.String("topic", topic))

	return &topicPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

func (p *topicPublisher) PublishOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode order event")
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: event.Attributes(),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish order %d to %s", event.OrderID, p.topic)
	}

	deliverycontext.LoggerFrom(ctx, p.logger).InfoContext(ctx, "order event published",
		slog.Int64("order_id", event.OrderID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *topicPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
