// Package pubsub publishes order events either to Google Cloud Pub/Sub or,
// in development, straight to the receipt worker's push endpoint.
package pubsub

import (
	"context"
	"log/slog"

	"servicehub/config"
	"servicehub/internal/domain/constants"
	"servicehub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider and closes it on stop.
// Without a provider, events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Warn("pubsub provider not set; order events are dropped")

		return discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return newPushPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return newTopicPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

type discardPublisher struct {
	logger *slog.Logger
}

func (p discardPublisher) PublishOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	p.logger.DebugContext(ctx, "order event dropped", slog.Int64("order_id", event.OrderID))

	return nil
}

func (discardPublisher) Close() error { return nil }
