package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	pushSubscription = "projects/local/subscriptions/order-receipts"
	pushTimeout      = 30 * time.Second
)

// pushPublisher posts events to the worker in the Pub/Sub push format, so
// development runs without a Google project. Delivery is synchronous: a
// non-2xx answer from the worker fails the publish.
type pushPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

func newPushPublisher(endpoint string, logger *slog.Logger) *pushPublisher {
	return &pushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: pushTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *pushPublisher) PublishOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	envelope, err := service.NewPushEnvelope(event, pushSubscription, uuid.NewString(), p.now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.Wrap(err, "encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push order %d", event.OrderID)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push order %d: worker answered %d", event.OrderID, resp.StatusCode)
	}

	deliverycontext.LoggerFrom(ctx, p.logger).InfoContext(ctx, "order event pushed",
		slog.Int64("order_id", event.OrderID),
		slog.String("message_id", envelope.Message.MessageID),
	)

	return nil
}

func (p *pushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
