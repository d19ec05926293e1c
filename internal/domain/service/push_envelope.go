package service

import (
	"encoding/base64"
	"encoding/json"
	"strconv"

	"servicehub/internal/domain/constants"

	"github.com/pkg/errors"
)

// Message attribute keys carried next to an OrderPlacedEvent.
const (
	AttrEventType = "event_type"
	AttrOrderID   = "order_id"
	AttrUserID    = "user_id"
	AttrRequestID = "request_id"
)

// PushEnvelope is the body Pub/Sub posts to a push subscription.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage holds the base64 payload and its attributes.
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// Attributes returns the routing attributes published with event.
func (e *OrderPlacedEvent) Attributes() map[string]string {
	attrs := map[string]string{
		AttrEventType: constants.EventTypeOrderPlaced,
		AttrOrderID:   strconv.FormatInt(e.OrderID, 10),
		AttrUserID:    strconv.FormatInt(e.UserID, 10),
	}
	if e.RequestID != "" {
		attrs[AttrRequestID] = e.RequestID
	}

	return attrs
}

// NewPushEnvelope wraps event the way Pub/Sub would deliver it.
func NewPushEnvelope(event *OrderPlacedEvent, subscription, messageID, publishTime string) (*PushEnvelope, error) {
	raw, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode order event")
	}

	return &PushEnvelope{
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(raw),
			Attributes:  event.Attributes(),
			MessageID:   messageID,
			PublishTime: publishTime,
		},
		Subscription: subscription,
	}, nil
}

// OrderPlaced decodes the payload. A request id carried only as an
// attribute is copied onto the event.
func (p *PushEnvelope) OrderPlaced() (*OrderPlacedEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(p.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push data")
	}

	var event OrderPlacedEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "decode order event")
	}
	if id := p.Message.Attributes[AttrRequestID]; id != "" {
		event.RequestID = id
	}

	return &event, nil
}
