package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicehub/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPushPublisher_PublishOrderPlaced(t *testing.T) {
	var received service.PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := newPushPublisher(server.URL, discardLogger())
	publisher.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	event := &service.OrderPlacedEvent{
		RequestID:   "req-1",
		OrderID:     11,
		UserID:      7,
		TotalAmount: decimal.RequireFromString("200"),
		ItemCount:   1,
	}

	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, pushSubscription, received.Subscription)
	assert.Equal(t, "2024-05-01T10:00:00Z", received.Message.PublishTime)
	assert.Equal(t, "11", received.Message.Attributes[service.AttrOrderID])
	assert.NotEmpty(t, received.Message.MessageID)

	decoded, err := received.OrderPlaced()
	require.NoError(t, err)
	assert.Equal(t, int64(11), decoded.OrderID)
	assert.True(t, decoded.TotalAmount.Equal(decimal.NewFromInt(200)))
	require.NoError(t, publisher.Close())
}

func TestPushPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := newPushPublisher(server.URL, discardLogger()).
		PublishOrderPlaced(context.Background(), &service.OrderPlacedEvent{OrderID: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker answered 503")
}
