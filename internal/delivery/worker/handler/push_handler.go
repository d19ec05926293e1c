package handler

import (
	"log/slog"
	"net/http"

	"servicehub/config"
	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/constants"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/service"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PushHandler turns OrderPlaced push messages into stored receipts.
// A 2xx answer acknowledges the message; 503 asks Pub/Sub to redeliver it.
type PushHandler struct {
	verifier  TokenVerifier
	logger    *slog.Logger
	receiptUC usecase.ReceiptUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	ReceiptUC usecase.ReceiptUsecase
}

// NewPushHandler checks push tokens only for the google provider outside develop.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:    params.Logger,
		receiptUC: params.ReceiptUC,
	}

	ps := params.Config.PubSub
	if ps != nil && ps.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop {
		h.verifier = newGoogleVerifier(ps.PushAudience, ps.PushServiceAccount)
	}

	return h
}

func (h *PushHandler) HandlePush(c echo.Context) error {
	req := c.Request()

	if h.verifier != nil {
		if err := h.verifier.Verify(req); err != nil {
			h.logger.WarnContext(req.Context(), "push rejected", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope service.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.WarnContext(req.Context(), "malformed push body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.OrderPlaced()
	if err != nil {
		h.logger.WarnContext(req.Context(), "malformed order event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Prefer the id of the API request that placed the order over the push delivery's own.
	ctx := req.Context()
	if event.RequestID == "" {
		event.RequestID = deliverycontext.RequestIDFrom(ctx)
	}
	logger := h.logger.With(
		slog.String("request_id", event.RequestID),
		slog.Int64("order_id", event.OrderID),
		slog.String("message_id", envelope.Message.MessageID),
	)
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, event.RequestID), logger)

	if err := h.receiptUC.ProcessOrderPlaced(ctx, event); err != nil {
		status := pushStatus(err)
		logger.ErrorContext(ctx, "receipt not stored", slog.Int("status", status), slog.Any("error", err))

		return c.NoContent(status)
	}

	logger.InfoContext(ctx, "receipt stored")

	return c.NoContent(http.StatusOK)
}

// pushStatus maps a processing failure to the ack decision sent to Pub/Sub.
func pushStatus(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrOrderNotFound):
		// Redelivery cannot bring the order back.
		return http.StatusOK
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}
