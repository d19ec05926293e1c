package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servicehub/config"
	"servicehub/internal/domain/constants"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/service"
	mockUsecase "servicehub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg service.PushEnvelope
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/receipts"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodedEvent(t *testing.T, event *service.OrderPlacedEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockReceiptUsecase) {
	t.Helper()

	receiptUC := mockUsecase.NewMockReceiptUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		ReceiptUC: receiptUC,
	})

	return h, receiptUC
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.OrderPlacedEvent{
		RequestID:   "req-1",
		OrderID:     42,
		UserID:      7,
		TotalAmount: decimal.NewFromInt(200),
		ItemCount:   1,
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setupMocks func(m *mockUsecase.MockReceiptUsecase)
		wantStatus int
	}{
		{
			name: "stores receipt",
			body: func(t *testing.T) string { return pushBody(t, encodedEvent(t, event), nil) },
			setupMocks: func(m *mockUsecase.MockReceiptUsecase) {
				m.EXPECT().ProcessOrderPlaced(mock.Anything, mock.MatchedBy(func(e *service.OrderPlacedEvent) bool {
					return e.OrderID == 42 && e.TotalAmount.Equal(decimal.NewFromInt(200))
				})).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid base64",
			body:       func(t *testing.T) string { return pushBody(t, "!!!", nil) },
			setupMocks: func(m *mockUsecase.MockReceiptUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid event json",
			body: func(t *testing.T) string {
				return pushBody(t, base64.StdEncoding.EncodeToString([]byte("{")), nil)
			},
			setupMocks: func(m *mockUsecase.MockReceiptUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "order gone is acknowledged",
			body: func(t *testing.T) string { return pushBody(t, encodedEvent(t, event), nil) },
			setupMocks: func(m *mockUsecase.MockReceiptUsecase) {
				m.EXPECT().ProcessOrderPlaced(mock.Anything, mock.Anything).
					Return(errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup")).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "storage failure is retried",
			body: func(t *testing.T) string { return pushBody(t, encodedEvent(t, event), nil) },
			setupMocks: func(m *mockUsecase.MockReceiptUsecase) {
				m.EXPECT().ProcessOrderPlaced(mock.Anything, mock.Anything).
					Return(domainerrors.NewDatabaseExecuteError(assert.AnError, "save receipt")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, receiptUC := newTestPushHandler(t, &config.Config{})
			tt.setupMocks(receiptUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(tt.body(t)))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

type stubVerifier struct{ err error }

func (s stubVerifier) Verify(*http.Request) error { return s.err }

func TestPushHandler_RejectsBadToken(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})
	h.verifier = stubVerifier{err: errors.New("bad token")}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_Verification(t *testing.T) {
	google := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	google.Env.Env = "production"
	h, _ := newTestPushHandler(t, google)
	assert.NotNil(t, h.verifier)

	develop := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	develop.Env.Env = constants.EnvDevelop
	h, _ = newTestPushHandler(t, develop)
	assert.Nil(t, h.verifier)

	local := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	h, _ = newTestPushHandler(t, local)
	assert.Nil(t, h.verifier)
}

func TestPushHandler_UsesAttributeRequestID(t *testing.T) {
	h, receiptUC := newTestPushHandler(t, &config.Config{})
	event := &service.OrderPlacedEvent{OrderID: 5, UserID: 1}
	receiptUC.EXPECT().ProcessOrderPlaced(mock.Anything, mock.MatchedBy(func(e *service.OrderPlacedEvent) bool {
		return e.RequestID == "req-attr"
	})).Return(nil).Once()

	e := echo.New()
	body := pushBody(t, encodedEvent(t, event), map[string]string{service.AttrRequestID: "req-attr"})
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
