package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/trace/noop"

	webhookapp "payments-server/internal/application/webhook"
	"payments-server/internal/domain/payment"
	otelinfra "payments-server/internal/infrastructure/observability/otel"
	restmiddleware "payments-server/internal/presentation/rest/middleware"
)

func TestWebhookHandler_HandleWebhook(t *testing.T) {
	payload := []byte(`{"type":"charge.succeeded"}`)
	signature := "t=1700000000,v1=deadbeef"

	tests := []struct {
		name           string
		payload        []byte
		signature      string
		setupMock      func(*MockWebhookVerifier, *MockEventPublisher)
		expectedStatus int
		expectPublish  bool
	}{
		{
			name:      "正常系: 課金成功イベントを中継",
			payload:   payload,
			signature: signature,
			setupMock: func(v *MockWebhookVerifier, p *MockEventPublisher) {
				v.On("VerifyEvent", payload, signature).Return(&payment.Event{
					Type: payment.EventTypeChargeSucceeded,
					Charge: &payment.Charge{
						ID:         "ch_123",
						OrderID:    "order-123",
						ReceiptURL: "https://pay.stripe.test/receipts/ch_123",
					},
				}, nil)
				p.On("Publish", mock.Anything, "payment.succeeded", mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectPublish:  true,
		},
		{
			name:      "正常系: 対象外イベントも200を返す",
			payload:   payload,
			signature: signature,
			setupMock: func(v *MockWebhookVerifier, p *MockEventPublisher) {
				v.On("VerifyEvent", mock.Anything, mock.Anything).Return(&payment.Event{
					Type: "payment_intent.created",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectPublish:  false,
		},
		{
			name:      "異常系: 署名検証失敗は400",
			payload:   payload,
			signature: "t=1700000000,v1=bogus",
			setupMock: func(v *MockWebhookVerifier, p *MockEventPublisher) {
				v.On("VerifyEvent", mock.Anything, mock.Anything).
					Return(nil, payment.ErrSignatureVerification)
			},
			expectedStatus: http.StatusBadRequest,
			expectPublish:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			mockVerifier := new(MockWebhookVerifier)
			mockPublisher := new(MockEventPublisher)
			tt.setupMock(mockVerifier, mockPublisher)
			tracer := noop.NewTracerProvider().Tracer("test")
			logger := otelinfra.NewLogger(tracer)
			metrics, _ := otelinfra.NewMetrics("test")

			appService := webhookapp.NewWebhookApplicationService(
				mockVerifier,
				mockPublisher,
				logger,
				metrics,
			)

			handler := NewWebhookHandler(appService)

			req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(tt.payload))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set("Stripe-Signature", tt.signature)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			// ミドルウェアを手動で実行
			middlewareFunc := restmiddleware.ErrorHandlerMiddleware(logger)
			handlerFunc := middlewareFunc(func(c echo.Context) error {
				return handler.HandleWebhook(c)
			})
			err := handlerFunc(c)
			if err != nil {
				e.HTTPErrorHandler(err, c)
			}
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				// 受信確認として署名がそのまま返される
				var resp WebhookResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.signature, resp.Sign)
			}

			if tt.expectPublish {
				mockPublisher.AssertNumberOfCalls(t, "Publish", 1)
			} else {
				mockPublisher.AssertNotCalled(t, "Publish")
			}
		})
	}
}
