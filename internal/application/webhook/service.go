package webhook

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"payments-server/internal/domain/payment"
	otelinfra "payments-server/internal/infrastructure/observability/otel"
)

// WebhookApplicationService Webhook受信・検証・中継アプリケーションサービス
// 署名検証を通過したcharge.succeededのみを正規化してメッセージバスへ発行する。
// 重複配信の排除は行わないため、プロバイダーの再送ごとに再発行される
type WebhookApplicationService struct {
	verifier  payment.WebhookVerifier
	publisher payment.EventPublisher
	logger    *otelinfra.Logger
	metrics   *otelinfra.Metrics
	tracer    trace.Tracer
}

// NewWebhookApplicationService 新しいWebhookApplicationServiceを作成
func NewWebhookApplicationService(
	verifier payment.WebhookVerifier,
	publisher payment.EventPublisher,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *WebhookApplicationService {
	return &WebhookApplicationService{
		verifier:  verifier,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		tracer:    otel.Tracer("webhook-service"),
	}
}

// Process Webhookイベントを検証し、課金成功イベントをメッセージバスへ中継する
// 署名が不正な場合はpayment.ErrSignatureVerificationを返す
func (s *WebhookApplicationService) Process(ctx context.Context, req *ProcessWebhookRequest) (*ProcessWebhookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "WebhookApplicationService.Process")
	defer span.End()

	event, err := s.verifier.VerifyEvent(req.Payload, req.Signature)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Warn(ctx, "Webhook signature verification failed", map[string]interface{}{
			"payload_bytes": len(req.Payload),
		})
		s.metrics.RecordWebhookEvent(ctx, "unknown", "rejected")
		return nil, err
	}

	span.SetAttributes(attribute.String("event_type", event.Type))

	if event.Type != payment.EventTypeChargeSucceeded {
		s.logger.Info(ctx, "Ignoring webhook event", map[string]interface{}{
			"event_type": event.Type,
		})
		s.metrics.RecordWebhookEvent(ctx, event.Type, "ignored")
		return &ProcessWebhookResponse{Outcome: OutcomeIgnored, EventType: event.Type}, nil
	}

	if event.Charge == nil {
		s.logger.Warn(ctx, "Charge succeeded event without charge object", nil)
		s.metrics.RecordWebhookEvent(ctx, event.Type, "ignored")
		return &ProcessWebhookResponse{Outcome: OutcomeIgnored, EventType: event.Type}, nil
	}

	message := payment.PaymentSucceededMessage{
		StripePaymentID: event.Charge.ID,
		OrderID:         event.Charge.OrderID,
		ReceiptURL:      event.Charge.ReceiptURL,
	}

	if err := s.publisher.Publish(ctx, payment.SubjectPaymentSucceeded, message); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to publish payment succeeded event", err, map[string]interface{}{
			"stripe_payment_id": event.Charge.ID,
			"order_id":          event.Charge.OrderID,
		})
		s.metrics.RecordWebhookEvent(ctx, event.Type, "publish_failed")
		return nil, err
	}

	s.logger.Info(ctx, "Payment succeeded event emitted", map[string]interface{}{
		"stripe_payment_id": event.Charge.ID,
		"order_id":          event.Charge.OrderID,
	})
	s.metrics.RecordWebhookEvent(ctx, event.Type, "emitted")
	s.metrics.RecordPublish(ctx, payment.SubjectPaymentSucceeded)

	return &ProcessWebhookResponse{Outcome: OutcomeEmitted, EventType: event.Type}, nil
}
