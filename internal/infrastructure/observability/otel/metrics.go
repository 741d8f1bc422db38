package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics メトリクス定義
type Metrics struct {
	// チェックアウトセッション作成数
	CheckoutSessionCount metric.Int64Counter

	// 受信Webhookイベント数
	WebhookEventCount metric.Int64Counter

	// メッセージバスへの発行数
	PublishCount metric.Int64Counter

	// リクエスト数
	RequestCount metric.Int64Counter

	// レスポンス時間
	ResponseTime metric.Float64Histogram

	// エラー率
	ErrorCount metric.Int64Counter
}

// NewMetrics 新しいMetricsを作成
func NewMetrics(meterName string) (*Metrics, error) {
	meter := otel.Meter(meterName)

	checkoutSessionCount, err := meter.Int64Counter(
		"checkout_sessions_total",
		metric.WithDescription("Total number of checkout session creations"),
	)
	if err != nil {
		return nil, err
	}

	webhookEventCount, err := meter.Int64Counter(
		"webhook_events_total",
		metric.WithDescription("Total number of received webhook events"),
	)
	if err != nil {
		return nil, err
	}

	publishCount, err := meter.Int64Counter(
		"bus_publishes_total",
		metric.WithDescription("Total number of message bus publishes"),
	)
	if err != nil {
		return nil, err
	}

	requestCount, err := meter.Int64Counter(
		"requests_total",
		metric.WithDescription("Total number of requests"),
	)
	if err != nil {
		return nil, err
	}

	responseTime, err := meter.Float64Histogram(
		"response_time_seconds",
		metric.WithDescription("Response time in seconds"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		CheckoutSessionCount: checkoutSessionCount,
		WebhookEventCount:    webhookEventCount,
		PublishCount:         publishCount,
		RequestCount:         requestCount,
		ResponseTime:         responseTime,
		ErrorCount:           errorCount,
	}, nil
}

// RecordCheckoutSession チェックアウトセッション作成を記録
func (m *Metrics) RecordCheckoutSession(ctx context.Context, outcome string) {
	m.CheckoutSessionCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("outcome", outcome),
		),
	)
}

// RecordWebhookEvent 受信Webhookイベントを記録
func (m *Metrics) RecordWebhookEvent(ctx context.Context, eventType, outcome string) {
	m.WebhookEventCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("event_type", eventType),
			attribute.String("outcome", outcome),
		),
	)
}

// RecordPublish メッセージバスへの発行を記録
func (m *Metrics) RecordPublish(ctx context.Context, subject string) {
	m.PublishCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("subject", subject),
		),
	)
}

// RecordRequest リクエストを記録
func (m *Metrics) RecordRequest(ctx context.Context, method, path string) {
	m.RequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordResponseTime レスポンス時間を記録
func (m *Metrics) RecordResponseTime(ctx context.Context, method, path string, duration float64) {
	m.ResponseTime.Record(ctx, duration,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordError エラーを記録
func (m *Metrics) RecordError(ctx context.Context, errorType string) {
	m.ErrorCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("error_type", errorType),
		),
	)
}
