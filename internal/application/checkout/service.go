package checkout

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"payments-server/internal/domain/order"
	"payments-server/internal/domain/payment"
	otelinfra "payments-server/internal/infrastructure/observability/otel"
)

// CheckoutApplicationService チェックアウトセッション作成アプリケーションサービス
// 状態は一切保持しない。セッションはプロバイダー側で作られ、URLを返すのみ
type CheckoutApplicationService struct {
	gateway    payment.CheckoutGateway
	successURL string
	cancelURL  string
	logger     *otelinfra.Logger
	metrics    *otelinfra.Metrics
	tracer     trace.Tracer
}

// NewCheckoutApplicationService 新しいCheckoutApplicationServiceを作成
func NewCheckoutApplicationService(
	gateway payment.CheckoutGateway,
	successURL string,
	cancelURL string,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *CheckoutApplicationService {
	return &CheckoutApplicationService{
		gateway:    gateway,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
		metrics:    metrics,
		tracer:     otel.Tracer("checkout-service"),
	}
}

// CreateCheckoutSession 注文からホスト型チェックアウトセッションを作成する
// プロバイダー呼び出しの失敗はそのまま呼び出し元に伝播する（リトライしない）
func (s *CheckoutApplicationService) CreateCheckoutSession(ctx context.Context, req *CreateCheckoutSessionRequest) (*CreateCheckoutSessionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutApplicationService.CreateCheckoutSession")
	defer span.End()

	span.SetAttributes(
		attribute.String("order_id", req.OrderID),
		attribute.String("currency", req.Currency),
		attribute.Int("item_count", len(req.Items)),
	)

	// バリデーション
	o := order.OrderRequest{
		OrderID:  req.OrderID,
		Currency: req.Currency,
		Items:    make([]order.OrderItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		o.Items = append(o.Items, order.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	if err := o.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.metrics.RecordError(ctx, "order_validation")
		return nil, err
	}

	// 明細行を最小通貨単位にマッピング
	lineItems := make([]payment.LineItem, 0, len(o.Items))
	for _, item := range o.Items {
		lineItems = append(lineItems, payment.LineItem{
			Name:       item.Name,
			UnitAmount: item.UnitAmountMinor(),
			Quantity:   item.Quantity,
		})
	}

	s.logger.Info(ctx, "Creating checkout session", map[string]interface{}{
		"order_id":   req.OrderID,
		"currency":   o.NormalizedCurrency(),
		"item_count": len(lineItems),
	})

	session, err := s.gateway.CreateSession(ctx, &payment.SessionParams{
		OrderID:    o.OrderID,
		Currency:   o.NormalizedCurrency(),
		LineItems:  lineItems,
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to create checkout session", err, map[string]interface{}{
			"order_id": req.OrderID,
		})
		s.metrics.RecordCheckoutSession(ctx, "failed")
		return nil, err
	}

	s.logger.Info(ctx, "Checkout session created", map[string]interface{}{
		"order_id": req.OrderID,
	})
	s.metrics.RecordCheckoutSession(ctx, "created")

	return &CreateCheckoutSessionResponse{
		CancelURL:  session.CancelURL,
		SuccessURL: session.SuccessURL,
		URL:        session.URL,
	}, nil
}
