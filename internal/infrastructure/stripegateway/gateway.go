package stripegateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"payments-server/internal/domain/payment"
)

// metadataOrderIDKey PaymentIntentのメタデータに注文IDを載せるキー
// Webhookで返ってくる課金オブジェクトのメタデータと対になる
const metadataOrderIDKey = "orderId"

// Gateway payment.CheckoutGatewayのStripe実装
type Gateway struct {
	client *client.API
}

// NewGateway 新しいGatewayを作成（シークレットキーでStripeクライアントを初期化）
func NewGateway(secretKey string) *Gateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)

	return &Gateway{client: sc}
}

// CreateSession ホスト型チェックアウトセッションを作成する
// リトライは行わない（リトライポリシーは呼び出し側の責務）
func (g *Gateway) CreateSession(ctx context.Context, params *payment.SessionParams) (*payment.Session, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(params.LineItems))
	for _, item := range params.LineItems {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(params.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Mode:      stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: lineItems,
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			// 注文IDをメタデータとして添付し、Webhookまで往復させる
			Metadata: map[string]string{
				metadataOrderIDKey: params.OrderID,
			},
		},
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	}

	// サーバー停止やリクエストタイムアウト時にStripeへのHTTPリクエストを中断する
	sessionParams.Context = ctx

	session, err := g.client.CheckoutSessions.New(sessionParams)
	if err != nil {
		return nil, g.mapStripeError(err)
	}

	return &payment.Session{
		URL:        session.URL,
		SuccessURL: session.SuccessURL,
		CancelURL:  session.CancelURL,
	}, nil
}

// mapStripeError 外部ライブラリのエラーをドメインエラーに変換する
// stripe-goのimportがアプリケーション層に漏れるのを防ぐ
func (g *Gateway) mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %s", payment.ErrProviderDown, stripeErr.Msg)
		}
		return fmt.Errorf("%w: %s (%s)", payment.ErrProviderCall, stripeErr.Msg, stripeErr.Code)
	}
	return fmt.Errorf("%w: %v", payment.ErrProviderCall, err)
}
