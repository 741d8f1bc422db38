package stripegateway

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"payments-server/internal/domain/payment"
)

// Verifier payment.WebhookVerifierのStripe実装
// エンドポイントシークレットとの共有鍵でペイロードの署名を検証する
type Verifier struct {
	endpointSecret string
}

// NewVerifier 新しいVerifierを作成
func NewVerifier(endpointSecret string) *Verifier {
	return &Verifier{endpointSecret: endpointSecret}
}

// VerifyEvent 生ペイロードをStripe-Signatureヘッダーと照合して検証し、
// 正規化したイベントを返す。検証はバイト単位で行われるため、
// payloadは受信ボディそのままでなければならない
func (v *Verifier) VerifyEvent(payload []byte, signature string) (*payment.Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, v.endpointSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrSignatureVerification, err)
	}

	normalized := &payment.Event{
		Type: string(event.Type),
	}

	// 課金イベントの場合のみ課金オブジェクトを展開する
	if event.Type == stripe.EventTypeChargeSucceeded {
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return nil, fmt.Errorf("failed to parse charge object: %w", err)
		}
		normalized.Charge = &payment.Charge{
			ID:         charge.ID,
			OrderID:    charge.Metadata[metadataOrderIDKey],
			ReceiptURL: charge.ReceiptURL,
		}
	}

	return normalized, nil
}
