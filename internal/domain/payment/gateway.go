package payment

import "context"

// CheckoutGateway 決済プロバイダーのホスト型チェックアウトセッション作成ポート
// 実装はネットワークアクセスなしでフェイクに差し替えられるよう最小限に保つ
type CheckoutGateway interface {
	CreateSession(ctx context.Context, params *SessionParams) (*Session, error)
}

// WebhookVerifier Webhookペイロードの署名検証ポート
// payloadは受信したHTTPボディの生バイト列そのものでなければならない
// （署名はバイト単位で計算されるため、パース後の再シリアライズは不可）
type WebhookVerifier interface {
	VerifyEvent(payload []byte, signature string) (*Event, error)
}

// EventPublisher メッセージバスへのfire-and-forget発行ポート
// 下流のACKは待たない。発行同士が互いにブロックしないこと
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
}

// SessionParams チェックアウトセッション作成パラメータ
type SessionParams struct {
	OrderID    string
	Currency   string
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
}

// LineItem プロバイダーに送る明細行（単価は最小通貨単位の整数）
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// Session プロバイダーが発行したチェックアウトセッション
// 一度返却されるだけで、この（サービス）側には保持しない
type Session struct {
	URL        string
	SuccessURL string
	CancelURL  string
}
