package payment

// EventTypeChargeSucceeded 課金成功を表すプロバイダーのイベントタイプ
const EventTypeChargeSucceeded = "charge.succeeded"

// SubjectPaymentSucceeded 正規化イベントを発行するメッセージバスのトピック
const SubjectPaymentSucceeded = "payment.succeeded"

// Event 署名検証を通過したWebhookイベントの正規化表現
// Chargeはイベントが課金オブジェクトを含む場合のみ設定される
type Event struct {
	Type   string
	Charge *Charge
}

// Charge プロバイダー側の課金オブジェクトから抽出した属性
type Charge struct {
	ID         string
	OrderID    string
	ReceiptURL string
}

// PaymentSucceededMessage 下流サービス向けの正規化ドメインイベント
// JSONタグは既存コンシューマーとのワイヤ互換のため変更しないこと
type PaymentSucceededMessage struct {
	StripePaymentID string `json:"stripePaymentId"`
	OrderID         string `json:"orderId"`
	ReceiptURL      string `json:"receiptUrl"`
}
