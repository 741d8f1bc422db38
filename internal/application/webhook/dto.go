package webhook

// ProcessWebhookRequest Webhook処理リクエスト
// Payloadは署名検証のため受信したボディをそのまま保持する
type ProcessWebhookRequest struct {
	Payload   []byte
	Signature string
}

// Outcome Webhookイベントの処理結果
type Outcome string

const (
	// OutcomeEmitted 正規化イベントをメッセージバスに発行した
	OutcomeEmitted Outcome = "emitted"
	// OutcomeIgnored 検証は通過したが対象外のイベントタイプだった
	OutcomeIgnored Outcome = "ignored"
)

// ProcessWebhookResponse Webhook処理レスポンス
type ProcessWebhookResponse struct {
	Outcome   Outcome
	EventType string
}
