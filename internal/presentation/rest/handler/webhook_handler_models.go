package handler

// WebhookResponse Webhook受信レスポンス
// @Description Webhook受信レスポンス（受信した署名をそのまま返す）
type WebhookResponse struct {
	Sign string `json:"sign" example:"t=1700000000,v1=..."`
}
