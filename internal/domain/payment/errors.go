package payment

import "errors"

var (
	// ErrSignatureVerification Webhook署名検証失敗エラー
	ErrSignatureVerification = errors.New("webhook signature verification failed")
	// ErrProviderCall 決済プロバイダーAPI呼び出し失敗エラー
	ErrProviderCall = errors.New("payment provider call failed")
	// ErrProviderDown 決済プロバイダー側の障害エラー
	ErrProviderDown = errors.New("payment provider is unavailable")
)
