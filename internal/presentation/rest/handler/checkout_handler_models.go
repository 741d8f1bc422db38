package handler

// CreateCheckoutSessionRequest チェックアウトセッション作成リクエスト
// @Description チェックアウトセッション作成リクエスト
type CreateCheckoutSessionRequest struct {
	OrderID  string         `json:"orderId" example:"order-123"`
	Currency string         `json:"currency" example:"usd"`
	Items    []CheckoutItem `json:"items"`
}

// CheckoutItem 注文の明細行（単価は主通貨単位の小数）
// @Description 注文の明細行
type CheckoutItem struct {
	Name     string  `json:"name" example:"Premium Plan"`
	Price    float64 `json:"price" example:"19.99"`
	Quantity int64   `json:"quantity" example:"1"`
}

// CreateCheckoutSessionResponse チェックアウトセッション作成レスポンス
// @Description チェックアウトセッション作成レスポンス
type CreateCheckoutSessionResponse struct {
	CancelURL  string `json:"cancelUrl" example:"http://localhost:3000/payments/cancel"`
	SuccessURL string `json:"successUrl" example:"http://localhost:3000/payments/success"`
	URL        string `json:"url" example:"https://checkout.stripe.com/c/pay/cs_123"`
}

// ErrorResponse エラーレスポンス
// @Description エラーレスポンス
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_currency"`
	Message string `json:"message" example:"invalid currency code"`
	Code    string `json:"code,omitempty"`
}
