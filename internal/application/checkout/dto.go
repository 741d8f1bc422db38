package checkout

// CreateCheckoutSessionRequest チェックアウトセッション作成リクエスト
type CreateCheckoutSessionRequest struct {
	OrderID  string
	Currency string
	Items    []CheckoutItem
}

// CheckoutItem 注文の明細行（単価は主通貨単位の小数）
type CheckoutItem struct {
	Name     string
	Price    float64
	Quantity int64
}

// CreateCheckoutSessionResponse チェックアウトセッション作成レスポンス
type CreateCheckoutSessionResponse struct {
	CancelURL  string
	SuccessURL string
	URL        string
}
