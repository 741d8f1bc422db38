package order

import (
	"math"
	"strings"
)

// OrderRequest 決済待ちの注文
type OrderRequest struct {
	OrderID  string
	Currency string
	Items    []OrderItem
}

// OrderItem 注文の明細行
type OrderItem struct {
	Name     string
	Price    float64
	Quantity int64
}

// Validate 注文の入力制約を検証する
func (o *OrderRequest) Validate() error {
	if o.OrderID == "" {
		return ErrInvalidOrderID
	}
	if !isValidCurrency(o.Currency) {
		return ErrInvalidCurrency
	}
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range o.Items {
		if item.Name == "" {
			return ErrInvalidItemName
		}
		if item.Price < 0 {
			return ErrInvalidPrice
		}
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// NormalizedCurrency 通貨コードを小文字に正規化して返す
func (o *OrderRequest) NormalizedCurrency() string {
	return strings.ToLower(o.Currency)
}

// UnitAmountMinor 単価を最小通貨単位（USDならセント）の整数に変換する
// 丸め規則は round(price × 100) 固定。19.995 → 2000
func (i *OrderItem) UnitAmountMinor() int64 {
	return int64(math.Round(i.Price * 100))
}

// isValidCurrency ISO 4217形式（英字3文字）かどうかを判定
// 対応通貨の正式な一覧は決済プロバイダー側が持つため、ここでは形式のみ検証する
func isValidCurrency(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	for _, r := range currency {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
