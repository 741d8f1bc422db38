package order

import "errors"

var (
	// ErrInvalidOrderID 注文IDが空エラー
	ErrInvalidOrderID = errors.New("order id is required")
	// ErrInvalidCurrency 無効な通貨コードエラー
	ErrInvalidCurrency = errors.New("invalid currency code")
	// ErrNoItems 明細行が空エラー
	ErrNoItems = errors.New("order has no items")
	// ErrInvalidItemName 明細行の商品名が空エラー
	ErrInvalidItemName = errors.New("item name is required")
	// ErrInvalidPrice 無効な単価エラー
	ErrInvalidPrice = errors.New("invalid item price")
	// ErrInvalidQuantity 無効な数量エラー
	ErrInvalidQuantity = errors.New("invalid item quantity")
)
