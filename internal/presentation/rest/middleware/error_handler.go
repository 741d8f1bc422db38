package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"payments-server/internal/domain/order"
	"payments-server/internal/domain/payment"
	otelinfra "payments-server/internal/infrastructure/observability/otel"
)

// ErrorResponse エラーレスポンス
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandlerMiddleware エラーハンドリングミドルウェア
func ErrorHandlerMiddleware(logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			// エラーハンドリング
			return handleError(c, err, logger)
		}
	}
}

// handleError エラーを処理して適切なHTTPレスポンスを返す
func handleError(c echo.Context, err error, logger *otelinfra.Logger) error {
	ctx := c.Request().Context()

	// 注文バリデーションエラーの判定と処理
	if errors.Is(err, order.ErrInvalidOrderID) {
		logger.Warn(ctx, "Invalid order id", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_order_id",
			Message: err.Error(),
		})
	}

	if errors.Is(err, order.ErrInvalidCurrency) {
		logger.Warn(ctx, "Invalid currency", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_currency",
			Message: err.Error(),
		})
	}

	if errors.Is(err, order.ErrNoItems) {
		logger.Warn(ctx, "Order has no items", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "no_items",
			Message: err.Error(),
		})
	}

	if errors.Is(err, order.ErrInvalidItemName) {
		logger.Warn(ctx, "Invalid item name", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_item_name",
			Message: err.Error(),
		})
	}

	if errors.Is(err, order.ErrInvalidPrice) {
		logger.Warn(ctx, "Invalid item price", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_price",
			Message: err.Error(),
		})
	}

	if errors.Is(err, order.ErrInvalidQuantity) {
		logger.Warn(ctx, "Invalid item quantity", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_quantity",
			Message: err.Error(),
		})
	}

	// Webhook署名検証エラー（リトライさせないため400を返す）
	if errors.Is(err, payment.ErrSignatureVerification) {
		logger.Warn(ctx, "Webhook signature verification failed", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "signature_verification_failed",
			Message: err.Error(),
		})
	}

	// 決済プロバイダー起因のエラー
	if errors.Is(err, payment.ErrProviderCall) || errors.Is(err, payment.ErrProviderDown) {
		logger.Error(ctx, "Payment provider error", err, map[string]interface{}{
			"path": c.Request().URL.Path,
		})
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "payment_provider_error",
			Message: err.Error(),
		})
	}

	// EchoのHTTPエラー
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		logger.Warn(ctx, "HTTP error", map[string]interface{}{
			"status_code": httpErr.Code,
			"message":     httpErr.Message,
		})
		message := ""
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, ErrorResponse{
			Error:   http.StatusText(httpErr.Code),
			Message: message,
		})
	}

	// 予期しないエラー
	logger.Error(ctx, "Internal server error", err, map[string]interface{}{
		"path": c.Request().URL.Path,
	})
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_server_error",
		Message: "An unexpected error occurred",
	})
}
