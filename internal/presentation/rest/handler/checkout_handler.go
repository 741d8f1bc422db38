package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	checkoutapp "payments-server/internal/application/checkout"
)

// CheckoutHandler チェックアウトセッション関連ハンドラー
type CheckoutHandler struct {
	checkoutService *checkoutapp.CheckoutApplicationService
}

// NewCheckoutHandler 新しいCheckoutHandlerを作成
func NewCheckoutHandler(checkoutService *checkoutapp.CheckoutApplicationService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// CreateCheckoutSession チェックアウトセッション作成ハンドラー
// @Summary チェックアウトセッションを作成
// @Description 注文からホスト型チェックアウトセッションを作成し、決済ページのURLを返します
// @Tags payments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateCheckoutSessionRequest true "チェックアウトセッション作成リクエスト"
// @Success 200 {object} CreateCheckoutSessionResponse "セッション作成成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Failure 502 {object} ErrorResponse "決済プロバイダーエラー"
// @Router /payments/checkout-session [post]
func (h *CheckoutHandler) CreateCheckoutSession(c echo.Context) error {
	var reqBody CreateCheckoutSessionRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	items := make([]checkoutapp.CheckoutItem, len(reqBody.Items))
	for i, item := range reqBody.Items {
		items[i] = checkoutapp.CheckoutItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	req := &checkoutapp.CreateCheckoutSessionRequest{
		OrderID:  reqBody.OrderID,
		Currency: reqBody.Currency,
		Items:    items,
	}

	resp, err := h.checkoutService.CreateCheckoutSession(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CreateCheckoutSessionResponse{
		CancelURL:  resp.CancelURL,
		SuccessURL: resp.SuccessURL,
		URL:        resp.URL,
	})
}
