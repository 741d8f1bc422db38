package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	webhookapp "payments-server/internal/application/webhook"
)

// webhookSignatureHeader プロバイダーが付与する署名ヘッダー
const webhookSignatureHeader = "Stripe-Signature"

// WebhookHandler Webhook受信ハンドラー
type WebhookHandler struct {
	webhookService *webhookapp.WebhookApplicationService
}

// NewWebhookHandler 新しいWebhookHandlerを作成
func NewWebhookHandler(webhookService *webhookapp.WebhookApplicationService) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

// HandleWebhook Webhook受信ハンドラー
// @Summary 決済プロバイダーのWebhookを受信
// @Description 署名を検証し、課金成功イベントをメッセージバスへ中継します
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook署名"
// @Success 200 {object} WebhookResponse "受信成功"
// @Failure 400 {object} ErrorResponse "署名検証失敗"
// @Router /payments/webhook [post]
func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	// 署名検証には受信したボディをバイト列のまま使う必要がある
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	signature := c.Request().Header.Get(webhookSignatureHeader)

	req := &webhookapp.ProcessWebhookRequest{
		Payload:   payload,
		Signature: signature,
	}

	if _, err := h.webhookService.Process(c.Request().Context(), req); err != nil {
		return err
	}

	// 受信確認として署名をそのまま返す
	return c.JSON(http.StatusOK, WebhookResponse{
		Sign: signature,
	})
}
