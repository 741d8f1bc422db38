package rest

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	checkoutapp "payments-server/internal/application/checkout"
	webhookapp "payments-server/internal/application/webhook"
	"payments-server/internal/infrastructure/config"
	otelinfra "payments-server/internal/infrastructure/observability/otel"
	"payments-server/internal/presentation/rest/handler"
	restmiddleware "payments-server/internal/presentation/rest/middleware"
)

// Router REST APIルーター
type Router struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
	webhookHandler  *handler.WebhookHandler
}

// NewRouter 新しいRouterを作成
func NewRouter(
	cfg *config.Config,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	checkoutService *checkoutapp.CheckoutApplicationService,
	webhookService *webhookapp.WebhookApplicationService,
) (*Router, error) {
	e := echo.New()

	// Echoのデフォルトエラーハンドラーを無効化（カスタムエラーハンドラーを使用）
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		// エラーハンドリングミドルウェアで処理される
	}

	// ミドルウェアの設定
	setupMiddleware(e, logger, metrics)

	// ハンドラーの作成
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	webhookHandler := handler.NewWebhookHandler(webhookService)

	// ルーティングの設定
	setupRoutes(e, cfg, logger, checkoutHandler, webhookHandler)

	// Swagger UI / ReDoc統合
	SetupSwagger(e)

	return &Router{
		echo:            e,
		checkoutHandler: checkoutHandler,
		webhookHandler:  webhookHandler,
	}, nil
}

// setupMiddleware ミドルウェアを設定
func setupMiddleware(e *echo.Echo, logger *otelinfra.Logger, metrics *otelinfra.Metrics) {
	// リカバリーミドルウェア
	e.Use(middleware.Recover())

	// CORS設定
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"}, // 本番環境では適切に設定
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-API-Key", "Stripe-Signature"},
	}))

	// リクエストIDの設定
	e.Use(middleware.RequestID())

	// セキュリティヘッダーミドルウェア
	e.Use(restmiddleware.SecurityHeadersMiddleware())

	// トレーシングミドルウェア
	e.Use(restmiddleware.TracingMiddleware())

	// ログミドルウェア
	e.Use(restmiddleware.LoggingMiddleware(logger))

	// メトリクスミドルウェア
	e.Use(restmiddleware.MetricsMiddleware(metrics))

	// エラーハンドリングミドルウェア
	e.Use(restmiddleware.ErrorHandlerMiddleware(logger))
}

// setupRoutes ルーティングを設定
func setupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	logger *otelinfra.Logger,
	checkoutHandler *handler.CheckoutHandler,
	webhookHandler *handler.WebhookHandler,
) {
	// API v1グループ
	api := e.Group("/api/v1")

	// チェックアウトセッション作成（内部API: APIキーで保護可能）
	internalGroup := api.Group("", restmiddleware.APIKeyMiddleware(&cfg.InternalAPI, logger))
	internalGroup.POST("/payments/checkout-session", checkoutHandler.CreateCheckoutSession)

	// Webhook受信（プロバイダーからの呼び出しのためAPIキーでは保護しない。
	// 正当性は署名検証で担保する）
	api.POST("/payments/webhook", webhookHandler.HandleWebhook)

	// ヘルスチェックエンドポイント（認証不要）
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}

// Start サーバーを起動
func (r *Router) Start(address string) error {
	return r.echo.Start(address)
}

// Shutdown サーバーをシャットダウン
func (r *Router) Shutdown() error {
	return r.echo.Close()
}
