package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	checkoutapp "payments-server/internal/application/checkout"
	webhookapp "payments-server/internal/application/webhook"
	"payments-server/internal/infrastructure/config"
	natsinfra "payments-server/internal/infrastructure/messaging/nats"
	otelinfra "payments-server/internal/infrastructure/observability/otel"
	"payments-server/internal/infrastructure/stripegateway"
	"payments-server/internal/presentation/rest"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// OpenTelemetryの初期化
	tracerShutdown, err := otelinfra.InitTracer(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown tracer: %v", err)
		}
	}()

	meterShutdown, err := otelinfra.InitMeter(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize meter: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown meter: %v", err)
		}
	}()

	// ロガーとメトリクスの初期化
	tracer := otelinfra.Tracer("payments-server")
	logger := otelinfra.NewLogger(tracer)
	metrics, err := otelinfra.NewMetrics("payments-server")
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	// 決済プロバイダーアダプターの初期化
	gateway := stripegateway.NewGateway(cfg.Stripe.SecretKey)
	verifier := stripegateway.NewVerifier(cfg.Stripe.WebhookSecret)

	// メッセージバス接続の初期化
	publisher, err := natsinfra.Connect(&cfg.NATS)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Printf("Failed to drain NATS connection: %v", err)
		}
	}()

	// アプリケーションサービスの初期化
	checkoutAppService := checkoutapp.NewCheckoutApplicationService(
		gateway,
		cfg.Stripe.SuccessURL,
		cfg.Stripe.CancelURL,
		logger,
		metrics,
	)

	webhookAppService := webhookapp.NewWebhookApplicationService(
		verifier,
		publisher,
		logger,
		metrics,
	)

	// REST APIルーターの初期化
	router, err := rest.NewRouter(
		cfg,
		logger,
		metrics,
		checkoutAppService,
		webhookAppService,
	)
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	// サーバーアドレスの設定
	address := fmt.Sprintf(":%d", cfg.Server.Port)

	// グレースフルシャットダウンの設定
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// REST APIサーバーを別ゴルーチンで起動
	go func() {
		log.Printf("REST API server starting on %s", address)
		if err := router.Start(address); err != nil {
			log.Printf("REST API server error: %v", err)
		}
	}()

	// シグナルを待機
	<-quit
	log.Println("Shutting down server...")

	// グレースフルシャットダウン
	if err := router.Shutdown(); err != nil {
		log.Printf("Error shutting down REST API server: %v", err)
	}

	log.Println("Server stopped")
}
