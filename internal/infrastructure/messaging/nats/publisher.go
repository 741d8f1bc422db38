package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"payments-server/internal/infrastructure/config"
)

// Conn 使用するnats.Connのサブセット。テスト用に差し替え可能にする
type Conn interface {
	PublishMsg(msg *nats.Msg) error
	Drain() error
}

// Publisher payment.EventPublisherのNATS実装
// 接続はプロセス起動時に一度だけ確立し、プロセス生存期間中保持する
type Publisher struct {
	conn Conn
}

// Connect NATSサーバーに接続してPublisherを作成
func Connect(cfg *config.NATSConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.URL(), nats.Name(cfg.ConnectionName))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &Publisher{conn: nc}, nil
}

// NewPublisherWithConn テスト用に接続を注入してPublisherを作成
func NewPublisherWithConn(conn Conn) *Publisher {
	return &Publisher{conn: conn}
}

// Publish ペイロードをJSONにして件名宛に発行する
// fire-and-forget: 下流コンシューマーのACKは待たない
func (p *Publisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	msg := &nats.Msg{
		Subject: subject,
		Data:    data,
		Header:  nats.Header{},
	}
	// メッセージIDはヘッダーに載せ、ペイロードのワイヤ互換を保つ
	msg.Header.Set("Nats-Msg-Id", uuid.NewString())

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// Close 接続をドレインして閉じる
func (p *Publisher) Close() error {
	return p.conn.Drain()
}
