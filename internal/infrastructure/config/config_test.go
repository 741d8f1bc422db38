package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv 必須の環境変数を設定する
func setRequiredEnv() {
	os.Setenv("STRIPE_SECRET_KEY", "sk_test_xxx")
	os.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_xxx")
	os.Setenv("STRIPE_SUCCESS_URL", "http://localhost:3000/payments/success")
	os.Setenv("STRIPE_CANCEL_URL", "http://localhost:3000/payments/cancel")
	os.Setenv("NATS_SERVERS", "nats://localhost:4222")
}

// unsetRequiredEnv 必須の環境変数を削除する
func unsetRequiredEnv() {
	os.Unsetenv("STRIPE_SECRET_KEY")
	os.Unsetenv("STRIPE_WEBHOOK_SECRET")
	os.Unsetenv("STRIPE_SUCCESS_URL")
	os.Unsetenv("STRIPE_CANCEL_URL")
	os.Unsetenv("NATS_SERVERS")
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func()
		cleanupEnv  func()
		wantError   bool
		checkConfig func(*testing.T, *Config)
	}{
		{
			name:       "正常系: デフォルト値で設定を読み込む",
			setupEnv:   setRequiredEnv,
			cleanupEnv: unsetRequiredEnv,
			wantError:  false,
			checkConfig: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "sk_test_xxx", cfg.Stripe.SecretKey)
				assert.Equal(t, "whsec_xxx", cfg.Stripe.WebhookSecret)
				assert.Equal(t, []string{"nats://localhost:4222"}, cfg.NATS.Servers)
				assert.Equal(t, "payments-server", cfg.NATS.ConnectionName)
				assert.False(t, cfg.InternalAPI.Enabled)
			},
		},
		{
			name: "正常系: 環境変数から設定を読み込む",
			setupEnv: func() {
				setRequiredEnv()
				os.Setenv("ENVIRONMENT", "production")
				os.Setenv("SERVER_PORT", "9000")
				os.Setenv("SERVER_READ_TIMEOUT", "30s")
				os.Setenv("NATS_SERVERS", "nats://nats-1:4222, nats://nats-2:4222")
				os.Setenv("API_KEY", "internal-key")
			},
			cleanupEnv: func() {
				unsetRequiredEnv()
				os.Unsetenv("ENVIRONMENT")
				os.Unsetenv("SERVER_PORT")
				os.Unsetenv("SERVER_READ_TIMEOUT")
				os.Unsetenv("API_KEY")
			},
			wantError: false,
			checkConfig: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "production", cfg.Environment)
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, []string{"nats://nats-1:4222", "nats://nats-2:4222"}, cfg.NATS.Servers)
				assert.True(t, cfg.InternalAPI.Enabled)
				assert.Equal(t, "internal-key", cfg.InternalAPI.APIKey)
			},
		},
		{
			name: "異常系: STRIPE_SECRET_KEYが空",
			setupEnv: func() {
				setRequiredEnv()
				os.Unsetenv("STRIPE_SECRET_KEY")
			},
			cleanupEnv:  unsetRequiredEnv,
			wantError:   true,
			checkConfig: nil,
		},
		{
			name: "異常系: STRIPE_WEBHOOK_SECRETが空",
			setupEnv: func() {
				setRequiredEnv()
				os.Unsetenv("STRIPE_WEBHOOK_SECRET")
			},
			cleanupEnv:  unsetRequiredEnv,
			wantError:   true,
			checkConfig: nil,
		},
		{
			name: "異常系: リダイレクトURLが空",
			setupEnv: func() {
				setRequiredEnv()
				os.Unsetenv("STRIPE_SUCCESS_URL")
			},
			cleanupEnv:  unsetRequiredEnv,
			wantError:   true,
			checkConfig: nil,
		},
		{
			name: "異常系: NATS_SERVERSが空",
			setupEnv: func() {
				setRequiredEnv()
				os.Unsetenv("NATS_SERVERS")
			},
			cleanupEnv:  unsetRequiredEnv,
			wantError:   true,
			checkConfig: nil,
		},
		{
			name: "異常系: ポート番号が範囲外",
			setupEnv: func() {
				setRequiredEnv()
				os.Setenv("SERVER_PORT", "70000")
			},
			cleanupEnv: func() {
				unsetRequiredEnv()
				os.Unsetenv("SERVER_PORT")
			},
			wantError:   true,
			checkConfig: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv()
			defer tt.cleanupEnv()

			cfg, err := Load()

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
				if tt.checkConfig != nil {
					tt.checkConfig(t, cfg)
				}
			}
		})
	}
}

func TestNATSConfig_URL(t *testing.T) {
	cfg := NATSConfig{
		Servers: []string{"nats://nats-1:4222", "nats://nats-2:4222"},
	}

	assert.Equal(t, "nats://nats-1:4222,nats://nats-2:4222", cfg.URL())
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue int
		want         int
	}{
		{
			name:         "環境変数が設定されている",
			envValue:     "123",
			defaultValue: 0,
			want:         123,
		},
		{
			name:         "環境変数が空",
			envValue:     "",
			defaultValue: 456,
			want:         456,
		},
		{
			name:         "環境変数が無効な値",
			envValue:     "invalid",
			defaultValue: 789,
			want:         789,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_INT", tt.envValue)
			defer os.Unsetenv("TEST_INT")

			got := getEnvAsInt("TEST_INT", tt.defaultValue)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetEnvAsSlice(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue []string
		want         []string
	}{
		{
			name:         "単一の値",
			envValue:     "nats://localhost:4222",
			defaultValue: nil,
			want:         []string{"nats://localhost:4222"},
		},
		{
			name:         "カンマ区切りの複数値（空白は除去）",
			envValue:     "a:4222, b:4222 ,c:4222",
			defaultValue: nil,
			want:         []string{"a:4222", "b:4222", "c:4222"},
		},
		{
			name:         "環境変数が空",
			envValue:     "",
			defaultValue: []string{"default:4222"},
			want:         []string{"default:4222"},
		},
		{
			name:         "カンマのみ",
			envValue:     ",,",
			defaultValue: []string{"default:4222"},
			want:         []string{"default:4222"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_SLICE", tt.envValue)
			defer os.Unsetenv("TEST_SLICE")

			got := getEnvAsSlice("TEST_SLICE", tt.defaultValue)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue time.Duration
		want         time.Duration
	}{
		{
			name:         "環境変数が有効な時間",
			envValue:     "1h",
			defaultValue: time.Minute,
			want:         time.Hour,
		},
		{
			name:         "環境変数が空",
			envValue:     "",
			defaultValue: time.Minute,
			want:         time.Minute,
		},
		{
			name:         "環境変数が無効な値",
			envValue:     "invalid",
			defaultValue: time.Hour,
			want:         time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_DURATION", tt.envValue)
			defer os.Unsetenv("TEST_DURATION")

			got := getEnvAsDuration("TEST_DURATION", tt.defaultValue)
			assert.Equal(t, tt.want, got)
		})
	}
}
