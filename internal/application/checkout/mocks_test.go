package checkout

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payments-server/internal/domain/payment"
)

// MockCheckoutGateway モックチェックアウトゲートウェイ
type MockCheckoutGateway struct {
	mock.Mock
}

func (m *MockCheckoutGateway) CreateSession(ctx context.Context, params *payment.SessionParams) (*payment.Session, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Session), args.Error(1)
}
