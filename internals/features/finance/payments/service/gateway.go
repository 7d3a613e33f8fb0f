package service

import (
	"context"
	"fmt"
	"time"

	orderModel "fitstudio_backend/internals/features/finance/orders/model"
	clientModel "fitstudio_backend/internals/features/studio/clients/model"
	helper "fitstudio_backend/internals/helpers"
)

// Charge is what the gateway needs to collect for one order.
type Charge struct {
	Order  *orderModel.OrderModel
	Client *clientModel.ClientModel
	Amount float64
	Method string
}

// ChargeResult reports the gateway outcome. Settled=false means the
// payment stays pending until the provider confirms it.
type ChargeResult struct {
	TransactionID string
	Settled       bool
	Response      helper.Attributes
}

type Gateway interface {
	Name() string
	Charge(ctx context.Context, ch Charge) (*ChargeResult, error)
}

// mockGateway settles every charge immediately.
type mockGateway struct {
	now func() time.Time
}

func NewMockGateway() Gateway {
	return &mockGateway{now: time.Now}
}

func (g *mockGateway) Name() string { return "mock" }

func (g *mockGateway) Charge(_ context.Context, ch Charge) (*ChargeResult, error) {
	if ch.Amount <= 0 {
		return nil, fmt.Errorf("mock gateway: invalid amount %.2f", ch.Amount)
	}
	return &ChargeResult{
		TransactionID: fmt.Sprintf("txn_%d", g.now().UnixNano()),
		Settled:       true,
		Response:      helper.Attributes{"mock": "true", "status": "success"},
	}, nil
}
