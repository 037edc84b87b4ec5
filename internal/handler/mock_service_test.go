package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/live"
	"github.com/osse101/prestige/internal/session"
)

// MockSessionService mocks session.Service
type MockSessionService struct {
	mock.Mock
}

var _ session.Service = (*MockSessionService)(nil)

func (m *MockSessionService) CreatePlayer(ctx context.Context, playerID string) (*session.State, error) {
	args := m.Called(ctx, playerID)
	state, _ := args.Get(0).(*session.State)
	return state, args.Error(1)
}

func (m *MockSessionService) DeletePlayer(ctx context.Context, playerID string) error {
	return m.Called(ctx, playerID).Error(0)
}

func (m *MockSessionService) GetState(ctx context.Context, playerID string) (*session.State, error) {
	args := m.Called(ctx, playerID)
	state, _ := args.Get(0).(*session.State)
	return state, args.Error(1)
}

func (m *MockSessionService) Credit(ctx context.Context, playerID string, currency domain.Currency, amount bignum.Value) (*session.State, error) {
	args := m.Called(ctx, playerID, currency, amount)
	state, _ := args.Get(0).(*session.State)
	return state, args.Error(1)
}

func (m *MockSessionService) PurchaseEffarigUnlock(ctx context.Context, playerID, key string) (*session.PurchaseResult, error) {
	args := m.Called(ctx, playerID, key)
	res, _ := args.Get(0).(*session.PurchaseResult)
	return res, args.Error(1)
}

func (m *MockSessionService) GrantEffarigUnlock(ctx context.Context, playerID, key string) (*session.PurchaseResult, error) {
	args := m.Called(ctx, playerID, key)
	res, _ := args.Get(0).(*session.PurchaseResult)
	return res, args.Error(1)
}

func (m *MockSessionService) StartEffarigRun(ctx context.Context, playerID string) (*session.RunResult, error) {
	args := m.Called(ctx, playerID)
	res, _ := args.Get(0).(*session.RunResult)
	return res, args.Error(1)
}

func (m *MockSessionService) StopEffarigRun(ctx context.Context, playerID string) (*session.RunResult, error) {
	args := m.Called(ctx, playerID)
	res, _ := args.Get(0).(*session.RunResult)
	return res, args.Error(1)
}

func (m *MockSessionService) HandleGameEvent(ctx context.Context, playerID, name string) (bool, error) {
	args := m.Called(ctx, playerID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionService) PurchaseDilationUpgrade(ctx context.Context, playerID, key string, snap *live.Snapshot) (*session.PurchaseResult, error) {
	args := m.Called(ctx, playerID, key, snap)
	res, _ := args.Get(0).(*session.PurchaseResult)
	return res, args.Error(1)
}

func (m *MockSessionService) ResetDilation(ctx context.Context, playerID string) (*session.State, error) {
	args := m.Called(ctx, playerID)
	state, _ := args.Get(0).(*session.State)
	return state, args.Error(1)
}

func (m *MockSessionService) Effects(ctx context.Context, playerID string, snap *live.Snapshot) (*session.Effects, error) {
	args := m.Called(ctx, playerID, snap)
	eff, _ := args.Get(0).(*session.Effects)
	return eff, args.Error(1)
}

func (m *MockSessionService) Ready(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
