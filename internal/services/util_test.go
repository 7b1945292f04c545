package service_test

import (
	"context"

	"github.com/hogarfix/storefront-api/pkg/marketplace"
	"github.com/stretchr/testify/mock"
)

type mockMarketplaceClient struct {
	mock.Mock
}

func (m *mockMarketplaceClient) GetServiceCards(ctx context.Context) ([]marketplace.ServiceCard, error) {
	args := m.Called(ctx)

	if cards := args.Get(0); cards != nil {
		return cards.([]marketplace.ServiceCard), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockMarketplaceClient) GetTerms(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}

func (m *mockMarketplaceClient) CheckCategoryPermission(ctx context.Context, query marketplace.PermissionQuery) (bool, error) {
	args := m.Called(ctx, query)

	return args.Bool(0), args.Error(1)
}

func (m *mockMarketplaceClient) CreateOrder(ctx context.Context, payload *marketplace.OrderPayload) (*marketplace.OrderResult, error) {
	args := m.Called(ctx, payload)

	if result := args.Get(0); result != nil {
		return result.(*marketplace.OrderResult), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockRateLimiter struct {
	mock.Mock
}

func (m *mockRateLimiter) CheckCheckoutRateLimit(ctx context.Context, key string) (bool, int, int, error) {
	args := m.Called(ctx, key)

	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}
