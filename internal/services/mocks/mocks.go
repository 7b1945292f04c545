package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/hogarfix/storefront-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) CreateCart(ctx context.Context) (*models.Cart, error) {
	args := m.Called(ctx)

	if cart := args.Get(0); cart != nil {
		return cart.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) GetCart(ctx context.Context, id uuid.UUID) (*models.CartResponse, error) {
	args := m.Called(ctx, id)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.CartResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, id uuid.UUID, req *models.AddItemRequest) (*models.CartResponse, error) {
	args := m.Called(ctx, id, req)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.CartResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, id uuid.UUID, req *models.UpdateQuantityRequest) (*models.CartResponse, error) {
	args := m.Called(ctx, id, req)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.CartResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) SetZone(ctx context.Context, id uuid.UUID, req *models.SetZoneRequest) (*models.CartResponse, error) {
	args := m.Called(ctx, id, req)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.CartResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) ClearCart(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListServices(ctx context.Context) (*models.CatalogResponse, error) {
	args := m.Called(ctx)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.CatalogResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CatalogService) GetTerms(ctx context.Context) (*models.TermsResponse, error) {
	args := m.Called(ctx)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.TermsResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CatalogService) CheckCategoryPermission(ctx context.Context, level0, level1, level2, level3 string) (*models.PermissionResponse, error) {
	args := m.Called(ctx, level0, level1, level2, level3)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.PermissionResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) SubmitOrder(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	args := m.Called(ctx, req)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.CheckoutResponse), args.Error(1)
	}

	return nil, args.Error(1)
}
