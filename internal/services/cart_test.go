package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hogarfix/storefront-api/internal/cart"
	appErrors "github.com/hogarfix/storefront-api/internal/errors"
	"github.com/hogarfix/storefront-api/internal/models"
	service "github.com/hogarfix/storefront-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService() service.CartService {
	return service.NewCartService(cart.NewMemoryStore())
}

func addBundleItem(t *testing.T, svc service.CartService, cartID uuid.UUID, quantity int, unitPrice float64) *models.CartResponse {
	t.Helper()

	resp, err := svc.AddItem(context.Background(), cartID, &models.AddItemRequest{
		ID:         "svc-1",
		Name:       "Instalación",
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		CategoryID: "1",
	})
	require.NoError(t, err)

	return resp
}

func TestCreateCart(t *testing.T) {
	svc := newCartService()

	newCart, err := svc.CreateCart(context.Background())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, newCart.ID)
	assert.Empty(t, newCart.Items)
	assert.Equal(t, float64(0), newCart.ZoneSurcharge)
}

func TestGetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Empty cart quotes to zero", func(t *testing.T) {
		svc := newCartService()
		created, err := svc.CreateCart(ctx)
		require.NoError(t, err)

		resp, err := svc.GetCart(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, float64(0), resp.Quote.Subtotal)
		assert.Equal(t, float64(0), resp.Quote.Total)
		assert.Empty(t, resp.Quote.Discounts)
	})

	t.Run("Failure - Cart not found", func(t *testing.T) {
		svc := newCartService()

		resp, err := svc.GetCart(ctx, uuid.New())

		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Quote recomputed with bundle discount", func(t *testing.T) {
		svc := newCartService()
		created, err := svc.CreateCart(ctx)
		require.NoError(t, err)

		resp := addBundleItem(t, svc, created.ID, 4, 100)

		assert.Equal(t, float64(400), resp.Quote.Subtotal)
		require.Len(t, resp.Quote.Discounts, 1)
		assert.Equal(t, float64(40), resp.Quote.Discounts[0].Amount)
		assert.Equal(t, float64(360), resp.Quote.Total)
	})

	t.Run("Success - Re-adding an item accumulates quantity", func(t *testing.T) {
		svc := newCartService()
		created, err := svc.CreateCart(ctx)
		require.NoError(t, err)

		addBundleItem(t, svc, created.ID, 2, 100)
		resp := addBundleItem(t, svc, created.ID, 3, 100)

		require.Len(t, resp.Cart.Items, 1)
		assert.Equal(t, 5, resp.Cart.Items["svc-1"].Quantity)
		require.Len(t, resp.Quote.Discounts, 1)
		assert.Equal(t, 15, resp.Quote.Discounts[0].Percentage)
	})

	t.Run("Failure - Cart not found", func(t *testing.T) {
		svc := newCartService()

		resp, err := svc.AddItem(ctx, uuid.New(), &models.AddItemRequest{ID: "svc-1", Name: "x", Quantity: 1, CategoryID: "1"})

		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Quantity change loses the discount tier", func(t *testing.T) {
		svc := newCartService()
		created, err := svc.CreateCart(ctx)
		require.NoError(t, err)
		addBundleItem(t, svc, created.ID, 5, 100)

		resp, err := svc.UpdateQuantity(ctx, created.ID, &models.UpdateQuantityRequest{ItemID: "svc-1", Quantity: 2})

		require.NoError(t, err)
		assert.Empty(t, resp.Quote.Discounts)
		assert.Equal(t, float64(200), resp.Quote.Total)
	})

	t.Run("Success - Zero quantity removes the item", func(t *testing.T) {
		svc := newCartService()
		created, err := svc.CreateCart(ctx)
		require.NoError(t, err)
		addBundleItem(t, svc, created.ID, 3, 100)

		resp, err := svc.UpdateQuantity(ctx, created.ID, &models.UpdateQuantityRequest{ItemID: "svc-1", Quantity: 0})

		require.NoError(t, err)
		assert.Empty(t, resp.Cart.Items)
		assert.Equal(t, float64(0), resp.Quote.Total)
	})

	t.Run("Failure - Item not in cart", func(t *testing.T) {
		svc := newCartService()
		created, err := svc.CreateCart(ctx)
		require.NoError(t, err)

		resp, err := svc.UpdateQuantity(ctx, created.ID, &models.UpdateQuantityRequest{ItemID: "missing", Quantity: 1})

		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})
}

func TestSetZone(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Surcharge applied after discounts", func(t *testing.T) {
		svc := newCartService()
		created, err := svc.CreateCart(ctx)
		require.NoError(t, err)
		addBundleItem(t, svc, created.ID, 12, 50)

		resp, err := svc.SetZone(ctx, created.ID, &models.SetZoneRequest{ZoneID: "3", Surcharge: 20})

		require.NoError(t, err)
		assert.Equal(t, "3", resp.Cart.ZoneID)
		assert.Equal(t, float64(20), resp.Quote.Surcharge)
		// 600 - 120 + 20
		assert.Equal(t, float64(500), resp.Quote.Total)
	})

	t.Run("Success - Overwriting replaces the previous surcharge", func(t *testing.T) {
		svc := newCartService()
		created, err := svc.CreateCart(ctx)
		require.NoError(t, err)

		_, err = svc.SetZone(ctx, created.ID, &models.SetZoneRequest{ZoneID: "3", Surcharge: 20})
		require.NoError(t, err)

		resp, err := svc.SetZone(ctx, created.ID, &models.SetZoneRequest{ZoneID: "5", Surcharge: 45})
		require.NoError(t, err)
		assert.Equal(t, float64(45), resp.Cart.ZoneSurcharge)
	})
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	svc := newCartService()

	created, err := svc.CreateCart(ctx)
	require.NoError(t, err)
	addBundleItem(t, svc, created.ID, 3, 100)

	require.NoError(t, svc.ClearCart(ctx, created.ID))

	_, err = svc.GetCart(ctx, created.ID)
	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
}
