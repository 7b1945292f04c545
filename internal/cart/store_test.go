package cart_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hogarfix/storefront-api/internal/cart"
	"github.com/hogarfix/storefront-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart() *models.Cart {
	return &models.Cart{
		ID:        uuid.New(),
		Items:     make(map[string]models.CartItem),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and Get round-trip", func(t *testing.T) {
		store := cart.NewMemoryStore()
		c := newTestCart()
		c.Items["svc-1"] = models.CartItem{ID: "svc-1", UnitPrice: 100, Quantity: 2, CategoryID: "1"}

		require.NoError(t, store.Create(ctx, c))

		got, err := store.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
		assert.Len(t, got.Items, 1)
	})

	t.Run("Get returns an independent copy", func(t *testing.T) {
		store := cart.NewMemoryStore()
		c := newTestCart()
		require.NoError(t, store.Create(ctx, c))

		first, err := store.Get(ctx, c.ID)
		require.NoError(t, err)
		first.Items["svc-9"] = models.CartItem{ID: "svc-9", Quantity: 1}
		first.ZoneSurcharge = 500

		second, err := store.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, second.Items)
		assert.Equal(t, float64(0), second.ZoneSurcharge)
	})

	t.Run("Update replaces the stored session", func(t *testing.T) {
		store := cart.NewMemoryStore()
		c := newTestCart()
		require.NoError(t, store.Create(ctx, c))

		c.ZoneID = "4"
		c.ZoneSurcharge = 80
		require.NoError(t, store.Update(ctx, c))

		got, err := store.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "4", got.ZoneID)
		assert.Equal(t, float64(80), got.ZoneSurcharge)
	})

	t.Run("Update of unknown session fails", func(t *testing.T) {
		store := cart.NewMemoryStore()

		err := store.Update(ctx, newTestCart())
		assert.ErrorIs(t, err, cart.ErrNotFound)
	})

	t.Run("Get of unknown session fails", func(t *testing.T) {
		store := cart.NewMemoryStore()

		_, err := store.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, cart.ErrNotFound)
	})

	t.Run("Delete removes the session", func(t *testing.T) {
		store := cart.NewMemoryStore()
		c := newTestCart()
		require.NoError(t, store.Create(ctx, c))
		require.NoError(t, store.Delete(ctx, c.ID))

		_, err := store.Get(ctx, c.ID)
		assert.ErrorIs(t, err, cart.ErrNotFound)
	})
}
