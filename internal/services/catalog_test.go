package service_test

import (
	"context"
	"testing"

	appErrors "github.com/hogarfix/storefront-api/internal/errors"
	service "github.com/hogarfix/storefront-api/internal/services"
	"github.com/hogarfix/storefront-api/pkg/marketplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListServices(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Maps backend cards", func(t *testing.T) {
		client := new(mockMarketplaceClient)
		svc := service.NewCatalogService(client, "42")

		client.On("GetServiceCards", mock.Anything).Return([]marketplace.ServiceCard{
			{ID: "10", Title: "Instalación", Price: 1500, CategoryID: "1", Commission: 10, CommissionType: "P"},
		}, nil).Once()

		resp, err := svc.ListServices(ctx)

		require.NoError(t, err)
		assert.False(t, resp.Fallback)
		require.Len(t, resp.Services, 1)
		assert.Equal(t, "Instalación", resp.Services[0].Name)
		assert.Equal(t, float64(1500), resp.Services[0].UnitPrice)
		assert.Equal(t, "1", resp.Services[0].CategoryID)
		client.AssertExpectations(t)
	})

	t.Run("Failure - Upstream error serves the built-in catalog", func(t *testing.T) {
		client := new(mockMarketplaceClient)
		svc := service.NewCatalogService(client, "42")

		client.On("GetServiceCards", mock.Anything).Return(nil, assert.AnError).Once()

		resp, err := svc.ListServices(ctx)

		require.NoError(t, err)
		assert.True(t, resp.Fallback)
		assert.Equal(t, service.DefaultServices(), resp.Services)
		client.AssertExpectations(t)
	})

	t.Run("Failure - Cancelled request gets no fallback", func(t *testing.T) {
		client := new(mockMarketplaceClient)
		svc := service.NewCatalogService(client, "42")

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		client.On("GetServiceCards", mock.Anything).Return(nil, context.Canceled).Once()

		resp, err := svc.ListServices(cancelled)

		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUpstream, appErr.Code)
	})
}

func TestGetTerms(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Sanitizes decoded text", func(t *testing.T) {
		client := new(mockMarketplaceClient)
		svc := service.NewCatalogService(client, "42")

		client.On("GetTerms", mock.Anything).
			Return("<p>Términos</p><script>alert(1)</script>", nil).Once()

		resp, err := svc.GetTerms(ctx)

		require.NoError(t, err)
		assert.Contains(t, resp.HTML, "<p>Términos</p>")
		assert.NotContains(t, resp.HTML, "<script>")
		client.AssertExpectations(t)
	})

	t.Run("Failure - Upstream error is surfaced", func(t *testing.T) {
		client := new(mockMarketplaceClient)
		svc := service.NewCatalogService(client, "42")

		client.On("GetTerms", mock.Anything).Return("", assert.AnError).Once()

		resp, err := svc.GetTerms(ctx)

		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUpstream, appErr.Code)
	})
}

func TestCheckCategoryPermission(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Granted verdict passes through", func(t *testing.T) {
		client := new(mockMarketplaceClient)
		svc := service.NewCatalogService(client, "42")

		client.On("CheckCategoryPermission", mock.Anything, marketplace.PermissionQuery{
			CommerceID: "42", Level0: "1", Level1: "2",
		}).Return(true, nil).Once()

		resp, err := svc.CheckCategoryPermission(ctx, "1", "2", "", "")

		require.NoError(t, err)
		assert.True(t, resp.Granted)
		client.AssertExpectations(t)
	})

	t.Run("Failure - Readable error denies", func(t *testing.T) {
		client := new(mockMarketplaceClient)
		svc := service.NewCatalogService(client, "42")

		client.On("CheckCategoryPermission", mock.Anything, mock.Anything).
			Return(false, assert.AnError).Once()

		resp, err := svc.CheckCategoryPermission(ctx, "1", "", "", "")

		require.NoError(t, err)
		assert.False(t, resp.Granted)
	})
}
