package service

import (
	"context"
	"log/slog"

	"github.com/hogarfix/storefront-api/internal/api/middleware"
	"github.com/hogarfix/storefront-api/internal/errors"
	"github.com/hogarfix/storefront-api/internal/metrics"
	"github.com/hogarfix/storefront-api/internal/models"
	"github.com/hogarfix/storefront-api/internal/utils"
	"github.com/hogarfix/storefront-api/pkg/marketplace"
	"github.com/microcosm-cc/bluemonday"
)

type CatalogService interface {
	ListServices(ctx context.Context) (*models.CatalogResponse, error)
	GetTerms(ctx context.Context) (*models.TermsResponse, error)
	CheckCategoryPermission(ctx context.Context, level0, level1, level2, level3 string) (*models.PermissionResponse, error)
}

type catalogService struct {
	client     marketplace.Client
	commerceID string
	sanitizer  *bluemonday.Policy
}

func NewCatalogService(client marketplace.Client, commerceID string) CatalogService {
	return &catalogService{
		client:     client,
		commerceID: commerceID,
		sanitizer:  bluemonday.UGCPolicy(),
	}
}

func (s *catalogService) ListServices(ctx context.Context) (*models.CatalogResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	upstreamCtx, cancel := utils.WithUpstreamTimeout(ctx)
	defer cancel()

	cards, err := s.client.GetServiceCards(upstreamCtx)
	if err != nil {
		if ctx.Err() != nil {
			// The caller is gone; do not serve fallback data for a dead request.
			return nil, errors.UpstreamError("Catalog request cancelled").WithError(ctx.Err())
		}

		logger.Warn("Falling back to built-in catalog", slog.String("error", err.Error()))
		metrics.ObserveUpstream("service_cards", metrics.OutcomeFallback)

		return &models.CatalogResponse{Services: DefaultServices(), Fallback: true}, nil
	}

	metrics.ObserveUpstream("service_cards", metrics.OutcomeOK)

	services := make([]models.Service, 0, len(cards))

	for _, card := range cards {
		services = append(services, models.Service{
			ID:             card.ID,
			Name:           card.Title,
			Description:    card.Description,
			UnitPrice:      card.Price,
			CategoryID:     card.CategoryID,
			ImageURL:       card.ImageURL,
			Commission:     card.Commission,
			CommissionType: card.CommissionType,
		})
	}

	return &models.CatalogResponse{Services: services}, nil
}

func (s *catalogService) GetTerms(ctx context.Context) (*models.TermsResponse, error) {
	upstreamCtx, cancel := utils.WithUpstreamTimeout(ctx)
	defer cancel()

	text, err := s.client.GetTerms(upstreamCtx)
	if err != nil {
		metrics.ObserveUpstream("terms", metrics.OutcomeError)

		return nil, errors.UpstreamError("Terms and conditions are unavailable").WithError(err)
	}

	metrics.ObserveUpstream("terms", metrics.OutcomeOK)

	// The decoded text is rendered as HTML downstream, so it is sanitized here.
	return &models.TermsResponse{HTML: s.sanitizer.Sanitize(text)}, nil
}

// CheckCategoryPermission fails closed: any readable failure means denied.
// Opaque responses are already resolved by the client's policy.
func (s *catalogService) CheckCategoryPermission(ctx context.Context, level0, level1, level2, level3 string) (*models.PermissionResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	upstreamCtx, cancel := utils.WithUpstreamTimeout(ctx)
	defer cancel()

	granted, err := s.client.CheckCategoryPermission(upstreamCtx, marketplace.PermissionQuery{
		CommerceID: s.commerceID,
		Level0:     level0,
		Level1:     level1,
		Level2:     level2,
		Level3:     level3,
	})
	if err != nil {
		logger.Warn("Permission check failed, denying", slog.String("error", err.Error()))
		metrics.ObserveUpstream("category_permission", metrics.OutcomeError)

		return &models.PermissionResponse{Granted: false}, nil
	}

	metrics.ObserveUpstream("category_permission", metrics.OutcomeOK)

	return &models.PermissionResponse{Granted: granted}, nil
}
