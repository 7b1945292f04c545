package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hogarfix/storefront-api/internal/api/middleware"
	"github.com/hogarfix/storefront-api/internal/cart"
	"github.com/hogarfix/storefront-api/internal/checkout"
	"github.com/hogarfix/storefront-api/internal/errors"
	"github.com/hogarfix/storefront-api/internal/metrics"
	"github.com/hogarfix/storefront-api/internal/models"
	"github.com/hogarfix/storefront-api/internal/pricing"
	repository "github.com/hogarfix/storefront-api/internal/repositories"
	"github.com/hogarfix/storefront-api/internal/utils"
	"github.com/hogarfix/storefront-api/pkg/marketplace"
)

type CheckoutService interface {
	SubmitOrder(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
}

type checkoutService struct {
	carts       cart.Store
	client      marketplace.Client
	rateLimiter repository.RateLimitRepository
}

func NewCheckoutService(carts cart.Store, client marketplace.Client, rateLimiter repository.RateLimitRepository) CheckoutService {
	return &checkoutService{carts: carts, client: client, rateLimiter: rateLimiter}
}

func (s *checkoutService) SubmitOrder(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	allowed, _, retryAfter, err := s.rateLimiter.CheckCheckoutRateLimit(ctx, req.Email)
	if err != nil {
		// Limiter infrastructure trouble must not block checkout.
		logger.Warn("Rate limit check unavailable, proceeding", slog.String("error", err.Error()))
	} else if !allowed {
		return nil, errors.TooManyRequestsError("Too many order attempts").
			WithDetail(fmt.Sprintf("Retry after %d seconds", retryAfter))
	}

	session, err := s.carts.Get(ctx, req.CartID)
	if err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	if len(session.Items) == 0 {
		return nil, errors.BadRequestError("Cannot checkout an empty cart")
	}

	quote := pricing.Quote(session.ItemList(), session.ZoneSurcharge)
	payload := checkout.BuildOrderPayload(req, session)

	upstreamCtx, cancel := utils.WithUpstreamTimeout(ctx)
	defer cancel()

	result, err := s.client.CreateOrder(upstreamCtx, payload)
	if err != nil {
		metrics.ObserveUpstream("create_order", metrics.OutcomeError)

		// No automatic retry; the caller decides whether to resubmit.
		return nil, errors.UpstreamError("Order submission failed").WithError(err)
	}

	if result.Degraded {
		metrics.ObserveUpstream("create_order", metrics.OutcomeOpaque)
		logger.Warn("Order accepted through degraded fallback", slog.String("cart_id", req.CartID.String()))
	} else {
		metrics.ObserveUpstream("create_order", metrics.OutcomeOK)
	}

	// A submitted order ends the flow; dropping the session guarantees the
	// next flow starts without a stale zone surcharge.
	if err := s.carts.Delete(ctx, req.CartID); err != nil {
		logger.Warn("Failed to drop cart session after checkout", slog.String("error", err.Error()))
	}

	return &models.CheckoutResponse{
		OrderID:  result.ID,
		Quote:    quote,
		Degraded: result.Degraded,
	}, nil
}
