package health

import (
	"context"
	stdErrors "errors"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/hogarfix/storefront-api/internal/config"
	"github.com/hogarfix/storefront-api/pkg/marketplace"
)

type Endpoints struct {
	MarketplaceClient marketplace.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront-api",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:      "marketplace",
				Timeout:   5 * time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {
					if endpoints.MarketplaceClient == nil {
						return fmt.Errorf("marketplace client is not initialized")
					}

					_, err := endpoints.MarketplaceClient.GetServiceCards(ctx)
					// An opaque response still proves the backend is reachable.
					if err != nil && !stdErrors.Is(err, marketplace.ErrOpaqueResponse) {
						return fmt.Errorf("failed to reach marketplace backend: %w", err)
					}

					return nil
				},
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
