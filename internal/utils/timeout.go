package utils

import (
	"context"
	"time"
)

const DefaultUpstreamTimeout = 10 * time.Second

func WithUpstreamTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultUpstreamTimeout)
}
