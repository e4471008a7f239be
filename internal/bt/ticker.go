// File: internal/bt/ticker.go
package bt

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Ticker is the injected scheduling host. It drives a single node at a fixed
// rate on the calling goroutine, so node ticks are never reentrant and nodes
// need no locking of their own state.
type Ticker struct {
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewTicker creates a ticker running at rateHz ticks per second.
func NewTicker(rateHz float64, logger *zap.Logger) *Ticker {
	if rateHz <= 0 {
		rateHz = 10
	}
	return &Ticker{
		limiter: rate.NewLimiter(rate.Limit(rateHz), 1),
		logger:  logger.Named("ticker"),
	}
}

// Run ticks the node until it reports a terminal status or the context ends.
// The node's final status is returned; a context cancellation surfaces as the
// context's error with the last observed status.
func (t *Ticker) Run(ctx context.Context, node Node) (Status, error) {
	status := StatusRunning
	for {
		if err := t.limiter.Wait(ctx); err != nil {
			return status, fmt.Errorf("tick scheduling stopped: %w", err)
		}

		status = node.Tick(ctx)
		t.logger.Debug("node ticked",
			zap.String("node", node.Name()),
			zap.Stringer("status", status))

		if status.Terminal() {
			return status, nil
		}
	}
}
