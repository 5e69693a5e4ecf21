package store

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/actuli/actuli-api/internal/health"
)

// HealthChecker monitors store connectivity via periodic pings.
type HealthChecker struct {
	pinger       health.HealthPinger
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewHealthChecker creates a store health checker over the driver's pinger.
func NewHealthChecker(pinger health.HealthPinger, log zerolog.Logger, probeTimeout time.Duration) *HealthChecker {
	hc := &HealthChecker{
		pinger:       pinger,
		log:          log,
		probeTimeout: probeTimeout,
	}
	hc.healthy.Store(0) // start unhealthy until first successful probe
	return hc
}

// Name returns the checker name.
func (hc *HealthChecker) Name() string {
	return "store"
}

// IsHealthy returns the cached health status (non-blocking).
func (hc *HealthChecker) IsHealthy() bool {
	return hc.healthy.Load() == 1
}

// Start begins periodic health checking.
func (hc *HealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		to := hc.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		checkCtx, cancel := context.WithTimeout(ctx, to)
		defer cancel()

		if err := hc.pinger.HealthPing(checkCtx); err != nil {
			hc.log.Error().
				Str("checker", hc.Name()).
				Err(err).
				Msg("store health check failed")
			hc.healthy.Store(0)
		} else {
			hc.healthy.Store(1)
		}
	}

	check()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
