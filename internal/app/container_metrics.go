package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"rosterbid/internal/metrics"
)

type metricsOut struct {
	dig.Out
	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	GatewayRetriesTotal    prometheus.Counter `name:"gateway_retries_total"`
	ResolutionsTotal       prometheus.Counter `name:"resolutions_total"`
	MemoHitsTotal          prometheus.Counter `name:"resolution_memo_hits_total"`
}

func newMetrics() metricsOut {
	return metricsOut{
		RateLimitExceededTotal: registerCounter(metrics.NewRateLimitExceededTotal()),
		GatewayRetriesTotal:    registerCounter(metrics.NewGatewayRetriesTotal()),
		ResolutionsTotal:       registerCounter(metrics.NewResolutionsTotal()),
		MemoHitsTotal:          registerCounter(metrics.NewResolutionMemoHitsTotal()),
	}
}

// registerCounter registers c, reusing the already-registered collector when
// a container is rebuilt inside one process (tests).
func registerCounter(c prometheus.Counter) prometheus.Counter {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
	}
	return c
}
