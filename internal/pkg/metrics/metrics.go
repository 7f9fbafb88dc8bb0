// Package metrics defines the Prometheus collectors exported by the registry.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "witnet_addresses"

// Lookup outcomes.
const (
	OutcomeFound       = "found"
	OutcomeNotFound    = "not_found"
	OutcomeNotDeployed = "not_deployed"
	OutcomeMalformed   = "malformed"
)

// Reload results.
const (
	ReloadSuccess = "success"
	ReloadFailure = "failure"
)

var (
	// LookupsTotal counts address lookups by outcome.
	LookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Address lookups by outcome.",
	}, []string{"outcome"})

	// ReloadsTotal counts table reload attempts by result.
	ReloadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reloads_total",
		Help:      "Address table reloads by result.",
	}, []string{"result"})

	// ActiveNetworks is the number of networks in the currently published table.
	ActiveNetworks = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_networks",
		Help:      "Networks present in the active address table.",
	})

	// RateLimitedTotal counts API requests rejected by the per-client limiter.
	RateLimitedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "API requests rejected by the rate limiter.",
	})

	registerOnce sync.Once
)

// MustRegisterMetrics registers all collectors with the default registry. Safe to call more than once.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(LookupsTotal, ReloadsTotal, ActiveNetworks, RateLimitedTotal)
	})
}
