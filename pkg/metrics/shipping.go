package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ShippingMetrics records the outcome of carrier rate lookups.
type ShippingMetrics struct {
	remoteDuration *prometheus.HistogramVec
	remoteFailure  *prometheus.CounterVec
	fallback       *prometheus.CounterVec
}

// NewShippingMetrics registers the shipping metrics on the provided registerer.
func NewShippingMetrics(reg prometheus.Registerer) *ShippingMetrics {
	if reg == nil {
		return &ShippingMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shipping_remote_duration_seconds",
		Help:    "Duration of carrier rate API calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_remote_failure",
		Help: "Carrier rate API calls that could not produce usable offers.",
	}, []string{"reason"})
	fallback := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_fallback_quotes",
		Help: "Quote requests answered by the local fallback pricing model.",
	}, []string{"reason"})
	reg.MustRegister(duration, failure, fallback)
	return &ShippingMetrics{
		remoteDuration: duration,
		remoteFailure:  failure,
		fallback:       fallback,
	}
}

// ObserveRemoteDuration records the duration of a carrier API call.
func (s *ShippingMetrics) ObserveRemoteDuration(outcome string, duration time.Duration) {
	if s == nil || s.remoteDuration == nil {
		return
	}
	s.remoteDuration.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

// IncRemoteFailure increments the failure counter for the given reason.
func (s *ShippingMetrics) IncRemoteFailure(reason string) {
	if s == nil || s.remoteFailure == nil {
		return
	}
	s.remoteFailure.WithLabelValues(normalizeLabel(reason)).Inc()
}

// IncFallback increments the fallback counter for the given reason.
func (s *ShippingMetrics) IncFallback(reason string) {
	if s == nil || s.fallback == nil {
		return
	}
	s.fallback.WithLabelValues(normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
