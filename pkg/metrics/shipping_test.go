package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestShippingMetricsRecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewShippingMetrics(reg)

	m.ObserveRemoteDuration("success", 120*time.Millisecond)
	m.IncRemoteFailure("remote_error")
	m.IncRemoteFailure("remote_error")
	m.IncFallback("no_valid_offers")
	m.IncFallback("")

	if got := counterValue(t, reg, "shipping_remote_failure", "reason", "remote_error"); got != 2 {
		t.Fatalf("expected 2 remote failures, got %v", got)
	}
	if got := counterValue(t, reg, "shipping_fallback_quotes", "reason", "no_valid_offers"); got != 1 {
		t.Fatalf("expected 1 fallback, got %v", got)
	}
	if got := counterValue(t, reg, "shipping_fallback_quotes", "reason", "unknown"); got != 1 {
		t.Fatalf("expected empty reason normalized to unknown, got %v", got)
	}
	if got := histogramCount(t, reg, "shipping_remote_duration_seconds", "outcome", "success"); got != 1 {
		t.Fatalf("expected 1 duration sample, got %v", got)
	}
}

func TestShippingMetricsNilSafe(t *testing.T) {
	m := NewShippingMetrics(nil)
	m.ObserveRemoteDuration("success", time.Second)
	m.IncRemoteFailure("remote_error")
	m.IncFallback("remote_error")

	var none *ShippingMetrics
	none.IncFallback("remote_error")
}

func counterValue(t *testing.T, reg *prometheus.Registry, name, labelName, labelValue string) float64 {
	t.Helper()
	metric := findMetric(t, reg, name, labelName, labelValue)
	if metric == nil || metric.GetCounter() == nil {
		t.Fatalf("counter %s{%s=%q} not found", name, labelName, labelValue)
	}
	return metric.GetCounter().GetValue()
}

func histogramCount(t *testing.T, reg *prometheus.Registry, name, labelName, labelValue string) uint64 {
	t.Helper()
	metric := findMetric(t, reg, name, labelName, labelValue)
	if metric == nil || metric.GetHistogram() == nil {
		t.Fatalf("histogram %s{%s=%q} not found", name, labelName, labelValue)
	}
	return metric.GetHistogram().GetSampleCount()
}

func findMetric(t *testing.T, reg *prometheus.Registry, name, labelName, labelValue string) *dto.Metric {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, metric := range fam.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == labelName && label.GetValue() == labelValue {
					return metric
				}
			}
		}
	}
	return nil
}
