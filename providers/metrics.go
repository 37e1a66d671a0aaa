//go:generate mockgen -destination=./mocks/metrics.go -package=mocks . Metrics

package providers

import (
	"context"

	"github.com/spf13/viper"
)

// Metric names registered by the stripe gateway
const (
	// MetricAPIRequests counts outbound provider attempts by operation and outcome
	MetricAPIRequests = "stripe_api_requests"
	// MetricAPILatency records per-operation latency in seconds
	MetricAPILatency = "stripe_api_latency_seconds"
)

// Metrics is an interface for collecting metrics
type Metrics interface {
	// Inc increments the value in a gauge
	Inc(name string, labels ...string)
	// Dec decrements the value in a gauge
	Dec(name string, labels ...string)
	// Observe records the value in a histogram
	Observe(name string, value float64, labels ...string)
	// Set sets the value in a gauge
	Set(name string, value float64, labels ...string)
	// RegisterHistogram registers a new histogram with the given name and labels
	RegisterHistogram(name string, labels ...string)
	// RegisterGauge registers a new gauge with the given name and labels
	RegisterGauge(name string, labels ...string)
}

// MetricsProvider is a function that returns a Metrics implementation
type MetricsProvider func(ctx context.Context, cfg *viper.Viper) (Metrics, error)
