package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver records use-case and layout cache metrics in a private
// registry that can be dumped for the node exporter textfile collector.
type MetricsObserver struct {
	registry     *prometheus.Registry
	useCases     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	layoutLookup *prometheus.CounterVec
}

func NewMetricsObserver() *MetricsObserver {
	m := &MetricsObserver{
		registry: prometheus.NewRegistry(),
		useCases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workboard",
			Name:      "use_cases_total",
			Help:      "Board service use cases by name and outcome.",
		}, []string{"use_case", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "workboard",
			Name:      "use_case_duration_seconds",
			Help:      "Board service use case latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"use_case"}),
		layoutLookup: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workboard",
			Name:      "layout_cache_lookups_total",
			Help:      "Lane layout cache lookups by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(m.useCases, m.duration, m.layoutLookup)
	return m
}

func (m *MetricsObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	outcome := "success"
	if !event.Success {
		outcome = "error"
	}
	m.useCases.WithLabelValues(event.Name, outcome).Inc()
	m.duration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}

// ObserveLayout matches layout.CacheObserver.
func (m *MetricsObserver) ObserveLayout(_ string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.layoutLookup.WithLabelValues(result).Inc()
}

// WriteTextfile writes the current metrics in text exposition format.
func (m *MetricsObserver) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
