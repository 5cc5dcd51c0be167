package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess = "success"
	outcomeEmpty   = "empty"
	outcomeError   = "error"
)

// GenerationMetrics records calls to the generation service.
// A nil *GenerationMetrics is valid and records nothing.
type GenerationMetrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

func NewGenerationMetrics(reg prometheus.Registerer) (*GenerationMetrics, error) {
	m := &GenerationMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_generation_requests_total",
				Help: "Total number of generation service calls by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "resume_generation_duration_seconds",
				Help:    "Latency of generation service calls.",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60},
			},
		),
	}

	if err := reg.Register(m.requests); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *GenerationMetrics) observe(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}
