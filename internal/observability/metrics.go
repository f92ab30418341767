package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	spiritCreations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spirit_creations_total",
			Help: "Number of spirit creation requests.",
		},
		[]string{"role"},
	)
	spiritCreationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "spirit_creation_duration_seconds",
			Help:    "Time to create a spirit.",
			Buckets: prometheus.DefBuckets,
		},
	)
	requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solace_requests_total",
			Help: "Total requests by route and status.",
		},
		[]string{"route", "status"},
	)
)

// RegisterMetrics registers the collectors exactly once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(spiritCreations, spiritCreationSeconds, requests)
	})
}

// RecordSpiritCreation counts a creation attempt by role and observes
// its duration. Called for failed attempts too.
func RecordSpiritCreation(role string, duration time.Duration) {
	RegisterMetrics()
	spiritCreations.WithLabelValues(role).Inc()
	spiritCreationSeconds.Observe(duration.Seconds())
}

// RecordRequest counts one handled request by route and status code.
func RecordRequest(route string, status int) {
	RegisterMetrics()
	requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
