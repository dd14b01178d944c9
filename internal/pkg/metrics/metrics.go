package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestDuration observes calls made to the VetCare backend
	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "vetcare",
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Duration of requests sent to the VetCare REST backend.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "resource", "outcome"})

	// GuardDecisions counts route guard outcomes
	GuardDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vetcare",
		Subsystem: "guard",
		Name:      "decisions_total",
		Help:      "Route guard decisions by action.",
	}, []string{"action"})

	// SessionTransitions counts session controller state changes
	SessionTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vetcare",
		Subsystem: "session",
		Name:      "transitions_total",
		Help:      "Session state transitions by target state and cause.",
	}, []string{"state", "cause"})

	// ActiveBrowsers is the number of browsers held in memory
	ActiveBrowsers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "vetcare",
		Subsystem: "session",
		Name:      "active_browsers",
		Help:      "Browsers with an in-memory session controller.",
	})
)

// Resource reduces an endpoint to its first path segment, e.g.
// "/animals/42" -> "animals", to keep label cardinality bounded.
func Resource(endpoint string) string {
	trimmed := strings.TrimPrefix(endpoint, "/")
	if i := strings.IndexAny(trimmed, "/?"); i >= 0 {
		trimmed = trimmed[:i]
	}
	if trimmed == "" {
		return "root"
	}
	return trimmed
}
