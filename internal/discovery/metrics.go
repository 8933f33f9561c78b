package discovery

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	discoveryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_requests_total",
			Help: "Total candidate discovery requests by match mode",
		},
		[]string{"mode"},
	)

	locationUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_location_updates_total",
			Help: "Total location updates by privacy level",
		},
		[]string{"privacy_level"},
	)

	candidatesRetrieved = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_candidates_retrieved",
			Help:    "Candidate set size after eligibility and radius filtering",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"mode"},
	)

	finalScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discovery_final_scores",
			Help:    "Distribution of final compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	scoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discovery_scoring_duration_seconds",
			Help:    "Wall time spent scoring one candidate batch",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func RecordDiscovery(mode string) {
	discoveryRequestsTotal.WithLabelValues(mode).Inc()
}

func RecordLocationUpdate(privacyLevel string) {
	locationUpdatesTotal.WithLabelValues(privacyLevel).Inc()
}

func RecordRetrieval(mode string, count int) {
	candidatesRetrieved.WithLabelValues(mode).Observe(float64(count))
}

func RecordFinalScore(score float64) {
	finalScores.Observe(score)
}

func RecordScoringDuration(d time.Duration) {
	scoringDuration.Observe(d.Seconds())
}
