package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// MetricsCollector exposes Prometheus metrics for the scoring core.
type MetricsCollector struct {
	logger *logrus.Logger

	scoringRequests   *prometheus.CounterVec
	scoringDuration   *prometheus.HistogramVec
	seedsNotFound     prometheus.Counter
	sentinelResponses prometheus.Counter
	cacheHits         *prometheus.CounterVec
}

func NewMetricsCollector(logger *logrus.Logger) *MetricsCollector {
	mc := &MetricsCollector{logger: logger}

	mc.scoringRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendation_scoring_requests_total",
		Help: "Number of scoring requests by algorithm and variant",
	}, []string{"algorithm", "variant"})

	mc.scoringDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recommendation_scoring_duration_seconds",
		Help:    "Scoring latency by algorithm",
		Buckets: prometheus.DefBuckets,
	}, []string{"algorithm"})

	mc.seedsNotFound = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_seeds_not_found_total",
		Help: "Number of seed names that had no catalog match",
	})

	mc.sentinelResponses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_sentinel_responses_total",
		Help: "Number of responses replaced by the low-confidence sentinel",
	})

	mc.cacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendation_cache_requests_total",
		Help: "Result cache lookups by outcome",
	}, []string{"outcome"})

	collectors := []prometheus.Collector{
		mc.scoringRequests,
		mc.scoringDuration,
		mc.seedsNotFound,
		mc.sentinelResponses,
		mc.cacheHits,
	}
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				logger.WithError(err).Warn("Failed to register metric")
			}
		}
	}

	return mc
}

func (mc *MetricsCollector) ObserveScoring(algorithm, variant string, d time.Duration) {
	if mc == nil {
		return
	}
	mc.scoringRequests.WithLabelValues(algorithm, variant).Inc()
	mc.scoringDuration.WithLabelValues(algorithm).Observe(d.Seconds())
}

func (mc *MetricsCollector) SeedNotFound() {
	if mc == nil {
		return
	}
	mc.seedsNotFound.Inc()
}

func (mc *MetricsCollector) SentinelReturned() {
	if mc == nil {
		return
	}
	mc.sentinelResponses.Inc()
}

func (mc *MetricsCollector) CacheLookup(hit bool) {
	if mc == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	mc.cacheHits.WithLabelValues(outcome).Inc()
}
