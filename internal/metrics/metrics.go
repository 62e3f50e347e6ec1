// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Batch kinds produced by the recommendation scorer.
const (
	BatchInitial = "initial"
	BatchUpdate  = "update"
	BatchMore    = "more"
	BatchSimilar = "similar"
)

// Fallback levels of the initial batch filter.
const (
	FallbackNone        = "none"
	FallbackGenreOnly   = "genre_only"
	FallbackFullCatalog = "full_catalog"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_batches_total",
			Help: "Total number of recommendation batches produced",
		},
		[]string{"kind"}, // initial, update, more, similar
	)

	RecommendBatchSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_batch_size",
			Help:    "Number of movies in a recommendation batch",
			Buckets: []float64{0, 1, 5, 10, 20, 30, 50, 100, 250, 500},
		},
		[]string{"kind"},
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time spent computing a recommendation batch",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		},
		[]string{"kind"},
	)

	RecommendFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_initial_fallback_total",
			Help: "Initial batches by filter relaxation level",
		},
		[]string{"level"}, // none, genre_only, full_catalog
	)

	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	// Session Metrics
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sessions_active",
			Help: "Current number of live swipe sessions",
		},
	)

	SessionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_created_total",
			Help: "Total number of swipe sessions started",
		},
	)

	SessionsEvictedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sessions_evicted_total",
			Help: "Total number of sessions removed without an explicit delete",
		},
		[]string{"reason"}, // expired, capacity
	)

	SwipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipes_total",
			Help: "Total number of swipes by verdict",
		},
		[]string{"verdict"}, // liked, disliked
	)

	QueueRefillsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "session_queue_refills_total",
			Help: "Times a session ran past its queue and fetched more recommendations",
		},
	)

	SessionResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "session_resets_total",
			Help: "Total number of session resets",
		},
	)

	SessionStoreOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_operations_total",
			Help: "Durable session store operations by result",
		},
		[]string{"operation", "status"}, // save, load, delete, count; success, error, not_found
	)

	SessionStoreEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "session_store_entries",
			Help: "Unexpired session snapshots in the durable store, sampled on each sweep",
		},
	)

	// Event Bus Metrics
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of domain events published",
		},
		[]string{"topic"},
	)

	EventsHandledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_handled_total",
			Help: "Total number of domain events consumed",
		},
		[]string{"topic", "status"}, // success, error
	)

	EventsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_dropped_total",
			Help: "Domain events not delivered to the bus",
		},
		[]string{"reason"}, // publish_error, circuit_open
	)

	// EventPublisherCircuitState is 0 closed, 1 half-open, 2 open.
	EventPublisherCircuitState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "event_publisher_circuit_state",
			Help: "Circuit breaker state of the event publisher",
		},
	)

	// LikeRatio tracks liked / total swipes as observed by the event consumer.
	LikeRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swipe_like_ratio",
			Help: "Share of swipes that were likes since process start",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendBatch records one scorer invocation.
func RecordRecommendBatch(kind string, size int, duration time.Duration) {
	RecommendBatchesTotal.WithLabelValues(kind).Inc()
	RecommendBatchSize.WithLabelValues(kind).Observe(float64(size))
	RecommendDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordFallback records which relaxation level an initial batch used.
func RecordFallback(level string) {
	RecommendFallbackTotal.WithLabelValues(level).Inc()
}

// RecordSwipe records a swipe verdict.
func RecordSwipe(liked bool) {
	SwipesTotal.WithLabelValues(verdict(liked)).Inc()
}

// RecordSessionEviction records a session removed by TTL or capacity.
func RecordSessionEviction(reason string) {
	SessionsEvictedTotal.WithLabelValues(reason).Inc()
}

// RecordEventPublished records an event published to topic.
func RecordEventPublished(topic string) {
	EventsPublishedTotal.WithLabelValues(topic).Inc()
}

// RecordEventHandled records an event consumed from topic.
func RecordEventHandled(topic string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	EventsHandledTotal.WithLabelValues(topic, status).Inc()
}

// RecordStoreOp records a durable session store operation.
func RecordStoreOp(operation, status string) {
	SessionStoreOpsTotal.WithLabelValues(operation, status).Inc()
}

// RecordEventDropped records an event that never reached the bus.
func RecordEventDropped(reason string) {
	EventsDroppedTotal.WithLabelValues(reason).Inc()
}

func verdict(liked bool) string {
	if liked {
		return "liked"
	}
	return "disliked"
}
