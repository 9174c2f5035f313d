package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hotel_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	ChatIntentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_chat_intents_total",
			Help: "Chat messages classified per intent",
		},
		[]string{"intent"},
	)

	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_store_errors_total",
			Help: "Store calls that failed, by store and operation",
		},
		[]string{"store", "operation"},
	)

	RoomCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_room_cache_total",
			Help: "Room cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	TotalRooms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hotel_total_rooms",
			Help: "Total room count currently used for availability",
		},
	)

	RoomCountRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_room_count_refreshes_total",
			Help: "Total room count refreshes by outcome",
		},
		[]string{"outcome"},
	)
)
