package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barberbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barberbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barberbook_bookings_total",
			Help: "Total number of bookings created",
		},
		[]string{"status"},
	)

	BookingRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barberbook_booking_rejections_total",
			Help: "Total number of bookings rejected by the availability check",
		},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "barberbook_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)

	ScheduleCacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barberbook_schedule_cache_requests_total",
			Help: "Week schedule cache lookups",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}
