package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	wasteLogsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecosort_waste_logs_recorded_total",
		Help: "Waste logs successfully recorded.",
	})

	pointsAwarded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecosort_points_awarded_total",
		Help: "Points credited through waste logging.",
	})

	pointsRefunded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecosort_points_refunded_total",
		Help: "Points refunded through waste log deletion.",
	})
)

// Init registers all collectors with the default registry. Call once at startup.
func Init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		wasteLogsRecorded,
		pointsAwarded,
		pointsRefunded,
	)
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and latencies, labeled by route pattern.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			status := strconv.Itoa(c.Response().Status)
			path := c.Path()
			method := c.Request().Method
			httpRequestsTotal.WithLabelValues(method, path, status).Inc()
			httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// ObserveWasteLog records a successful create operation.
func ObserveWasteLog(points int) {
	wasteLogsRecorded.Inc()
	pointsAwarded.Add(float64(points))
}

// ObserveRefund records a successful delete-with-refund operation.
func ObserveRefund(points int) {
	pointsRefunded.Add(float64(points))
}
