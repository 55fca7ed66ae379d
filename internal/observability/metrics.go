package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics collects per-request counters and latency histograms and
// exposes them in prometheus format.
type HTTPMetrics struct {
	registry    *prometheus.Registry
	inFlight    prometheus.Gauge
	reqTotal    *prometheus.CounterVec
	reqDuration *prometheus.HistogramVec
}

// NewHTTPMetrics builds the metric set on a fresh registry with Go runtime
// and process collectors attached.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	constLabels := prometheus.Labels{}
	if serviceName != "" {
		constLabels["service"] = serviceName
	}

	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "http",
		Subsystem:   "server",
		Name:        "in_flight_requests",
		Help:        "Number of in-flight HTTP requests.",
		ConstLabels: constLabels,
	})
	reqTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   "http",
		Subsystem:   "server",
		Name:        "requests_total",
		Help:        "Total number of HTTP requests.",
		ConstLabels: constLabels,
	}, []string{"method", "path", "status"})
	reqDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   "http",
		Subsystem:   "server",
		Name:        "request_duration_seconds",
		Help:        "HTTP request duration in seconds.",
		Buckets:     prometheus.DefBuckets,
		ConstLabels: constLabels,
	}, []string{"method", "path", "status"})

	registry.MustRegister(inFlight, reqTotal, reqDuration)

	return &HTTPMetrics{
		registry:    registry,
		inFlight:    inFlight,
		reqTotal:    reqTotal,
		reqDuration: reqDuration,
	}
}

// Handler returns the prometheus exposition handler.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request totals and latency per route.
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.inFlight.Inc()
			start := time.Now()
			err := next(c)
			m.inFlight.Dec()

			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			path := c.Path()
			if path == "" {
				// Unrouted requests fall back to the raw path so the label is never empty.
				path = c.Request().URL.Path
			}
			statusLabel := strconv.Itoa(status)
			m.reqTotal.WithLabelValues(c.Request().Method, path, statusLabel).Inc()
			m.reqDuration.WithLabelValues(c.Request().Method, path, statusLabel).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
