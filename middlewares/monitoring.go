package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kiosk_server_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kiosk_server_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kiosk_server_operations_total",
			Help: "Total number of product, order and sales operations",
		},
		[]string{"entity", "operation", "status"},
	)

	connectedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kiosk_server_connected_clients",
			Help: "Number of currently connected realtime clients",
		},
	)
)

// PrometheusMiddleware 收集 Prometheus 指标
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			status,
		).Inc()

		httpRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			status,
		).Observe(duration)
	}
}

// RecordOperation 记录业务操作指标
func RecordOperation(entity, operation string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	storeOperations.WithLabelValues(entity, operation, status).Inc()
}

// SetConnectedClients 更新实时客户端连接数
func SetConnectedClients(n int) {
	connectedClients.Set(float64(n))
}
