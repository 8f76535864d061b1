package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector 指标收集器
type MetricsCollector struct {
	// HTTP 指标
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// 业务指标
	paymentsTotal      *prometheus.CounterVec
	notificationsTotal prometheus.Counter
}

// NewMetricsCollector 创建指标收集器，指标注册到 reg
// reg 为 nil 时使用 prometheus 默认注册表
func NewMetricsCollector(reg prometheus.Registerer) *MetricsCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &MetricsCollector{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		paymentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_payments_total",
				Help: "Total number of payment attempts by result",
			},
			[]string{"result"},
		),

		notificationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "notifications_sent_total",
				Help: "Total number of notifications handed to a sender",
			},
		),
	}
}

// RecordHTTPRequest 记录 HTTP 请求
func (mc *MetricsCollector) RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	mc.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	mc.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// ObservePayment 记录一次支付结果
func (mc *MetricsCollector) ObservePayment(success bool) {
	result := "failed"
	if success {
		result = "success"
	}
	mc.paymentsTotal.WithLabelValues(result).Inc()
}

// ObserveNotification 记录一次通知发送
func (mc *MetricsCollector) ObserveNotification() {
	mc.notificationsTotal.Inc()
}
