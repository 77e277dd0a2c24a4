// Package metrics holds the prometheus collectors exported by the newsletter manager.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// NewsletterManager subsystem name used by every metric
	NewsletterManager = "newsletter_manager"

	// ReconcilerSuccessCount - name of the reconciler success count metric
	ReconcilerSuccessCount = "reconciler_success_count"
	// ReconcilerFailureCount - name of the reconciler failure count metric
	ReconcilerFailureCount = "reconciler_failure_count"
	// ReconcilerErrorsCount - name of the reconciler errors count metric
	ReconcilerErrorsCount = "reconciler_errors_count"
	// ReconcilerDuration - name of the reconciler duration metric
	ReconcilerDuration = "reconciler_duration_in_seconds"
	// WorkerRunning - name of the metric tracking running workers
	WorkerRunning = "worker_running"

	// NewsletterLogsWritten - name of the newsletter log writes counter
	NewsletterLogsWritten = "newsletter_logs_written_total"

	// APIRequestsTotal - name of the API request counter
	APIRequestsTotal = "api_requests_total"
	// APIRequestDuration - name of the API request duration histogram
	APIRequestDuration = "api_request_duration_seconds"

	labelWorkerType = "worker_type"
	labelStatus     = "status"
	labelRoute      = "route"
	labelMethod     = "method"
	labelCode       = "code"
)

var (
	reconcilerMetricsLabels = []string{labelWorkerType}

	reconcilerSuccessCountMetric = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: NewsletterManager,
			Name:      ReconcilerSuccessCount,
			Help:      "count of successful reconcile runs per worker type",
		},
		reconcilerMetricsLabels,
	)

	reconcilerFailureCountMetric = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: NewsletterManager,
			Name:      ReconcilerFailureCount,
			Help:      "count of failed reconcile runs per worker type",
		},
		reconcilerMetricsLabels,
	)

	reconcilerErrorsCountMetric = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: NewsletterManager,
			Name:      ReconcilerErrorsCount,
			Help:      "count of errors returned by reconcile runs per worker type",
		},
		reconcilerMetricsLabels,
	)

	reconcilerDurationMetric = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Subsystem: NewsletterManager,
			Name:      ReconcilerDuration,
			Help:      "duration of the last reconcile run per worker type, in seconds",
		},
		reconcilerMetricsLabels,
	)

	workerRunningMetric = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Subsystem: NewsletterManager,
			Name:      WorkerRunning,
			Help:      "1 when the worker of the given type is running, 0 otherwise",
		},
		reconcilerMetricsLabels,
	)

	newsletterLogsWrittenMetric = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: NewsletterManager,
			Name:      NewsletterLogsWritten,
			Help:      "number of newsletter log rows written, by status",
		},
		[]string{labelStatus},
	)

	apiRequestsTotalMetric = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: NewsletterManager,
			Name:      APIRequestsTotal,
			Help:      "number of API requests by route, method and response code",
		},
		[]string{labelRoute, labelMethod, labelCode},
	)

	apiRequestDurationMetric = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Subsystem: NewsletterManager,
			Name:      APIRequestDuration,
			Help:      "API request duration by route and method, in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{labelRoute, labelMethod},
	)
)

// IncreaseReconcilerSuccessCount ...
func IncreaseReconcilerSuccessCount(workerType string) {
	reconcilerSuccessCountMetric.With(prometheus.Labels{labelWorkerType: workerType}).Inc()
}

// IncreaseReconcilerFailureCount ...
func IncreaseReconcilerFailureCount(workerType string) {
	reconcilerFailureCountMetric.With(prometheus.Labels{labelWorkerType: workerType}).Inc()
}

// IncreaseReconcilerErrorsCount ...
func IncreaseReconcilerErrorsCount(workerType string, numErrors int) {
	reconcilerErrorsCountMetric.With(prometheus.Labels{labelWorkerType: workerType}).Add(float64(numErrors))
}

// UpdateReconcilerDurationMetric ...
func UpdateReconcilerDurationMetric(workerType string, elapsed time.Duration) {
	reconcilerDurationMetric.With(prometheus.Labels{labelWorkerType: workerType}).Set(elapsed.Seconds())
}

// SetWorkerRunningMetric ...
func SetWorkerRunningMetric(workerType string, running bool) {
	val := 0.0
	if running {
		val = 1.0
	}
	workerRunningMetric.With(prometheus.Labels{labelWorkerType: workerType}).Set(val)
}

// ResetMetricsForReconcilers ...
func ResetMetricsForReconcilers() {
	reconcilerSuccessCountMetric.Reset()
	reconcilerFailureCountMetric.Reset()
	reconcilerErrorsCountMetric.Reset()
	reconcilerDurationMetric.Reset()
}

// IncreaseNewsletterLogsWritten ...
func IncreaseNewsletterLogsWritten(status bool) {
	newsletterLogsWrittenMetric.With(prometheus.Labels{labelStatus: fmt.Sprintf("%t", status)}).Inc()
}

// ObserveAPIRequest records one served API request.
func ObserveAPIRequest(route, method string, code int, elapsed time.Duration) {
	apiRequestsTotalMetric.With(prometheus.Labels{
		labelRoute:  route,
		labelMethod: method,
		labelCode:   fmt.Sprintf("%d", code),
	}).Inc()
	apiRequestDurationMetric.With(prometheus.Labels{
		labelRoute:  route,
		labelMethod: method,
	}).Observe(elapsed.Seconds())
}

func init() {
	prometheus.MustRegister(reconcilerSuccessCountMetric)
	prometheus.MustRegister(reconcilerFailureCountMetric)
	prometheus.MustRegister(reconcilerErrorsCountMetric)
	prometheus.MustRegister(reconcilerDurationMetric)
	prometheus.MustRegister(workerRunningMetric)
	prometheus.MustRegister(newsletterLogsWrittenMetric)
	prometheus.MustRegister(apiRequestsTotalMetric)
	prometheus.MustRegister(apiRequestDurationMetric)
}
