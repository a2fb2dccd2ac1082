// Package metrics exports request and token metrics to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "asc"

// Result labels.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Collector records client activity. It satisfies both the HTTP client's
// MetricsRecorder and the token manager's GenerationRecorder.
type Collector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	transportErrors  *prometheus.CounterVec
	tokenGenerations *prometheus.CounterVec
}

// NewCollector registers the client metrics with registerer. Registering twice
// against the same registerer reuses the collectors already present.
func NewCollector(registerer prometheus.Registerer) (*Collector, error) {
	collector := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total API requests by method and response status.",
		}, []string{"method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds, including reading the body.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		transportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transport_errors_total",
			Help:      "Total requests that produced no HTTP response.",
		}, []string{"method"}),
		tokenGenerations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_generations_total",
			Help:      "Total bearer token generations by result.",
		}, []string{"result"}),
	}

	var err error

	collector.requestsTotal, err = register(registerer, collector.requestsTotal)
	if err != nil {
		return nil, err
	}

	collector.requestDuration, err = register(registerer, collector.requestDuration)
	if err != nil {
		return nil, err
	}

	collector.transportErrors, err = register(registerer, collector.transportErrors)
	if err != nil {
		return nil, err
	}

	collector.tokenGenerations, err = register(registerer, collector.tokenGenerations)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) (C, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		existing, ok := already.ExistingCollector.(C)
		if ok {
			return existing, nil
		}
	}

	return collector, fmt.Errorf("registering metrics: %w", err)
}

// ObserveRequest records one request. status is zero when no response arrived.
func (c *Collector) ObserveRequest(method string, status int, duration time.Duration, err error) {
	c.requestDuration.WithLabelValues(method).Observe(duration.Seconds())

	if err != nil || status == 0 {
		c.transportErrors.WithLabelValues(method).Inc()

		return
	}

	c.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// ObserveTokenGeneration records one token generation attempt.
func (c *Collector) ObserveTokenGeneration(err error) {
	if err != nil {
		c.tokenGenerations.WithLabelValues(ResultFailure).Inc()

		return
	}

	c.tokenGenerations.WithLabelValues(ResultSuccess).Inc()
}
