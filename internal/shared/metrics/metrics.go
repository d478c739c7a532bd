// Package metrics holds the Prometheus collectors shared by the HTTP layer
// and the directory services.
package metrics

import (
	"database/sql"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "directory"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		},
		[]string{"route", "method", "status"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Store query latency by directory operation and outcome.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation", "outcome"},
	)
)

// Register adds the shared collectors, and the pool stats of db when given, to reg.
// Collectors that are already registered are left alone.
func Register(reg prometheus.Registerer, db *sql.DB) error {
	cs := []prometheus.Collector{HTTPRequests, HTTPDuration, QueryDuration}
	if db != nil {
		cs = append(cs, collectors.NewDBStatsCollector(db, "directory"))
	}

	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return err
			}
		}
	}
	return nil
}

// ObserveQuery records the time since start for operation.
func ObserveQuery(operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	QueryDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
}
