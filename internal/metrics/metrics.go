// README: Prometheus collectors for the API and the estimate engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	EstimatesServed *prometheus.CounterVec // source label: engine|cache
	EstimateErrors  prometheus.Counter

	HTTPRequests *prometheus.CounterVec // method, status labels

	EstimateDuration prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		EstimatesServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_estimates_served_total",
			Help: "Total estimates served, by source (engine or cache).",
		}, []string{"source"}),
		EstimateErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travel_estimate_errors_total",
			Help: "Total estimate requests rejected as invalid.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_http_requests_total",
			Help: "Total HTTP requests, by method and status.",
		}, []string{"method", "status"}),
		EstimateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "travel_estimate_duration_seconds",
			Help:    "Wall time of one estimate computation.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 6),
		}),
	}

	reg.MustRegister(
		c.EstimatesServed,
		c.EstimateErrors,
		c.HTTPRequests,
		c.EstimateDuration,
	)
	return c
}

// Handler exposes the registry for the /metrics route.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
