// Package metrics exposes the Prometheus collectors for the HTTP surface
// and the listing hub.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "heavylingam_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "heavylingam_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	ListingsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "heavylingam_listings_total",
		Help: "Listings in the latest snapshot from the backing store.",
	})

	StoreWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "heavylingam_store_writes_total",
		Help: "Backing store write operations by kind and outcome.",
	}, []string{"op", "outcome"})
)
