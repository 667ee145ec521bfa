package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RefreshesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sightmap_refreshes_total",
		Help: "Total number of map refresh requests",
	})
	RefreshFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sightmap_refresh_failures_total",
		Help: "Total refresh requests that failed after retries",
	})
	AlertsRaisedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sightmap_alerts_raised_total",
		Help: "Total proximity alerts enqueued",
	})
	MarkersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sightmap_markers_created_total",
		Help: "Total markers created",
	})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sightmap_cache_hits_total",
		Help: "Active-marker cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sightmap_cache_misses_total",
		Help: "Active-marker cache misses",
	})
	GatewayRetriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sightmap_gateway_retries_total",
		Help: "Transient store failures that triggered a retry",
	})
)

func init() {
	prometheus.MustRegister(RefreshesTotal)
	prometheus.MustRegister(RefreshFailuresTotal)
	prometheus.MustRegister(AlertsRaisedTotal)
	prometheus.MustRegister(MarkersCreatedTotal)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(GatewayRetriesTotal)
}

func Handler() http.Handler { return promhttp.Handler() }
