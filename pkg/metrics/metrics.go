package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	GatewayRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commerce_gateway_requests_total",
			Help: "Requests to the commerce backend",
		},
		[]string{"op", "outcome"}, // outcome: ok|error
	)
	GatewayDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "commerce_gateway_request_duration_seconds",
			Help:    "Commerce backend round-trip duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

var (
	CartMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Cart mutations dispatched by the synchronizer",
		},
		[]string{"op", "result"}, // result: ok|failed|rejected
	)
	CartBadge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_items_quantity_total",
			Help: "Total quantity across cart items (badge value)",
		},
	)
)

var (
	CatalogCacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_operations_total",
			Help: "Catalog cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CatalogCacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_cache_size",
			Help: "Number of products currently in cache",
		},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		GatewayRequests, GatewayDuration,
		CartMutations, CartBadge,
		CatalogCacheOps, CatalogCacheSize,
	)
}
