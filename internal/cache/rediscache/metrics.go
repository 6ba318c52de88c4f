package rediscache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var lookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_group_cache_lookups_total",
		Help: "Order group cache lookups by kind and result",
	},
	[]string{"kind", "result"},
)

func observe(kind string, hit bool, err error) {
	result := "miss"
	switch {
	case err != nil:
		result = "error"
	case hit:
		result = "hit"
	}
	lookupsTotal.WithLabelValues(kind, result).Inc()
}
