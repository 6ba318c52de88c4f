package ordergroup

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_group_actions_total",
			Help: "Total number of dispatched order group actions by result",
		},
		[]string{"action", "result"},
	)

	StatusSyncTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_group_status_sync_transitions_total",
			Help: "Total number of order group statuses advanced from trip statuses",
		},
		[]string{"from", "to"},
	)
)
