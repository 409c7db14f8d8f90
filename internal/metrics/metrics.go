package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_client_logins_total",
		Help: "Total number of successful logins.",
	})

	LogoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_client_logouts_total",
		Help: "Total number of completed logouts.",
	})

	CollectionRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_client_collection_refreshes_total",
		Help: "Total number of successful collection refreshes.",
	},
		[]string{"collection"},
	)

	RefreshFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_client_refresh_failures_total",
		Help: "Total number of swallowed background refresh failures.",
	},
		[]string{"collection"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_client_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
