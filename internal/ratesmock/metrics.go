package ratesmock

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "telegen_rates_requests_total",
		Help: "Total number of rate requests served",
	},
	[]string{"endpoint", "status"},
)
