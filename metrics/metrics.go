package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContractsOpened = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobt_contracts_opened_total",
			Help: "Total number of contracts opened (by strategy).",
		},
		[]string{"strategy"},
	)

	Liquidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobt_liquidations_total",
			Help: "Total number of stop-loss or forced liquidations (by strategy).",
		},
		[]string{"strategy"},
	)

	PoolWithdrawals = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gobt_pool_withdrawals_total",
			Help: "Total number of successful shared-pool withdrawals.",
		},
	)

	PoolBalance = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gobt_pool_balance",
			Help: "Current balance of the shared capital pool.",
		},
	)
)

func init() {
	prometheus.MustRegister(ContractsOpened, Liquidations, PoolWithdrawals, PoolBalance)
}
