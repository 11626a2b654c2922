package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TransactionsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_created_total",
			Help: "Total money movements recorded by the ledger",
		},
		[]string{"type"},
	)

	TransactionsFinalized = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_finalized_total",
			Help: "Total transactions reaching a terminal state",
		},
		[]string{"status"},
	)

	WalletMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_mutations_total",
			Help: "Total balance mutations applied by the wallet ledger",
		},
		[]string{"operation"},
	)
)

func Register() {
	prometheus.MustRegister(
		TransactionsCreated,
		TransactionsFinalized,
		WalletMutations,
	)
}
