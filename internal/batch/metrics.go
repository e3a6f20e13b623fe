package batch

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pharaohfi/nftmigrator/internal/custompromauto"
)

var (
	writtenBatches = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "nftmigrator_batches_written_total",
		Help: "Total number of batch files written",
	})

	batchedTransactions = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "nftmigrator_batched_transactions_total",
		Help: "Total number of transactions written across all batches",
	})
)
