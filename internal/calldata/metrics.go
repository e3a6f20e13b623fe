package calldata

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pharaohfi/nftmigrator/internal/custompromauto"
)

var failedGenerations = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "nftmigrator_calldata_failed_total",
	Help: "Number of tokens skipped because calldata generation failed",
})

var generatedCalldata = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "nftmigrator_calldata_generated_total",
	Help: "Number of successful calldata generations",
})
