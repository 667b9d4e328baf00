// Package metrics holds the prometheus collectors exported by the node tooling.
package metrics

import (
	"github.com/koharjidan/bdsmcoin/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var checkpointChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bdsmcoin",
	Subsystem: "checkpoint",
	Name:      "checks_total",
	Help:      "Count of blocks checked against the checkpoint table by result.",
}, []string{"network", "result"})

// Checker counts checkpoint checks for one network.
type Checker struct {
	network model.Network
}

// NewChecker constructs a Checker collector.
func NewChecker(network model.Network) *Checker {
	if network == "" {
		network = "unknown"
	}
	return &Checker{network: network}
}

// ObserveCheck records the result of a single check.
func (m Checker) ObserveCheck(result string) {
	checkpointChecksTotal.WithLabelValues(string(m.network), result).Inc()
}
