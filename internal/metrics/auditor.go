package metrics

import (
	"time"

	"github.com/koharjidan/bdsmcoin/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auditRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bdsmcoin",
		Subsystem: "checkpoint_auditor",
		Name:      "audits_total",
		Help:      "Count of checkpoint audits.",
	}, []string{"network", "status"})

	auditDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bdsmcoin",
		Subsystem: "checkpoint_auditor",
		Name:      "audit_duration_seconds",
		Help:      "Duration of a checkpoint audit.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	auditMismatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bdsmcoin",
		Subsystem: "checkpoint_auditor",
		Name:      "mismatches_total",
		Help:      "Count of audits that found the node on a chain conflicting with a checkpoint.",
	}, []string{"network"})

	syncProgressRatio = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "bdsmcoin",
		Subsystem: "checkpoint_auditor",
		Name:      "sync_progress_ratio",
		Help:      "Estimated verification progress of the audited node.",
	}, []string{"network"})

	tipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "bdsmcoin",
		Subsystem: "checkpoint_auditor",
		Name:      "tip_height",
		Help:      "Best block height reported by the audited node.",
	}, []string{"network"})

	lastCheckpointHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "bdsmcoin",
		Subsystem: "checkpoint_auditor",
		Name:      "last_checkpoint_height",
		Help:      "Height of the highest checkpoint verified on the audited node, -1 when none.",
	}, []string{"network"})
)

// Auditor tracks metrics for the checkpoint auditor.
type Auditor struct {
	network model.Network
}

// NewAuditor constructs an Auditor collector.
func NewAuditor(network model.Network) *Auditor {
	if network == "" {
		network = "unknown"
	}
	return &Auditor{network: network}
}

// ObserveAudit records an audit outcome and duration.
func (m Auditor) ObserveAudit(err error, elapsed time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	auditRunsTotal.WithLabelValues(string(m.network), status).Inc()
	auditDuration.WithLabelValues(string(m.network), status).Observe(elapsed.Seconds())
}

// ObserveMismatch records an audit that hit a conflicting checkpoint.
func (m Auditor) ObserveMismatch() {
	auditMismatchesTotal.WithLabelValues(string(m.network)).Inc()
}

// SetProgress exports the latest audit snapshot.
func (m Auditor) SetProgress(tip int32, lastCheckpoint int32, progress float64) {
	tipHeight.WithLabelValues(string(m.network)).Set(float64(tip))
	lastCheckpointHeight.WithLabelValues(string(m.network)).Set(float64(lastCheckpoint))
	syncProgressRatio.WithLabelValues(string(m.network)).Set(progress)
}
