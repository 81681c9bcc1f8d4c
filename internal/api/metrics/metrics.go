// Package metrics defines and registers all custom Prometheus metrics for
// the job-order system's identity and audit core. It is the single source of
// truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "joborder"

// ── Authentication metrics ───────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts rejected credential resolutions on protected
// routes.
// Label:
//   - reason: "missing", "malformed", "expired", "invalid", "session_not_found", "misconfigured"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// ForbiddenTotal counts requests that authenticated but failed the role gate.
var ForbiddenTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forbidden_total",
		Help:      "Total number of requests rejected by the role gate.",
	},
)

// ── Audit trail metrics ──────────────────────────────────────────────────────

// AuditEntriesWrittenTotal counts audit entries successfully persisted.
// Label:
//   - action: the entry's action verb (e.g. "update", "login")
var AuditEntriesWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_written_total",
		Help:      "Total number of audit entries successfully persisted.",
	},
	[]string{"action"},
)

// AuditWriteFailuresTotal counts audit entries whose persistence failed and
// was absorbed. This metric is the operator-visible channel for audit loss.
// Label:
//   - action: the entry's action verb
var AuditWriteFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit entries that failed to persist.",
	},
	[]string{"action"},
)

// AuditEntriesDroppedTotal counts entries dropped because a worker buffer
// was full.
var AuditEntriesDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_dropped_total",
		Help:      "Total number of audit entries dropped on queue overflow.",
	},
)

// AuditQueueDepth tracks the current number of entries waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each worker channel.",
	},
	[]string{"worker_id"},
)
