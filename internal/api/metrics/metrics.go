// Package metrics defines and registers all custom Prometheus metrics for the
// map API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "artop"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "malformed" (bad claims shape) or "rejected" (validation or throttling)
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// MapOperationsTotal counts completed map mutations.
// Labels:
//   - operation: "create", "update" or "delete"
//   - result: "ok" or "error"
var MapOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "map_operations_total",
		Help:      "Total number of map mutations, by operation and result.",
	},
	[]string{"operation", "result"},
)
