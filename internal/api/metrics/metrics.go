// Package metrics defines the custom Prometheus metrics for the agent
// platform API. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register via promauto at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agent_api"

// EntityOpsTotal counts write operations against the store, per entity.
// Labels:
//   - entity: "user" or "agent"
//   - operation: "create", "update", "delete"
//   - result: "success" or "error"
var EntityOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_operations_total",
		Help:      "Total number of entity write operations, labelled by outcome.",
	},
	[]string{"entity", "operation", "result"},
)
