// Package metrics defines the custom Prometheus metrics for the user system.
// It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usersystem"

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - result: "created", "username_taken", "validation_failed", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"result"},
)

// LoginsTotal counts authentication attempts by outcome. Failures are not
// broken down further; wrong password and unknown user are deliberately
// indistinguishable.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts signed tokens handed out after successful logins.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of identity tokens issued.",
	},
)

// ProductsMutatedTotal counts catalog writes.
// Label:
//   - op: "create", "update", "delete"
var ProductsMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_mutated_total",
		Help:      "Total number of catalog mutations, by operation.",
	},
	[]string{"op"},
)
