// Package metrics defines and registers all custom Prometheus metrics for
// the pizza-store auth service. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pizzastore"

// SignInAttemptsTotal counts sign-in attempts.
// Labels:
//   - kind: "customer" or "worker"
//   - result: "success", "unauthorized" or "error"
var SignInAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signin_attempts_total",
		Help:      "Total number of sign-in attempts, by kind and result.",
	},
	[]string{"kind", "result"},
)

// RegistrationsTotal counts customer registration attempts.
// Label:
//   - result: "created", "conflict", "invalid" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of customer registration attempts, by result.",
	},
	[]string{"result"},
)

// IdentifyTotal counts login-type classifications returned by /auth/identify.
// Label:
//   - login_type: "CUSTOMER", "WORKER" or "UNKNOWN"
var IdentifyTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identify_total",
		Help:      "Total number of identify requests, by resolved login type.",
	},
	[]string{"login_type"},
)

// PasswordHashDuration measures how long a single bcrypt hash takes. The cost
// parameter is tuned so this lands in the tens of milliseconds.
var PasswordHashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of bcrypt password hashing.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
