// Package metrics defines the custom Prometheus metrics of the vacation
// API. It is the single source of truth for metric names, labels, and help
// strings; collectors register themselves with the default registry at
// import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vacation_api"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts bearer tokens handed out on successful login.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// VacationsCreatedTotal counts new vacation requests.
var VacationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vacations_created_total",
		Help:      "Total number of vacation requests created.",
	},
)

// VacationStatusUpdatesTotal counts admin status decisions.
// Label:
//   - status: the status applied ("APPROVED", "REJECTED", "PENDING")
var VacationStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vacation_status_updates_total",
		Help:      "Total number of vacation status updates, by new status.",
	},
	[]string{"status"},
)
