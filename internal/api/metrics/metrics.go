// Package metrics defines the custom Prometheus metrics of the attendance API.
// Metrics register with the default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "attendance"

// Login results.
const (
	LoginSuccess = "success"
	LoginInvalid = "invalid"
	LoginLocked  = "locked"
	LoginError   = "error"
)

// LoginsTotal counts login attempts.
// Label:
//   - result: success, invalid, locked or error
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts requests refused by the auth gate.
// Label:
//   - kind: missing, expired, invalid, subject_not_found or error
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected by token verification, by failure kind.",
	},
	[]string{"kind"},
)

// UsersImportedTotal counts bulk-import records.
// Label:
//   - result: imported or failed
var UsersImportedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_imported_total",
		Help:      "Total number of bulk-import records, by result.",
	},
	[]string{"result"},
)

// AttendanceRecordedTotal counts marks written to the ledger.
// Label:
//   - status: present, absent or late
var AttendanceRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attendance_recorded_total",
		Help:      "Total number of attendance marks recorded, by status.",
	},
	[]string{"status"},
)
