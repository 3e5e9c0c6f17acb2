// Package metrics defines the custom Prometheus metrics for the case
// management API. It is the single source of truth for metric names, labels,
// and help strings; HTTP-level request metrics come from the echoprometheus
// middleware and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "casetrack"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the role assigned at registration ("admin" for the first user)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful registrations, by assigned role.",
	},
	[]string{"role"},
)

// StatusChangesTotal counts case status transitions applied through the
// admin status endpoint.
// Label:
//   - status: the new status value
var StatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_changes_total",
		Help:      "Total number of case status changes, by new status.",
	},
	[]string{"status"},
)

// DocumentUploadsTotal counts upload attempts.
// Label:
//   - result: "ok", "rejected" (validation), or "failed"
var DocumentUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "document_uploads_total",
		Help:      "Total number of document upload attempts, by result.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests rejected by the rate limiters.
// Label:
//   - limiter: "auth" or "api"
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected with 429, by limiter.",
	},
	[]string{"limiter"},
)
