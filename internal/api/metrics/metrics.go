// Package metrics defines and registers all custom Prometheus metrics for
// the fan-pass service. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "yard"

// PassesCreatedTotal counts successfully created passes.
// Label:
//   - category: "angel" or "descendant"
var PassesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "passes_created_total",
		Help:      "Total number of fan passes created, by category.",
	},
	[]string{"category"},
)

// PassCreateDuration measures the full create path: validation, card
// render, and persistence.
var PassCreateDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "pass_create_duration_seconds",
		Help:      "Duration of pass creation including card rendering.",
		Buckets:   prometheus.DefBuckets,
	},
)

// AdminLoginsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// CMSWritesTotal counts CMS document writes.
// Label:
//   - action: "update" or "reset"
var CMSWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cms_writes_total",
		Help:      "Total number of CMS document writes, by action.",
	},
	[]string{"action"},
)

// UploadsTotal counts accepted admin uploads.
var UploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of admin uploads stored.",
	},
)
