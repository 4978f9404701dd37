package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Authentication Metrics
var (
	// LoginsTotal tracks login attempts by result (success/invalid_credentials)
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total login attempts by result",
		},
		[]string{"result"},
	)

	// ActiveSessions tracks the number of active teacher sessions
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions",
			Help: "Number of active teacher sessions",
		},
	)
)

// Roster Metrics
var (
	// SignupsTotal tracks signup attempts by result (success/not_found/duplicate)
	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signups_total",
			Help: "Total signup attempts by result",
		},
		[]string{"result"},
	)

	// UnregistersTotal tracks unregister attempts by result (success/not_found/not_signed_up)
	UnregistersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unregisters_total",
			Help: "Total unregister attempts by result",
		},
		[]string{"result"},
	)
)

// HTTP Request Metrics
// Note: request logging is handled by echo's Logger middleware; per-route
// counters above cover the domain operations.
