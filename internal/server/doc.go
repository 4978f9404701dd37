// Package server implements the HTTP server using Echo framework.
//
// Routes: auth (login/logout/status), activities (list/signup/unregister),
// observability (health/metrics/version), static assets.
// Handlers split by domain: handlers_auth.go, handlers_activities.go, handlers_health.go.
package server
