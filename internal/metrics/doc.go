// Package metrics defines the Prometheus collectors of the registration
// service and the /metrics handler that exposes them.
package metrics
