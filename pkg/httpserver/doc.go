// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then
// drains in-flight requests for at most Config.ShutdownTimeout. Request
// contexts derive from the Run context without its cancellation, so handlers
// finishing during shutdown still see their values.
package httpserver
