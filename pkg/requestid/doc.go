// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware reads X-Request-ID, replaces it with a fresh UUID when it is
// missing or malformed, and stores the result in the request context.
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with that context carries request_id.
package requestid
