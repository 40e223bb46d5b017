// Package middlewares provides net/http middleware for the login service.
//
// # Request ID
//
// RequestID assigns an ID to each request. It reuses an incoming
// X-Request-ID (or X-Correlation-ID) header and otherwise generates a UUID.
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestID())
//
// Pair it with RequestIDExtractor so every log record written with the
// request context carries request_id:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover catches panics, logs them with a stack trace and answers 500.
//
// # Request logging
//
// RequestLogger writes one record per request with method, path, status,
// bytes written and duration.
package middlewares
