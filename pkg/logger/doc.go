// Package logger builds the structured loggers used by the LinkedIn
// provider and the login service.
//
// It extends log/slog with context extractors, which add request-scoped
// values to every record, and optional Sentry forwarding.
//
// # Usage
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(requestIDKey{}).(string); ok {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(logger.Config{Level: "debug", Format: "json"}, requestID)
//	log.InfoContext(ctx, "callback handled", slog.String("provider", "linkedin"))
//
// # Sentry
//
// Set Config.Sentry.DSN to forward records to Sentry as well: errors create
// issues, warnings (or only errors, see SentryConfig.MinLevel) are stored as
// logs. An empty DSN, or a failed Sentry initialization, leaves logging on
// stdout only.
//
// Use NewNope where a logger is optional.
package logger
