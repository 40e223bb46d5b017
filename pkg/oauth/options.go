package oauth

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/linkedin-oauth/pkg/logger"
)

// Option configures an OAuth provider.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *slog.Logger
	skipEmail  bool
}

func newOptions(opts ...Option) options {
	o := options{logger: logger.NewNope()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithHTTPClient sets a custom HTTP client for OAuth requests.
// This is useful for testing with httptest servers or injecting
// custom transports (e.g., logging, retries).
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger used for request diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithoutEmail disables the second request to the email endpoint,
// regardless of the provider configuration.
func WithoutEmail() Option {
	return func(o *options) {
		o.skipEmail = true
	}
}
