package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/linkedin-oauth/middlewares"
	"github.com/dmitrymomot/linkedin-oauth/pkg/cookie"
	"github.com/dmitrymomot/linkedin-oauth/pkg/health"
	"github.com/dmitrymomot/linkedin-oauth/pkg/logger"
	"github.com/dmitrymomot/linkedin-oauth/pkg/oauth"
)

// LinkedIn is the part of *oauth.LinkedInProvider the login flow needs.
type LinkedIn interface {
	AuthorizationURL(opts ...oauth.AuthURLOption) (authURL, state string)
	Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error)
	FetchResourceOwner(ctx context.Context, token *oauth2.Token) (*oauth.LinkedInResourceOwner, error)
}

// App serves the LinkedIn login flow over HTTP.
type App struct {
	linkedin LinkedIn
	cookies  *cookie.Manager
	logger   *slog.Logger
	checks   health.Checks
	router   chi.Router
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the application logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithReadinessCheck adds a named check to the /readyz probe.
func WithReadinessCheck(name string, check health.CheckFunc) Option {
	return func(a *App) {
		if a.checks == nil {
			a.checks = health.Checks{}
		}
		a.checks[name] = check
	}
}

// New creates an App. The cookie manager must have a signing secret.
func New(linkedin LinkedIn, cookies *cookie.Manager, opts ...Option) *App {
	a := &App{
		linkedin: linkedin,
		cookies:  cookies,
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.router = a.routes()
	return a
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func (a *App) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(
		middlewares.RequestID(),
		middlewares.RequestLogger(a.logger),
		middlewares.Recover(a.logger),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not_found", "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "")
	})

	r.Get("/healthz", health.LivenessHandler())
	r.Get("/readyz", health.ReadinessHandler(a.checks, health.WithLogger(a.logger)))
	r.Get("/auth/linkedin", a.handleLogin)
	r.Get("/auth/linkedin/callback", a.handleCallback)

	return r
}
