package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"golang.org/x/oauth2/linkedin"

	"github.com/dmitrymomot/linkedin-oauth/internal/app"
	"github.com/dmitrymomot/linkedin-oauth/internal/config"
	"github.com/dmitrymomot/linkedin-oauth/middlewares"
	"github.com/dmitrymomot/linkedin-oauth/pkg/cookie"
	"github.com/dmitrymomot/linkedin-oauth/pkg/health"
	"github.com/dmitrymomot/linkedin-oauth/pkg/logger"
	"github.com/dmitrymomot/linkedin-oauth/pkg/oauth"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}

	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
	// Deliver buffered Sentry events before exit; a no-op without a DSN.
	defer sentry.Flush(2 * time.Second)

	provider, err := oauth.NewLinkedInProvider(cfg.LinkedIn, oauth.WithLogger(log))
	if err != nil {
		log.Error("invalid linkedin configuration", slog.Any("error", err))
		return 1
	}

	cookies := cookie.New(
		cookie.WithSecret(cfg.CookieSecret),
		cookie.WithSecure(cfg.CookieSecure),
		cookie.WithDomain(cfg.CookieDomain),
	)

	a := app.New(provider, cookies,
		app.WithLogger(log),
		app.WithReadinessCheck("linkedin", health.HTTPCheck(&http.Client{Timeout: 3 * time.Second}, linkedin.Endpoint.AuthURL)),
	)
	if err := a.Run(context.Background(), cfg.Addr, cfg.ShutdownTimeout); err != nil {
		log.Error("application error", slog.Any("error", err))
		return 1
	}
	return 0
}
