package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/linkedin-oauth/pkg/cookie"
	"github.com/dmitrymomot/linkedin-oauth/pkg/logger"
	"github.com/dmitrymomot/linkedin-oauth/pkg/oauth"
)

// Config is the runtime configuration of the login service.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	CookieSecret string `env:"COOKIE_SECRET,required,notEmpty"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"true"`
	CookieDomain string `env:"COOKIE_DOMAIN"`

	// LinkedInConfigFile points at a YAML document with the LinkedIn option
	// map. When set it replaces the LINKEDIN_OAUTH_* variables.
	LinkedInConfigFile string `env:"LINKEDIN_CONFIG_FILE"`
	LinkedIn           oauth.LinkedInConfig

	Log logger.Config
}

// Load reads the optional dotenv files, then parses the process
// environment. Missing dotenv files are skipped. Variables already set in
// the environment are never overridden by a dotenv file.
func Load(envFiles ...string) (Config, error) {
	for _, name := range envFiles {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", name, err)
		}
	}
	return parse(env.Options{})
}

// FromEnvironment parses configuration from the given variables instead
// of the process environment.
func FromEnvironment(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if len(cfg.CookieSecret) < cookie.MinSecretLength {
		return Config{}, fmt.Errorf("config: COOKIE_SECRET must be at least %d bytes", cookie.MinSecretLength)
	}

	if cfg.LinkedInConfigFile != "" {
		cfg.LinkedIn, err = loadLinkedInFile(cfg.LinkedInConfigFile)
		if err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func loadLinkedInFile(name string) (oauth.LinkedInConfig, error) {
	f, err := os.Open(name)
	if err != nil {
		return oauth.LinkedInConfig{}, fmt.Errorf("config: open linkedin config: %w", err)
	}
	defer f.Close()

	cfg, err := oauth.LoadLinkedInConfig(f)
	if err != nil {
		return oauth.LinkedInConfig{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}
