package oauth

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LinkedInConfig holds LinkedIn OAuth configuration.
// Fields and Scopes fall back to LinkedInDefaultFields and
// LinkedInDefaultScopes when empty.
type LinkedInConfig struct {
	ClientID     string   `env:"LINKEDIN_OAUTH_CLIENT_ID" yaml:"clientId"`
	ClientSecret string   `env:"LINKEDIN_OAUTH_CLIENT_SECRET" yaml:"clientSecret"`
	RedirectURL  string   `env:"LINKEDIN_OAUTH_REDIRECT_URL" envDefault:"" yaml:"redirectUri"`
	Scopes       []string `env:"LINKEDIN_OAUTH_SCOPES" envSeparator:"," yaml:"scopes"`
	Fields       []string `env:"LINKEDIN_OAUTH_FIELDS" envSeparator:"," yaml:"fields"`
	SkipEmail    bool     `env:"LINKEDIN_OAUTH_SKIP_EMAIL" envDefault:"false" yaml:"-"`
}

// Recognized keys of a LinkedIn configuration map.
const (
	configKeyClientID     = "clientId"
	configKeyClientSecret = "clientSecret"
	configKeyRedirectURI  = "redirectUri"
	configKeyScopes       = "scopes"
	configKeyFields       = "fields"
	configKeyGetEmail     = "getEmail"
)

// LinkedInConfigFromMap builds a LinkedInConfig from a loosely typed
// option map, as produced by decoding JSON or YAML.
//
// Recognized keys: clientId, clientSecret, redirectUri (strings),
// scopes and fields (sequences of strings) and getEmail (bool, default true).
// Unknown keys are ignored. A value of the wrong type fails with
// ErrInvalidArgument.
func LinkedInConfigFromMap(m map[string]any) (LinkedInConfig, error) {
	var cfg LinkedInConfig
	var err error

	if cfg.ClientID, err = stringOption(m, configKeyClientID); err != nil {
		return LinkedInConfig{}, err
	}
	if cfg.ClientSecret, err = stringOption(m, configKeyClientSecret); err != nil {
		return LinkedInConfig{}, err
	}
	if cfg.RedirectURL, err = stringOption(m, configKeyRedirectURI); err != nil {
		return LinkedInConfig{}, err
	}
	if cfg.Scopes, err = stringListOption(m, configKeyScopes); err != nil {
		return LinkedInConfig{}, err
	}
	if cfg.Fields, err = stringListOption(m, configKeyFields); err != nil {
		return LinkedInConfig{}, err
	}

	if v, ok := m[configKeyGetEmail]; ok && v != nil {
		getEmail, ok := v.(bool)
		if !ok {
			return LinkedInConfig{}, errors.Join(ErrInvalidArgument, fmt.Errorf("%s must be a bool, got %T", configKeyGetEmail, v))
		}
		cfg.SkipEmail = !getEmail
	}

	return cfg, nil
}

// LoadLinkedInConfig decodes a YAML option document and passes it
// through LinkedInConfigFromMap. An empty document yields an empty config.
func LoadLinkedInConfig(r io.Reader) (LinkedInConfig, error) {
	var m map[string]any
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return LinkedInConfig{}, errors.Join(ErrDecodeFailed, fmt.Errorf("decode config: %w", err))
	}
	return LinkedInConfigFromMap(m)
}

func stringOption(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Join(ErrInvalidArgument, fmt.Errorf("%s must be a string, got %T", key, v))
	}
	return s, nil
}

func stringListOption(m map[string]any, key string) ([]string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}

	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...), nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, errors.Join(ErrInvalidArgument, fmt.Errorf("%s[%d] must be a string, got %T", key, i, item))
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.Join(ErrInvalidArgument, fmt.Errorf("%s must be a list of strings, got %T", key, v))
	}
}
