package oauth

import (
	"strings"

	"golang.org/x/oauth2"
)

// AuthURLOption customizes a generated authorization URL.
// Values set through options take precedence over provider defaults.
type AuthURLOption func(*authURLParams)

type authURLParams struct {
	state  string
	scopes []string
	extra  [][2]string
}

// WithState uses the given state instead of generating one.
func WithState(state string) AuthURLOption {
	return func(p *authURLParams) {
		p.state = state
	}
}

// WithScopes replaces the configured scopes for a single authorization request.
func WithScopes(scopes ...string) AuthURLOption {
	return func(p *authURLParams) {
		p.scopes = scopes
	}
}

// WithAuthParam sets an arbitrary query parameter on the authorization URL.
// It overrides any default with the same key, including approval_prompt.
func WithAuthParam(key, value string) AuthURLOption {
	return func(p *authURLParams) {
		p.extra = append(p.extra, [2]string{key, value})
	}
}

func newAuthURLParams(opts ...AuthURLOption) authURLParams {
	var p authURLParams
	for _, opt := range opts {
		opt(&p)
	}
	if p.state == "" {
		p.state = NewState()
	}
	return p
}

// codeOptions converts caller overrides into oauth2 options. oauth2 applies
// them after its own defaults, so they win.
func (p authURLParams) codeOptions(scopeSeparator string) []oauth2.AuthCodeOption {
	opts := make([]oauth2.AuthCodeOption, 0, len(p.extra)+1)
	if len(p.scopes) > 0 {
		opts = append(opts, oauth2.SetAuthURLParam("scope", strings.Join(p.scopes, scopeSeparator)))
	}
	for _, kv := range p.extra {
		opts = append(opts, oauth2.SetAuthURLParam(kv[0], kv[1]))
	}
	return opts
}
