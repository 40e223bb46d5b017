package oauth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"golang.org/x/oauth2"
	linkedinOAuth "golang.org/x/oauth2/linkedin"
	"golang.org/x/sync/errgroup"
)

const (
	// LinkedInProviderName is the identifier for LinkedIn OAuth provider.
	LinkedInProviderName = "linkedin"

	linkedinAPIBaseURL      = "https://api.linkedin.com/v2/"
	linkedinProfilePath     = "me"
	linkedinEmailPath       = "clientAwareMemberHandles"
	linkedinEmailProjection = "(elements*(state,primary,type,handle~))"
	linkedinScopeSeparator  = " "
	linkedinApprovalPrompt  = "auto"

	restliProtocolHeader  = "X-Restli-Protocol-Version"
	restliProtocolVersion = "2.0.0"

	maxResponseSize = 1 << 20
)

// LinkedInDefaultScopes returns the default scopes for LinkedIn OAuth.
func LinkedInDefaultScopes() []string {
	return []string{"r_liteprofile", "r_emailaddress"}
}

// LinkedInDefaultFields returns the profile fields requested from /v2/me
// when none are configured.
func LinkedInDefaultFields() []string {
	return []string{
		"id",
		"firstName",
		"lastName",
		"localizedFirstName",
		"localizedLastName",
		"headline",
		"localizedHeadline",
		"vanityName",
		"profilePicture(displayImage~:playableStreams)",
	}
}

// LinkedInProvider implements Provider for LinkedIn OAuth.
//
// A provider is read-only after construction; WithFields returns a copy.
type LinkedInProvider struct {
	config      *oauth2.Config
	httpClient  *http.Client
	logger      *slog.Logger
	fields      []string
	emailLookup bool
}

// NewLinkedInProvider creates a new LinkedIn OAuth provider.
// Returns an error if ClientID or ClientSecret is empty.
func NewLinkedInProvider(cfg LinkedInConfig, opts ...Option) (*LinkedInProvider, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if cfg.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}

	o := newOptions(opts...)

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = LinkedInDefaultScopes()
	}

	fields := slices.Clone(cfg.Fields)
	if len(fields) == 0 {
		fields = LinkedInDefaultFields()
	}

	return &LinkedInProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     linkedinOAuth.Endpoint,
		},
		httpClient:  o.httpClient,
		logger:      o.logger.With(slog.String("provider", LinkedInProviderName)),
		fields:      fields,
		emailLookup: !cfg.SkipEmail && !o.skipEmail,
	}, nil
}

// Name returns the provider identifier.
func (p *LinkedInProvider) Name() string {
	return LinkedInProviderName
}

// Fields returns a copy of the profile fields requested from /v2/me.
func (p *LinkedInProvider) Fields() []string {
	return slices.Clone(p.fields)
}

// WithFields returns a copy of the provider that requests the given
// profile fields. The receiver is left unchanged.
func (p *LinkedInProvider) WithFields(fields ...string) *LinkedInProvider {
	cp := *p
	cp.fields = slices.Clone(fields)
	return &cp
}

// FetchesEmail reports whether FetchResourceOwner queries the email endpoint.
func (p *LinkedInProvider) FetchesEmail() bool {
	return p.emailLookup
}

// AuthCodeURL generates the authorization URL for the given state.
// approval_prompt defaults to "auto"; opts are applied last and win.
func (p *LinkedInProvider) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	all := make([]oauth2.AuthCodeOption, 0, len(opts)+1)
	all = append(all, oauth2.SetAuthURLParam("approval_prompt", linkedinApprovalPrompt))
	all = append(all, opts...)
	return p.config.AuthCodeURL(state, all...)
}

// AuthorizationURL generates the authorization URL together with the state
// embedded in it. A random state is generated unless WithState is given.
func (p *LinkedInProvider) AuthorizationURL(opts ...AuthURLOption) (authURL, state string) {
	params := newAuthURLParams(opts...)
	return p.AuthCodeURL(params.state, params.codeOptions(linkedinScopeSeparator)...), params.state
}

// TokenURL returns the access token endpoint.
func (p *LinkedInProvider) TokenURL() string {
	return p.config.Endpoint.TokenURL
}

// ResourceOwnerDetailsURL returns the profile endpoint with the configured
// field projection, e.g. https://api.linkedin.com/v2/me?projection=(id,localizedFirstName).
// The projection is left unescaped, as LinkedIn expects it.
func (p *LinkedInProvider) ResourceOwnerDetailsURL() string {
	return linkedinAPIBaseURL + linkedinProfilePath + "?projection=(" + strings.Join(p.fields, ",") + ")"
}

// ResourceOwnerEmailURL returns the endpoint listing the member's email handles.
func (p *LinkedInProvider) ResourceOwnerEmailURL() string {
	return linkedinAPIBaseURL + linkedinEmailPath + "?projection=" + linkedinEmailProjection
}

// Exchange trades an authorization code for tokens.
// Errors reported by LinkedIn are returned as *IdentityProviderError.
func (p *LinkedInProvider) Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	cfg := p.config
	if redirectURI != "" {
		cfg = &oauth2.Config{
			ClientID:     p.config.ClientID,
			ClientSecret: p.config.ClientSecret,
			RedirectURL:  redirectURI,
			Scopes:       p.config.Scopes,
			Endpoint:     p.config.Endpoint,
		}
	}
	ctx = p.contextWithHTTPClient(ctx)

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			status := 0
			if re.Response != nil {
				status = re.Response.StatusCode
			}
			if perr := CheckLinkedInResponse(status, re.Body); perr != nil {
				p.logger.WarnContext(ctx, "token exchange rejected", slog.Any("error", perr))
				return nil, perr
			}
		}
		return nil, err
	}
	return token, nil
}

// FetchResourceOwner retrieves the member profile and, unless disabled,
// the primary email address. Both requests run concurrently; the only
// thing they share is the access token.
func (p *LinkedInProvider) FetchResourceOwner(ctx context.Context, token *oauth2.Token) (*LinkedInResourceOwner, error) {
	ctx = p.contextWithHTTPClient(ctx)
	client := p.config.Client(ctx, token)

	var (
		profile map[string]any
		email   string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := p.getJSON(gctx, client, p.ResourceOwnerDetailsURL())
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}
		profile = doc
		return nil
	})
	if p.emailLookup {
		g.Go(func() error {
			doc, err := p.getJSON(gctx, client, p.ResourceOwnerEmailURL())
			if err != nil {
				return fmt.Errorf("fetch email: %w", err)
			}
			email = linkedinEmailFromHandles(doc)
			if email == "" {
				p.logger.WarnContext(gctx, "no email address in member handles")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewLinkedInResourceOwner(profile, email), nil
}

// FetchUserInfo retrieves the member and maps it to UserInfo.
func (p *LinkedInProvider) FetchUserInfo(ctx context.Context, token *oauth2.Token) (*UserInfo, error) {
	owner, err := p.FetchResourceOwner(ctx, token)
	if err != nil {
		return nil, err
	}
	return owner.UserInfo(), nil
}

func (p *LinkedInProvider) contextWithHTTPClient(ctx context.Context) context.Context {
	if p.httpClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}
	return ctx
}

func (p *LinkedInProvider) getJSON(ctx context.Context, client *http.Client, endpoint string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(restliProtocolHeader, restliProtocolVersion)

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	if resp == nil {
		return nil, errors.Join(ErrNilResponse, fmt.Errorf("unexpected nil response from %s", req.URL.Path))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("read body: %w", err))
	}

	p.logger.DebugContext(ctx, "linkedin api response",
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
	)

	if err := CheckLinkedInResponse(resp.StatusCode, body); err != nil {
		return nil, err
	}

	doc, err := decodeJSONObject(body)
	if err != nil {
		return nil, errors.Join(ErrDecodeFailed, err)
	}
	return doc, nil
}

// decodeJSONObject keeps numbers as json.Number so IDs survive untouched.
func decodeJSONObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// linkedinEmailFromHandles picks the primary EMAIL handle, falling back to
// the first handle carrying an address. Anything malformed is skipped.
func linkedinEmailFromHandles(doc map[string]any) string {
	elements, _ := doc["elements"].([]any)

	var first string
	for _, el := range elements {
		v, _ := Dig(el, "handle~", "emailAddress")
		addr, _ := v.(string)
		if addr == "" {
			continue
		}
		if first == "" {
			first = addr
		}

		m, _ := el.(map[string]any)
		primary, _ := m["primary"].(bool)
		kind, _ := m["type"].(string)
		if primary && (kind == "" || kind == "EMAIL") {
			return addr
		}
	}
	return first
}
