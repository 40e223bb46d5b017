package oauth

import (
	"context"

	"golang.org/x/oauth2"
)

// UserInfo is the provider-agnostic summary of an authenticated member.
// Fields the provider does not expose are left empty.
type UserInfo struct {
	ID         string
	Email      string
	Name       string
	GivenName  string
	FamilyName string
	Picture    string
	ProfileURL string
}

// ResourceOwner is the full record of an authenticated member as returned
// by a provider. ToMap exposes every field, including ones without a
// typed accessor.
type ResourceOwner interface {
	ID() string
	Attribute(path string) (any, bool)
	ToMap() map[string]any
}

// Provider is an OAuth2 identity provider. Implementations translate
// provider error payloads into *IdentityProviderError.
type Provider interface {
	Name() string

	// AuthCodeURL builds the authorization URL for the given state.
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	// TokenURL is the endpoint authorization codes are exchanged at.
	TokenURL() string
	// ResourceOwnerDetailsURL is the endpoint the member record is read from.
	ResourceOwnerDetailsURL() string

	// Exchange trades an authorization code for tokens. An empty
	// redirectURI uses the configured one.
	Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error)
	// FetchUserInfo reads the member behind token.
	FetchUserInfo(ctx context.Context, token *oauth2.Token) (*UserInfo, error)
}
