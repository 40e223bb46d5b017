// Package oauth provides a LinkedIn OAuth2 provider on top of golang.org/x/oauth2.
//
// golang.org/x/oauth2 owns the authorization code flow itself (token exchange,
// HTTP transport, bearer token attachment). This package configures it for
// LinkedIn and handles everything LinkedIn-specific: authorization URL
// defaults, the /v2/me field projection, the member email lookup, mapping
// responses to a resource owner and translating LinkedIn error payloads.
//
// # Features
//
//   - Provider interface for pluggable OAuth2 implementations
//   - LinkedIn provider with configurable profile field projection
//   - Optional email lookup via /v2/clientAwareMemberHandles
//   - Resource owner with typed accessors, dotted-path attribute lookup
//     and a full document export
//   - Largest profile picture selection and localized name matching
//   - Typed IdentityProviderError for errors reported by LinkedIn
//   - Configuration from structs (env tags), option maps or YAML
//
// # Usage
//
//	provider, err := oauth.NewLinkedInProvider(oauth.LinkedInConfig{
//		ClientID:     os.Getenv("LINKEDIN_OAUTH_CLIENT_ID"),
//		ClientSecret: os.Getenv("LINKEDIN_OAUTH_CLIENT_SECRET"),
//		RedirectURL:  "https://example.com/auth/linkedin/callback",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Generate authorization URL and remember the state
//	authURL, state := provider.AuthorizationURL()
//
//	// Exchange code for token (in callback handler)
//	token, err := provider.Exchange(ctx, code, "")
//	if err != nil {
//		// handle error
//	}
//
//	// Fetch the member
//	owner, err := provider.FetchResourceOwner(ctx, token)
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(owner.FirstName(), owner.Email(), owner.ImageURL())
//
// Only a subset of profile fields is needed? Narrow the projection:
//
//	provider = provider.WithFields("id", "localizedFirstName", "localizedLastName")
//
// # Configuration Maps
//
// LinkedInConfigFromMap and LoadLinkedInConfig accept the loosely typed
// option set (clientId, clientSecret, redirectUri, scopes, fields, getEmail).
// A value of the wrong shape, such as fields given as a string, fails with
// ErrInvalidArgument.
//
// # Error Handling
//
// Errors reported by LinkedIn, from the token endpoint or the REST API, are
// returned as *IdentityProviderError carrying the error code, description
// and HTTP status:
//
//	var perr *oauth.IdentityProviderError
//	if errors.As(err, &perr) {
//		log.Printf("linkedin said %s: %s", perr.Code, perr.Description)
//	}
//
// Sentinel errors for branching with errors.Is:
//
//   - ErrMissingClientID, ErrMissingClientSecret: incomplete configuration
//   - ErrInvalidArgument: malformed configuration value
//   - ErrIdentityProvider: any error reported by LinkedIn
//   - ErrAccessDenied: LinkedIn rejected the access token (401)
//   - ErrRequestFailed: LinkedIn returned a non-2xx status
//   - ErrFetchFailed, ErrNilResponse: transport failures
//   - ErrDecodeFailed: response body is not a JSON object
//
// Missing profile data is never an error: accessors return "" and
// Attribute reports false.
//
// # Testing
//
// Use WithHTTPClient to route LinkedIn hosts to a test handler:
//
//	provider, err := oauth.NewLinkedInProvider(cfg, oauth.WithHTTPClient(ts.Client()))
package oauth
