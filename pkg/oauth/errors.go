package oauth

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = errors.New("oauth: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = errors.New("oauth: missing client secret")

	// ErrInvalidArgument is returned when a provider configuration value
	// has the wrong shape (e.g. fields given as a scalar instead of a list).
	ErrInvalidArgument = errors.New("oauth: invalid argument")

	// ErrNilResponse is returned when the OAuth provider returns a nil response.
	ErrNilResponse = errors.New("oauth: nil response from provider")

	// ErrFetchFailed is returned when fetching data from the OAuth provider fails.
	ErrFetchFailed = errors.New("oauth: failed to fetch from provider")

	// ErrRequestFailed is returned when the OAuth provider returns a non-OK status.
	ErrRequestFailed = errors.New("oauth: request returned non-OK status")

	// ErrDecodeFailed is returned when decoding the OAuth provider response fails.
	ErrDecodeFailed = errors.New("oauth: failed to decode response")

	// ErrIdentityProvider is matched by every *IdentityProviderError.
	ErrIdentityProvider = errors.New("oauth: identity provider error")

	// ErrAccessDenied is matched by identity provider errors carrying
	// HTTP 401, i.e. the access token was rejected.
	ErrAccessDenied = errors.New("oauth: access denied")
)

// IdentityProviderError carries an error reported by the identity provider
// itself, as opposed to a transport failure. Use errors.As to inspect it or
// errors.Is(err, ErrIdentityProvider) to branch on it.
type IdentityProviderError struct {
	Code        string // provider error code, e.g. "invalid_request"
	Description string // human-readable description from the provider
	Body        []byte // raw response body
	StatusCode  int    // HTTP status code
}

// Error implements the error interface.
func (e *IdentityProviderError) Error() string {
	switch {
	case e.Code != "" && e.Description != "":
		return fmt.Sprintf("oauth: identity provider error: status=%d code=%s: %s", e.StatusCode, e.Code, e.Description)
	case e.Description != "":
		return fmt.Sprintf("oauth: identity provider error: status=%d: %s", e.StatusCode, e.Description)
	case e.Code != "":
		return fmt.Sprintf("oauth: identity provider error: status=%d code=%s", e.StatusCode, e.Code)
	default:
		return fmt.Sprintf("oauth: identity provider error: status=%d", e.StatusCode)
	}
}

// Is reports whether target is ErrIdentityProvider, ErrRequestFailed for
// non-2xx responses, or ErrAccessDenied for 401 responses.
func (e *IdentityProviderError) Is(target error) bool {
	switch target {
	case ErrIdentityProvider:
		return true
	case ErrRequestFailed:
		return e.StatusCode < 200 || e.StatusCode > 299
	case ErrAccessDenied:
		return e.StatusCode == 401
	}
	return false
}
