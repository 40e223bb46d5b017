package oauth

import (
	"crypto/rand"
	"encoding/base64"
)

// stateBytes is the entropy of a generated state token.
const stateBytes = 32

// NewState returns a random URL-safe token for the OAuth state parameter.
// Callers must persist it (e.g. in a signed cookie) and compare it with the
// state returned to the redirect URI.
func NewState() string {
	b := make([]byte, stateBytes)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
