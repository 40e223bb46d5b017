package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"
)

// Errors.
var (
	ErrNotFound      = errors.New("cookie: not found")
	ErrNoSecret      = errors.New("cookie: secret required")
	ErrBadSig        = errors.New("cookie: invalid signature")
	ErrStateMismatch = errors.New("cookie: oauth state mismatch")
)

const (
	// MinSecretLength is the shortest accepted signing secret.
	MinSecretLength = 32

	defaultStateName = "oauth_state"
	defaultStateTTL  = 10 * time.Minute
)

// Manager handles cookie operations.
type Manager struct {
	secret    []byte // nil = signing disabled
	domain    string
	path      string
	stateName string
	stateTTL  time.Duration
	secure    bool
	httpOnly  bool
	sameSite  http.SameSite
}

// Option configures the Manager.
type Option func(*Manager)

// New creates a cookie Manager with the given options.
// SameSite defaults to Lax so the state cookie survives the redirect
// back from the provider.
func New(opts ...Option) *Manager {
	m := &Manager{
		path:      "/",
		stateName: defaultStateName,
		stateTTL:  defaultStateTTL,
		httpOnly:  true,
		sameSite:  http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithSecret sets the signing secret. Secrets shorter than
// MinSecretLength are ignored.
func WithSecret(secret string) Option {
	return func(m *Manager) {
		if len(secret) >= MinSecretLength {
			m.secret = []byte(secret)
		}
	}
}

// WithDomain sets the cookie domain.
func WithDomain(domain string) Option {
	return func(m *Manager) {
		m.domain = domain
	}
}

// WithPath sets the cookie path.
func WithPath(path string) Option {
	return func(m *Manager) {
		m.path = path
	}
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

// WithStateCookie sets the name and lifetime of the OAuth state cookie.
func WithStateCookie(name string, ttl time.Duration) Option {
	return func(m *Manager) {
		if name != "" {
			m.stateName = name
		}
		if ttl > 0 {
			m.stateTTL = ttl
		}
	}
}

// Get returns a plain cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete removes a cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, m.cookie(name, "", -1))
}

// SetSigned sets a cookie formatted as base64(value).base64(hmac).
// Returns ErrNoSecret if no secret is configured.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, maxAge int) error {
	if m.secret == nil {
		return ErrNoSecret
	}

	encoded := base64.RawURLEncoding.EncodeToString([]byte(value)) +
		"." + base64.RawURLEncoding.EncodeToString(m.sign([]byte(value)))

	http.SetCookie(w, m.cookie(name, encoded, maxAge))
	return nil
}

// GetSigned returns a signed cookie value.
// Returns ErrNoSecret if no secret is configured and ErrBadSig if the
// signature does not verify.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	if m.secret == nil {
		return "", ErrNoSecret
	}

	raw, err := m.Get(r, name)
	if err != nil {
		return "", err
	}

	encValue, encSig, ok := strings.Cut(raw, ".")
	if !ok {
		return "", ErrBadSig
	}
	value, err := base64.RawURLEncoding.DecodeString(encValue)
	if err != nil {
		return "", ErrBadSig
	}
	sig, err := base64.RawURLEncoding.DecodeString(encSig)
	if err != nil {
		return "", ErrBadSig
	}

	if !hmac.Equal(sig, m.sign(value)) {
		return "", ErrBadSig
	}
	return string(value), nil
}

// SetState stores the OAuth state in a signed, short-lived cookie.
func (m *Manager) SetState(w http.ResponseWriter, state string) error {
	return m.SetSigned(w, m.stateName, state, int(m.stateTTL.Seconds()))
}

// VerifyState checks the state returned to the redirect URI against the
// state cookie. The cookie is deleted whatever the outcome, so a state can
// be used once.
func (m *Manager) VerifyState(w http.ResponseWriter, r *http.Request, returned string) error {
	expected, err := m.GetSigned(r, m.stateName)
	m.Delete(w, m.stateName)
	if err != nil {
		return errors.Join(ErrStateMismatch, err)
	}
	if returned == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(returned)) != 1 {
		return ErrStateMismatch
	}
	return nil
}

func (m *Manager) sign(value []byte) []byte {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write(value)
	return mac.Sum(nil)
}

// cookie creates a cookie with the manager's defaults.
func (m *Manager) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.path,
		Domain:   m.domain,
		MaxAge:   maxAge,
		Secure:   m.secure,
		HttpOnly: m.httpOnly,
		SameSite: m.sameSite,
	}
}
