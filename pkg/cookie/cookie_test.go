package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/linkedin-oauth/pkg/cookie"
)

const testSecret = "this-is-a-32-byte-or-longer-key!"

// replay copies the cookies set on w into a new request.
func replay(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/auth/linkedin/callback", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestSignedCookies(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecret(testSecret))

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "name", "value", 60))

		val, err := m.GetSigned(replay(w), "name")
		require.NoError(t, err)
		require.Equal(t, "value", val)
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "name", "value", 60))
		c := w.Result().Cookies()[0]

		other := httptest.NewRecorder()
		require.NoError(t, cookie.New(cookie.WithSecret(testSecret+"-other")).SetSigned(other, "name", "value", 60))
		forged := other.Result().Cookies()[0]
		require.NotEqual(t, c.Value, forged.Value)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(forged)
		_, err := m.GetSigned(r, "name")
		require.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "name", Value: "no-dot"})
		_, err := m.GetSigned(r, "name")
		require.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()

		_, err := m.GetSigned(httptest.NewRequest(http.MethodGet, "/", nil), "name")
		require.ErrorIs(t, err, cookie.ErrNotFound)
	})

	t.Run("short secret disables signing", func(t *testing.T) {
		t.Parallel()

		weak := cookie.New(cookie.WithSecret("short"))
		require.ErrorIs(t, weak.SetSigned(httptest.NewRecorder(), "name", "value", 60), cookie.ErrNoSecret)
	})
}

func TestState(t *testing.T) {
	t.Parallel()

	m := cookie.New(
		cookie.WithSecret(testSecret),
		cookie.WithSecure(true),
		cookie.WithStateCookie("li_state", 5*time.Minute),
	)

	t.Run("cookie attributes", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, m.SetState(w, "state-123"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		require.Equal(t, "li_state", c.Name)
		require.Equal(t, 300, c.MaxAge)
		require.True(t, c.Secure)
		require.True(t, c.HttpOnly)
		require.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("matching state", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, m.SetState(w, "state-123"))

		cb := httptest.NewRecorder()
		require.NoError(t, m.VerifyState(cb, replay(w), "state-123"))

		deleted := cb.Result().Cookies()
		require.Len(t, deleted, 1)
		require.Equal(t, "li_state", deleted[0].Name)
		require.Negative(t, deleted[0].MaxAge)
	})

	t.Run("mismatched state", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, m.SetState(w, "state-123"))

		err := m.VerifyState(httptest.NewRecorder(), replay(w), "state-456")
		require.ErrorIs(t, err, cookie.ErrStateMismatch)
	})

	t.Run("empty returned state", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, m.SetState(w, "state-123"))

		err := m.VerifyState(httptest.NewRecorder(), replay(w), "")
		require.ErrorIs(t, err, cookie.ErrStateMismatch)
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()

		err := m.VerifyState(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), "state-123")
		require.ErrorIs(t, err, cookie.ErrStateMismatch)
		require.ErrorIs(t, err, cookie.ErrNotFound)
	})
}
