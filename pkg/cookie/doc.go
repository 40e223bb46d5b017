// Package cookie manages HMAC-signed cookies, in particular the cookie that
// binds an OAuth state to the browser that started the login.
//
//	cookies := cookie.New(
//		cookie.WithSecret(os.Getenv("COOKIE_SECRET")), // at least 32 bytes
//		cookie.WithSecure(true),
//	)
//
//	// login handler
//	authURL, state := provider.AuthorizationURL()
//	if err := cookies.SetState(w, state); err != nil { ... }
//	http.Redirect(w, r, authURL, http.StatusFound)
//
//	// callback handler
//	if err := cookies.VerifyState(w, r, r.URL.Query().Get("state")); err != nil {
//		// errors.Is(err, cookie.ErrStateMismatch)
//	}
//
// Signed values are formatted as base64(value).base64(hmac-sha256). The
// value is readable by the client; only tampering is detected.
package cookie
