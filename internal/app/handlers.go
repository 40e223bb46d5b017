package app

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/linkedin-oauth/middlewares"
	"github.com/dmitrymomot/linkedin-oauth/pkg/oauth"
)

// memberResponse is the JSON body returned after a successful login.
type memberResponse struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Email      string `json:"email,omitempty"`
	Picture    string `json:"picture,omitempty"`
	Headline   string `json:"headline,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	Status           int    `json:"status"`
	RequestID        string `json:"request_id,omitempty"`
}

// handleLogin stores a fresh state in a signed cookie and redirects the
// browser to the LinkedIn authorization page.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	authURL, state := a.linkedin.AuthorizationURL()
	if err := a.cookies.SetState(w, state); err != nil {
		a.logger.ErrorContext(r.Context(), "failed to store oauth state", slog.Any("error", err))
		writeError(w, r, http.StatusInternalServerError, "internal_error", "")
		return
	}
	http.Redirect(w, r, authURL, http.StatusFound)
}

// handleCallback completes the authorization code flow and answers with
// the member profile.
func (a *App) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	// Always consume the state cookie, even when LinkedIn reports an error.
	stateErr := a.cookies.VerifyState(w, r, q.Get("state"))

	if code := q.Get("error"); code != "" {
		a.logger.InfoContext(ctx, "authorization declined",
			slog.String("error", code),
			slog.String("error_description", q.Get("error_description")),
		)
		writeError(w, r, http.StatusUnauthorized, code, q.Get("error_description"))
		return
	}
	if stateErr != nil {
		a.logger.WarnContext(ctx, "oauth state mismatch", slog.Any("error", stateErr))
		writeError(w, r, http.StatusBadRequest, "invalid_state", "state does not match the login request")
		return
	}

	code := q.Get("code")
	if code == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "missing authorization code")
		return
	}

	token, err := a.linkedin.Exchange(ctx, code, "")
	if err != nil {
		a.providerError(w, r, "token exchange failed", err)
		return
	}

	owner, err := a.linkedin.FetchResourceOwner(ctx, token)
	if err != nil {
		a.providerError(w, r, "fetch member failed", err)
		return
	}

	a.logger.InfoContext(ctx, "member signed in", slog.String("member_id", owner.ID()))

	// Names follow the browser language when LinkedIn has that locale.
	first, last := owner.FirstName(), owner.LastName()
	if prefs, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil && len(prefs) > 0 {
		if v := owner.LocalizedFirstName(prefs...); v != "" {
			first = v
		}
		if v := owner.LocalizedLastName(prefs...); v != "" {
			last = v
		}
	}

	writeJSON(w, http.StatusOK, memberResponse{
		ID:         owner.ID(),
		FirstName:  first,
		LastName:   last,
		Email:      owner.Email(),
		Picture:    owner.ImageURL(),
		Headline:   owner.Headline(),
		ProfileURL: owner.ProfileURL(),
	})
}

// providerError maps a LinkedIn failure to a response. A rejected token is
// 401; anything else LinkedIn reports, or a transport failure, is 502.
func (a *App) providerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	a.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))

	var perr *oauth.IdentityProviderError
	switch {
	case errors.Is(err, oauth.ErrAccessDenied):
		writeError(w, r, http.StatusUnauthorized, "access_denied", "LinkedIn rejected the access token")
	case errors.As(err, &perr):
		code := perr.Code
		if code == "" {
			code = "identity_provider_error"
		}
		writeError(w, r, http.StatusBadGateway, code, perr.Description)
	default:
		writeError(w, r, http.StatusBadGateway, "upstream_unavailable", "LinkedIn could not be reached")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, description string) {
	writeJSON(w, status, errorResponse{
		Error:            code,
		ErrorDescription: description,
		Status:           status,
		RequestID:        middlewares.GetRequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
