package oauth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const linkedinPublicProfileURL = "https://www.linkedin.com/in/"

// LinkedInResourceOwner is the member returned by LinkedIn, wrapping the
// merged document {"profile": <v2/me response>, "email": <address>}.
// The "email" key is present only when an address was resolved.
//
// Every accessor tolerates missing data and returns the zero value
// instead of failing. The owner is immutable.
type LinkedInResourceOwner struct {
	data map[string]any
}

// NewLinkedInResourceOwner wraps an already decoded profile document.
// An empty email is treated as absent.
func NewLinkedInResourceOwner(profile map[string]any, email string) *LinkedInResourceOwner {
	p := CloneMap(profile)
	if p == nil {
		p = map[string]any{}
	}
	data := map[string]any{"profile": p}
	if email != "" {
		data["email"] = email
	}
	return &LinkedInResourceOwner{data: data}
}

// ParseLinkedInResourceOwner builds an owner from raw /v2/me and
// /v2/clientAwareMemberHandles bodies. emailJSON may be nil when the
// email lookup was skipped.
func ParseLinkedInResourceOwner(profileJSON, emailJSON []byte) (*LinkedInResourceOwner, error) {
	profile, err := decodeJSONObject(profileJSON)
	if err != nil {
		return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("decode profile: %w", err))
	}

	var email string
	if len(emailJSON) > 0 {
		handles, err := decodeJSONObject(emailJSON)
		if err != nil {
			return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("decode email handles: %w", err))
		}
		email = linkedinEmailFromHandles(handles)
	}

	return NewLinkedInResourceOwner(profile, email), nil
}

// ID returns the member id.
func (o *LinkedInResourceOwner) ID() string {
	return o.scalar("profile", "id")
}

// FirstName returns localizedFirstName, falling back to the member's
// preferred locale entry of firstName.
func (o *LinkedInResourceOwner) FirstName() string {
	if v := o.scalar("profile", "localizedFirstName"); v != "" {
		return v
	}
	return o.LocalizedFirstName()
}

// LastName returns localizedLastName, falling back to the member's
// preferred locale entry of lastName.
func (o *LinkedInResourceOwner) LastName() string {
	if v := o.scalar("profile", "localizedLastName"); v != "" {
		return v
	}
	return o.LocalizedLastName()
}

// Headline returns localizedHeadline, falling back to headline.
func (o *LinkedInResourceOwner) Headline() string {
	if v := o.scalar("profile", "localizedHeadline"); v != "" {
		return v
	}
	return o.localizedField("headline", nil)
}

// ProfileURL returns the public profile URL built from vanityName,
// or "" if the vanity name was not requested.
func (o *LinkedInResourceOwner) ProfileURL() string {
	name := o.scalar("profile", "vanityName")
	if name == "" {
		return ""
	}
	return linkedinPublicProfileURL + url.PathEscape(name)
}

// Email returns the resolved email address, or "" when the lookup was
// skipped or found nothing.
func (o *LinkedInResourceOwner) Email() string {
	email, _ := o.data["email"].(string)
	return email
}

// ImageURL is an alias of BiggestProfilePictureURL.
func (o *LinkedInResourceOwner) ImageURL() string {
	return o.BiggestProfilePictureURL()
}

// Attribute looks up a dotted path in the merged document, e.g.
// "profile.somethingExtra.more". The returned value is a copy.
func (o *LinkedInResourceOwner) Attribute(path string) (any, bool) {
	v, ok := Attribute(o.data, path)
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// ToMap returns a copy of the merged document, unknown fields included.
func (o *LinkedInResourceOwner) ToMap() map[string]any {
	return CloneMap(o.data)
}

// UserInfo maps the member to the provider-agnostic UserInfo.
func (o *LinkedInResourceOwner) UserInfo() *UserInfo {
	first, last := o.FirstName(), o.LastName()
	return &UserInfo{
		ID:         o.ID(),
		Email:      o.Email(),
		Name:       strings.TrimSpace(first + " " + last),
		GivenName:  first,
		FamilyName: last,
		Picture:    o.BiggestProfilePictureURL(),
		ProfileURL: o.ProfileURL(),
	}
}

func (o *LinkedInResourceOwner) scalar(keys ...string) string {
	v, _ := Dig(o.data, keys...)
	return scalarString(v)
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

func intValue(v any) int {
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			f, ferr := t.Float64()
			if ferr != nil {
				return 0
			}
			return int(f)
		}
		return int(n)
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	default:
		return 0
	}
}
