package oauth

import (
	"cmp"
	"slices"
	"strings"
)

const linkedinStillImageKey = "com.linkedin.digitalmedia.mediaartifact.StillImage"

// ProfilePicture is one rendition of the member's profile picture.
type ProfilePicture struct {
	URL         string
	ContentType string
	Width       int
	Height      int
}

// SortedProfilePictures returns the public profile picture renditions,
// ordered by width and then height, smallest first. Renditions without
// size metadata sort as 0x0. The sort is stable, so equal sizes keep
// their response order.
func (o *LinkedInResourceOwner) SortedProfilePictures() []ProfilePicture {
	raw, _ := Dig(o.data, "profile", "profilePicture", "displayImage~", "elements")
	elements, _ := raw.([]any)

	pictures := make([]ProfilePicture, 0, len(elements))
	for _, el := range elements {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		if method, ok := m["authorizationMethod"].(string); ok && !strings.EqualFold(method, "PUBLIC") {
			continue
		}

		pic, ok := pictureIdentifier(m)
		if !ok {
			continue
		}
		w, _ := Dig(m, "data", linkedinStillImageKey, "storageSize", "width")
		h, _ := Dig(m, "data", linkedinStillImageKey, "storageSize", "height")
		pic.Width = intValue(w)
		pic.Height = intValue(h)
		pictures = append(pictures, pic)
	}

	slices.SortStableFunc(pictures, func(a, b ProfilePicture) int {
		if c := cmp.Compare(a.Width, b.Width); c != 0 {
			return c
		}
		return cmp.Compare(a.Height, b.Height)
	})
	return pictures
}

// BiggestProfilePictureURL returns the URL of the largest rendition: max
// width, then max height, then the last one in response order.
// Returns "" when the member has no picture.
func (o *LinkedInResourceOwner) BiggestProfilePictureURL() string {
	pictures := o.SortedProfilePictures()
	if len(pictures) == 0 {
		return ""
	}
	return pictures[len(pictures)-1].URL
}

// pictureIdentifier prefers an EXTERNAL_URL identifier over the first one.
func pictureIdentifier(element map[string]any) (ProfilePicture, bool) {
	identifiers, _ := element["identifiers"].([]any)

	var (
		fallback ProfilePicture
		found    bool
	)
	for _, raw := range identifiers {
		id, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		u, _ := id["identifier"].(string)
		if u == "" {
			continue
		}
		mediaType, _ := id["mediaType"].(string)
		pic := ProfilePicture{URL: u, ContentType: mediaType}
		if kind, _ := id["identifierType"].(string); kind == "EXTERNAL_URL" {
			return pic, true
		}
		if !found {
			fallback, found = pic, true
		}
	}
	return fallback, found
}
