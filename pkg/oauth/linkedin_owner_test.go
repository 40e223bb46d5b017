package oauth_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/linkedin-oauth/pkg/oauth"
)

const stillImage = "com.linkedin.digitalmedia.mediaartifact.StillImage"

func pictureElement(url string, width, height int) map[string]any {
	return map[string]any{
		"authorizationMethod": "PUBLIC",
		"data": map[string]any{
			stillImage: map[string]any{
				"storageSize": map[string]any{"width": width, "height": height},
			},
		},
		"identifiers": []any{
			map[string]any{"identifier": url, "identifierType": "EXTERNAL_URL", "mediaType": "image/jpeg"},
		},
	}
}

func profileWithPictures(elements ...any) map[string]any {
	return map[string]any{
		"id": "abcdef1234",
		"profilePicture": map[string]any{
			"displayImage~": map[string]any{"elements": elements},
		},
	}
}

func TestParseLinkedInResourceOwner(t *testing.T) {
	t.Parallel()

	t.Run("profile and email bodies", func(t *testing.T) {
		t.Parallel()

		profile, err := json.Marshal(loadFixture(t, "linkedin_me.json"))
		require.NoError(t, err)
		email, err := json.Marshal(loadFixture(t, "linkedin_email.json"))
		require.NoError(t, err)

		owner, err := oauth.ParseLinkedInResourceOwner(profile, email)
		require.NoError(t, err)
		require.Equal(t, "abcdef1234", owner.ID())
		require.Equal(t, "resource-owner@example.com", owner.Email())
		require.Equal(t, "Software Engineer", owner.Headline())
		require.Equal(t, "https://www.linkedin.com/in/john-doe", owner.ProfileURL())
	})

	t.Run("no email body", func(t *testing.T) {
		t.Parallel()

		owner, err := oauth.ParseLinkedInResourceOwner([]byte(`{"id":"x1"}`), nil)
		require.NoError(t, err)
		require.Equal(t, "x1", owner.ID())
		require.Empty(t, owner.Email())
	})

	t.Run("malformed email handles resolve to absent", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{
			`{}`,
			`{"elements": "nope"}`,
			`{"elements": [1, "two", {"handle~": "three"}]}`,
			`{"elements": [{"handle~": {"emailAddress": 42}}]}`,
		} {
			owner, err := oauth.ParseLinkedInResourceOwner([]byte(`{"id":"x1"}`), []byte(body))
			require.NoError(t, err, body)
			require.Empty(t, owner.Email(), body)
		}
	})

	t.Run("primary email handle preferred", func(t *testing.T) {
		t.Parallel()

		body := `{"elements": [
			{"type": "EMAIL", "primary": false, "handle~": {"emailAddress": "secondary@example.com"}},
			{"type": "EMAIL", "primary": true, "handle~": {"emailAddress": "primary@example.com"}}
		]}`
		owner, err := oauth.ParseLinkedInResourceOwner([]byte(`{"id":"x1"}`), []byte(body))
		require.NoError(t, err)
		require.Equal(t, "primary@example.com", owner.Email())
	})

	t.Run("invalid profile JSON", func(t *testing.T) {
		t.Parallel()

		owner, err := oauth.ParseLinkedInResourceOwner([]byte("not-json"), nil)
		require.ErrorIs(t, err, oauth.ErrDecodeFailed)
		require.Nil(t, owner)
	})
}

func TestLinkedInResourceOwner_MissingData(t *testing.T) {
	t.Parallel()

	owner := oauth.NewLinkedInResourceOwner(nil, "")
	require.Empty(t, owner.ID())
	require.Empty(t, owner.FirstName())
	require.Empty(t, owner.LastName())
	require.Empty(t, owner.Headline())
	require.Empty(t, owner.ProfileURL())
	require.Empty(t, owner.Email())
	require.Empty(t, owner.ImageURL())
	require.Empty(t, owner.SortedProfilePictures())

	_, ok := owner.Attribute("profile.somethingExtra.more")
	require.False(t, ok)
	require.Equal(t, map[string]any{"profile": map[string]any{}}, owner.ToMap())
}

func TestLinkedInResourceOwner_Immutable(t *testing.T) {
	t.Parallel()

	profile := map[string]any{"id": "abcdef1234", "nested": map[string]any{"k": "v"}}
	owner := oauth.NewLinkedInResourceOwner(profile, "a@example.com")

	profile["id"] = "changed"
	exported := owner.ToMap()
	exported["profile"].(map[string]any)["id"] = "changed"
	nested, ok := owner.Attribute("profile.nested")
	require.True(t, ok)
	nested.(map[string]any)["k"] = "changed"

	require.Equal(t, "abcdef1234", owner.ID())
	v, ok := owner.Attribute("profile.nested.k")
	require.True(t, ok)
	require.Equal(t, "v", v)
}

func TestLinkedInResourceOwner_SortedProfilePictures(t *testing.T) {
	t.Parallel()

	t.Run("sorted by width then height", func(t *testing.T) {
		t.Parallel()

		owner := oauth.NewLinkedInResourceOwner(profileWithPictures(
			pictureElement("http://example.com/400.jpeg", 400, 400),
			pictureElement("http://example.com/100.jpeg", 100, 100),
			pictureElement("http://example.com/400x500.jpeg", 400, 500),
		), "")

		pictures := owner.SortedProfilePictures()
		require.Len(t, pictures, 3)
		require.Equal(t, "http://example.com/100.jpeg", pictures[0].URL)
		require.Equal(t, "http://example.com/400.jpeg", pictures[1].URL)
		require.Equal(t, "http://example.com/400x500.jpeg", pictures[2].URL)
		require.Equal(t, "image/jpeg", pictures[2].ContentType)
		require.Equal(t, 400, pictures[2].Width)
		require.Equal(t, 500, pictures[2].Height)
		require.Equal(t, "http://example.com/400x500.jpeg", owner.BiggestProfilePictureURL())
	})

	t.Run("equal sizes resolve to the last one", func(t *testing.T) {
		t.Parallel()

		owner := oauth.NewLinkedInResourceOwner(profileWithPictures(
			pictureElement("http://example.com/a.jpeg", 800, 800),
			pictureElement("http://example.com/b.jpeg", 800, 800),
			pictureElement("http://example.com/small.jpeg", 100, 100),
		), "")
		require.Equal(t, "http://example.com/b.jpeg", owner.BiggestProfilePictureURL())
	})

	t.Run("without size metadata the last element wins", func(t *testing.T) {
		t.Parallel()

		first := pictureElement("http://example.com/first.jpeg", 0, 0)
		delete(first, "data")
		last := pictureElement("http://example.com/last.jpeg", 0, 0)
		delete(last, "data")

		owner := oauth.NewLinkedInResourceOwner(profileWithPictures(first, last), "")
		require.Equal(t, "http://example.com/last.jpeg", owner.BiggestProfilePictureURL())
	})

	t.Run("non-public and identifier-less elements skipped", func(t *testing.T) {
		t.Parallel()

		private := pictureElement("http://example.com/private.jpeg", 1000, 1000)
		private["authorizationMethod"] = "NONE"
		noID := pictureElement("", 900, 900)

		owner := oauth.NewLinkedInResourceOwner(profileWithPictures(
			private,
			noID,
			pictureElement("http://example.com/public.jpeg", 200, 200),
			"garbage",
		), "")
		require.Equal(t, "http://example.com/public.jpeg", owner.ImageURL())
	})

	t.Run("empty elements", func(t *testing.T) {
		t.Parallel()

		owner := oauth.NewLinkedInResourceOwner(profileWithPictures(), "")
		require.Empty(t, owner.BiggestProfilePictureURL())
	})
}

func TestLinkedInResourceOwner_LocalizedNames(t *testing.T) {
	t.Parallel()

	profile := loadFixture(t, "linkedin_me.json")
	delete(profile, "localizedFirstName")
	delete(profile, "localizedLastName")
	owner := oauth.NewLinkedInResourceOwner(profile, "")

	t.Run("preferred locale by default", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "John", owner.FirstName())
		require.Equal(t, "John", owner.LocalizedFirstName())
		require.Equal(t, "Doe", owner.LastName())
	})

	t.Run("matches requested language", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Johann", owner.LocalizedFirstName(language.German))
		require.Equal(t, "Johann", owner.LocalizedFirstName(language.MustParse("de-AT")))
	})

	t.Run("unsupported language falls back to preferred locale", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "John", owner.LocalizedFirstName(language.Japanese))
	})
}
