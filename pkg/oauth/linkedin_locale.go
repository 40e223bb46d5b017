package oauth

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// LocalizedFirstName picks the best entry of the multi-locale firstName
// field for the given language preferences. Without preferences the
// member's preferredLocale wins.
func (o *LinkedInResourceOwner) LocalizedFirstName(prefs ...language.Tag) string {
	return o.localizedField("firstName", prefs)
}

// LocalizedLastName is LocalizedFirstName for lastName.
func (o *LinkedInResourceOwner) LocalizedLastName(prefs ...language.Tag) string {
	return o.localizedField("lastName", prefs)
}

// localizedField resolves {"localized": {"en_US": "..."}, "preferredLocale":
// {"language": "en", "country": "US"}} against prefs.
func (o *LinkedInResourceOwner) localizedField(field string, prefs []language.Tag) string {
	raw, _ := Dig(o.data, "profile", field, "localized")
	localized, _ := raw.(map[string]any)
	if len(localized) == 0 {
		return ""
	}

	keys := make([]string, 0, len(localized))
	for k, v := range localized {
		if s, ok := v.(string); ok && s != "" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	// The preferred locale goes first so it is the matcher's default.
	if preferred := o.preferredLocaleKey(field); preferred != "" {
		if i := slices.Index(keys, preferred); i > 0 {
			keys = append([]string{preferred}, slices.Delete(keys, i, i+1)...)
		}
	}

	tags := make([]language.Tag, 0, len(keys))
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		tag, err := language.Parse(strings.ReplaceAll(k, "_", "-"))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		values = append(values, localized[k].(string))
	}
	if len(tags) == 0 {
		return ""
	}

	_, idx, _ := language.NewMatcher(tags).Match(prefs...)
	return values[idx]
}

func (o *LinkedInResourceOwner) preferredLocaleKey(field string) string {
	lang := o.scalar("profile", field, "preferredLocale", "language")
	if lang == "" {
		return ""
	}
	if country := o.scalar("profile", field, "preferredLocale", "country"); country != "" {
		return lang + "_" + country
	}
	return lang
}
