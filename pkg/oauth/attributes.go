package oauth

import (
	"strconv"
	"strings"
)

// Attribute looks up a dotted path (e.g. "profile.somethingExtra.more") in a
// decoded JSON document. Numeric segments index into arrays.
//
// Keys that contain dots themselves, such as LinkedIn's
// "com.linkedin.digitalmedia.mediaartifact.StillImage", are resolved by
// trying progressively longer joins of the remaining segments.
//
// Any missing key or non-container intermediate yields (nil, false).
func Attribute(doc map[string]any, path string) (any, bool) {
	if doc == nil || path == "" {
		return nil, false
	}
	return lookupSegments(doc, strings.Split(path, "."))
}

// Dig walks doc along literal keys, without splitting them on dots.
func Dig(doc any, keys ...string) (any, bool) {
	node := doc
	for _, key := range keys {
		next, ok := step(node, key)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}

func lookupSegments(node any, segs []string) (any, bool) {
	if len(segs) == 0 {
		return node, true
	}
	for i := 1; i <= len(segs); i++ {
		child, ok := step(node, strings.Join(segs[:i], "."))
		if !ok {
			continue
		}
		if v, ok := lookupSegments(child, segs[i:]); ok {
			return v, true
		}
	}
	return nil, false
}

func step(node any, key string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[key]
		return v, ok
	case []any:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(n) {
			return nil, false
		}
		return n[idx], true
	default:
		return nil, false
	}
}

// CloneMap returns a deep copy of a decoded JSON object.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
