package oauth

import (
	"encoding/json"
	"net/http"
)

// CheckLinkedInResponse translates a LinkedIn response into an
// *IdentityProviderError. It returns nil for 2xx responses whose body has
// no "error" key.
//
// Both LinkedIn error shapes are understood:
//
//	{"error": "invalid_request", "error_description": "..."}     // OAuth endpoints
//	{"serviceErrorCode": 65600, "message": "...", "status": 401} // REST API
//
// Bodies that are not JSON still yield an error for non-2xx statuses.
func CheckLinkedInResponse(statusCode int, body []byte) error {
	var payload map[string]any
	_ = json.Unmarshal(body, &payload)

	_, hasError := payload["error"]
	success := statusCode >= 200 && statusCode < 300
	if success && !hasError {
		return nil
	}

	e := &IdentityProviderError{
		Code:        firstScalar(payload, "error", "serviceErrorCode", "code"),
		Description: firstScalar(payload, "error_description", "message"),
		StatusCode:  statusCode,
		Body:        body,
	}
	if success || statusCode == 0 {
		if status := intValue(payload["status"]); status > 0 {
			e.StatusCode = status
		}
	}
	if e.Description == "" {
		e.Description = http.StatusText(e.StatusCode)
	}
	return e
}

func firstScalar(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := scalarString(m[k]); s != "" {
			return s
		}
	}
	return ""
}
