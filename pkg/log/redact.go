package log

import "strings"

// Redacted replaces the value of sensitive fields.
const Redacted = "[REDACTED]"

var sensitiveKeys = map[string]struct{}{
	"token":         {},
	"access_token":  {},
	"credential":    {},
	"authorization": {},
	"client_secret": {},
	"secret_key":    {},
	"cookie":        {},
}

// IsSensitive reports whether values logged under key must be redacted.
func IsSensitive(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

// fieldValue returns the value to record for key: redacted if sensitive,
// the message for errors, v otherwise.
func fieldValue(key string, v any) any {
	if IsSensitive(key) {
		return Redacted
	}
	if err, ok := v.(error); ok && err != nil {
		return err.Error()
	}
	return v
}

// setFields copies alternating key/value pairs into dst. Non-string keys
// and a trailing key without value are skipped.
func setFields(dst map[string]any, keysAndValues []any) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		dst[key] = fieldValue(key, keysAndValues[i+1])
	}
}
