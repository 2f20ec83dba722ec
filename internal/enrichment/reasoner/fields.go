package reasoner

// Typed accessors for the decoded JSON object. Model output is
// best-effort; every accessor falls back to a default instead of
// failing the whole workflow over one bad field.

// Str returns obj[key] as a string, or def when missing or mistyped.
func Str(obj map[string]any, key, def string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return def
}

// Float returns obj[key] as a float64, or def. Integers decode as
// float64 under encoding/json, so one accessor covers both.
func Float(obj map[string]any, key string, def float64) float64 {
	if v, ok := obj[key].(float64); ok {
		return v
	}
	return def
}

// Int returns obj[key] as an int, or def.
func Int(obj map[string]any, key string, def int) int {
	if v, ok := obj[key].(float64); ok {
		return int(v)
	}
	return def
}

// Strings returns obj[key] as a string slice, dropping non-string
// elements. Missing or mistyped values yield nil.
func Strings(obj map[string]any, key string) []string {
	raw, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Objects returns obj[key] as a slice of JSON objects, dropping
// non-object elements.
func Objects(obj map[string]any, key string) []map[string]any {
	raw, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
