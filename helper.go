// FILE: embedconf/helper.go
package embedconf

import (
	"encoding/json"
	"unicode/utf8"
)

// validUTF8Len returns the length of the longest valid UTF-8 prefix of
// data, which is the byte offset of the first invalid byte.
func validUTF8Len(data []byte) int {
	i := 0
	for i < len(data) {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(data)
}

// normalizeMap recursively rewrites a parsed tree so numeric leaves use a
// single representation regardless of the source format: integers become
// int64 and non-integral numbers become float64. TOML already decodes this
// way; JSON (via json.Number) and YAML (native int) need the rewrite.
func normalizeMap(m map[string]any) map[string]any {
	for key, value := range m {
		m[key] = normalizeValue(value)
	}
	return m
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeMap(v)
	case []any:
		for i, elem := range v {
			v[i] = normalizeValue(elem)
		}
		return v
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case int:
		return int64(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

// cloneValue deep-copies a resolved node so callers can never mutate the
// document through the value they were handed.
func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[key] = cloneValue(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = cloneValue(child)
		}
		return out
	default:
		return value
	}
}
