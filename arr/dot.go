package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation lookups for map[string]any
//
// Containers of decoded JSON objects are common; these helpers let callers
// project a nested value out of every element by path:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Get(m, "user.address.city")  → "London", true
//	Has(m, "user.name")          → true
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves a value from m using a dot-notation key. The second result
// is false when any segment of the path is missing or not a nested map.
func Get(m map[string]any, key string) (any, bool) {
	segments := strings.Split(key, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	_, ok := Get(m, key)
	return ok
}
