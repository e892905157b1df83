package timeline

// The raw export is an untyped JSON document. Instead of reflection we walk
// it with explicit type switches over the four shapes json.Unmarshal can
// produce for a node: mapping, sequence, scalar, absent (nil).

// asMap returns the node as a mapping, or nil when it is anything else.
// Indexing a nil map is safe, so callers can chain lookups without guards.
func asMap(node any) map[string]any {
	m, _ := node.(map[string]any)
	return m
}

// asList returns the node as a sequence, or nil.
func asList(node any) []any {
	l, _ := node.([]any)
	return l
}

// asString returns the node as a scalar string, or "".
func asString(node any) string {
	s, _ := node.(string)
	return s
}

// asNumber returns the node as a scalar number. JSON numbers decode to
// float64.
func asNumber(node any) (float64, bool) {
	f, ok := node.(float64)
	return f, ok
}

// FindInstrumentType searches the tree depth-first for the broker's
// instrument classification marker. The field sits at a different depth
// depending on event flavor (often buried in the customer-support chat
// context), so the search ignores structure entirely and returns the first
// non-empty value under an "instrumentType" key.
func FindInstrumentType(node any) (string, bool) {
	switch n := node.(type) {
	case map[string]any:
		if v := asString(n["instrumentType"]); v != "" {
			return v, true
		}
		for _, child := range n {
			if v, ok := FindInstrumentType(child); ok {
				return v, true
			}
		}
	case []any:
		for _, child := range n {
			if v, ok := FindInstrumentType(child); ok {
				return v, true
			}
		}
	}
	return "", false
}
