package whitelodge

// State is the value type held by a [Store]: a mapping from string keys to
// arbitrary values.
//
// State is an alias for map[string]any so that plain map literals and
// decoded JSON/YAML mappings can be passed anywhere a State is expected.
// State payloads are merged, never replaced wholesale: [Store.SetState]
// copies the payload's keys onto the store's current state, leaving keys
// absent from the payload untouched.
type State = map[string]any

// IsMapping reports whether v can be used as a state payload.
//
// Only a non-nil map[string]any qualifies. Slices, arrays, primitives, and
// nil are rejected; the same predicate guards initial state at construction
// and every payload passed to [Store.SetState].
func IsMapping(v any) bool {
	m, ok := v.(map[string]any)
	return ok && m != nil
}

// CloneState returns a deep copy of a state.
//
// Nested map[string]any and []any values are copied recursively so that
// later mutation of the original never alters the copy. All other values
// (scalars, but also funcs, channels, and pointers) are copied by
// assignment; pointer-shaped values therefore still alias the original
// referent. Returns nil for a nil state.
func CloneState(s State) State {
	if s == nil {
		return nil
	}
	cp := make(State, len(s))
	for k, v := range s {
		cp[k] = cloneValue(v)
	}
	return cp
}

// cloneValue deep-copies the container types that can appear in a state
// tree and passes everything else through by assignment.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneState(val)
	case []any:
		cp := make([]any, len(val))
		for i, elem := range val {
			cp[i] = cloneValue(elem)
		}
		return cp
	default:
		return val
	}
}

// mergeState copies src's keys onto dst, overwriting existing keys and
// adding new ones. Keys absent from src are left untouched.
func mergeState(dst, src State) {
	for k, v := range src {
		dst[k] = v
	}
}
