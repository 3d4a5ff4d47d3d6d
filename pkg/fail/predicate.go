package fail

// Tagged is satisfied by any value carrying a failure tag. The distinct Tag
// result type keeps arbitrary types from matching by accident.
type Tagged interface {
	FailTag() Tag
}

// Is reports whether v is a failure value. With no keys it only classifies;
// with keys it additionally requires the tag to equal one of them exactly.
// Untagged failures are narrowed by passing Marker.
//
// Is never panics, whatever v is. A Failure with a different key than the
// ones asked for reports false.
func Is(v any, keys ...Tag) bool {
	if v == nil || IsNil(v) {
		return false
	}

	t, ok := v.(Tagged)
	if !ok {
		return false
	}

	tag := t.FailTag()
	if tag == "" { // zero-value struct, not a constructed failure
		return false
	}

	if len(keys) == 0 {
		return true
	}
	for _, k := range keys {
		if tag == k {
			return true
		}
	}
	return false
}
