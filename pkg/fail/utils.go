package fail

import "reflect"

// IsNil reports whether i is nil or a typed nil (pointer, map, slice, func,
// chan, interface).
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch rv := reflect.ValueOf(i); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsAbsent reports whether v counts as "not supplied" for construction: nil,
// typed nil, or the zero value of its type. A non-nil pointer to a zero value
// is present.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
