package fail

import "github.com/google/uuid"

// Tag discriminates failure values. The key space is {Marker} plus any
// non-empty caller-chosen string.
type Tag string

// Marker is the default tag of untagged failures and the key that narrows to
// them. It is minted once at startup; the uuid suffix makes collision with a
// caller-chosen key effectively impossible.
var Marker = Tag("fail:" + uuid.NewString())
