package slp

// Opt is a version-gated record field. Set reports whether the file's
// format revision is new enough to carry the field; a zero Val with Set
// false means absent, not zero.
type Opt[T any] struct {
	Val T
	Set bool
}

func opt[T any](v T) Opt[T] {
	return Opt[T]{Val: v, Set: true}
}
