package entry

// Cloner is an entry holding slices, which a plain value copy would share.
type Cloner[E any] interface {
	Clone() E
}

// Clone returns a deep copy of e when it implements Cloner and e itself
// otherwise. Stores hand out clones so callers cannot reach shared state.
func Clone[E any](e E) E {
	if c, ok := any(e).(Cloner[E]); ok {
		return c.Clone()
	}
	return e
}
