package vars

// FirstNonZero picks the first value that is not the zero value of T.
// Used for proxy addresses, where an empty string means unset.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, v := range values {
		if v != ret {
			return v
		}
	}
	return
}

// FirstSet dereferences the first non-nil pointer.
// Earlier sources take precedence, so flags come before configs and defaults last.
func FirstSet[T any](sources ...*T) (ret T) {
	for _, ptr := range sources {
		if ptr != nil {
			return *ptr
		}
	}
	return
}
