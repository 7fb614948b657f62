package configs

import (
	"errors"
	"iter"
)

// First returns the highest precedence value at path, or the zero value.
// Malformed configs panic; check Loader.Err before resolving values.
func First[T any](loader Loader, path string) (ret T) {
	err := loader.AssignFirst(path, &ret)
	if err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(err)
	}
	return
}

// All decodes path from every file that sets it, in precedence order.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value, err := range loader.IterCueValues(path) {
			var v T
			if err != nil {
				yield(v, err)
				return
			}
			if err := value.Decode(&v); err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
