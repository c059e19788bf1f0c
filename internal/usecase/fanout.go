package usecase

import (
	"github.com/sourcegraph/conc/iter"
	"github.com/sourcegraph/conc/panics"
)

// fanOut runs fn over every input at once and returns the results in input
// order. One goroutine per input: the work is upstream I/O, so GOMAXPROCS is
// not a useful bound. A panic in any branch is returned instead of the results.
func fanOut[T, R any](inputs []T, fn func(*T) R) ([]R, *panics.Recovered) {
	if len(inputs) == 0 {
		return []R{}, nil
	}

	var (
		out     []R
		catcher panics.Catcher
	)
	catcher.Try(func() {
		out = iter.Mapper[T, R]{MaxGoroutines: len(inputs)}.Map(inputs, fn)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		return nil, recovered
	}
	return out, nil
}
