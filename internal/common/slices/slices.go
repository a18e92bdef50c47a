package slices

import (
	"golang.org/x/exp/constraints"
	goslices "golang.org/x/exp/slices"
)

// Map returns a new slice obtained by applying f to each element of s, in order.
func Map[S ~[]E, E any, V any](s S, f func(E) V) []V {
	if s == nil {
		return nil
	}
	rv := make([]V, len(s))
	for i, e := range s {
		rv[i] = f(e)
	}
	return rv
}

// Flatten merges a slice of slices into a single slice.
func Flatten[S ~[]E, E any](s []S) S {
	n := 0
	allNil := true
	for _, si := range s {
		n += len(si)
		allNil = allNil && si == nil
	}
	if allNil {
		return nil
	}
	rv := make(S, 0, n)
	for _, si := range s {
		rv = append(rv, si...)
	}
	return rv
}

// Sum returns the sum of the elements of s, or the zero value if s is empty.
func Sum[S ~[]E, E constraints.Integer | constraints.Float](s S) E {
	var rv E
	for _, v := range s {
		rv += v
	}
	return rv
}

// Max returns the largest element of s, or the zero value if s is empty.
func Max[S ~[]E, E constraints.Ordered](s S) E {
	var rv E
	for i, v := range s {
		if i == 0 || v > rv {
			rv = v
		}
	}
	return rv
}

// Sorted returns a sorted copy of s.
func Sorted[S ~[]E, E constraints.Ordered](s S) S {
	rv := goslices.Clone(s)
	goslices.Sort(rv)
	return rv
}
