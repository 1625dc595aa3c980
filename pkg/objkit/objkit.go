// Package objkit provides the built-in equality and hashing of arbitrary values,
// used as the fallback whenever no custom equivalence strategy is configured.
//
// The objkit package is considered as a `lite` package,
// and therefore its dependencies strictly restricted.
package objkit

import "hash/maphash"

var seed = maphash.MakeSeed()

// Equal reports whether two values are equal under the Go built-in equality
// of their dynamic type.
//
// The values' dynamic type must be comparable;
// calling Equal with an uncomparable value is a contract violation by the caller,
// and makes Equal panic.
func Equal[T any](a, b T) bool {
	return any(a) == any(b)
}

// Hash returns a hash code for the given value, consistent with Equal:
// values that are Equal always hash to the same code.
//
// The hash codes are seeded once per process,
// they are not stable between two executions of the same program.
func Hash[T any](t T) uint64 {
	return maphash.Comparable(seed, any(t))
}

// NullEqual is the null-tolerant variant of Equal.
// Two nil pointers are equal, a nil and a non-nil pointer are not,
// and two non-nil pointers are compared by their pointed values.
func NullEqual[T any](a, b *T) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return Equal(*a, *b)
}

// NullHash is the null-tolerant variant of Hash.
// The hash code of a nil pointer is zero.
func NullHash[T any](t *T) uint64 {
	if t == nil {
		return 0
	}
	return Hash(*t)
}
