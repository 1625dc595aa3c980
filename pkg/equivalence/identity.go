package equivalence

import "hash/maphash"

// Identity returns the equivalence that compares values with the == operator
// and hashes them by that same identity.
//
// For pointer and channel types this is reference identity:
// two distinct values with equal content are not equivalent,
// only the very same referenced value is.
// For plain value types it coincides with the built-in equality.
func Identity[T comparable]() Equivalence[T] { return identity[T]{} }

type identity[T comparable] struct{}

func (identity[T]) Equivalent(a, b T) bool { return a == b }

func (identity[T]) Hash(t T) uint64 { return maphash.Comparable(hashSeed, t) }

// NullableEquivalent answers directly instead of going through the default
// null-handling path, as == already covers the same-pointer and both-absent cases.
func (identity[T]) NullableEquivalent(a, b *T) bool {
	if a == b {
		return true
	}
	return a != nil && b != nil && *a == *b
}

func (identity[T]) NullableHash(t *T) uint64 {
	if t == nil {
		return 0
	}
	return maphash.Comparable(hashSeed, *t)
}

func (identity[T]) Equal(other Equivalence[T]) bool {
	_, ok := other.(identity[T])
	return ok
}

func (identity[T]) HashCode() uint64 {
	return maphash.String(hashSeed, "equivalence.Identity")
}
