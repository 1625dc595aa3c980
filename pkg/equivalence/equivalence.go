// Package equivalence provides pluggable equality strategies for generic containers.
//
// An Equivalence bundles a custom equality relation with a hash function
// consistent with it, so maps and sets can work with semantics other than
// the element type's built-in equality, such as case-insensitive text
// comparison or reference identity.
//
// Containers hold zero or one strategy per comparison dimension, expressed
// as an Optional. An absent Optional uniformly means "use the element
// type's built-in equality and hash"; the fallback itself is supplied by
// the objkit package.
package equivalence

import "hash/maphash"

// Equivalence is a strategy for deciding whether two values of type T are
// considered equivalent, together with a hash function consistent with
// that decision.
//
// Equivalent must implement an equivalence relation:
//   - reflexive: Equivalent(x, x) is true
//   - symmetric: Equivalent(x, y) == Equivalent(y, x)
//   - transitive: Equivalent(x, y) and Equivalent(y, z) imply Equivalent(x, z)
//   - consistent: repeated calls with unchanged inputs return the same result
//
// Hash must be consistent, and must distribute across the relation:
// Equivalent(x, y) implies Hash(x) == Hash(y).
// The converse is not required, unequal values may share a hash code.
//
// Implementations must be stateless or immutable after construction,
// which makes every method safe for concurrent use.
type Equivalence[T any] interface {
	// Equivalent reports whether a and b are considered equivalent.
	//
	// Both arguments must represent present values.
	// When absence is possible, route the comparison through the
	// null-tolerant NullableEquivalent function instead.
	Equivalent(a, b T) bool
	// Hash returns a hash code for the given value.
	//
	// The value must represent a present value.
	// When absence is possible, use NullableHash instead.
	Hash(t T) uint64
	// Equal reports whether the other strategy denotes the same relation
	// as this one.
	//
	// It is part of the interface on purpose: a container embedding a
	// strategy can only compare equal to another container when their
	// embedded strategies are equal, and an implementation silently
	// inheriting some default here would break that equality unnoticed.
	Equal(other Equivalence[T]) bool
	// HashCode returns the hash identity of the strategy object itself.
	// It pairs with Equal: strategies that are Equal share a HashCode.
	HashCode() uint64
}

// nullableEquivalencer is the optional upgrade interface a strategy may
// implement when it has a cheaper direct answer for possibly absent values
// than the default null-handling of NullableEquivalent.
// The implementation must keep the null convention intact.
type nullableEquivalencer[T any] interface {
	NullableEquivalent(a, b *T) bool
}

// nullableHasher is the hashing counterpart of nullableEquivalencer.
type nullableHasher[T any] interface {
	NullableHash(t *T) uint64
}

// NullableEquivalent compares two possibly absent values with the given strategy.
//
// An absent value is expressed as a nil pointer.
// Two absent values are equivalent, an absent and a present value are not,
// and two present values are compared with eq.Equivalent.
func NullableEquivalent[T any](eq Equivalence[T], a, b *T) bool {
	if eq, ok := eq.(nullableEquivalencer[T]); ok {
		return eq.NullableEquivalent(a, b)
	}
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return eq.Equivalent(*a, *b)
}

// NullableHash returns the hash code of a possibly absent value.
//
// The hash code of an absent value is zero,
// a present value is hashed with eq.Hash.
func NullableHash[T any](eq Equivalence[T], t *T) uint64 {
	if eq, ok := eq.(nullableHasher[T]); ok {
		return eq.NullableHash(t)
	}
	if t == nil {
		return 0
	}
	return eq.Hash(*t)
}

var hashSeed = maphash.MakeSeed()

// combineHash folds hash codes into one with the DJB combination step.
func combineHash(hs ...uint64) uint64 {
	var acc uint64 = 5381
	for _, h := range hs {
		acc = acc<<5 + acc + h
	}
	return acc
}
