package equivalence

import (
	"fmt"

	"go.llib.dev/koloboke/pkg/objkit"
)

// Optional represents the zero-or-one equivalence strategy a container
// holds per comparison dimension.
//
// The zero value is absent, and absent uniformly means "use the element
// type's built-in equality and hash". Every container API that accepts an
// Optional must honour this convention identically; Optional makes that
// easy by carrying the fallback behaviour itself:
// its comparison methods delegate to the configured strategy when present,
// and to the objkit built-in equality when absent.
type Optional[T any] struct{ eq Equivalence[T] }

// Some returns an Optional configured with the given strategy.
func Some[T any](eq Equivalence[T]) Optional[T] {
	if eq == nil {
		panic(fmt.Sprintf("equivalence: Some[%T] called with a nil Equivalence", *new(T)))
	}
	return Optional[T]{eq: eq}
}

// None returns the absent Optional, which stands for the built-in equality.
func None[T any]() Optional[T] { return Optional[T]{} }

// Ok reports whether a custom strategy is configured.
func (o Optional[T]) Ok() bool { return o.eq != nil }

// Lookup returns the configured strategy and whether one is present.
func (o Optional[T]) Lookup() (Equivalence[T], bool) {
	return o.eq, o.eq != nil
}

// Equivalent compares with the configured strategy,
// or with the built-in equality when absent.
func (o Optional[T]) Equivalent(a, b T) bool {
	if o.eq != nil {
		return o.eq.Equivalent(a, b)
	}
	return objkit.Equal(a, b)
}

// Hash hashes with the configured strategy,
// or with the built-in hashing when absent.
func (o Optional[T]) Hash(t T) uint64 {
	if o.eq != nil {
		return o.eq.Hash(t)
	}
	return objkit.Hash(t)
}

// NullableEquivalent is the null-tolerant variant of Optional.Equivalent.
func (o Optional[T]) NullableEquivalent(a, b *T) bool {
	if o.eq != nil {
		return NullableEquivalent(o.eq, a, b)
	}
	return objkit.NullEqual(a, b)
}

// NullableHash is the null-tolerant variant of Optional.Hash.
func (o Optional[T]) NullableHash(t *T) uint64 {
	if o.eq != nil {
		return NullableHash(o.eq, t)
	}
	return objkit.NullHash(t)
}

// Equal reports whether two optional strategies denote the same relation.
// Two absent Optionals are equal, and a present one never equals an absent one.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.eq == nil || other.eq == nil {
		return o.eq == nil && other.eq == nil
	}
	return o.eq.Equal(other.eq)
}

// HashCode returns the hash identity of the optional strategy itself.
// The hash code of the absent Optional is zero.
func (o Optional[T]) HashCode() uint64 {
	if o.eq == nil {
		return 0
	}
	return o.eq.HashCode()
}
