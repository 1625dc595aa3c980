package equivalence

import "hash/maphash"

// Entry is a key-value pair, the element type of map-like containers.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// EntryOf returns an Entry of the given key and value.
func EntryOf[K, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// EntryEquivalence reduces the two per-dimension strategies of a map-like
// container into a single strategy over its entries.
//
// When both dimensions are absent the result is absent as well, rather
// than a no-op wrapper instance: the container needs no customisation for
// its entries, and the "absent means built-in equality" convention is kept
// intact one level up.
func EntryEquivalence[K, V any](keyEq Optional[K], valEq Optional[V]) Optional[Entry[K, V]] {
	if !keyEq.Ok() && !valEq.Ok() {
		return None[Entry[K, V]]()
	}
	return Some[Entry[K, V]](entryEquivalence[K, V]{key: keyEq, val: valEq})
}

type entryEquivalence[K, V any] struct {
	key Optional[K]
	val Optional[V]
}

func (eq entryEquivalence[K, V]) Equivalent(a, b Entry[K, V]) bool {
	if !eq.key.Equivalent(a.Key, b.Key) {
		return false
	}
	return eq.val.Equivalent(a.Value, b.Value)
}

// Hash combines the key and value hash codes with a bitwise xor.
// Cheap and sufficient for a hash code; callers must not rely on it being
// collision resistant.
func (eq entryEquivalence[K, V]) Hash(e Entry[K, V]) uint64 {
	return eq.key.Hash(e.Key) ^ eq.val.Hash(e.Value)
}

func (eq entryEquivalence[K, V]) Equal(other Equivalence[Entry[K, V]]) bool {
	o, ok := other.(entryEquivalence[K, V])
	if !ok {
		return false
	}
	return eq.key.Equal(o.key) && eq.val.Equal(o.val)
}

func (eq entryEquivalence[K, V]) HashCode() uint64 {
	return combineHash(
		maphash.String(hashSeed, "equivalence.EntryEquivalence"),
		eq.key.HashCode(),
		eq.val.HashCode(),
	)
}
