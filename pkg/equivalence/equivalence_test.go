package equivalence_test

import (
	"testing"

	"go.llib.dev/koloboke/pkg/equivalence"
	"go.llib.dev/koloboke/pkg/equivalence/equivalencecontract"
	"go.llib.dev/koloboke/pkg/pointer"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

// modulo relates integers that share a remainder,
// a small non-trivial relation to exercise the contract with.
type modulo struct{ N int }

func (eq modulo) Equivalent(a, b int) bool { return a%eq.N == b%eq.N }

func (eq modulo) Hash(t int) uint64 { return uint64(t % eq.N) }

func (eq modulo) Equal(other equivalence.Equivalence[int]) bool {
	o, ok := other.(modulo)
	return ok && eq.N == o.N
}

func (eq modulo) HashCode() uint64 { return uint64(eq.N) }

func TestEquivalence_contract(t *testing.T) {
	equivalencecontract.Equivalence[int](modulo{N: 10},
		func(tb testing.TB) int { return testcase.ToT(&tb).Random.IntB(0, 100) },
		equivalencecontract.WithEquivalentPair[int](func(tb testing.TB) (int, int) {
			n := testcase.ToT(&tb).Random.IntB(0, 9)
			return n, n + 10
		}),
		equivalencecontract.WithDistinctPair[int](func(tb testing.TB) (int, int) {
			return 1, 2
		}),
	).Test(t)
}

func TestNullableEquivalent(t *testing.T) {
	eq := modulo{N: 10}

	t.Run("both absent", func(t *testing.T) {
		assert.True(t, equivalence.NullableEquivalent[int](eq, nil, nil))
	})

	t.Run("exactly one absent", func(t *testing.T) {
		v := pointer.Of(rnd.Int())
		assert.False(t, equivalence.NullableEquivalent(eq, v, nil))
		assert.False(t, equivalence.NullableEquivalent(eq, nil, v))
	})

	t.Run("same pointer", func(t *testing.T) {
		v := pointer.Of(rnd.Int())
		assert.True(t, equivalence.NullableEquivalent(eq, v, v))
	})

	t.Run("both present delegates to the strategy", func(t *testing.T) {
		assert.True(t, equivalence.NullableEquivalent(eq, pointer.Of(3), pointer.Of(13)))
		assert.False(t, equivalence.NullableEquivalent(eq, pointer.Of(3), pointer.Of(4)))
	})

	t.Run("a strategy with its own nullable handling is preferred", func(t *testing.T) {
		var used int
		eq := nullOverride{modulo: modulo{N: 10}, used: &used}
		assert.True(t, equivalence.NullableEquivalent[int](eq, nil, nil))
		assert.Equal(t, 1, used)
	})
}

func TestNullableHash(t *testing.T) {
	eq := modulo{N: 10}

	t.Run("absent hashes to zero", func(t *testing.T) {
		assert.Equal(t, uint64(0), equivalence.NullableHash[int](eq, nil))
	})

	t.Run("present delegates to the strategy", func(t *testing.T) {
		v := rnd.IntB(0, 100)
		assert.Equal(t, eq.Hash(v), equivalence.NullableHash(eq, pointer.Of(v)))
	})

	t.Run("a strategy with its own nullable handling is preferred", func(t *testing.T) {
		var used int
		eq := nullOverride{modulo: modulo{N: 10}, used: &used}
		assert.Equal(t, uint64(0), equivalence.NullableHash[int](eq, nil))
		assert.Equal(t, 1, used)
	})
}

// nullOverride implements the optional nullable upgrade methods
// and records that they were used.
type nullOverride struct {
	modulo
	used *int
}

func (eq nullOverride) NullableEquivalent(a, b *int) bool {
	*eq.used++
	if a == b {
		return true
	}
	return a != nil && b != nil && eq.Equivalent(*a, *b)
}

func (eq nullOverride) NullableHash(t *int) uint64 {
	*eq.used++
	if t == nil {
		return 0
	}
	return eq.Hash(*t)
}
