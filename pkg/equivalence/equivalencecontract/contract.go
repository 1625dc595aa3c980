// Package equivalencecontract defines the behavioural contract that every
// Equivalence strategy implementation must satisfy.
//
// The contract is exported so container implementations can verify their
// own custom strategies against the same expectations the built-in
// strategies are tested with.
package equivalencecontract

import (
	"fmt"
	"testing"

	"go.llib.dev/koloboke/pkg/equivalence"
	"go.llib.dev/koloboke/pkg/pointer"
	"go.llib.dev/koloboke/pkg/zerokit"
	"go.llib.dev/koloboke/port/contract"
	"go.llib.dev/koloboke/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// Equivalence returns the contract of the equivalence.Equivalence role interface.
//
// The mk function supplies sample values of the compared type.
// Pass WithEquivalentPair when mk alone is unlikely to produce values the
// subject relates, so the relation laws get exercised on related values too.
func Equivalence[T any](subject equivalence.Equivalence[T], mk contract.Make[T], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	samples := func(t *testcase.T) []T {
		vs := []T{mk(t), mk(t), mk(t)}
		if c.MakeEquivalentPair != nil {
			a, b := c.MakeEquivalentPair(t)
			vs = append(vs, a, b)
		}
		return vs
	}

	s.Test("equivalent is reflexive", func(t *testcase.T) {
		for _, v := range samples(t) {
			assert.True(t, subject.Equivalent(v, v),
				assert.MessageF("expected %#v to be equivalent with itself", v))
		}
	})

	s.Test("equivalent is symmetric", func(t *testcase.T) {
		vs := samples(t)
		for _, a := range vs {
			for _, b := range vs {
				assert.Equal(t, subject.Equivalent(a, b), subject.Equivalent(b, a))
			}
		}
	})

	s.Test("equivalent is transitive", func(t *testcase.T) {
		vs := samples(t)
		for _, x := range vs {
			for _, y := range vs {
				for _, z := range vs {
					if subject.Equivalent(x, y) && subject.Equivalent(y, z) {
						assert.True(t, subject.Equivalent(x, z))
					}
				}
			}
		}
	})

	s.Test("equivalent is consistent", func(t *testcase.T) {
		a, b := mk(t), mk(t)
		expected := subject.Equivalent(a, b)
		t.Random.Repeat(3, 7, func() {
			assert.Equal(t, expected, subject.Equivalent(a, b))
		})
	})

	s.Test("hash is consistent", func(t *testcase.T) {
		v := mk(t)
		expected := subject.Hash(v)
		t.Random.Repeat(3, 7, func() {
			assert.Equal(t, expected, subject.Hash(v))
		})
	})

	s.Test("hash distributes across the relation", func(t *testcase.T) {
		vs := samples(t)
		for _, a := range vs {
			for _, b := range vs {
				if subject.Equivalent(a, b) {
					assert.Equal(t, subject.Hash(a), subject.Hash(b))
				}
			}
		}
	})

	if c.MakeEquivalentPair != nil {
		s.Test("the equivalent pair samples are related and share a hash code", func(t *testcase.T) {
			a, b := c.MakeEquivalentPair(t)
			assert.True(t, subject.Equivalent(a, b))
			assert.Equal(t, subject.Hash(a), subject.Hash(b))
		})
	}

	if c.MakeDistinctPair != nil {
		s.Test("the distinct pair samples are unrelated", func(t *testcase.T) {
			a, b := c.MakeDistinctPair(t)
			assert.False(t, subject.Equivalent(a, b))
		})
	}

	s.Test("nullable variants follow the null convention", func(t *testcase.T) {
		var absent *T
		present := pointer.Of(mk(t))
		assert.True(t, equivalence.NullableEquivalent(subject, absent, absent))
		assert.False(t, equivalence.NullableEquivalent(subject, present, absent))
		assert.False(t, equivalence.NullableEquivalent(subject, absent, present))
		assert.True(t, equivalence.NullableEquivalent(subject, present, present))
		assert.Equal(t, uint64(0), equivalence.NullableHash(subject, absent))
		assert.Equal(t, subject.Hash(pointer.Deref(present)), equivalence.NullableHash(subject, present))
	})

	s.Test("the strategy defines its own equality", func(t *testcase.T) {
		assert.True(t, subject.Equal(subject))
		assert.Equal(t, subject.HashCode(), subject.HashCode())
	})

	return s.AsSuite(fmt.Sprintf("Equivalence[%T]", *new(T)))
}

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeEquivalentPair returns two values the subject must consider equivalent.
	MakeEquivalentPair func(tb testing.TB) (T, T)
	// MakeDistinctPair returns two values the subject must consider not equivalent.
	MakeDistinctPair func(tb testing.TB) (T, T)
}

var _ Option[string] = Config[string]{}

func (c Config[T]) Configure(o *Config[T]) {
	o.MakeEquivalentPair = zerokit.Coalesce(c.MakeEquivalentPair, o.MakeEquivalentPair)
	o.MakeDistinctPair = zerokit.Coalesce(c.MakeDistinctPair, o.MakeDistinctPair)
}

// WithEquivalentPair supplies a generator of values the subject must relate.
func WithEquivalentPair[T any](fn func(tb testing.TB) (T, T)) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.MakeEquivalentPair = fn })
}

// WithDistinctPair supplies a generator of values the subject must not relate.
func WithDistinctPair[T any](fn func(tb testing.TB) (T, T)) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.MakeDistinctPair = fn })
}
