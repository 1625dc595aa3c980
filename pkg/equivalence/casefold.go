package equivalence

import (
	"hash/maphash"

	"golang.org/x/text/cases"
)

// CaseFold returns the string equivalence under full Unicode case folding.
//
// Full folding is stronger than the simple folding of CaseInsensitive,
// it also relates strings whose folded forms differ in length,
// such as "ß" and "ss", or "ﬁ" and "fi".
// Both the comparison and the hash go through the folded form,
// so the hash distributes across the relation by construction.
func CaseFold() Equivalence[string] { return caseFold{} }

type caseFold struct{}

func (caseFold) Equivalent(a, b string) bool {
	// a cases.Caser carries transformation state, each call works with its own
	c := cases.Fold()
	return c.String(a) == c.String(b)
}

func (caseFold) Hash(s string) uint64 {
	return maphash.String(hashSeed, cases.Fold().String(s))
}

func (caseFold) Equal(other Equivalence[string]) bool {
	_, ok := other.(caseFold)
	return ok
}

func (caseFold) HashCode() uint64 {
	return maphash.String(hashSeed, "equivalence.CaseFold")
}
