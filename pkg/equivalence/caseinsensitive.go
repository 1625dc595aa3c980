package equivalence

import (
	"hash/maphash"
	"strings"
	"unicode"
)

// CaseInsensitive returns the string equivalence that compares under Unicode
// simple case folding, the relation implemented by strings.EqualFold.
// Hashing goes through the case-folded form of the string, so two strings
// that fold equal always share a hash code.
func CaseInsensitive() Equivalence[string] { return caseInsensitive{} }

type caseInsensitive struct{}

func (caseInsensitive) Equivalent(a, b string) bool { return strings.EqualFold(a, b) }

func (caseInsensitive) Hash(s string) uint64 {
	return maphash.String(hashSeed, simpleFold(s))
}

func (caseInsensitive) Equal(other Equivalence[string]) bool {
	_, ok := other.(caseInsensitive)
	return ok
}

func (caseInsensitive) HashCode() uint64 {
	return maphash.String(hashSeed, "equivalence.CaseInsensitive")
}

// simpleFold maps every rune of s to the canonical element of its simple
// case-folding orbit. Two strings fold to the same form exactly when
// strings.EqualFold reports them equal, which keeps Hash consistent with
// Equivalent.
func simpleFold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(foldRune(r))
	}
	return b.String()
}

func foldRune(r rune) rune {
	min := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < min {
			min = f
		}
	}
	return min
}
