package lex

import "hash/fnv"

// Item is the common interface of every arm of the LexItem sum type:
// Predicate, Constant, Variable, Atomic, Predicated, Quantified, Operated.
// Items are value objects — every operation on a Sentence returns a new
// Item rather than mutating in place.
type Item interface {
	// SortTuple returns the lexicographic key used for ordering, equality,
	// and hashing. The first element is always the arm's rank.
	SortTuple() []int64
	String() string
}

// Equal reports whether two items have identical sort tuples.
func Equal(a, b Item) bool {
	if a == nil || b == nil {
		return a == b
	}
	return compareTuples(a.SortTuple(), b.SortTuple()) == 0
}

// Compare orders two items by sort tuple: negative if a < b, zero if equal,
// positive if a > b.
func Compare(a, b Item) int {
	return compareTuples(a.SortTuple(), b.SortTuple())
}

func compareTuples(a, b []int64) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Hash returns a stable hash of the item's sort tuple, suitable for use as
// a map key surrogate where Item itself is not comparable (Operated and
// Predicated hold slices).
func Hash(it Item) uint64 {
	h := fnv.New64a()
	for _, v := range it.SortTuple() {
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Key returns a comparable string surrogate for an Item, usable as a Go map
// key (sort tuples are slices and not themselves comparable).
func Key(it Item) string {
	tup := it.SortTuple()
	buf := make([]byte, 0, len(tup)*9)
	for _, v := range tup {
		for i := 0; i < 8; i++ {
			buf = append(buf, byte(v>>(8*i)))
		}
		buf = append(buf, '|')
	}
	return string(buf)
}
