package lex

import "fmt"

// Predicate identifies a relation symbol by (index, subscript) plus its
// fixed arity. System predicates (Identity, Existence) are negative-index
// singletons pre-registered in every Vocabulary.
type Predicate struct {
	Idx   int
	Sub   int
	Arity int
	Name  string // empty for user predicates without an explicit name
}

func NewPredicate(index, subscript, arity int) Predicate {
	return Predicate{Idx: index, Sub: subscript, Arity: arity}
}

func NewNamedPredicate(name string, index, subscript, arity int) Predicate {
	return Predicate{Idx: index, Sub: subscript, Arity: arity, Name: name}
}

// IsSystemPredicate reports whether p is one of the reserved singletons.
func (p Predicate) IsSystemPredicate() bool { return p.Idx < 0 }

func (p Predicate) SortTuple() []int64 {
	return []int64{int64(rankPredicate), int64(p.Idx), int64(p.Sub), int64(p.Arity)}
}

func (p Predicate) String() string {
	if p.Name != "" {
		return p.Name
	}
	letter := byte('F' + p.Idx)
	s := string(letter)
	if p.Sub != 0 {
		s += fmt.Sprintf("%d", p.Sub)
	}
	return s
}

// Identity is the reflexive/symmetric/transitive equality predicate every
// Vocabulary reserves at index -1.
var Identity = NewNamedPredicate("Identity", -1, 0, 2)

// Existence is the reserved unary predicate asserting a term denotes,
// registered at index -2.
var Existence = NewNamedPredicate("Existence", -2, 0, 1)
