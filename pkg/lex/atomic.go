package lex

import "fmt"

// Atomic is a propositional letter, identified by (index, subscript).
type Atomic struct {
	Idx int
	Sub int
}

func NewAtomic(index, subscript int) Atomic { return Atomic{Idx: index, Sub: subscript} }

func (a Atomic) SortTuple() []int64 {
	return []int64{int64(rankAtomic), int64(a.Idx), int64(a.Sub)}
}

func (a Atomic) String() string {
	letter := byte('A' + a.Idx)
	s := string(letter)
	if a.Sub != 0 {
		s += fmt.Sprintf("%d", a.Sub)
	}
	return s
}

func (a Atomic) IsAtomic() bool     { return true }
func (a Atomic) IsPredicated() bool { return false }
func (a Atomic) IsQuantified() bool { return false }
func (a Atomic) IsOperated() bool   { return false }
func (a Atomic) IsLiteral() bool    { return true }
func (a Atomic) IsNegated() bool    { return false }

func (a Atomic) Substitute(newP, oldP Parameter) Sentence { return a }

func (a Atomic) Constants() []Constant          { return nil }
func (a Atomic) Variables() []Variable          { return nil }
func (a Atomic) Atomics() []Atomic              { return []Atomic{a} }
func (a Atomic) SentPredicates() []Predicate    { return nil }
func (a Atomic) Operators() []Operator          { return nil }
func (a Atomic) Quantifiers() []Quantifier      { return nil }
