package lex

import (
	"strings"

	"github.com/gitrdm/gotableaux/pkg/errs"
)

// Predicated is a sentence applying a Predicate to a matching-arity list of
// parameters.
type Predicated struct {
	Pred   Predicate
	Params []Parameter
}

// NewPredicated validates the parameter count against the predicate's
// arity before constructing the sentence.
func NewPredicated(p Predicate, params ...Parameter) (Predicated, error) {
	if len(params) != p.Arity {
		return Predicated{}, errs.PredicateArityMismatchError(p.String(), p.Arity, len(params))
	}
	return Predicated{Pred: p, Params: append([]Parameter(nil), params...)}, nil
}

// MustPredicated panics on arity mismatch; for use with known-good,
// programmatically constructed predicates (e.g. system predicates).
func MustPredicated(p Predicate, params ...Parameter) Predicated {
	s, err := NewPredicated(p, params...)
	if err != nil {
		panic(err)
	}
	return s
}

func (p Predicated) SortTuple() []int64 {
	tup := []int64{int64(rankPredicated)}
	tup = append(tup, p.Pred.SortTuple()...)
	for _, param := range p.Params {
		tup = append(tup, param.SortTuple()...)
	}
	return tup
}

func (p Predicated) String() string {
	// prefix rendering; the notation package provides infix/per-format
	// output. This is a debug fallback only.
	var b strings.Builder
	b.WriteString(p.Pred.String())
	for _, param := range p.Params {
		b.WriteString(param.String())
	}
	return b.String()
}

func (p Predicated) IsAtomic() bool     { return false }
func (p Predicated) IsPredicated() bool { return true }
func (p Predicated) IsQuantified() bool { return false }
func (p Predicated) IsOperated() bool   { return false }
func (p Predicated) IsLiteral() bool    { return true }
func (p Predicated) IsNegated() bool    { return false }

func (p Predicated) Substitute(newP, oldP Parameter) Sentence {
	changed := false
	out := make([]Parameter, len(p.Params))
	for i, param := range p.Params {
		if Equal(param, oldP) {
			out[i] = newP
			changed = true
		} else {
			out[i] = param
		}
	}
	if !changed {
		return p
	}
	return Predicated{Pred: p.Pred, Params: out}
}

func (p Predicated) Constants() []Constant {
	var out []Constant
	for _, param := range p.Params {
		if c, ok := param.(Constant); ok {
			out = append(out, c)
		}
	}
	return dedupConstants(out)
}

func (p Predicated) Variables() []Variable {
	var out []Variable
	for _, param := range p.Params {
		if v, ok := param.(Variable); ok {
			out = append(out, v)
		}
	}
	return dedupVariables(out)
}

func (p Predicated) Atomics() []Atomic           { return nil }
func (p Predicated) SentPredicates() []Predicate { return []Predicate{p.Pred} }
func (p Predicated) Operators() []Operator       { return nil }
func (p Predicated) Quantifiers() []Quantifier   { return nil }
