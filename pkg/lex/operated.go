package lex

import (
	"strings"

	"github.com/gitrdm/gotableaux/pkg/errs"
)

// Operated applies a fixed-arity connective to its operands.
type Operated struct {
	Op       Operator
	Operands []Sentence
}

// NewOperated validates operand count against the operator's arity.
func NewOperated(op Operator, operands ...Sentence) (Operated, error) {
	if len(operands) != op.Arity() {
		return Operated{}, errs.ParseError("operator arity mismatch", "operator", op.String(), "want", op.Arity(), "got", len(operands))
	}
	return Operated{Op: op, Operands: append([]Sentence(nil), operands...)}, nil
}

// MustOperated panics on arity mismatch; for building sentences from
// already-arity-checked pieces (Negate, Conjoin, Disjoin, Asserted).
func MustOperated(op Operator, operands ...Sentence) Operated {
	s, err := NewOperated(op, operands...)
	if err != nil {
		panic(err)
	}
	return s
}

func (o Operated) SortTuple() []int64 {
	tup := []int64{int64(rankOperated), int64(o.Op)}
	for _, operand := range o.Operands {
		tup = append(tup, operand.SortTuple()...)
	}
	return tup
}

func (o Operated) String() string {
	var b strings.Builder
	b.WriteString(o.Op.String())
	for _, operand := range o.Operands {
		b.WriteString(operand.String())
	}
	return b.String()
}

func (o Operated) IsAtomic() bool     { return false }
func (o Operated) IsPredicated() bool { return false }
func (o Operated) IsQuantified() bool { return false }
func (o Operated) IsOperated() bool   { return true }
func (o Operated) IsNegated() bool    { return o.Op == Negation }

func (o Operated) IsLiteral() bool {
	if o.Op != Negation {
		return false
	}
	operand := o.Operands[0]
	return operand.IsAtomic() || operand.IsPredicated()
}

func (o Operated) Substitute(newP, oldP Parameter) Sentence {
	out := make([]Sentence, len(o.Operands))
	for i, operand := range o.Operands {
		out[i] = operand.Substitute(newP, oldP)
	}
	return Operated{Op: o.Op, Operands: out}
}

func (o Operated) Constants() []Constant {
	var out []Constant
	for _, operand := range o.Operands {
		out = append(out, operand.Constants()...)
	}
	return dedupConstants(out)
}

func (o Operated) Variables() []Variable {
	var out []Variable
	for _, operand := range o.Operands {
		out = append(out, operand.Variables()...)
	}
	return dedupVariables(out)
}

func (o Operated) Atomics() []Atomic {
	var out []Atomic
	for _, operand := range o.Operands {
		out = append(out, operand.Atomics()...)
	}
	return dedupAtomics(out)
}

func (o Operated) SentPredicates() []Predicate {
	var out []Predicate
	for _, operand := range o.Operands {
		out = append(out, operand.SentPredicates()...)
	}
	return dedupPredicates(out)
}

func (o Operated) Operators() []Operator {
	out := []Operator{o.Op}
	for _, operand := range o.Operands {
		out = append(out, operand.Operators()...)
	}
	return dedupOperators(out)
}

func (o Operated) Quantifiers() []Quantifier {
	var out []Quantifier
	for _, operand := range o.Operands {
		out = append(out, operand.Quantifiers()...)
	}
	return dedupQuantifiers(out)
}
