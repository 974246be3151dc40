package lex

// Sentence is the common interface of the four sentence arms: Atomic,
// Predicated, Quantified, Operated. All are immutable value objects;
// Substitute, Negate, Conjoin, Disjoin and friends return new Sentences
// rather than mutating the receiver.
type Sentence interface {
	Item

	IsAtomic() bool
	IsPredicated() bool
	IsQuantified() bool
	IsOperated() bool
	IsLiteral() bool
	IsNegated() bool

	// Substitute recursively replaces parameter occurrences equal to old
	// with new. A Quantified sentence whose own bound variable equals old
	// is returned unchanged (no capture): the caller substitutes directly
	// into a quantified sentence's body when instantiating.
	Substitute(newP, oldP Parameter) Sentence

	Constants() []Constant
	Variables() []Variable
	Atomics() []Atomic
	SentPredicates() []Predicate
	Operators() []Operator
	Quantifiers() []Quantifier
}

// Negate returns ¬s.
func Negate(s Sentence) Sentence { return MustOperated(Negation, s) }

// Negative returns the sentence whose double-negation-normal form negates
// s: if s is already a negation, its operand; else ¬s.
func Negative(s Sentence) Sentence {
	if op, ok := s.(Operated); ok && op.Op == Negation {
		return op.Operands[0]
	}
	return Negate(s)
}

// Asserted returns the Assertion-wrapped form of s.
func Asserted(s Sentence) Sentence { return MustOperated(Assertion, s) }

// Disjoin returns a ∨ b.
func Disjoin(a, b Sentence) Sentence { return MustOperated(Disjunction, a, b) }

// Conjoin returns a ∧ b.
func Conjoin(a, b Sentence) Sentence { return MustOperated(Conjunction, a, b) }

func dedupConstants(items []Constant) []Constant {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, c := range items {
		k := Key(c)
		if !seen[k] {
			seen[k] = true
			out = append(out, c)
		}
	}
	return out
}

func dedupVariables(items []Variable) []Variable {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, v := range items {
		k := Key(v)
		if !seen[k] {
			seen[k] = true
			out = append(out, v)
		}
	}
	return out
}

func dedupAtomics(items []Atomic) []Atomic {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, a := range items {
		k := Key(a)
		if !seen[k] {
			seen[k] = true
			out = append(out, a)
		}
	}
	return out
}

func dedupPredicates(items []Predicate) []Predicate {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, p := range items {
		k := Key(p)
		if !seen[k] {
			seen[k] = true
			out = append(out, p)
		}
	}
	return out
}

func dedupOperators(items []Operator) []Operator {
	seen := make(map[Operator]bool, len(items))
	out := items[:0:0]
	for _, o := range items {
		if !seen[o] {
			seen[o] = true
			out = append(out, o)
		}
	}
	return out
}

func dedupQuantifiers(items []Quantifier) []Quantifier {
	seen := make(map[Quantifier]bool, len(items))
	out := items[:0:0]
	for _, q := range items {
		if !seen[q] {
			seen[q] = true
			out = append(out, q)
		}
	}
	return out
}
