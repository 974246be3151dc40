package common

import (
	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

// The FDE-family rule set (shared by fde, k3, lp) gives every node a
// designated marker instead of a bivalent true/false sign, and never
// lets negation toggle that marker on its own. Per
// original_source/src/logics/fde.py, ¬ only ever rewrites a compound:
// double negation cancels, and ¬(A∧B)/¬(A∨B)/¬(A⊃B)/¬(A≡B) decompose by
// De Morgan, each new sentence keeping the triggering node's own
// designation. A negated atomic or predicated sentence — a literal —
// has no decomposition rule at all and simply stays on the branch,
// which is exactly what lets a branch hold both "A designated" and "¬A
// designated" (FDE's glut) or neither (FDE's gap) without forcing a
// classical collapse. DesignatedContradictionClosure only closes on the
// same sentence appearing both designated and undesignated; it never
// cross-matches a sentence against its negation, so closing K3's gluts
// and LP's gaps is left to each logic's own extra Closure rule
// (pkg/logics/k3, pkg/logics/lp) rather than duplicated here.

// DesignatedContradictionClosure closes a branch when the same sentence
// appears both designated and undesignated.
type DesignatedContradictionClosure struct{ tableau.BaseRule }

func NewDesignatedContradictionClosure() *DesignatedContradictionClosure {
	return &DesignatedContradictionClosure{tableau.BaseRule{RuleName: "Closure", RuleGroup: "closure"}}
}

func (r *DesignatedContradictionClosure) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ClosingTargets(b, func(b *tableau.Branch) *tableau.Target {
		for _, n := range b.Nodes() {
			s, ok := n.Sentence()
			d, ok2 := n.Designated()
			if !ok || !ok2 {
				continue
			}
			for _, m := range b.Nodes() {
				ms, ok := m.Sentence()
				md, ok2 := m.Designated()
				if !ok || !ok2 || md == d {
					continue
				}
				if lex.Equal(ms, s) {
					return &tableau.Target{Nodes: []*tableau.Node{n, m}}
				}
			}
		}
		return nil
	})
}

func (r *DesignatedContradictionClosure) Apply(tab *tableau.Tableau, target *tableau.Target) {
	r.MarkApplied()
}

// DoubleNegationReduce rewrites ¬¬A, designated d, to A, designated d.
// pytableaux splits this into separate Designated/Undesignated classes
// that differ only in the designation they preserve; one designation-
// agnostic rule covers both.
type DoubleNegationReduce struct{ tableau.BaseRule }

func NewDoubleNegationReduce() *DoubleNegationReduce {
	return &DoubleNegationReduce{tableau.BaseRule{RuleName: "DoubleNegation", RuleGroup: "reduction"}}
}

func doubleNegationOperand(s lex.Sentence) (lex.Sentence, bool) {
	outer, ok := s.(lex.Operated)
	if !ok || outer.Op != lex.Negation {
		return nil, false
	}
	inner, ok := outer.Operands[0].(lex.Operated)
	if !ok || inner.Op != lex.Negation {
		return nil, false
	}
	return inner.Operands[0], true
}

func (r *DoubleNegationReduce) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ReducingTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		if _, ok := doubleNegationOperand(s); !ok {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *DoubleNegationReduce) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	d, _ := n.Designated()
	operand, _ := doubleNegationOperand(s)
	target.Branch.Tick(n)
	target.Branch.Append(n.CloneProps(map[string]any{
		tableau.PropSentence:   operand,
		tableau.PropDesignated: d,
	}))
	r.MarkApplied()
}

// binaryDecomposition is the shared shape for both the six plain
// (A∧B, A∨B, A⊃B at each designation) and the six negated (¬(A∧B),
// ¬(A∨B), ¬(A⊃B) at each designation) extensional rules: match a binary
// operator — optionally under a leading negation — at a specific
// designation, then either add both resulting sentences to the same
// branch (alpha) or split into two new branches, one sentence each
// (beta). Unlike a signed tableau, the resulting sentences always keep
// the triggering node's own designation; only the sentences themselves
// change shape.
type binaryDecomposition struct {
	tableau.BaseRule
	Op         lex.Operator
	Negated    bool
	Designated bool
	Branching  bool
	Expand     func(a, b lex.Sentence) (lex.Sentence, lex.Sentence)
}

func (r *binaryDecomposition) matchOperands(s lex.Sentence) (lex.Sentence, lex.Sentence, bool) {
	target := s
	if r.Negated {
		n, ok := s.(lex.Operated)
		if !ok || n.Op != lex.Negation {
			return nil, nil, false
		}
		target = n.Operands[0]
	}
	o, ok := target.(lex.Operated)
	if !ok || o.Op != r.Op || len(o.Operands) != 2 {
		return nil, nil, false
	}
	return o.Operands[0], o.Operands[1], true
}

func (r *binaryDecomposition) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.NodeTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		d, ok2 := n.Designated()
		if !ok || !ok2 || d != r.Designated {
			return nil
		}
		if _, _, ok := r.matchOperands(s); !ok {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *binaryDecomposition) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	opA, opB, _ := r.matchOperands(s)
	a, bSent := r.Expand(opA, opB)
	target.Branch.Tick(n)
	if !r.Branching {
		target.Branch.Append(DesignatedNode(a, r.Designated))
		target.Branch.Append(DesignatedNode(bSent, r.Designated))
		r.MarkApplied()
		return
	}
	nb := tab.NewChildBranch(target.Branch)
	target.Branch.Append(DesignatedNode(a, r.Designated))
	nb.Append(DesignatedNode(bSent, r.Designated))
	r.MarkApplied()
}

// NegatedBiconditionalReduce rewrites ¬(A≡B), designated d, to
// ¬(Conjoin(A⊃B, B⊃A)), designated d — wrapping the same reduction
// DesignatedBiconditionalReduce uses in a negation, so the negated-
// conjunction and negated-material-conditional rules below decompose it
// compositionally from there.
type NegatedBiconditionalReduce struct{ tableau.BaseRule }

func NewNegatedBiconditionalReduce() *NegatedBiconditionalReduce {
	return &NegatedBiconditionalReduce{tableau.BaseRule{RuleName: "NegatedBiconditional", RuleGroup: "reduction"}}
}

func negatedBiconditionalOperand(s lex.Sentence) (lex.Operated, bool) {
	outer, ok := s.(lex.Operated)
	if !ok || outer.Op != lex.Negation {
		return lex.Operated{}, false
	}
	inner, ok := outer.Operands[0].(lex.Operated)
	if !ok || inner.Op != lex.MaterialBiconditional {
		return lex.Operated{}, false
	}
	return inner, true
}

func (r *NegatedBiconditionalReduce) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ReducingTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		if _, ok := negatedBiconditionalOperand(s); !ok {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *NegatedBiconditionalReduce) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	d, _ := n.Designated()
	inner, _ := negatedBiconditionalOperand(s)
	fwd := lex.MustOperated(lex.MaterialConditional, inner.Operands[0], inner.Operands[1])
	back := lex.MustOperated(lex.MaterialConditional, inner.Operands[1], inner.Operands[0])
	reduced := lex.Negate(lex.Conjoin(fwd, back))
	target.Branch.Tick(n)
	target.Branch.Append(n.CloneProps(map[string]any{tableau.PropSentence: reduced, tableau.PropDesignated: d}))
	r.MarkApplied()
}

// DesignatedExtensionalRules returns the designation-preserving FDE
// closure rule and the twelve operator/negated/designation
// decompositions (six plain, six negated), grouped by alpha/beta so
// each logic's RuleGroup filtering picks them all up automatically.
// The double-negation and biconditional reduction rules are not part of
// the returned list.
func DesignatedExtensionalRules() []tableau.Rule {
	id := func(a, b lex.Sentence) (lex.Sentence, lex.Sentence) { return a, b }
	negBoth := func(a, b lex.Sentence) (lex.Sentence, lex.Sentence) { return lex.Negate(a), lex.Negate(b) }
	condExpand := func(a, b lex.Sentence) (lex.Sentence, lex.Sentence) { return lex.Negate(a), b }
	negCondExpand := func(a, b lex.Sentence) (lex.Sentence, lex.Sentence) { return a, lex.Negate(b) }

	return []tableau.Rule{
		NewDesignatedContradictionClosure(),

		// Plain A∧B.
		&binaryDecomposition{BaseRule: tableau.BaseRule{RuleName: "DesignatedConjunction", RuleGroup: "alpha"},
			Op: lex.Conjunction, Designated: true, Branching: false, Expand: id},
		&binaryDecomposition{BaseRule: tableau.BaseRule{RuleName: "UndesignatedConjunction", RuleGroup: "beta"},
			Op: lex.Conjunction, Designated: false, Branching: true, Expand: id},

		// Plain A∨B.
		&binaryDecomposition{BaseRule: tableau.BaseRule{RuleName: "DesignatedDisjunction", RuleGroup: "beta"},
			Op: lex.Disjunction, Designated: true, Branching: true, Expand: id},
		&binaryDecomposition{BaseRule: tableau.BaseRule{RuleName: "UndesignatedDisjunction", RuleGroup: "alpha"},
			Op: lex.Disjunction, Designated: false, Branching: false, Expand: id},

		// Plain A⊃B: Designated = ¬A or B (beta); Undesignated = ¬A and B (alpha).
		&binaryDecomposition{BaseRule: tableau.BaseRule{RuleName: "DesignatedMaterialConditional", RuleGroup: "beta"},
			Op: lex.MaterialConditional, Designated: true, Branching: true, Expand: condExpand},
		&binaryDecomposition{BaseRule: tableau.BaseRule{RuleName: "UndesignatedMaterialConditional", RuleGroup: "alpha"},
			Op: lex.MaterialConditional, Designated: false, Branching: false, Expand: condExpand},

		// Negated ¬(A∧B) ≡ ¬A∨¬B: mirrors plain disjunction's shape.
		&binaryDecomposition{BaseRule: tableau.BaseRule{RuleName: "NegatedConjunctionDesignated", RuleGroup: "beta"},
			Op: lex.Conjunction, Negated: true, Designated: true, Branching: true, Expand: negBoth},
		&binaryDecomposition{BaseRule: tableau.BaseRule{RuleName: "NegatedConjunctionUndesignated", RuleGroup: "alpha"},
			Op: lex.Conjunction, Negated: true, Designated: false, Branching: false, Expand: negBoth},

		// Negated ¬(A∨B) ≡ ¬A∧¬B: mirrors plain conjunction's shape.
		&binaryDecomposition{BaseRule: tableau.BaseRule{RuleName: "NegatedDisjunctionDesignated", RuleGroup: "alpha"},
			Op: lex.Disjunction, Negated: true, Designated: true, Branching: false, Expand: negBoth},
		&binaryDecomposition{BaseRule: tableau.BaseRule{RuleName: "NegatedDisjunctionUndesignated", RuleGroup: "beta"},
			Op: lex.Disjunction, Negated: true, Designated: false, Branching: true, Expand: negBoth},

		// Negated ¬(A⊃B) ≡ A∧¬B: mirrors plain conjunction's shape.
		&binaryDecomposition{BaseRule: tableau.BaseRule{RuleName: "NegatedMaterialConditionalDesignated", RuleGroup: "alpha"},
			Op: lex.MaterialConditional, Negated: true, Designated: true, Branching: false, Expand: negCondExpand},
		&binaryDecomposition{BaseRule: tableau.BaseRule{RuleName: "NegatedMaterialConditionalUndesignated", RuleGroup: "beta"},
			Op: lex.MaterialConditional, Negated: true, Designated: false, Branching: true, Expand: negCondExpand},
	}
}

// DesignatedAssertion passes an assertion's designation straight through
// to its operand, both polarities, non-branching.
type DesignatedAssertion struct{ tableau.BaseRule }

func NewDesignatedAssertion() *DesignatedAssertion {
	return &DesignatedAssertion{tableau.BaseRule{RuleName: "Assertion", RuleGroup: "reduction"}}
}

func (r *DesignatedAssertion) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ReducingTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		if op, ok := s.(lex.Operated); !ok || op.Op != lex.Assertion {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *DesignatedAssertion) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	d, _ := n.Designated()
	operand := s.(lex.Operated).Operands[0]
	target.Branch.Tick(n)
	target.Branch.Append(n.CloneProps(map[string]any{tableau.PropSentence: operand, tableau.PropDesignated: d}))
	r.MarkApplied()
}

// DesignatedBiconditionalReduce expands a (un)designated A≡B into the
// conjunction of its two material conditionals, at the same designation,
// for the conjunction rules above to then pick apart.
type DesignatedBiconditionalReduce struct {
	tableau.BaseRule
}

func NewDesignatedBiconditionalReduce() *DesignatedBiconditionalReduce {
	return &DesignatedBiconditionalReduce{tableau.BaseRule{RuleName: "Biconditional", RuleGroup: "reduction"}}
}

func (r *DesignatedBiconditionalReduce) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ReducingTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		if op, ok := s.(lex.Operated); !ok || op.Op != lex.MaterialBiconditional {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *DesignatedBiconditionalReduce) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	d, _ := n.Designated()
	o := s.(lex.Operated)
	fwd := lex.MustOperated(lex.MaterialConditional, o.Operands[0], o.Operands[1])
	back := lex.MustOperated(lex.MaterialConditional, o.Operands[1], o.Operands[0])
	reduced := lex.Conjoin(fwd, back)
	target.Branch.Tick(n)
	target.Branch.Append(n.CloneProps(map[string]any{tableau.PropSentence: reduced, tableau.PropDesignated: d}))
	r.MarkApplied()
}
