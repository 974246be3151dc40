package common

import (
	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

// World extracts a node's world, defaulting to 0 for non-modal logics
// where the property is simply absent.
func World(n *tableau.Node) int {
	if w, ok := n.World(); ok {
		return w
	}
	return 0
}

func hasWorldProp(n *tableau.Node) bool {
	_, ok := n.World()
	return ok
}

func atWorld(s lex.Sentence, hasWorld bool, w int) map[string]any {
	if hasWorld {
		return WorldNode(s, w)
	}
	return SentenceNode(s)
}

// matchBinary returns (left, right, true) when s (or, if negated is set,
// s's operand after stripping one leading negation) is a binary Operated
// of op.
func matchBinary(s lex.Sentence, op lex.Operator, negated bool) (lex.Sentence, lex.Sentence, bool) {
	target := s
	if negated {
		n, ok := s.(lex.Operated)
		if !ok || n.Op != lex.Negation {
			return nil, nil, false
		}
		target = n.Operands[0]
	}
	o, ok := target.(lex.Operated)
	if !ok || o.Op != op || len(o.Operands) != 2 {
		return nil, nil, false
	}
	return o.Operands[0], o.Operands[1], true
}

// BivalentClosure closes a branch on s and ¬s both present at the same
// world (world 0 for non-modal logics).
type BivalentClosure struct{ tableau.BaseRule }

func NewBivalentClosure() *BivalentClosure {
	return &BivalentClosure{tableau.BaseRule{RuleName: "Closure", RuleGroup: "closure"}}
}

func (r *BivalentClosure) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ClosingTargets(b, func(b *tableau.Branch) *tableau.Target {
		for _, n := range b.Nodes() {
			s, ok := n.Sentence()
			if !ok {
				continue
			}
			w := World(n)
			neg := lex.Negate(s)
			for _, m := range b.Nodes() {
				ms, ok := m.Sentence()
				if !ok || World(m) != w {
					continue
				}
				if lex.Equal(ms, neg) {
					return &tableau.Target{Nodes: []*tableau.Node{n, m}}
				}
			}
		}
		return nil
	})
}

func (r *BivalentClosure) Apply(tab *tableau.Tableau, target *tableau.Target) { r.MarkApplied() }

// DoubleNegation rewrites ¬¬A to A, same world.
type DoubleNegation struct{ tableau.BaseRule }

func NewDoubleNegation() *DoubleNegation {
	return &DoubleNegation{tableau.BaseRule{RuleName: "DoubleNegation", RuleGroup: "reduction"}}
}

func (r *DoubleNegation) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.NodeTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		op, ok := s.(lex.Operated)
		if !ok || op.Op != lex.Negation {
			return nil
		}
		inner, ok := op.Operands[0].(lex.Operated)
		if !ok || inner.Op != lex.Negation {
			return nil
		}
		return &tableau.Target{Sentence: inner.Operands[0]}
	})
}

func (r *DoubleNegation) Apply(tab *tableau.Tableau, target *tableau.Target) {
	target.Branch.Tick(target.Node)
	target.Branch.Append(atWorld(target.Sentence, hasWorldProp(target.Node), World(target.Node)))
	r.MarkApplied()
}

// Alpha is a non-branching binary expansion: both operands (as rewritten
// by Expand) land on the same branch. Covers positive Conjunction,
// negated Disjunction, and negated MaterialConditional.
type Alpha struct {
	tableau.BaseRule
	Op      lex.Operator
	Negated bool
	Expand  func(left, right lex.Sentence) (lex.Sentence, lex.Sentence)
}

func (r *Alpha) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.NodeTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		_, _, ok = matchBinary(s, r.Op, r.Negated)
		if !ok {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *Alpha) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	left, right, _ := matchBinary(s, r.Op, r.Negated)
	a, bb := r.Expand(left, right)
	w, hw := World(n), hasWorldProp(n)
	target.Branch.Tick(n)
	target.Branch.Append(atWorld(a, hw, w))
	target.Branch.Append(atWorld(bb, hw, w))
	r.MarkApplied()
}

// Beta is a branching binary expansion: the two disjuncts (as rewritten
// by Expand) land on separate branches. Covers positive Disjunction,
// positive MaterialConditional, negated Conjunction.
type Beta struct {
	tableau.BaseRule
	Op      lex.Operator
	Negated bool
	Expand  func(left, right lex.Sentence) (lex.Sentence, lex.Sentence)
}

func (r *Beta) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.NodeTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		_, _, ok = matchBinary(s, r.Op, r.Negated)
		if !ok {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *Beta) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	left, right, _ := matchBinary(s, r.Op, r.Negated)
	a, bb := r.Expand(left, right)
	w, hw := World(n), hasWorldProp(n)
	b := target.Branch
	b.Tick(n)
	nb := tab.NewChildBranch(b)
	b.Append(atWorld(a, hw, w))
	nb.Append(atWorld(bb, hw, w))
	r.MarkApplied()
}

// Biconditional expands A≡B (or its negation) into a conjunction of two
// material conditionals, both added to the same branch for further
// reduction by the Conditional rules — this is a Reducing-family rule
// rather than a direct alpha/beta, since ≡'s branching shape is derived
// from its defining equivalence rather than native.
type BiconditionalReduce struct {
	tableau.BaseRule
	Negated bool
}

func (r *BiconditionalReduce) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ReducingTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		if _, _, ok := matchBinary(s, lex.MaterialBiconditional, r.Negated); !ok {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *BiconditionalReduce) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	left, right, _ := matchBinary(s, lex.MaterialBiconditional, r.Negated)
	fwd := lex.MustOperated(lex.MaterialConditional, left, right)
	back := lex.MustOperated(lex.MaterialConditional, right, left)
	reduced := lex.Conjoin(fwd, back)
	if r.Negated {
		reduced = lex.Negate(reduced)
	}
	w, hw := World(n), hasWorldProp(n)
	target.Branch.Tick(n)
	target.Branch.Append(atWorld(reduced, hw, w))
	r.MarkApplied()
}

func NewBiconditionalReduce(negated bool) *BiconditionalReduce {
	name := "Biconditional"
	if negated {
		name = "NegatedBiconditional"
	}
	return &BiconditionalReduce{BaseRule: tableau.BaseRule{RuleName: name, RuleGroup: "reduction"}, Negated: negated}
}

// AssertionElim strips (or, negated, strips-and-negates) an assertion
// wrapper: ∘A is semantically A, so the rule is a one-step pass-through.
type AssertionElim struct {
	tableau.BaseRule
	Negated bool
}

func NewAssertionElim(negated bool) *AssertionElim {
	name := "Assertion"
	if negated {
		name = "NegatedAssertion"
	}
	return &AssertionElim{BaseRule: tableau.BaseRule{RuleName: name, RuleGroup: "reduction"}, Negated: negated}
}

func (r *AssertionElim) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ReducingTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		target := s
		if r.Negated {
			neg, ok := s.(lex.Operated)
			if !ok || neg.Op != lex.Negation {
				return nil
			}
			target = neg.Operands[0]
		}
		op, ok := target.(lex.Operated)
		if !ok || op.Op != lex.Assertion {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *AssertionElim) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	inner := s
	if r.Negated {
		inner = s.(lex.Operated).Operands[0]
	}
	operand := inner.(lex.Operated).Operands[0]
	if r.Negated {
		operand = lex.Negate(operand)
	}
	target.Branch.Tick(n)
	target.Branch.Append(n.CloneProps(map[string]any{tableau.PropSentence: operand}))
	r.MarkApplied()
}

// StandardExtensionalRules returns the shared bivalent rule set for
// Conjunction, Disjunction, MaterialConditional, and Biconditional (via
// reduction), in both polarities, plus the closure and double-negation
// rules. CPL and CFOL both use this set unchanged.
func StandardExtensionalRules() []tableau.Rule {
	return []tableau.Rule{
		NewBivalentClosure(),
		NewDoubleNegation(),
		&Alpha{BaseRule: tableau.BaseRule{RuleName: "Conjunction", RuleGroup: "alpha"}, Op: lex.Conjunction, Negated: false,
			Expand: func(a, b lex.Sentence) (lex.Sentence, lex.Sentence) { return a, b }},
		&Alpha{BaseRule: tableau.BaseRule{RuleName: "NegatedDisjunction", RuleGroup: "alpha"}, Op: lex.Disjunction, Negated: true,
			Expand: func(a, b lex.Sentence) (lex.Sentence, lex.Sentence) { return lex.Negate(a), lex.Negate(b) }},
		&Alpha{BaseRule: tableau.BaseRule{RuleName: "NegatedMaterialConditional", RuleGroup: "alpha"}, Op: lex.MaterialConditional, Negated: true,
			Expand: func(a, b lex.Sentence) (lex.Sentence, lex.Sentence) { return a, lex.Negate(b) }},
		&Beta{BaseRule: tableau.BaseRule{RuleName: "Disjunction", RuleGroup: "beta"}, Op: lex.Disjunction, Negated: false,
			Expand: func(a, b lex.Sentence) (lex.Sentence, lex.Sentence) { return a, b }},
		&Beta{BaseRule: tableau.BaseRule{RuleName: "NegatedConjunction", RuleGroup: "beta"}, Op: lex.Conjunction, Negated: true,
			Expand: func(a, b lex.Sentence) (lex.Sentence, lex.Sentence) { return lex.Negate(a), lex.Negate(b) }},
		&Beta{BaseRule: tableau.BaseRule{RuleName: "MaterialConditional", RuleGroup: "beta"}, Op: lex.MaterialConditional, Negated: false,
			Expand: func(a, b lex.Sentence) (lex.Sentence, lex.Sentence) { return lex.Negate(a), b }},
		NewBiconditionalReduce(false),
		NewBiconditionalReduce(true),
		NewAssertionElim(false),
		NewAssertionElim(true),
	}
}

// StandardQuantifierRules returns the shared quantifier rule set, usable
// by any family (bivalent or designated) since it only rewrites the
// "sentence" property and preserves whatever else (world, designated)
// the source node carried via CloneProps.
func StandardQuantifierRules() []tableau.Rule {
	return []tableau.Rule{
		NewNegatedQuantifierSwap(lex.Existential, lex.Universal),
		NewNegatedQuantifierSwap(lex.Universal, lex.Existential),
		NewExistentialInstantiation(),
		NewUniversalInstantiation(),
	}
}
