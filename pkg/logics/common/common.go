// Package common holds the rule and trunk-builder shapes shared by every
// concrete logic package: the bivalent (CPL/CFOL) extensional rule set,
// the four-valued designated (FDE/K3/LP) extensional rule set, and the
// world-qualified trunk builder the modal logics (K/D/T/S4/S5) layer on
// top of bivalent semantics.
package common

import (
	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

// SentenceNode builds the property bag for a plain (non-modal,
// non-designated) sentence node.
func SentenceNode(s lex.Sentence) map[string]any {
	return map[string]any{tableau.PropSentence: s}
}

// WorldNode builds the property bag for a sentence true at world w.
func WorldNode(s lex.Sentence, w int) map[string]any {
	return map[string]any{tableau.PropSentence: s, tableau.PropWorld: w}
}

// DesignatedNode builds the property bag for a sentence carrying an
// explicit designation marker (FDE family).
func DesignatedNode(s lex.Sentence, designated bool) map[string]any {
	return map[string]any{tableau.PropSentence: s, tableau.PropDesignated: designated}
}

// AccessNode builds the property bag for a w1->w2 access edge.
func AccessNode(w1, w2 int) map[string]any {
	return map[string]any{tableau.PropWorld1: w1, tableau.PropWorld2: w2}
}

// BivalentTrunk returns a TrunkBuilder for a non-modal, non-designated
// (classical) logic: every premise is asserted, and the conclusion is
// asserted negated — the branch closes iff the premises can't all hold
// while the conclusion fails.
func BivalentTrunk(tab *tableau.Tableau, b *tableau.Branch, arg lex.Argument) {
	for _, p := range arg.Premises {
		b.Append(SentenceNode(p))
	}
	b.Append(SentenceNode(lex.Negate(arg.Conclusion)))
}

// ModalTrunk is BivalentTrunk's world-0 counterpart for the modal family.
func ModalTrunk(tab *tableau.Tableau, b *tableau.Branch, arg lex.Argument) {
	for _, p := range arg.Premises {
		b.Append(WorldNode(p, 0))
	}
	b.Append(WorldNode(lex.Negate(arg.Conclusion), 0))
}

// DesignatedTrunk is the FDE-family trunk: every premise is designated,
// the conclusion is undesignated.
func DesignatedTrunk(tab *tableau.Tableau, b *tableau.Branch, arg lex.Argument) {
	for _, p := range arg.Premises {
		b.Append(DesignatedNode(p, true))
	}
	b.Append(DesignatedNode(arg.Conclusion, false))
}

// LiteralComplexity is a simple BranchingComplexity: each distinct kind
// of binary connective in the sentence costs 1 (repeated occurrences of
// the same connective count once); unary connectives and quantifiers cost
// nothing extra beyond their operand.
func LiteralComplexity(n *tableau.Node) int {
	s, ok := n.Sentence()
	if !ok {
		return 0
	}
	cost := 0
	for _, op := range s.Operators() {
		switch op {
		case lex.Conjunction, lex.Disjunction, lex.MaterialConditional, lex.MaterialBiconditional,
			lex.Conditional, lex.Biconditional:
			cost++
		}
	}
	return cost
}
