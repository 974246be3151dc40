package common

import (
	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

func matchModal(s lex.Sentence, op lex.Operator, negated bool) (lex.Sentence, bool) {
	target := s
	if negated {
		n, ok := s.(lex.Operated)
		if !ok || n.Op != lex.Negation {
			return nil, false
		}
		target = n.Operands[0]
	}
	o, ok := target.(lex.Operated)
	if !ok || o.Op != op || len(o.Operands) != 1 {
		return nil, false
	}
	return o.Operands[0], true
}

// Necessity propagates □A at world w to A at every world accessible from
// w. The node is never ticked — new access edges may open new worlds to
// propagate into later.
type Necessity struct{ tableau.BaseRule }

func NewNecessity() *Necessity {
	return &Necessity{tableau.BaseRule{RuleName: "Necessity", RuleGroup: "modal"}}
}

func (r *Necessity) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	var out []*tableau.Target
	for _, n := range b.Nodes() {
		s, ok := n.Sentence()
		if !ok {
			continue
		}
		if _, ok := matchModal(s, lex.Necessity, false); !ok {
			continue
		}
		w, _ := n.World()
		for _, w2 := range tableau.VisibleWorlds(b, w) {
			if tableau.AppliedNodesWorlds(b, n, w2) {
				continue
			}
			out = append(out, &tableau.Target{Branch: b, Node: n, World: intp(w2)})
		}
	}
	return out
}

func intp(v int) *int { return &v }

func (r *Necessity) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	body, _ := matchModal(s, lex.Necessity, false)
	w2 := *target.World
	newNode := target.Branch.Append(WorldNode(body, w2))
	newNode.Props["source_node"] = n.ID()
	newNode.Props["source_world"] = w2
	r.MarkApplied()
}

// NegatedPossibility rewrites ¬◇A at w to □¬A at w (De Morgan over the
// modal duals), a Reducing-family rewrite.
type NegatedPossibility struct{ tableau.BaseRule }

func NewNegatedPossibility() *NegatedPossibility {
	return &NegatedPossibility{tableau.BaseRule{RuleName: "NegatedPossibility", RuleGroup: "reduction"}}
}

func (r *NegatedPossibility) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ReducingTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		if _, ok := matchModal(s, lex.Possibility, true); !ok {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *NegatedPossibility) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	body, _ := matchModal(s, lex.Possibility, true)
	rewritten := lex.MustOperated(lex.Necessity, lex.Negate(body))
	target.Branch.Tick(n)
	target.Branch.Append(n.CloneProps(map[string]any{tableau.PropSentence: rewritten}))
	r.MarkApplied()
}

// NegatedNecessity rewrites ¬□A at w to ◇¬A at w.
type NegatedNecessity struct{ tableau.BaseRule }

func NewNegatedNecessity() *NegatedNecessity {
	return &NegatedNecessity{tableau.BaseRule{RuleName: "NegatedNecessity", RuleGroup: "reduction"}}
}

func (r *NegatedNecessity) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ReducingTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		if _, ok := matchModal(s, lex.Necessity, true); !ok {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *NegatedNecessity) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	body, _ := matchModal(s, lex.Necessity, true)
	rewritten := lex.MustOperated(lex.Possibility, lex.Negate(body))
	target.Branch.Tick(n)
	target.Branch.Append(n.CloneProps(map[string]any{tableau.PropSentence: rewritten}))
	r.MarkApplied()
}

// Possibility witnesses ◇A at w with a fresh world w2, w->w2, A at w2.
// Ticked: a given possibility node only ever needs one witness.
type Possibility struct{ tableau.BaseRule }

func NewPossibility() *Possibility {
	return &Possibility{tableau.BaseRule{RuleName: "Possibility", RuleGroup: "modal"}}
}

func (r *Possibility) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.NodeTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		if _, ok := matchModal(s, lex.Possibility, false); !ok {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *Possibility) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	body, _ := matchModal(s, lex.Possibility, false)
	w, _ := n.World()
	w2 := target.Branch.NewWorld()
	target.Branch.Tick(n)
	target.Branch.Append(AccessNode(w, w2))
	target.Branch.Append(WorldNode(body, w2))
	r.MarkApplied()
}

// Reflexivity ensures every world on the branch has a self-access edge.
type Reflexivity struct{ tableau.BaseRule }

func NewReflexivity() *Reflexivity {
	return &Reflexivity{tableau.BaseRule{RuleName: "Reflexive", RuleGroup: "frame"}}
}

func (r *Reflexivity) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	var out []*tableau.Target
	for _, w := range b.Worlds() {
		if !b.HasAccess(w, w) {
			out = append(out, &tableau.Target{Branch: b, World: intp(w)})
		}
	}
	return out
}

func (r *Reflexivity) Apply(tab *tableau.Tableau, target *tableau.Target) {
	w := *target.World
	target.Branch.Append(AccessNode(w, w))
	r.MarkApplied()
}

// Symmetry ensures w1->w2 implies w2->w1.
type Symmetry struct{ tableau.BaseRule }

func NewSymmetry() *Symmetry {
	return &Symmetry{tableau.BaseRule{RuleName: "Symmetric", RuleGroup: "frame"}}
}

func (r *Symmetry) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	var out []*tableau.Target
	for _, n := range b.Nodes() {
		w1, ok1 := n.Props[tableau.PropWorld1].(int)
		w2, ok2 := n.Props[tableau.PropWorld2].(int)
		if ok1 && ok2 && !b.HasAccess(w2, w1) {
			out = append(out, &tableau.Target{Branch: b, World1: intp(w2), World2: intp(w1)})
		}
	}
	return out
}

func (r *Symmetry) Apply(tab *tableau.Tableau, target *tableau.Target) {
	target.Branch.Append(AccessNode(*target.World1, *target.World2))
	r.MarkApplied()
}

// Transitivity ensures w1->w2 and w2->w3 implies w1->w3.
type Transitivity struct{ tableau.BaseRule }

func NewTransitivity() *Transitivity {
	return &Transitivity{tableau.BaseRule{RuleName: "Transitive", RuleGroup: "frame"}}
}

func (r *Transitivity) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	var out []*tableau.Target
	worlds := b.Worlds()
	for _, w1 := range worlds {
		for _, w2 := range tableau.VisibleWorlds(b, w1) {
			for _, w3 := range tableau.VisibleWorlds(b, w2) {
				if !b.HasAccess(w1, w3) {
					out = append(out, &tableau.Target{Branch: b, World1: intp(w1), World2: intp(w3)})
				}
			}
		}
	}
	return out
}

func (r *Transitivity) Apply(tab *tableau.Tableau, target *tableau.Target) {
	target.Branch.Append(AccessNode(*target.World1, *target.World2))
	r.MarkApplied()
}

// Serial ensures every world has at least one outgoing access edge,
// minting a fresh world to extend into if needed.
type Serial struct{ tableau.BaseRule }

func NewSerial() *Serial {
	return &Serial{tableau.BaseRule{RuleName: "Serial", RuleGroup: "frame"}}
}

func (r *Serial) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	var out []*tableau.Target
	for _, w := range tableau.UnserialWorlds(b) {
		out = append(out, &tableau.Target{Branch: b, World: intp(w)})
	}
	return out
}

func (r *Serial) Apply(tab *tableau.Tableau, target *tableau.Target) {
	w := *target.World
	w2 := target.Branch.NewWorld()
	target.Branch.Append(AccessNode(w, w2))
	r.MarkApplied()
}

// ModalExtensionalRules is StandardExtensionalRules plus the modal
// duals' reduction rules (negated necessity/possibility), for use by
// every modal logic (K/D/T/S4/S5) underneath its frame-specific rules.
func ModalExtensionalRules() []tableau.Rule {
	rules := append([]tableau.Rule{}, StandardExtensionalRules()...)
	rules = append(rules, NewNegatedNecessity(), NewNegatedPossibility())
	return rules
}
