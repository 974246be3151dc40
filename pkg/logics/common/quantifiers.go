package common

import (
	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

func matchQuantifier(s lex.Sentence, q lex.Quantifier, negated bool) (lex.Quantified, bool) {
	target := s
	if negated {
		n, ok := s.(lex.Operated)
		if !ok || n.Op != lex.Negation {
			return lex.Quantified{}, false
		}
		target = n.Operands[0]
	}
	qq, ok := target.(lex.Quantified)
	if !ok || qq.Quant != q {
		return lex.Quantified{}, false
	}
	return qq, true
}

// NegatedQuantifierSwap rewrites ¬Qx.A to Q'x.¬A (De Morgan over
// quantifiers): ¬∃ becomes ∀¬, ¬∀ becomes ∃¬.
type NegatedQuantifierSwap struct {
	tableau.BaseRule
	From, To lex.Quantifier
}

func NewNegatedQuantifierSwap(from, to lex.Quantifier) *NegatedQuantifierSwap {
	name := "NegatedExistential"
	if from == lex.Universal {
		name = "NegatedUniversal"
	}
	return &NegatedQuantifierSwap{
		BaseRule: tableau.BaseRule{RuleName: name, RuleGroup: "reduction"},
		From:     from, To: to,
	}
}

func (r *NegatedQuantifierSwap) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ReducingTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		if _, ok := matchQuantifier(s, r.From, true); !ok {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *NegatedQuantifierSwap) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	qq, _ := matchQuantifier(s, r.From, true)
	rewritten := lex.NewQuantified(r.To, qq.Var, lex.Negate(qq.Body))
	target.Branch.Tick(n)
	target.Branch.Append(n.CloneProps(map[string]any{tableau.PropSentence: rewritten}))
	r.MarkApplied()
}

// ExistentialInstantiation rewrites ∃x.A to A[c/x] for a brand-new
// constant c, once per node (the witness constant need not be reused).
type ExistentialInstantiation struct{ tableau.BaseRule }

func NewExistentialInstantiation() *ExistentialInstantiation {
	return &ExistentialInstantiation{tableau.BaseRule{RuleName: "Existential", RuleGroup: "quantifier"}}
}

func (r *ExistentialInstantiation) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.NodeTargets(b, func(n *tableau.Node) *tableau.Target {
		s, ok := n.Sentence()
		if !ok {
			return nil
		}
		if _, ok := matchQuantifier(s, lex.Existential, false); !ok {
			return nil
		}
		return &tableau.Target{}
	})
}

func (r *ExistentialInstantiation) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	qq, _ := matchQuantifier(s, lex.Existential, false)
	c := target.Branch.NewConstant(tab.AlphabetSize())
	instance := qq.Body.Substitute(c, qq.Var)
	target.Branch.Tick(n)
	target.Branch.Append(n.CloneProps(map[string]any{tableau.PropSentence: instance}))
	r.MarkApplied()
}

// UniversalInstantiation rewrites ∀x.A to A[c/x] for every constant
// already on the branch (or a fresh one if none exist yet), and keeps
// proposing new targets as new constants are introduced elsewhere —
// the node is never ticked.
type UniversalInstantiation struct{ tableau.BaseRule }

func NewUniversalInstantiation() *UniversalInstantiation {
	return &UniversalInstantiation{tableau.BaseRule{RuleName: "Universal", RuleGroup: "quantifier"}}
}

func (r *UniversalInstantiation) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.AllConstantsTargets(b, tab.AlphabetSize(),
		func(n *tableau.Node) bool {
			s, ok := n.Sentence()
			if !ok {
				return false
			}
			_, ok = matchQuantifier(s, lex.Universal, false)
			return ok
		},
		func(n *tableau.Node, c lex.Constant) bool {
			return tableau.AppliedNodesWorlds(b, n, constantTag(c))
		},
	)
}

// constantTag packs a constant's coordinates into an int key so the
// generic AppliedNodesWorlds (node,world) bookkeeping helper can double
// as (node,constant) bookkeeping without a parallel data structure.
func constantTag(c lex.Constant) int { return c.Idx*1000 + c.Sub }

func (r *UniversalInstantiation) Apply(tab *tableau.Tableau, target *tableau.Target) {
	n := target.Node
	s, _ := n.Sentence()
	qq, _ := matchQuantifier(s, lex.Universal, false)
	instance := qq.Body.Substitute(*target.Constant, qq.Var)
	props := n.CloneProps(map[string]any{
		tableau.PropSentence: instance,
	})
	newNode := target.Branch.Append(props)
	newNode.Props["source_node"] = n.ID()
	newNode.Props["source_world"] = constantTag(*target.Constant)
	r.MarkApplied()
}
