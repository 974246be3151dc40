// Package k3 implements Strong Kleene logic: three-valued, truth domain
// {F, N, T}, designated subset {T}. Shares its rule engine with fde/lp
// (see pkg/logics/common's package doc), but layers on an extra
// glut-forbidding closure rule the shared engine can't express: K3 has
// no B value, so a branch holding both A designated and ¬A designated
// is a contradiction here even though the same pair is a legitimate
// glut countermodel under FDE/LP. Grounded on
// original_source/src/logics/k3.py's TableauxRules.Closure.
package k3

import (
	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/logics/common"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

var Def = tableau.LogicDef{
	Name: "K3",
	Meta: tableau.Meta{
		Name:       "K3",
		Values:     []string{"F", "N", "T"},
		Designated: []string{"T"},
	},
	System: tableau.System{
		BuildTrunk: common.DesignatedTrunk,
		Complexity: common.LiteralComplexity,
	},
	RuleGroups: []tableau.RuleGroup{
		{Name: "closure", Rules: []tableau.Rule{
			NewGlutClosure(),
			common.NewDesignatedContradictionClosure(),
		}},
		{Name: "reduction", Rules: []tableau.Rule{
			common.NewDoubleNegationReduce(),
			common.NewNegatedBiconditionalReduce(),
			common.NewDesignatedAssertion(),
			common.NewDesignatedBiconditionalReduce(),
			common.NewNegatedQuantifierSwap(lex.Existential, lex.Universal),
			common.NewNegatedQuantifierSwap(lex.Universal, lex.Existential),
		}},
		{Name: "alpha", Rules: groupRules("alpha")},
		{Name: "beta", Rules: groupRules("beta")},
		{Name: "quantifier", Rules: []tableau.Rule{
			common.NewExistentialInstantiation(),
			common.NewUniversalInstantiation(),
		}},
	},
	NewModel: func() tableau.Model { return NewModel() },
}

func groupRules(name string) []tableau.Rule {
	var out []tableau.Rule
	for _, r := range common.DesignatedExtensionalRules() {
		if r.Group() == name {
			out = append(out, r)
		}
	}
	return out
}

// GlutClosure closes a branch when some sentence A and its negation ¬A
// are both designated — the glut K3 disallows by having no B value.
type GlutClosure struct{ tableau.BaseRule }

func NewGlutClosure() *GlutClosure {
	return &GlutClosure{tableau.BaseRule{RuleName: "GlutClosure", RuleGroup: "closure"}}
}

func (r *GlutClosure) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ClosingTargets(b, func(b *tableau.Branch) *tableau.Target {
		for _, n := range b.Nodes() {
			s, ok := n.Sentence()
			d, ok2 := n.Designated()
			if !ok || !ok2 || !d {
				continue
			}
			neg := lex.Negate(s)
			for _, m := range b.Nodes() {
				ms, ok := m.Sentence()
				md, ok2 := m.Designated()
				if !ok || !ok2 || !md {
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

func (r *GlutClosure) Apply(tab *tableau.Tableau, target *tableau.Target) {
	r.MarkApplied()
}
