// Package lp implements the Logic of Paradox: three-valued, truth domain
// {F, B, T}, designated subset {B, T}. Shares its rule engine with
// fde/k3 (see pkg/logics/common's package doc), but layers on an extra
// gap-forbidding closure rule the shared engine can't express: LP has
// no N value, so a branch holding both A undesignated and ¬A
// undesignated is a contradiction here even though the same pair is a
// legitimate gap countermodel under FDE/K3. Grounded on
// original_source/src/logics/lp.py's TableauxRules.Closure.
package lp

import (
	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/logics/common"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

var Def = tableau.LogicDef{
	Name: "LP",
	Meta: tableau.Meta{
		Name:       "LP",
		Values:     []string{"F", "B", "T"},
		Designated: []string{"B", "T"},
	},
	System: tableau.System{
		BuildTrunk: common.DesignatedTrunk,
		Complexity: common.LiteralComplexity,
	},
	RuleGroups: []tableau.RuleGroup{
		{Name: "closure", Rules: []tableau.Rule{
			NewGapClosure(),
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

// GapClosure closes a branch when some sentence A and its negation ¬A
// are both undesignated — the gap LP disallows by having no N value.
type GapClosure struct{ tableau.BaseRule }

func NewGapClosure() *GapClosure {
	return &GapClosure{tableau.BaseRule{RuleName: "GapClosure", RuleGroup: "closure"}}
}

func (r *GapClosure) GetTargets(tab *tableau.Tableau, b *tableau.Branch) []*tableau.Target {
	return tableau.ClosingTargets(b, func(b *tableau.Branch) *tableau.Target {
		for _, n := range b.Nodes() {
			s, ok := n.Sentence()
			d, ok2 := n.Designated()
			if !ok || !ok2 || d {
				continue
			}
			neg := lex.Negate(s)
			for _, m := range b.Nodes() {
				ms, ok := m.Sentence()
				md, ok2 := m.Designated()
				if !ok || !ok2 || md {
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

func (r *GapClosure) Apply(tab *tableau.Tableau, target *tableau.Target) {
	r.MarkApplied()
}
