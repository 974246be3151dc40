// Package fde implements First-Degree Entailment: the four-valued
// paracomplete-and-paraconsistent logic with truth-value domain
// {F, N, B, T} and designated subset {B, T}.
package fde

import (
	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/logics/common"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

// Def is the fde logic bundle, registered under the name "FDE".
var Def = tableau.LogicDef{
	Name: "FDE",
	Meta: tableau.Meta{
		Name:       "FDE",
		Values:     []string{"F", "N", "B", "T"},
		Designated: []string{"B", "T"},
	},
	System: tableau.System{
		BuildTrunk: common.DesignatedTrunk,
		Complexity: common.LiteralComplexity,
	},
	RuleGroups: []tableau.RuleGroup{
		{Name: "closure", Rules: []tableau.Rule{common.NewDesignatedContradictionClosure()}},
		{Name: "reduction", Rules: []tableau.Rule{
			common.NewDoubleNegationReduce(),
				common.NewNegatedBiconditionalReduce(),
			common.NewDesignatedAssertion(),
			common.NewDesignatedBiconditionalReduce(),
			common.NewNegatedQuantifierSwap(lex.Existential, lex.Universal),
			common.NewNegatedQuantifierSwap(lex.Universal, lex.Existential),
		}},
		{Name: "alpha", Rules: alphaRules()},
		{Name: "beta", Rules: betaRules()},
		{Name: "quantifier", Rules: []tableau.Rule{
			common.NewExistentialInstantiation(),
			common.NewUniversalInstantiation(),
		}},
	},
	NewModel: func() tableau.Model { return NewModel() },
}

func alphaRules() []tableau.Rule {
	var out []tableau.Rule
	for _, r := range common.DesignatedExtensionalRules() {
		if r.Group() == "alpha" {
			out = append(out, r)
		}
	}
	return out
}

func betaRules() []tableau.Rule {
	var out []tableau.Rule
	for _, r := range common.DesignatedExtensionalRules() {
		if r.Group() == "beta" {
			out = append(out, r)
		}
	}
	return out
}
