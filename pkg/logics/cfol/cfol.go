// Package cfol implements Classical First-Order Logic: cpl's bivalent
// semantics plus the quantifier rules.
package cfol

import (
	"github.com/gitrdm/gotableaux/pkg/logics/common"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

var Def = buildDef()

func buildDef() tableau.LogicDef {
	q := common.StandardQuantifierRules() // [negExistSwap, negUnivSwap, existInst, univInst]
	return tableau.LogicDef{
		Name: "CFOL",
		Meta: tableau.Meta{
			Name:       "CFOL",
			Values:     []string{"F", "T"},
			Designated: []string{"T"},
		},
		System: tableau.System{
			BuildTrunk: common.BivalentTrunk,
			Complexity: common.LiteralComplexity,
		},
		RuleGroups: []tableau.RuleGroup{
			{Name: "closure", Rules: groupRules("closure")},
			{Name: "reduction", Rules: append(groupRules("reduction"), q[0], q[1])},
			{Name: "alpha", Rules: groupRules("alpha")},
			{Name: "beta", Rules: groupRules("beta")},
			{Name: "quantifier", Rules: []tableau.Rule{q[2], q[3]}},
		},
		NewModel: func() tableau.Model { return NewModel() },
	}
}

func groupRules(name string) []tableau.Rule {
	var out []tableau.Rule
	for _, r := range common.StandardExtensionalRules() {
		if r.Group() == name {
			out = append(out, r)
		}
	}
	return out
}
