// Package cpl implements Classical Propositional Logic: bivalent truth
// domain {F, T}, no quantifiers.
package cpl

import (
	"github.com/gitrdm/gotableaux/pkg/logics/common"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

var Def = tableau.LogicDef{
	Name: "CPL",
	Meta: tableau.Meta{
		Name:       "CPL",
		Values:     []string{"F", "T"},
		Designated: []string{"T"},
	},
	System: tableau.System{
		BuildTrunk: common.BivalentTrunk,
		Complexity: common.LiteralComplexity,
	},
	RuleGroups: []tableau.RuleGroup{
		{Name: "closure", Rules: groupRules("closure")},
		{Name: "reduction", Rules: groupRules("reduction")},
		{Name: "alpha", Rules: groupRules("alpha")},
		{Name: "beta", Rules: groupRules("beta")},
	},
	NewModel: func() tableau.Model { return NewModel() },
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
