// Package k implements the base normal modal logic K: bivalent per-world
// semantics, no frame constraints on the accessibility relation.
package k

import (
	"github.com/gitrdm/gotableaux/pkg/logics/common"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

var Def = tableau.LogicDef{
	Name: "K",
	Meta: tableau.Meta{
		Name:       "K",
		Values:     []string{"F", "T"},
		Designated: []string{"T"},
		Modal:      true,
	},
	System: tableau.System{
		BuildTrunk: common.ModalTrunk,
		Complexity: common.LiteralComplexity,
	},
	RuleGroups: RuleGroups(),
	NewModel:   func() tableau.Model { return common.NewKripkeModel() },
}

// RuleGroups is exported so D/T/S4/S5 can prepend/append their own
// frame-constraint groups around K's base rule set.
func RuleGroups() []tableau.RuleGroup {
	return []tableau.RuleGroup{
		{Name: "closure", Rules: groupRules("closure")},
		{Name: "reduction", Rules: groupRules("reduction")},
		{Name: "alpha", Rules: groupRules("alpha")},
		{Name: "beta", Rules: groupRules("beta")},
		{Name: "modal", Rules: []tableau.Rule{common.NewNecessity(), common.NewPossibility()}},
	}
}

func groupRules(name string) []tableau.Rule {
	var out []tableau.Rule
	for _, r := range common.ModalExtensionalRules() {
		if r.Group() == name {
			out = append(out, r)
		}
	}
	return out
}
