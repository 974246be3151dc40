// Package s5 implements the modal logic S5: K plus reflexivity, symmetry,
// and transitivity (an equivalence relation on worlds).
package s5

import (
	"github.com/gitrdm/gotableaux/pkg/logics/common"
	"github.com/gitrdm/gotableaux/pkg/logics/k"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

var Def = buildDef()

func buildDef() tableau.LogicDef {
	base := k.Def
	base.Name = "S5"
	base.Meta.Name = "S5"
	groups := append([]tableau.RuleGroup{}, k.RuleGroups()...)
	groups = append(groups, tableau.RuleGroup{Name: "frame", Rules: []tableau.Rule{
		common.NewReflexivity(),
		common.NewSymmetry(),
		common.NewTransitivity(),
	}})
	base.RuleGroups = groups
	return base
}
