// Package s4 implements the modal logic S4: K plus reflexivity and
// transitivity.
package s4

import (
	"github.com/gitrdm/gotableaux/pkg/logics/common"
	"github.com/gitrdm/gotableaux/pkg/logics/k"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

var Def = buildDef()

func buildDef() tableau.LogicDef {
	base := k.Def
	base.Name = "S4"
	base.Meta.Name = "S4"
	groups := append([]tableau.RuleGroup{}, k.RuleGroups()...)
	groups = append(groups, tableau.RuleGroup{Name: "frame", Rules: []tableau.Rule{
		common.NewReflexivity(),
		common.NewTransitivity(),
	}})
	base.RuleGroups = groups
	return base
}
