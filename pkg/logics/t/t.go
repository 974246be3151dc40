// Package t implements the modal logic T: K plus reflexivity.
package t

import (
	"github.com/gitrdm/gotableaux/pkg/logics/common"
	"github.com/gitrdm/gotableaux/pkg/logics/k"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

var Def = buildDef()

func buildDef() tableau.LogicDef {
	base := k.Def
	base.Name = "T"
	base.Meta.Name = "T"
	groups := append([]tableau.RuleGroup{}, k.RuleGroups()...)
	groups = append(groups, tableau.RuleGroup{Name: "frame", Rules: []tableau.Rule{common.NewReflexivity()}})
	base.RuleGroups = groups
	return base
}
