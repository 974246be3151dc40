// Package d implements the deontic modal logic D: K plus seriality (every
// world has at least one accessible world). pytableaux's original_source
// has no standalone d.py; D is derived here as K + a Serial frame rule
// group, per the logic's standard axiomatic characterisation (K + the
// D axiom ☐A⊃◇A, whose tableau correlate is exactly seriality).
package d

import (
	"github.com/gitrdm/gotableaux/pkg/logics/common"
	"github.com/gitrdm/gotableaux/pkg/logics/k"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

var Def = buildDef()

func buildDef() tableau.LogicDef {
	base := k.Def
	base.Name = "D"
	base.Meta.Name = "D"
	groups := append([]tableau.RuleGroup{}, k.RuleGroups()...)
	groups = append(groups, tableau.RuleGroup{Name: "frame", Rules: []tableau.Rule{common.NewSerial()}})
	base.RuleGroups = groups
	return base
}
