package tableau

import "github.com/gitrdm/gotableaux/pkg/lex"

// TrunkBuilder seeds b (the tableau's sole initial branch) with one node
// per premise and the negated conclusion, in whatever form the logic's
// semantics require (designated/undesignated for the FDE family, world 0
// for the modal family).
type TrunkBuilder func(tab *Tableau, b *Branch, arg lex.Argument)

// BranchingComplexity estimates how many times a node's sentence will
// still force a branch split, used to order candidate targets among
// otherwise-tied rules so cheaper branches close first.
type BranchingComplexity func(n *Node) int

// Model is the per-logic countermodel: a structure built by reading an
// open branch's nodes, which a caller can then check against the
// original argument.
type Model interface {
	// ReadBranch populates the model from every node on b. Called once,
	// after the tableau has finished searching, on every open branch.
	ReadBranch(b *Branch) error
	// IsCountermodelTo reports whether the model falsifies arg (every
	// premise holds, the conclusion does not) under this logic's
	// consequence relation.
	IsCountermodelTo(arg lex.Argument) bool
	// String renders the model for display (frame-by-frame valuations).
	String() string
}

// System bundles a logic's trunk-building and complexity-scoring
// behaviour — the parts of a logic that aren't rules.
type System struct {
	BuildTrunk TrunkBuilder
	Complexity BranchingComplexity
}

// Meta describes a logic's semantic shape for display/introspection.
type Meta struct {
	Name       string
	Values     []string // truth-value domain, e.g. ["F","T"] or ["F","N","B","T"]
	Designated []string // the designated subset of Values
	Modal      bool
}

// RuleGroup is a named, ordered bucket of rules tried together before the
// driver moves on to the next group. Groups are tried in the order a
// logic lists them; within a group, rules are tried in the order listed.
type RuleGroup struct {
	Name  string
	Rules []Rule
}

// LogicDef is the full bundle a registry entry resolves a logic name to:
// metadata, semantics (System+Model), and the rule groups that drive
// proof search.
type LogicDef struct {
	Name       string
	Meta       Meta
	System     System
	RuleGroups []RuleGroup
	NewModel   func() Model
}

// AllRules flattens the rule groups into registration order, used by the
// driver's scoring loop.
func (d LogicDef) AllRules() []Rule {
	var out []Rule
	for _, g := range d.RuleGroups {
		out = append(out, g.Rules...)
	}
	return out
}
