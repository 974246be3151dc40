package tableau

import "github.com/gitrdm/gotableaux/pkg/lex"

// Target describes one candidate rule application: the branch it would
// apply to, plus whichever of the optional fields the producing rule
// filled in. Rules read only the fields they themselves set.
type Target struct {
	Rule   Rule
	Branch *Branch

	Node  *Node
	Nodes []*Node

	Sentence   lex.Sentence
	Designated *bool

	World  *int
	World1 *int
	World2 *int

	Constant *lex.Constant

	Flag string

	// ScoreKey ranks targets against others from the *same* rule group;
	// higher wins, first-registered-rule-in-group wins ties. Rules that
	// don't care about intra-group ranking leave this at zero.
	ScoreKey int
}

// Rule is a single schedulable rule. Concrete rules live in pkg/logics/*
// and embed BaseRule for the bookkeeping fields common to all five rule
// families (node, branch, closing, all-constants, reducing) described in
// the logic packages' doc comments.
type Rule interface {
	Name() string
	// Group names the scheduling bucket this rule sits in (closure,
	// reduction, modal, branching, quantifier, serial, ...). Rules in the
	// same tableau are tried group-by-group, in group-registration order;
	// within a group, among targets with the best score, the one found
	// first (first rule in registration order) wins ties.
	Group() string
	// GetTargets returns every candidate application of this rule against
	// b, or nil if none. The tableau driver scores and picks among them.
	GetTargets(tab *Tableau, b *Branch) []*Target
	// Apply executes target, mutating its Branch (and, for closing rules,
	// possibly calling Branch.Close).
	Apply(tab *Tableau, target *Target)
}

// BaseRule carries the fields shared by every concrete rule: identity
// (name and group), options, and a count of how many times the rule has
// applied. It caches no branch-scoped bookkeeping; the helpers in
// helpers.go (e.g. MaxConstants, VisibleWorlds) recompute from the branch
// on each call.
type BaseRule struct {
	RuleName  string
	RuleGroup string
	Options   map[string]any

	applied int
}

func (r *BaseRule) Name() string  { return r.RuleName }
func (r *BaseRule) Group() string { return r.RuleGroup }

// Applied reports how many times Apply has run for this rule instance
// across the tableau's lifetime (used by the QuitFlag helper).
func (r *BaseRule) Applied() int { return r.applied }

// MarkApplied increments the applied-count; concrete rules call this from
// their own Apply implementation.
func (r *BaseRule) MarkApplied() { r.applied++ }

// NodeTargets is the shared shape of the "Node" rule family: scan b's
// untouched nodes (in insertion order) and, for each that match yields
// a non-nil *Target for, return it. Node-family rules call this from
// their own GetTargets with a closure that does the operator-specific
// property check.
func NodeTargets(b *Branch, match func(n *Node) *Target) []*Target {
	var out []*Target
	for _, n := range b.Nodes() {
		if b.IsTicked(n) {
			continue
		}
		if t := match(n); t != nil {
			t.Branch = b
			t.Node = n
			out = append(out, t)
		}
	}
	return out
}

// BranchTargets is the "Branch" rule family shape: the rule applies at
// most once per branch, independent of any single node (e.g. a modal
// frame property rule like reflexivity). check returns nil if the
// branch doesn't need (or already satisfies) the property.
func BranchTargets(b *Branch, check func(b *Branch) *Target) []*Target {
	if t := check(b); t != nil {
		t.Branch = b
		return []*Target{t}
	}
	return nil
}

// ClosingTargets is the "Closing" rule family shape: look for a pair (or
// single node) witnessing a contradiction and, if found, return a target
// flagged for Branch.Close.
func ClosingTargets(b *Branch, find func(b *Branch) *Target) []*Target {
	if t := find(b); t != nil {
		t.Branch = b
		t.Flag = "closure"
		return []*Target{t}
	}
	return nil
}

// AllConstantsTargets is the "All-constants" rule family shape used by
// universal-quantifier rules: one target per (node, constant) pair not
// yet applied, using alphabetSize to mint a fresh constant when the
// branch has none yet.
func AllConstantsTargets(b *Branch, alphabetSize int, match func(n *Node) bool, applied func(n *Node, c lex.Constant) bool) []*Target {
	var out []*Target
	for _, n := range b.Nodes() {
		if !match(n) {
			continue
		}
		for _, c := range b.ConstantsOrNew(alphabetSize) {
			if applied(n, c) {
				continue
			}
			cc := c
			out = append(out, &Target{Branch: b, Node: n, Constant: &cc})
		}
	}
	return out
}

// ReducingTargets is the "Reducing" rule family shape: one target per
// untouched node whose sentence a defined operator rewrites into
// primitives (e.g. material-conditional elimination in CPL/CFOL).
func ReducingTargets(b *Branch, match func(n *Node) *Target) []*Target {
	return NodeTargets(b, match)
}
