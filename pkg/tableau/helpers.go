package tableau

import "github.com/gitrdm/gotableaux/pkg/lex"

// QuitFlag reports whether r has already applied at least once, on any
// branch of the tableau: the count behind it is kept per rule instance,
// not per branch.
func QuitFlag(r *BaseRule) bool { return r.Applied() > 0 }

// MaxConstants caps how many distinct constants a universal-quantifier
// rule will instantiate against on a single branch, derived from the
// branch's constants so pathological trunks don't instantiate forever.
// The projection matches pytableaux's rule-of-thumb: one more constant
// than the number of distinct constants already forced onto the branch
// by its other nodes, floor 1.
func MaxConstants(b *Branch) int {
	n := len(b.Constants())
	if n == 0 {
		return 1
	}
	return n + 1
}

// MaxWorlds caps how many distinct worlds a modal rule will create on a
// single branch: one for the origin world plus, for each node's sentence,
// one per distinct modal operator (possibility, necessity) it contains.
// Repeated occurrences of the same modal operator within one sentence
// count once, ticked nodes are counted too, and the worlds already on the
// branch are not added in.
func MaxWorlds(b *Branch) int {
	count := 1
	for _, n := range b.Nodes() {
		if s, ok := n.Sentence(); ok {
			for _, op := range s.Operators() {
				if op == lex.Possibility || op == lex.Necessity {
					count++
				}
			}
		}
	}
	return count
}

// UnserialWorlds returns the worlds on b that have no outgoing access
// edge, the targets a serial-frame rule must still extend.
func UnserialWorlds(b *Branch) []int {
	var out []int
	for _, w := range b.Worlds() {
		if !hasOutgoing(b, w) {
			out = append(out, w)
		}
	}
	return out
}

func hasOutgoing(b *Branch, w int) bool {
	for _, n := range b.Nodes() {
		if w1, ok := n.Props[PropWorld1].(int); ok && w1 == w {
			if _, ok := n.Props[PropWorld2]; ok {
				return true
			}
		}
	}
	return false
}

// VisibleWorlds returns the worlds reachable from w via one access edge
// on b (w's R-successors).
func VisibleWorlds(b *Branch, w int) []int {
	var out []int
	for _, n := range b.Nodes() {
		w1, ok1 := n.Props[PropWorld1].(int)
		w2, ok2 := n.Props[PropWorld2].(int)
		if ok1 && ok2 && w1 == w {
			out = append(out, w2)
		}
	}
	return out
}

// PredicatedNodes returns every untouched node on b whose sentence is a
// (possibly negated) predication of pred, used by the Identity/Existence
// closure rules.
func PredicatedNodes(b *Branch, pred lex.Predicate) []*Node {
	var out []*Node
	for _, n := range b.Nodes() {
		if b.IsTicked(n) {
			continue
		}
		s, ok := n.Sentence()
		if !ok {
			continue
		}
		if p, ok := s.(lex.Predicated); ok && lex.Equal(p.Pred, pred) {
			out = append(out, n)
		}
		if op, ok := s.(lex.Operated); ok && op.Op == lex.Negation {
			if p, ok := op.Operands[0].(lex.Predicated); ok && lex.Equal(p.Pred, pred) {
				out = append(out, n)
			}
		}
	}
	return out
}

// AppliedNodesWorlds reports whether b already carries a node that a rule
// generated from n for world w, by the rule's own bookkeeping convention
// of tagging generated nodes with "source_node" and "source_world".
func AppliedNodesWorlds(b *Branch, n *Node, w int) bool {
	for _, m := range b.Nodes() {
		src, ok := m.Props["source_node"].(int64)
		if !ok || src != n.ID() {
			continue
		}
		if sw, ok := m.Props["source_world"].(int); ok && sw == w {
			return true
		}
	}
	return false
}

// AppliedSentenceCounter counts how many times a rule has already fired
// for a given (sentence, world) pair on b, used by rules whose branching
// complexity depends on repetition (e.g. possibility rules that must not
// reapply to the same pair).
func AppliedSentenceCounter(b *Branch, s lex.Sentence, w int) int {
	count := 0
	for _, m := range b.Nodes() {
		ms, ok := m.Sentence()
		if !ok || !lex.Equal(ms, s) {
			continue
		}
		if mw, ok := m.World(); ok && mw == w {
			count++
		}
	}
	return count
}
