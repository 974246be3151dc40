// Package tableau implements the branch-tree engine: nodes, branches, the
// declarative rule framework, the scheduling driver, and the tree-structure
// report. Per-logic rule sets live in sibling pkg/logics/* packages.
package tableau

import "github.com/gitrdm/gotableaux/pkg/lex"

// Recognised node property keys.
const (
	PropSentence   = "sentence"
	PropDesignated = "designated"
	PropWorld      = "world"
	PropWorld1     = "world1"
	PropWorld2     = "world2"
	PropIsFlag     = "is_flag"
	PropFlag       = "flag"
)

// Node is an immutable bag of properties once appended to a branch; a
// rule's Apply mutates the branch (appending new nodes, ticking this one),
// never the node's own property map.
type Node struct {
	Props map[string]any

	id         int64
	step       int
	tickedStep *int
}

var nextNodeID int64

func newNodeID() int64 {
	nextNodeID++
	return nextNodeID
}

// NewNode wraps a property map as a Node, independent of any branch.
func NewNode(props map[string]any) *Node {
	cp := make(map[string]any, len(props))
	for k, v := range props {
		cp[k] = v
	}
	return &Node{Props: cp, id: newNodeID()}
}

// ID is a process-local identity, used for map-keying Nodes by pointer
// cheaply (*Node equality is identity-based in Go).
func (n *Node) ID() int64 { return n.id }

// Step is the branch-local step at which this node was appended.
func (n *Node) Step() int { return n.step }

// IsTicked reports whether some rule has consumed this node.
func (n *Node) IsTicked() bool { return n.tickedStep != nil }

// TickedStep returns the step at which this node was ticked, or -1.
func (n *Node) TickedStep() int {
	if n.tickedStep == nil {
		return -1
	}
	return *n.tickedStep
}

// Has reports whether the node carries every key/value pair in want.
func (n *Node) Has(want map[string]any) bool {
	for k, v := range want {
		nv, ok := n.Props[k]
		if !ok {
			return false
		}
		if !propEqual(nv, v) {
			return false
		}
	}
	return true
}

func propEqual(a, b any) bool {
	if sa, ok := a.(lex.Sentence); ok {
		if sb, ok := b.(lex.Sentence); ok {
			return lex.Equal(sa, sb)
		}
		return false
	}
	return a == b
}

// Sentence returns the node's sentence property, if any.
func (n *Node) Sentence() (lex.Sentence, bool) {
	s, ok := n.Props[PropSentence].(lex.Sentence)
	return s, ok
}

// Designated returns the node's designation marker, if any (FDE-family).
func (n *Node) Designated() (bool, bool) {
	d, ok := n.Props[PropDesignated].(bool)
	return d, ok
}

// World returns the node's world, if any.
func (n *Node) World() (int, bool) {
	w, ok := n.Props[PropWorld].(int)
	return w, ok
}

// Worlds returns the union of world/world1/world2 carried by this node.
func (n *Node) Worlds() []int {
	var out []int
	if w, ok := n.World(); ok {
		out = append(out, w)
	}
	if w1, ok := n.Props[PropWorld1].(int); ok {
		out = append(out, w1)
	}
	if w2, ok := n.Props[PropWorld2].(int); ok {
		out = append(out, w2)
	}
	return out
}

// Constants returns the constants of the node's sentence, if any.
func (n *Node) Constants() []lex.Constant {
	if s, ok := n.Sentence(); ok {
		return s.Constants()
	}
	return nil
}

// IsAccessNode reports whether this node encodes a world1->world2 access
// edge rather than a sentence.
func (n *Node) IsAccessNode() bool {
	_, ok1 := n.Props[PropWorld1]
	_, ok2 := n.Props[PropWorld2]
	return ok1 && ok2
}

// CloneProps copies n's property bag and applies overrides, letting a
// rewrite rule (quantifier instantiation, assertion pass-through) preserve
// whichever of world/designated/etc the original node carried without
// needing to know which logic family it's running under.
func (n *Node) CloneProps(overrides map[string]any) map[string]any {
	cp := make(map[string]any, len(n.Props)+len(overrides))
	for k, v := range n.Props {
		cp[k] = v
	}
	for k, v := range overrides {
		cp[k] = v
	}
	return cp
}
