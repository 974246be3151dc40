package tableau

import "time"

// TreeNode is one node of the tree-structure report: tableaux render as a
// tree of *branch segments* (runs of nodes common to every branch passing
// through them), not a tree of individual nodes.
type TreeNode struct {
	NodeIDs  []int64
	Children []*TreeNode

	Closed   bool
	Open     bool
	Leaf     bool
	Depth    int
	Width    int // count of leaf descendants, used to lay out children left-to-right

	// Balanced-line layout fields: not required by the wire format, but
	// computed for free in the same traversal, so a text renderer can lay
	// the tree out without a second pass.
	BalancedLineWidth  int
	BalancedLineMargin int
	Left               int
	Right              int
}

// Tree builds the tree-structure report for the tableau's current branch
// set, grouping each maximal run of nodes shared by exactly the same set
// of descendant branches into one TreeNode.
func (t *Tableau) Tree() *TreeNode {
	start := time.Now()
	defer func() { t.timers["tree"] = time.Since(start) }()

	if len(t.branches) == 0 {
		return &TreeNode{Leaf: true, Open: true}
	}

	root := &TreeNode{}
	t.insertBranch(root, t.branches[0], 0)
	for _, b := range t.branches[1:] {
		t.insertBranch(root, b, 0)
	}
	layoutBalance(root, 0)
	return root
}

// insertBranch walks b's node list against the existing tree, sharing the
// common prefix with any sibling branch and splitting at the first point
// of divergence.
func (t *Tableau) insertBranch(root *TreeNode, b *Branch, _ int) {
	cur := root
	nodes := b.Nodes()
	idx := 0
	for {
		matched := false
		for _, child := range cur.Children {
			if idx < len(nodes) && len(child.NodeIDs) > 0 && child.NodeIDs[0] == nodes[idx].ID() {
				k := 1
				for k < len(child.NodeIDs) && idx+k < len(nodes) && child.NodeIDs[k] == nodes[idx+k].ID() {
					k++
				}
				if k < len(child.NodeIDs) {
					tail := *child
					tail.NodeIDs = child.NodeIDs[k:]
					*child = TreeNode{NodeIDs: child.NodeIDs[:k:k], Children: []*TreeNode{&tail}, Depth: child.Depth}
					for stack := []*TreeNode{&tail}; len(stack) > 0; {
						n := stack[len(stack)-1]
						stack = append(stack[:len(stack)-1], n.Children...)
						n.Depth++
					}
				}
				cur = child
				idx += k
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	if idx < len(nodes) {
		seg := &TreeNode{Depth: cur.Depth + 1}
		for _, n := range nodes[idx:] {
			seg.NodeIDs = append(seg.NodeIDs, n.ID())
		}
		cur.Children = append(cur.Children, seg)
		cur = seg
	}
	cur.Leaf = true
	cur.Closed = b.Closed()
	cur.Open = !b.Closed()
}

func layoutBalance(n *TreeNode, left int) int {
	if len(n.Children) == 0 {
		n.Width = 1
		n.Left = left
		n.Right = left + 1
		n.BalancedLineWidth = 1
		n.BalancedLineMargin = 0
		return n.Right
	}
	cursor := left
	for _, c := range n.Children {
		cursor = layoutBalance(c, cursor)
	}
	n.Left = n.Children[0].Left
	n.Right = n.Children[len(n.Children)-1].Right
	n.Width = n.Right - n.Left
	n.BalancedLineWidth = n.Width
	n.BalancedLineMargin = (n.Width - 1) / 2
	return n.Right
}
