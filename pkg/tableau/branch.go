package tableau

import (
	"fmt"
	"sort"

	"github.com/gitrdm/gotableaux/pkg/lex"
)

// Branch is an ordered, append-only sequence of nodes plus derived caches
// and a closed flag. Copies are independent: node *references* are shared
// between a branch and its copy, but the node list, ticked set, and caches
// are never aliased.
//
// Find/Search here scan the (small, per-branch-bounded) node list directly
// rather than maintaining the "smallest matching reverse index" scan order
// described for a reverse-indexed implementation: branch sizes in an
// analytic tableau are bounded by the branching-complexity helpers well
// before indexing would matter, and a direct scan keeps Branch's invariants
// (append-only, copy-on-branch) easy to verify by inspection.
type Branch struct {
	id     int
	nodes  []*Node
	ticked map[int64]bool

	closed     bool
	closedStep int

	parent *Branch
	leaf   *Node
	origin *Branch

	constants map[string]lex.Constant
	worlds    map[int]bool
	atomics   map[string]lex.Atomic
	preds     map[string]lex.Predicate

	tab *Tableau
}

var nextBranchID int

func newBranchID() int {
	nextBranchID++
	return nextBranchID - 1
}

// NewBranch returns an empty root branch.
func NewBranch(tab *Tableau) *Branch {
	b := &Branch{
		id:        newBranchID(),
		ticked:    make(map[int64]bool),
		constants: make(map[string]lex.Constant),
		worlds:    make(map[int]bool),
		atomics:   make(map[string]lex.Atomic),
		preds:     make(map[string]lex.Predicate),
		tab:       tab,
	}
	b.origin = b
	return b
}

func (b *Branch) ID() int       { return b.id }
func (b *Branch) Closed() bool  { return b.closed }
func (b *Branch) ClosedStep() int { return b.closedStep }
func (b *Branch) Parent() *Branch { return b.parent }
func (b *Branch) Leaf() *Node    { return b.leaf }
func (b *Branch) Origin() *Branch { return b.origin }
func (b *Branch) Nodes() []*Node { return b.nodes }
func (b *Branch) Len() int       { return len(b.nodes) }

// Append wraps props in a Node (if not already one), assigns the
// branch-local step, updates caches, sets parent/leaf, and fires
// AfterNodeAdd.
func (b *Branch) Append(propsOrNode any) *Node {
	var n *Node
	switch v := propsOrNode.(type) {
	case *Node:
		n = v
	case map[string]any:
		n = NewNode(v)
	default:
		panic(fmt.Sprintf("Branch.Append: unsupported %T", propsOrNode))
	}
	n.step = len(b.nodes)
	if b.leaf != nil {
		// parent pointer on the node chain is implicit via branch.nodes
		// order; no per-node parent field is needed since Node identity is
		// stable and the branch preserves insertion order.
	}
	b.nodes = append(b.nodes, n)
	b.leaf = n
	b.updateCaches(n)
	if b.tab != nil {
		b.tab.emit(EventAfterNodeAdd, b, n)
	}
	return n
}

func (b *Branch) updateCaches(n *Node) {
	if s, ok := n.Sentence(); ok {
		for _, c := range s.Constants() {
			b.constants[lex.Key(c)] = c
		}
		for _, a := range s.Atomics() {
			b.atomics[lex.Key(a)] = a
		}
		for _, p := range s.SentPredicates() {
			b.preds[lex.Key(p)] = p
		}
	}
	for _, w := range n.Worlds() {
		b.worlds[w] = true
	}
}

// Extend appends each element in order.
func (b *Branch) Extend(items []map[string]any) {
	for _, props := range items {
		b.Append(props)
	}
}

// Tick marks n consumed at the current step (the step of the branch's
// latest node).
func (b *Branch) Tick(n *Node) {
	if b.ticked[n.id] {
		return
	}
	b.ticked[n.id] = true
	step := len(b.nodes) - 1
	if step < 0 {
		step = 0
	}
	n.tickedStep = &step
	if b.tab != nil {
		b.tab.emit(EventAfterNodeTick, b, n)
	}
}

// IsTicked reports whether n has been ticked on this branch.
func (b *Branch) IsTicked(n *Node) bool { return b.ticked[n.id] }

// Close marks the branch closed, appends a terminal flag node, and fires
// AfterBranchClose. No further rule may target a closed branch.
func (b *Branch) Close(step int) {
	if b.closed {
		return
	}
	b.closed = true
	b.closedStep = step
	b.Append(map[string]any{PropIsFlag: true, PropFlag: "closure"})
	if b.tab != nil {
		b.tab.emit(EventAfterBranchClose, b, nil)
	}
}

// Has reports whether any (ticked-filtered) node matches props.
func (b *Branch) Has(props map[string]any, tickedFilter *bool) bool {
	return b.Find(props, tickedFilter) != nil
}

// Find returns the first matching node in insertion order, or nil.
func (b *Branch) Find(props map[string]any, tickedFilter *bool) *Node {
	for _, n := range b.nodes {
		if tickedFilter != nil && b.IsTicked(n) != *tickedFilter {
			continue
		}
		if n.Has(props) {
			return n
		}
	}
	return nil
}

// FindAll returns every matching node in insertion order.
func (b *Branch) FindAll(props map[string]any, tickedFilter *bool) []*Node {
	var out []*Node
	for _, n := range b.nodes {
		if tickedFilter != nil && b.IsTicked(n) != *tickedFilter {
			continue
		}
		if n.Has(props) {
			out = append(out, n)
		}
	}
	return out
}

// Search is FindAll with an optional result limit.
func (b *Branch) Search(props map[string]any, tickedFilter *bool, limit int) []*Node {
	out := b.FindAll(props, tickedFilter)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// HasAccess reports whether a world1->world2 access node exists.
func (b *Branch) HasAccess(w1, w2 int) bool {
	return b.Has(map[string]any{PropWorld1: w1, PropWorld2: w2}, nil)
}

// Worlds returns every world mentioned on the branch, sorted ascending.
func (b *Branch) Worlds() []int {
	out := make([]int, 0, len(b.worlds))
	for w := range b.worlds {
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}

// NewWorld returns a world integer not yet on the branch: the largest
// world plus one, or 0 when there are none.
func (b *Branch) NewWorld() int {
	ws := b.Worlds()
	if len(ws) == 0 {
		return 0
	}
	return ws[len(ws)-1] + 1
}

// Constants returns every constant on the branch, in sort-tuple order.
func (b *Branch) Constants() []lex.Constant {
	out := make([]lex.Constant, 0, len(b.constants))
	for _, c := range b.constants {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return lex.Compare(out[i], out[j]) < 0 })
	return out
}

// NewConstant returns the first (index, subscript) not yet on the branch,
// iterating index (within the notation's alphabet, default 5) then
// subscript.
func (b *Branch) NewConstant(alphabetSize int) lex.Constant {
	if alphabetSize <= 0 {
		alphabetSize = 5
	}
	have := make(map[string]bool, len(b.constants))
	for k := range b.constants {
		have[k] = true
	}
	for sub := 0; ; sub++ {
		for idx := 0; idx < alphabetSize; idx++ {
			c := lex.Constant{Idx: idx, Sub: sub}
			if !have[lex.Key(c)] {
				return c
			}
		}
	}
}

// ConstantsOrNew returns the branch's constants, or a single fresh one if
// none exist yet.
func (b *Branch) ConstantsOrNew(alphabetSize int) []lex.Constant {
	cs := b.Constants()
	if len(cs) == 0 {
		return []lex.Constant{b.NewConstant(alphabetSize)}
	}
	return cs
}

// Atomics returns every atomic sentence on the branch.
func (b *Branch) Atomics() []lex.Atomic {
	out := make([]lex.Atomic, 0, len(b.atomics))
	for _, a := range b.atomics {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return lex.Compare(out[i], out[j]) < 0 })
	return out
}

// Predicates returns every predicate appearing on the branch.
func (b *Branch) Predicates() []lex.Predicate {
	out := make([]lex.Predicate, 0, len(b.preds))
	for _, p := range b.preds {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return lex.Compare(out[i], out[j]) < 0 })
	return out
}

// Copy clones the node list, ticked set, and caches into a new branch whose
// parent is b. Node references are shared; the containers are not.
func (b *Branch) Copy() *Branch {
	nb := &Branch{
		id:        newBranchID(),
		nodes:     append([]*Node(nil), b.nodes...),
		ticked:    make(map[int64]bool, len(b.ticked)),
		constants: make(map[string]lex.Constant, len(b.constants)),
		worlds:    make(map[int]bool, len(b.worlds)),
		atomics:   make(map[string]lex.Atomic, len(b.atomics)),
		preds:     make(map[string]lex.Predicate, len(b.preds)),
		parent:    b,
		leaf:      b.leaf,
		origin:    b.origin,
		tab:       b.tab,
	}
	for k, v := range b.ticked {
		nb.ticked[k] = v
	}
	for k, v := range b.constants {
		nb.constants[k] = v
	}
	for k := range b.worlds {
		nb.worlds[k] = true
	}
	for k, v := range b.atomics {
		nb.atomics[k] = v
	}
	for k, v := range b.preds {
		nb.preds[k] = v
	}
	return nb
}
