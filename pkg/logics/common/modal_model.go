package common

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

// KripkeModel is the shared countermodel shape for every modal logic: a
// set of worlds, an access relation, and a per-world bivalent valuation
// over atomics/predications read directly off the branch's literals.
// Frame properties (reflexive/transitive/symmetric/serial) are enforced
// by the tableau's own frame rules before a branch can stay open, so the
// model doesn't need to re-derive or re-check them.
type KripkeModel struct {
	Access map[int]map[int]bool
	Valuations map[int]map[string]bool
	names      map[string]string
}

func NewKripkeModel() *KripkeModel {
	return &KripkeModel{
		Access:     make(map[int]map[int]bool),
		Valuations: make(map[int]map[string]bool),
		names:      make(map[string]string),
	}
}

func (m *KripkeModel) ReadBranch(b *tableau.Branch) error {
	for _, n := range b.Nodes() {
		if n.IsAccessNode() {
			w1, _ := n.Props[tableau.PropWorld1].(int)
			w2, _ := n.Props[tableau.PropWorld2].(int)
			if m.Access[w1] == nil {
				m.Access[w1] = make(map[int]bool)
			}
			m.Access[w1][w2] = true
			continue
		}
		s, ok := n.Sentence()
		if !ok {
			continue
		}
		w, _ := n.World()
		m.mark(w, s, true)
	}
	return nil
}

func (m *KripkeModel) mark(w int, s lex.Sentence, positive bool) {
	if m.Valuations[w] == nil {
		m.Valuations[w] = make(map[string]bool)
	}
	switch v := s.(type) {
	case lex.Atomic:
		k := lex.Key(v)
		m.names[k] = v.String()
		if positive {
			m.Valuations[w][k] = true
		} else if _, seen := m.Valuations[w][k]; !seen {
			m.Valuations[w][k] = false
		}
	case lex.Predicated:
		k := lex.Key(v)
		m.names[k] = v.String()
		if positive {
			m.Valuations[w][k] = true
		} else if _, seen := m.Valuations[w][k]; !seen {
			m.Valuations[w][k] = false
		}
	case lex.Operated:
		if v.Op == lex.Negation {
			m.mark(w, v.Operands[0], !positive)
		}
	}
}

// Value evaluates s at world w.
func (m *KripkeModel) Value(w int, s lex.Sentence) bool {
	switch v := s.(type) {
	case lex.Atomic:
		return m.Valuations[w][lex.Key(v)]
	case lex.Predicated:
		return m.Valuations[w][lex.Key(v)]
	case lex.Operated:
		switch v.Op {
		case lex.Negation:
			return !m.Value(w, v.Operands[0])
		case lex.Conjunction:
			return m.Value(w, v.Operands[0]) && m.Value(w, v.Operands[1])
		case lex.Disjunction:
			return m.Value(w, v.Operands[0]) || m.Value(w, v.Operands[1])
		case lex.MaterialConditional:
			return !m.Value(w, v.Operands[0]) || m.Value(w, v.Operands[1])
		case lex.MaterialBiconditional:
			return m.Value(w, v.Operands[0]) == m.Value(w, v.Operands[1])
		case lex.Assertion:
			return m.Value(w, v.Operands[0])
		case lex.Necessity:
			for w2 := range m.Access[w] {
				if !m.Value(w2, v.Operands[0]) {
					return false
				}
			}
			return true
		case lex.Possibility:
			for w2 := range m.Access[w] {
				if m.Value(w2, v.Operands[0]) {
					return true
				}
			}
			return false
		}
	}
	return false
}

// IsCountermodelTo checks the argument at world 0, where the trunk
// placed every premise and the negated conclusion.
func (m *KripkeModel) IsCountermodelTo(arg lex.Argument) bool {
	for _, p := range arg.Premises {
		if !m.Value(0, p) {
			return false
		}
	}
	return !m.Value(0, arg.Conclusion)
}

func (m *KripkeModel) String() string {
	worlds := make([]int, 0, len(m.Valuations))
	for w := range m.Valuations {
		worlds = append(worlds, w)
	}
	sort.Ints(worlds)
	var b strings.Builder
	for _, w := range worlds {
		fmt.Fprintf(&b, "w%d:\n", w)
		keys := make([]string, 0, len(m.Valuations[w]))
		for k := range m.Valuations[w] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s = %v\n", m.names[k], m.Valuations[w][k])
		}
	}
	for w1, row := range m.Access {
		for w2 := range row {
			fmt.Fprintf(&b, "w%d -> w%d\n", w1, w2)
		}
	}
	return b.String()
}
