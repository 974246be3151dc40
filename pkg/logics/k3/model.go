package k3

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

// Model is the three-valued countermodel read off an open K3 branch.
// Each literal carries independent hasTrue/hasFalse signals the same
// way fde.Model does; GlutClosure keeps a sound branch from ever
// setting both for the same literal, but label still resolves that case
// (defensively, toward "T") rather than panicking, since K3 has no B
// value to report it as.
type Model struct {
	marks map[string]*signal
	names map[string]lex.Sentence
}

type signal struct{ hasTrue, hasFalse bool }

func NewModel() *Model {
	return &Model{marks: make(map[string]*signal), names: make(map[string]lex.Sentence)}
}

func (m *Model) mark(s lex.Sentence) *signal {
	k := lex.Key(s)
	mk, ok := m.marks[k]
	if !ok {
		mk = &signal{}
		m.marks[k] = mk
		m.names[k] = s
	}
	return mk
}

func (m *Model) ReadBranch(b *tableau.Branch) error {
	for _, n := range b.Nodes() {
		s, ok := n.Sentence()
		if !ok {
			continue
		}
		d, ok := n.Designated()
		if !ok || !d {
			continue
		}
		if s.IsLiteral() && !s.IsNegated() {
			m.mark(s).hasTrue = true
			continue
		}
		if op, ok := s.(lex.Operated); ok && op.IsLiteral() {
			m.mark(op.Operands[0]).hasFalse = true
		}
	}
	return nil
}

func (m *Model) value(s lex.Sentence) (hasTrue, hasFalse bool) {
	if s.IsLiteral() && !s.IsNegated() {
		mk, ok := m.marks[lex.Key(s)]
		if !ok {
			return false, false
		}
		return mk.hasTrue, mk.hasFalse
	}
	op, ok := s.(lex.Operated)
	if !ok {
		return false, false
	}
	switch op.Op {
	case lex.Negation:
		t, f := m.value(op.Operands[0])
		return f, t
	case lex.Conjunction:
		at, af := m.value(op.Operands[0])
		bt, bf := m.value(op.Operands[1])
		return at && bt, af || bf
	case lex.Disjunction:
		at, af := m.value(op.Operands[0])
		bt, bf := m.value(op.Operands[1])
		return at || bt, af && bf
	case lex.MaterialConditional:
		return m.value(lex.Disjoin(lex.Negate(op.Operands[0]), op.Operands[1]))
	case lex.MaterialBiconditional:
		fwd := lex.MustOperated(lex.MaterialConditional, op.Operands[0], op.Operands[1])
		back := lex.MustOperated(lex.MaterialConditional, op.Operands[1], op.Operands[0])
		return m.value(lex.Conjoin(fwd, back))
	case lex.Assertion:
		return m.value(op.Operands[0])
	default:
		return false, false
	}
}

func label(hasTrue, hasFalse bool) string {
	switch {
	case hasTrue:
		return "T"
	case hasFalse:
		return "F"
	default:
		return "N"
	}
}

func designatedValue(v string) bool { return v == "T" }

// IsCountermodelTo reports whether every premise reads designated and
// the conclusion does not.
func (m *Model) IsCountermodelTo(arg lex.Argument) bool {
	for _, p := range arg.Premises {
		if !designatedValue(label(m.value(p))) {
			return false
		}
	}
	return !designatedValue(label(m.value(arg.Conclusion)))
}

func (m *Model) String() string {
	keys := make([]string, 0, len(m.marks))
	for k := range m.marks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		mk := m.marks[k]
		fmt.Fprintf(&b, "%s = %s\n", m.names[k].String(), label(mk.hasTrue, mk.hasFalse))
	}
	return b.String()
}
