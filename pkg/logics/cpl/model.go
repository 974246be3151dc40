package cpl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

// Model reads an open CPL branch into a bivalent valuation over atomics:
// true if the atomic literally appears, false if its negation does.
type Model struct {
	values map[string]bool
	names  map[string]lex.Atomic
}

func NewModel() *Model {
	return &Model{values: make(map[string]bool), names: make(map[string]lex.Atomic)}
}

func (m *Model) ReadBranch(b *tableau.Branch) error {
	for _, n := range b.Nodes() {
		s, ok := n.Sentence()
		if !ok {
			continue
		}
		if a, ok := s.(lex.Atomic); ok {
			k := lex.Key(a)
			m.names[k] = a
			m.values[k] = true
			continue
		}
		if op, ok := s.(lex.Operated); ok && op.Op == lex.Negation {
			if a, ok := op.Operands[0].(lex.Atomic); ok {
				k := lex.Key(a)
				m.names[k] = a
				if _, seen := m.values[k]; !seen {
					m.values[k] = false
				}
			}
		}
	}
	return nil
}

func (m *Model) value(s lex.Sentence) bool {
	switch v := s.(type) {
	case lex.Atomic:
		return m.values[lex.Key(v)]
	case lex.Operated:
		switch v.Op {
		case lex.Negation:
			return !m.value(v.Operands[0])
		case lex.Conjunction:
			return m.value(v.Operands[0]) && m.value(v.Operands[1])
		case lex.Disjunction:
			return m.value(v.Operands[0]) || m.value(v.Operands[1])
		case lex.MaterialConditional:
			return !m.value(v.Operands[0]) || m.value(v.Operands[1])
		case lex.MaterialBiconditional:
			return m.value(v.Operands[0]) == m.value(v.Operands[1])
		case lex.Assertion:
			return m.value(v.Operands[0])
		}
	}
	return false
}

func (m *Model) IsCountermodelTo(arg lex.Argument) bool {
	for _, p := range arg.Premises {
		if !m.value(p) {
			return false
		}
	}
	return !m.value(arg.Conclusion)
}

func (m *Model) String() string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s = %v\n", m.names[k].String(), m.values[k])
	}
	return b.String()
}
