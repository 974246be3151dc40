package cfol

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

// Model reads an open CFOL branch into a bivalent valuation over atomics
// and ground predications: true if the literal appears, false if its
// negation does. Quantified sentences are evaluated against the finite
// domain of constants that actually appear on the branch (the tableau
// having already instantiated every universal against every such
// constant before the branch could close off).
type Model struct {
	atomics   map[string]bool
	preds     map[string]bool
	predNames map[string]lex.Predicated
	domain    map[string]lex.Constant
}

func NewModel() *Model {
	return &Model{
		atomics:   make(map[string]bool),
		preds:     make(map[string]bool),
		predNames: make(map[string]lex.Predicated),
		domain:    make(map[string]lex.Constant),
	}
}

func (m *Model) ReadBranch(b *tableau.Branch) error {
	for _, c := range b.Constants() {
		m.domain[lex.Key(c)] = c
	}
	for _, n := range b.Nodes() {
		s, ok := n.Sentence()
		if !ok {
			continue
		}
		m.mark(s, true)
	}
	return nil
}

func (m *Model) mark(s lex.Sentence, positive bool) {
	switch v := s.(type) {
	case lex.Atomic:
		k := lex.Key(v)
		if positive {
			m.atomics[k] = true
		} else if _, seen := m.atomics[k]; !seen {
			m.atomics[k] = false
		}
	case lex.Predicated:
		k := lex.Key(v)
		m.predNames[k] = v
		if positive {
			m.preds[k] = true
		} else if _, seen := m.preds[k]; !seen {
			m.preds[k] = false
		}
	case lex.Operated:
		if v.Op == lex.Negation {
			m.mark(v.Operands[0], !positive)
		}
	}
}

func (m *Model) Value(s lex.Sentence) bool {
	switch v := s.(type) {
	case lex.Atomic:
		return m.atomics[lex.Key(v)]
	case lex.Predicated:
		return m.preds[lex.Key(v)]
	case lex.Operated:
		switch v.Op {
		case lex.Negation:
			return !m.Value(v.Operands[0])
		case lex.Conjunction:
			return m.Value(v.Operands[0]) && m.Value(v.Operands[1])
		case lex.Disjunction:
			return m.Value(v.Operands[0]) || m.Value(v.Operands[1])
		case lex.MaterialConditional:
			return !m.Value(v.Operands[0]) || m.Value(v.Operands[1])
		case lex.MaterialBiconditional:
			return m.Value(v.Operands[0]) == m.Value(v.Operands[1])
		case lex.Assertion:
			return m.Value(v.Operands[0])
		}
	case lex.Quantified:
		for _, c := range m.domain {
			instance := v.Body.Substitute(c, v.Var)
			if v.Quant == lex.Existential && m.Value(instance) {
				return true
			}
			if v.Quant == lex.Universal && !m.Value(instance) {
				return false
			}
		}
		return v.Quant == lex.Universal
	}
	return false
}

func (m *Model) IsCountermodelTo(arg lex.Argument) bool {
	for _, p := range arg.Premises {
		if !m.Value(p) {
			return false
		}
	}
	return !m.Value(arg.Conclusion)
}

func (m *Model) String() string {
	keys := make([]string, 0, len(m.atomics)+len(m.preds))
	for k := range m.atomics {
		keys = append(keys, "a:"+k)
	}
	for k := range m.preds {
		keys = append(keys, "p:"+k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		switch {
		case strings.HasPrefix(k, "p:"):
			pk := strings.TrimPrefix(k, "p:")
			fmt.Fprintf(&b, "%s = %v\n", m.predNames[pk].String(), m.preds[pk])
		case strings.HasPrefix(k, "a:"):
			ak := strings.TrimPrefix(k, "a:")
			fmt.Fprintf(&b, "%s = %v\n", ak, m.atomics[ak])
		}
	}
	return b.String()
}
