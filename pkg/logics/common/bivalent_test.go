package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

func TestBivalentClosureFindsContradictionAtSameWorld(t *testing.T) {
	b := tableau.NewBranch(nil)
	b.Append(WorldNode(lex.Atomic{Idx: 0}, 0))
	b.Append(WorldNode(lex.Negate(lex.Atomic{Idx: 0}), 0))

	r := NewBivalentClosure()
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	assert.Equal(t, "closure", targets[0].Flag)
}

func TestBivalentClosureIgnoresDifferentWorlds(t *testing.T) {
	b := tableau.NewBranch(nil)
	b.Append(WorldNode(lex.Atomic{Idx: 0}, 0))
	b.Append(WorldNode(lex.Negate(lex.Atomic{Idx: 0}), 1))

	r := NewBivalentClosure()
	assert.Empty(t, r.GetTargets(nil, b))
}

func TestDoubleNegationRewrites(t *testing.T) {
	b := tableau.NewBranch(nil)
	inner := lex.Atomic{Idx: 0}
	n := b.Append(SentenceNode(lex.Negate(lex.Negate(inner))))

	r := NewDoubleNegation()
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	r.Apply(nil, targets[0])

	assert.True(t, b.IsTicked(n))
	last := b.Nodes()[len(b.Nodes())-1]
	s, _ := last.Sentence()
	assert.True(t, lex.Equal(s, inner))
}

func TestAlphaConjunctionExpandsBothConjunctsOnSameBranch(t *testing.T) {
	b := tableau.NewBranch(nil)
	a := lex.Atomic{Idx: 0}
	bb := lex.Atomic{Idx: 1}
	conj := lex.MustOperated(lex.Conjunction, a, bb)
	b.Append(SentenceNode(conj))

	r := StandardExtensionalRules()[2] // Conjunction alpha rule
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	r.Apply(nil, targets[0])

	assert.Equal(t, 3, b.Len())
}

func TestBetaDisjunctionBranches(t *testing.T) {
	a := lex.Atomic{Idx: 0}
	bb := lex.Atomic{Idx: 1}
	disj := lex.MustOperated(lex.Disjunction, a, bb)

	tab := tableau.New(tableau.LogicDef{Name: "T"}, lex.Argument{}, tableau.Options{}, nil)
	b := tableau.NewBranch(tab)
	b.Append(SentenceNode(disj))

	var disjunctionRule tableau.Rule
	for _, r := range StandardExtensionalRules() {
		if r.Name() == "Disjunction" {
			disjunctionRule = r
		}
	}
	require.NotNil(t, disjunctionRule)

	targets := disjunctionRule.GetTargets(tab, b)
	require.Len(t, targets, 1)
	disjunctionRule.Apply(tab, targets[0])

	assert.Equal(t, 2, b.Len())
}

func TestBiconditionalReduceExpandsToConjunctionOfConditionals(t *testing.T) {
	b := tableau.NewBranch(nil)
	a := lex.Atomic{Idx: 0}
	bb := lex.Atomic{Idx: 1}
	bicond := lex.MustOperated(lex.MaterialBiconditional, a, bb)
	b.Append(SentenceNode(bicond))

	r := NewBiconditionalReduce(false)
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	r.Apply(nil, targets[0])

	last := b.Nodes()[len(b.Nodes())-1]
	s, _ := last.Sentence()
	op, ok := s.(lex.Operated)
	require.True(t, ok)
	assert.Equal(t, lex.Conjunction, op.Op)
}

func TestAssertionElimStripsWrapper(t *testing.T) {
	b := tableau.NewBranch(nil)
	inner := lex.Atomic{Idx: 0}
	asserted := lex.Asserted(inner)
	b.Append(SentenceNode(asserted))

	r := NewAssertionElim(false)
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	r.Apply(nil, targets[0])

	last := b.Nodes()[len(b.Nodes())-1]
	s, _ := last.Sentence()
	assert.True(t, lex.Equal(s, inner))
}

func TestAssertionElimNegatedNegatesOperand(t *testing.T) {
	b := tableau.NewBranch(nil)
	inner := lex.Atomic{Idx: 0}
	asserted := lex.Negate(lex.Asserted(inner))
	b.Append(SentenceNode(asserted))

	r := NewAssertionElim(true)
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	r.Apply(nil, targets[0])

	last := b.Nodes()[len(b.Nodes())-1]
	s, _ := last.Sentence()
	assert.True(t, lex.Equal(s, lex.Negate(inner)))
}
