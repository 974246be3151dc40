package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

func TestNegatedQuantifierSwapExistentialToUniversal(t *testing.T) {
	b := tableau.NewBranch(nil)
	v := lex.Variable{Idx: 0}
	pred := lex.NewPredicate(0, 0, 1)
	body, err := lex.NewPredicated(pred, v)
	require.NoError(t, err)
	quantified := lex.NewQuantified(lex.Existential, v, body)
	b.Append(SentenceNode(lex.Negate(quantified)))

	r := NewNegatedQuantifierSwap(lex.Existential, lex.Universal)
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	r.Apply(nil, targets[0])

	last := b.Nodes()[len(b.Nodes())-1]
	s, _ := last.Sentence()
	q, ok := s.(lex.Quantified)
	require.True(t, ok)
	assert.Equal(t, lex.Universal, q.Quant)
	neg, ok := q.Body.(lex.Operated)
	require.True(t, ok)
	assert.Equal(t, lex.Negation, neg.Op)
}

func TestExistentialInstantiationSubstitutesFreshConstant(t *testing.T) {
	tab := tableau.New(tableau.LogicDef{Name: "T"}, lex.Argument{}, tableau.Options{AlphabetSize: 3}, nil)
	b := tableau.NewBranch(tab)

	v := lex.Variable{Idx: 0}
	pred := lex.NewPredicate(0, 0, 1)
	body, err := lex.NewPredicated(pred, v)
	require.NoError(t, err)
	quantified := lex.NewQuantified(lex.Existential, v, body)
	b.Append(SentenceNode(quantified))

	r := NewExistentialInstantiation()
	targets := r.GetTargets(tab, b)
	require.Len(t, targets, 1)
	r.Apply(tab, targets[0])

	last := b.Nodes()[len(b.Nodes())-1]
	s, _ := last.Sentence()
	p, ok := s.(lex.Predicated)
	require.True(t, ok)
	_, ok = p.Params[0].(lex.Constant)
	assert.True(t, ok)
}

func TestUniversalInstantiationNeverTicksAndCoversEveryConstant(t *testing.T) {
	tab := tableau.New(tableau.LogicDef{Name: "T"}, lex.Argument{}, tableau.Options{AlphabetSize: 3}, nil)
	b := tableau.NewBranch(tab)

	v := lex.Variable{Idx: 0}
	pred := lex.NewPredicate(0, 0, 1)
	body, err := lex.NewPredicated(pred, v)
	require.NoError(t, err)
	quantified := lex.NewQuantified(lex.Universal, v, body)
	n := b.Append(SentenceNode(quantified))

	pc, err := lex.NewPredicated(pred, lex.Constant{Idx: 0})
	require.NoError(t, err)
	b.Append(SentenceNode(pc))

	r := NewUniversalInstantiation()
	targets := r.GetTargets(tab, b)
	require.NotEmpty(t, targets)
	for _, target := range targets {
		r.Apply(tab, target)
	}
	assert.False(t, b.IsTicked(n))

	// Applying again against the same constants yields no new targets.
	assert.Empty(t, r.GetTargets(tab, b))
}
