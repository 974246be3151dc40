package fde_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/internal/examplesdata"
	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/logics/fde"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

func TestDisjunctiveSyllogismFixtureMatchesEngineSemantics(t *testing.T) {
	// Genuine FDE rejects disjunctive syllogism: a B-glut on b (b and ¬b
	// both designated) is a countermodel, since the disjunction's b-branch
	// never has to make a true. See the fixture comment in arguments.yaml.
	f, err := examplesdata.Get("fde_disjunctive_syllogism")
	require.NoError(t, err)
	arg, _, wantValid, err := examplesdata.Argument("fde_disjunctive_syllogism")
	require.NoError(t, err)
	assert.False(t, wantValid)

	tab := tableau.New(fde.Def, arg, tableau.Options{MaxSteps: f.MaxSteps, BuildModels: true}, nil)
	require.NoError(t, tab.Build(context.Background()))

	require.Equal(t, tableau.ResultInvalid, tab.Result())
	require.Len(t, tab.Models(), 1)
	for _, m := range tab.Models() {
		assert.True(t, m.IsCountermodelTo(arg))
	}
}

func TestUnrelatedAtomsLeaveBranchOpenWithModel(t *testing.T) {
	a := lex.Atomic{Idx: 0}
	b := lex.Atomic{Idx: 1}
	arg := lex.NewArgument(b, []lex.Sentence{a}, "")

	tab := tableau.New(fde.Def, arg, tableau.Options{BuildModels: true}, nil)
	require.NoError(t, tab.Build(context.Background()))

	require.Equal(t, tableau.ResultInvalid, tab.Result())
	require.Len(t, tab.Models(), 1)
	for _, m := range tab.Models() {
		assert.True(t, m.IsCountermodelTo(arg))
	}
}

func TestDesignatedConjunctionOfAAndItsNegationStaysOpenAsGlut(t *testing.T) {
	// A designated A and a designated ~A is FDE's glut (A=B), not a
	// contradiction: the negation rules never flip ~A's designation, so
	// the branch stays open with a=B and the (unrelated) conclusion
	// correctly fails to follow.
	a := lex.Atomic{Idx: 0}
	conj := lex.Conjoin(a, lex.Negate(a))
	b := lex.Atomic{Idx: 1}
	arg := lex.NewArgument(b, []lex.Sentence{conj}, "")

	tab := tableau.New(fde.Def, arg, tableau.Options{MaxSteps: 200, BuildModels: true}, nil)
	require.NoError(t, tab.Build(context.Background()))
	require.Equal(t, tableau.ResultInvalid, tab.Result())
	require.Len(t, tab.Models(), 1)
	for _, m := range tab.Models() {
		assert.True(t, m.IsCountermodelTo(arg))
	}
}
